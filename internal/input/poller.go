package input

import (
	"sync"

	"ecsim/internal/bitvec"

	"github.com/gdamore/tcell/v2"
)

// Poller reads key events from a screen on its own goroutine and
// accumulates the tracked keys until the next Snapshot.
type Poller struct {
	screen tcell.Screen
	mu     sync.Mutex
	held   bitvec.BitVector
	done   chan struct{}
}

// NewPoller starts polling screen. Polling stops once the screen is
// finalized.
func NewPoller(screen tcell.Screen) *Poller {
	p := &Poller{
		screen: screen,
		done:   make(chan struct{}),
	}
	go p.poll()
	return p
}

func (p *Poller) poll() {
	defer close(p.done)
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			if k, ok := KeyFor(ev); ok {
				p.press(k)
			}
		}
	}
}

func (p *Poller) press(k Key) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.held.Set(k) // tracked keys are all below bitvec.Width
}

// Snapshot returns the keys pressed since the previous Snapshot and clears
// them.
func (p *Poller) Snapshot() bitvec.BitVector {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := p.held
	p.held = bitvec.New()
	return keys
}

// Done is closed when the screen stops delivering events.
func (p *Poller) Done() <-chan struct{} { return p.done }
