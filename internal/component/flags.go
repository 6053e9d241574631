package component

import "ecsim/internal/bitvec"

// KeysPressed holds the keys observed for an entity during the current tick.
func KeysPressed(keys bitvec.BitVector) Component {
	return Component{kind: CKeysPressed, Flags: keys}
}

// Commands holds the commands an entity has issued.
func Commands(cmds bitvec.BitVector) Component {
	return Component{kind: CCommands, Flags: cmds}
}
