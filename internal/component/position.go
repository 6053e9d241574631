package component

// Position is a world-space location.
func Position(x, y float64) Component {
	return Component{kind: CPosition, X: x, Y: y}
}

// Velocity is a world-space rate of change in units per second.
func Velocity(x, y float64) Component {
	return Component{kind: CVelocity, X: x, Y: y}
}
