// Package entity provides the entities that move through a level.
package entity

// Delver is the player avatar exploring the level.
type Delver struct {
	X, Y   int  // Current position in the level
	Symbol rune // Display symbol
}

// NewDelver creates a delver at the given position.
func NewDelver(x, y int) *Delver {
	return &Delver{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// Move updates the delver position by the given delta.
func (d *Delver) Move(dx, dy int) {
	d.X += dx
	d.Y += dy
}

// Position returns the current x, y coordinates.
func (d *Delver) Position() (int, int) {
	return d.X, d.Y
}
