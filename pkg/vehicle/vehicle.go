// Package vehicle holds the player's car and the controls that steer it.
package vehicle

// Controls is one sample of the four directional inputs.
type Controls struct {
	Left, Right, Up, Down bool
}
