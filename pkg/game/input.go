package game

import "github.com/hajimehoshi/ebiten/v2"

// Keyboard reads the arrow keys and WASD. It satisfies racer.Input.
type Keyboard struct {
	pressed func(ebiten.Key) bool
}

// NewKeyboard creates a keyboard input backed by ebiten.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: ebiten.IsKeyPressed}
}

func (k *Keyboard) any(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) Left() bool  { return k.any(ebiten.KeyArrowLeft, ebiten.KeyA) }
func (k *Keyboard) Right() bool { return k.any(ebiten.KeyArrowRight, ebiten.KeyD) }
func (k *Keyboard) Up() bool    { return k.any(ebiten.KeyArrowUp, ebiten.KeyW) }
func (k *Keyboard) Down() bool  { return k.any(ebiten.KeyArrowDown, ebiten.KeyS) }
