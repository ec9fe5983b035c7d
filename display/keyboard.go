package display

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/pong"
)

// RawMax is the full-scale reading of the emulated potentiometers.
const RawMax = 1024

// Keys are the two keys that turn one player's dial.
type Keys struct {
	Up, Down ebiten.Key
}

// Keyboard emulates the two paddle potentiometers with the keyboard. Poll
// runs on ebiten's update goroutine; the game goroutine samples the dials
// through ReadPaddle.
type Keyboard struct {
	Keys [2]Keys
	Step int // raw units per update while a key is held

	court pong.Court
	raw   [2]atomic.Int32
	input pong.AnalogInput
}

// NewKeyboard creates dials for W/S (player 1) and the arrow keys (player 2),
// both centered.
func NewKeyboard(court pong.Court) *Keyboard {
	k := &Keyboard{
		Keys: [2]Keys{
			{Up: ebiten.KeyW, Down: ebiten.KeyS},
			{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown},
		},
		Step:  RawMax / 48,
		court: court,
	}
	k.input = pong.AnalogInput{Read: k.read, RawMax: RawMax, Court: court}
	k.raw[pong.Player1].Store(RawMax / 2)
	k.raw[pong.Player2].Store(RawMax / 2)
	return k
}

// Poll turns the dials for every held key.
func (k *Keyboard) Poll() {
	for p, keys := range k.Keys {
		player := pong.Player(p)
		if ebiten.IsKeyPressed(keys.Up) {
			k.Nudge(player, -1)
		}
		if ebiten.IsKeyPressed(keys.Down) {
			k.Nudge(player, +1)
		}
	}
}

// Nudge turns a dial one step so the paddle moves down the screen for a
// positive dir and up for a negative one. Player 1's dial is mounted the
// other way round.
func (k *Keyboard) Nudge(p pong.Player, dir int) {
	delta := int32(dir * k.Step)
	if p == pong.Player1 {
		delta = -delta
	}
	v := k.raw[p].Load() + delta
	v = max(0, min(v, RawMax))
	k.raw[p].Store(v)
}

func (k *Keyboard) read(p pong.Player) int {
	return int(k.raw[p].Load())
}

// ReadPaddle samples the player's dial.
func (k *Keyboard) ReadPaddle(p pong.Player) int {
	return k.input.ReadPaddle(p)
}

// ReadEntropy mixes the dial positions with the clock, the way a floating
// analog pin feeds a seed on the real board.
func (k *Keyboard) ReadEntropy() uint64 {
	dials := uint64(k.raw[pong.Player1].Load())<<32 | uint64(k.raw[pong.Player2].Load())
	return dials ^ uint64(time.Now().UnixNano())
}
