package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockdrop/game"
)

// keymap binds edge-triggered keys to game events. Escape and the window
// close button are handled separately so quitting works while paused.
var keymap = []struct {
	key   ebiten.Key
	event game.Event
}{
	{ebiten.KeyA, game.MoveLeft},
	{ebiten.KeyArrowLeft, game.MoveLeft},
	{ebiten.KeyD, game.MoveRight},
	{ebiten.KeyArrowRight, game.MoveRight},
	{ebiten.KeyQ, game.RotateLeft},
	{ebiten.KeyZ, game.RotateLeft},
	{ebiten.KeyE, game.RotateRight},
	{ebiten.KeyX, game.RotateRight},
	{ebiten.KeyArrowUp, game.RotateRight},
	{ebiten.KeyS, game.SoftDrop},
	{ebiten.KeyArrowDown, game.SoftDrop},
	{ebiten.KeySpace, game.HardDrop},
}

// pollKeys queues an event for every bound key pressed since the last frame.
func pollKeys(in *game.Input) {
	for _, binding := range keymap {
		if inpututil.IsKeyJustPressed(binding.key) {
			in.Push(binding.event)
		}
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}
