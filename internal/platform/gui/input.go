package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// keyBindings maps keys to game actions. Only fresh presses count, so holding
// a key never repeats a move.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
}

// readInput collects this frame's actions. The rematch button counts as a
// restart when it is clicked.
func readInput(rematch core.Rect, rematchVisible bool) (core.InputFrame, bool) {
	frame := core.NewInputFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return frame, true
	}

	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}

	if rematchVisible && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if rematch.Contains(ebiten.CursorPosition()) {
			frame.Set(core.ActionRestart)
		}
	}

	return frame, false
}
