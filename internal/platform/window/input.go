package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-bird/internal/core"
)

// keyActions maps keyboard keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:   core.ActionJump,
	ebiten.KeyArrowUp: core.ActionJump,
	ebiten.KeyW:       core.ActionJump,
	ebiten.KeyK:       core.ActionJump,
	ebiten.KeyEnter:   core.ActionRestart,
	ebiten.KeyR:       core.ActionRestart,
	ebiten.KeyP:       core.ActionPause,
	ebiten.KeyEscape:  core.ActionPause,
	ebiten.KeyQ:       core.ActionQuit,
}

// actionsFor translates the keys pressed this frame, dropping unbound ones.
func actionsFor(keys []ebiten.Key) []core.Action {
	var actions []core.Action
	for _, k := range keys {
		if a, ok := keyActions[k]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}
