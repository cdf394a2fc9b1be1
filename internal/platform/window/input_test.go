package window

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-bird/internal/core"
)

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []core.Action
	}{
		{"nothing pressed", nil, nil},
		{"space flaps", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionJump}},
		{"enter restarts", []ebiten.Key{ebiten.KeyEnter}, []core.Action{core.ActionRestart}},
		{"escape pauses", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionPause}},
		{"q quits", []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
		{"unbound keys dropped", []ebiten.Key{ebiten.KeyZ, ebiten.KeyUp, ebiten.KeyF1}, []core.Action{core.ActionJump}},
		{"order kept", []ebiten.Key{ebiten.KeyR, ebiten.KeyW}, []core.Action{core.ActionRestart, core.ActionJump}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := actionsFor(tc.keys); !slices.Equal(got, tc.want) {
				t.Errorf("actionsFor(%v) = %v, expected %v", tc.keys, got, tc.want)
			}
		})
	}
}
