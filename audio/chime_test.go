package audio

import (
	"testing"

	"github.com/lixenwraith/tannenbaum/scene"
)

func TestModeNotes_CoverAllModes(t *testing.T) {
	for _, m := range []scene.Mode{scene.ModeTree, scene.ModeScatter, scene.ModeFocus} {
		if len(modeNotes[m]) == 0 {
			t.Errorf("mode %v has no chime motif", m)
		}
	}
}

func TestChime_SilentWhenNotReady(t *testing.T) {
	// A zero Chime stands in for failed speaker init; every method
	// must be inert
	c := &Chime{}
	c.ModeChime(scene.ModeTree)
	c.ModeChime(scene.Mode(99))
	c.Close()
	c.Close()
}
