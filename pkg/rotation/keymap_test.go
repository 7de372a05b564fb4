package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeymap_Lookup_MapsKeysToActions(t *testing.T) {
	t.Parallel()

	km := NewKeymap([]string{"t", "b", "g", "p"}, []string{"Trans", "Bi"})

	tests := []struct {
		key  string
		want Action
	}{
		{key: "q", want: Do(Quit)},
		{key: "ctrl+c", want: Do(Quit)},
		{key: "k", want: Do(Advance)},
		{key: "f", want: Do(ToggleFlagName)},
		{key: "c", want: Do(ToggleColorNames)},
		{key: "?", want: Do(ToggleHelp)},
		{key: "t", want: Jump(0)},
		{key: "b", want: Jump(1)},
		{key: "g", want: Jump(2)},
		{key: "p", want: Jump(3)},
		{key: "x", want: Do(None)},
		{key: "enter", want: Do(None)},
		{key: "K", want: Do(None)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, km.Lookup(tc.key))
		})
	}
}

func TestKeymap_JumpKeysIndependentOfFlagCount(t *testing.T) {
	t.Parallel()

	km := NewKeymap([]string{"1", "2", "3", "4", "5", "6"}, []string{"only"})

	assert.Len(t, km.Jumps, 6)
	assert.Equal(t, Jump(5), km.Lookup("6"))

	full := km.FullHelp()
	if assert.Len(t, full, 2) {
		assert.Len(t, full[1], 1, "help lists only jumps that reach a flag")
		assert.Equal(t, "only", full[1][0].Help().Desc)
	}
}

func TestKeymap_NoJumpKeys(t *testing.T) {
	t.Parallel()

	km := NewKeymap(nil, []string{"A", "B"})

	assert.Empty(t, km.Jumps)
	assert.Equal(t, Do(None), km.Lookup("t"))
	assert.Len(t, km.ShortHelp(), 5)
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jump(3)", Jump(3).String())
	assert.Equal(t, "advance", Do(Advance).String())
	assert.Equal(t, "ActionKind(42)", ActionKind(42).String())
}
