package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthurdick/familytree-text/record"
)

func TestModifier_BaseKey(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want string
	}{
		{"src suffix", "BORN_SRC", "BORN"},
		{"note suffix", "NAME_NOTE", "NAME"},
		{"no suffix", "BORN", "BORN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := record.NewModifier(tc.key, "x", []string{"x"}, testSpan(1))
			assert.Equal(t, tc.want, m.BaseKey())
		})
	}
}

func TestModifier_IsSourceAndNote(t *testing.T) {
	src := record.NewModifier("BORN_SRC", "^census-1", []string{"^census-1"}, testSpan(1))
	assert.True(t, src.IsSourceModifier())
	assert.False(t, src.IsNoteModifier())

	note := record.NewModifier("BORN_NOTE", "uncertain", []string{"uncertain"}, testSpan(1))
	assert.True(t, note.IsNoteModifier())
	assert.False(t, note.IsSourceModifier())
}

func TestIsModifierKey(t *testing.T) {
	assert.True(t, record.IsModifierKey("BORN_SRC"))
	assert.True(t, record.IsModifierKey("NAME_NOTE"))
	assert.False(t, record.IsModifierKey("BORN"))
	assert.False(t, record.IsModifierKey("_SRC"))
}

func TestModifier_Segment(t *testing.T) {
	m := record.NewModifier("NAME_SRC", "^a|^b", []string{"^a", "^b"}, testSpan(2))
	seg, ok := m.Segment(1)
	assert.True(t, ok)
	assert.Equal(t, "^b", seg)

	_, ok = m.Segment(9)
	assert.False(t, ok)
}

func TestModifier_NilSafety(t *testing.T) {
	var m *record.Modifier
	assert.Equal(t, "", m.Key())
	assert.Equal(t, "", m.BaseKey())
	assert.Equal(t, "", m.Raw())
	assert.Nil(t, m.Segments())
}
