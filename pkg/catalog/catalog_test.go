package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinSpecies(t *testing.T) {
	species, err := Builtin("species")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		index      uint16
		wantName   string
		named      bool
		unassigned bool
		glitch     bool
	}{
		{name: "first species", index: 0x0001, wantName: "Bulbasaur", named: true},
		{name: "last johto species", index: 0x00FB, wantName: "Celebi", named: true},
		{name: "reserved gap", index: 0x0100, wantName: "??????????", unassigned: true, glitch: true},
		{name: "first hoenn species", index: 0x0115, wantName: "Treecko", named: true},
		{name: "egg", index: 0x019C, wantName: "Pokémon Egg", named: true},
		{name: "last documented", index: 0x01B7, wantName: "Unown", named: true},
		{name: "past the range", index: 0x01B8, wantName: "??????????", glitch: true},
		{name: "far past the range", index: 0xFFFF, wantName: "??????????", glitch: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := species.Lookup(tc.index)
			assert.Equal(t, tc.index, e.Index)
			assert.Equal(t, tc.wantName, e.Name)
			assert.Equal(t, tc.named, e.Named)
			assert.Equal(t, tc.unassigned, e.Unassigned)
			assert.Equal(t, tc.glitch, e.Glitch)
		})
	}
}

func TestBuiltinCatalogs(t *testing.T) {
	cs, err := LoadCatalogs(Paths{})
	require.NoError(t, err)

	assert.Equal(t, "species", cs.Species.Name())
	assert.True(t, cs.Items.Lookup(0x0179).Glitch)
	assert.False(t, cs.Items.Lookup(0x0178).Glitch)
	assert.True(t, cs.Moves.Lookup(0x0163).Glitch)
	assert.Equal(t, "-", cs.Moves.Lookup(0x0000).Name)
	assert.False(t, cs.Locations.Lookup(0x0010).Named)

	_, err = Builtin("berries")
	assert.Error(t, err)
}

func TestLoadCatalogs_Override(t *testing.T) {
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(itemsPath, []byte(`
name: items
max: 0x0178
placeholder: "?"
entries:
  0x000D: Potion
`), 0644))

	cs, err := LoadCatalogs(Paths{Items: itemsPath})
	require.NoError(t, err)
	assert.Equal(t, "Potion", cs.Items.Lookup(0x000D).Name)
	assert.Equal(t, 1, cs.Items.Len())

	_, err = LoadCatalogs(Paths{Moves: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("entries: ["))
	assert.Error(t, err)
}

func TestDictionary(t *testing.T) {
	d, err := LoadDictionary(filepath.Join("testdata", "words.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7, d.Len())

	w, ok := d.ByIndex(0x0803)
	require.True(t, ok)
	assert.Equal(t, "HELLO", w.Text)
	assert.Equal(t, Category{Name: "GREETINGS", Scroll: 4}, w.Category)
	assert.Equal(t, "HELLO (GREETINGS, 0803)", w.String())

	_, ok = d.ByIndex(0x0804)
	assert.False(t, ok)

	found, ok := d.Find("feelings", "hurried")
	require.True(t, ok)
	assert.Equal(t, uint16(0x1202), found.Index)

	_, ok = d.Find("GREETINGS", "HURRIED")
	assert.False(t, ok)

	words := d.Words()
	require.Len(t, words, 7)
	assert.Equal(t, "THANKS", words[0].Text)
	assert.Equal(t, "HURRIED", words[6].Text)

	words[0].Text = "changed"
	assert.Equal(t, "THANKS", d.Words()[0].Text)
}

func TestDictionary_DuplicateIndex(t *testing.T) {
	_, err := NewDictionary([]Word{
		{Index: 1, Text: "A"},
		{Index: 1, Text: "B"},
	})
	assert.ErrorIs(t, err, ErrDuplicateIndex)
}
