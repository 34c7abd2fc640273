package render

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/mail"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/save"
)

func testRecord(t *testing.T) *codec.Record {
	t.Helper()
	data := make([]byte, codec.RecordSize)
	binary.LittleEndian.PutUint32(data[codec.PVOffset:], 0)
	binary.LittleEndian.PutUint32(data[codec.OTIDOffset:], 0x0000BEEF)
	// Order GAEM puts Growth first; species 0x0115 is Treecko.
	binary.LittleEndian.PutUint16(data[codec.SubstructuresOffset:], 0x0115)
	data, err := codec.Fix(data)
	require.NoError(t, err)
	r, err := codec.Parse(data, false)
	require.NoError(t, err)
	return r
}

func TestRecord(t *testing.T) {
	cs, err := catalog.LoadCatalogs(catalog.Paths{})
	require.NoError(t, err)

	out := Record(testRecord(t), cs)
	assert.Contains(t, out, "Overall information")
	assert.Contains(t, out, "0000BEEF")
	assert.Contains(t, out, "GAEM")
	assert.Contains(t, out, "Treecko (0115)")
	assert.Contains(t, out, "EVs and conditions")
	assert.Contains(t, out, "Ribbons and obedience")
}

func TestWordSets(t *testing.T) {
	greetings := catalog.Category{Name: "GREETINGS", Scroll: 4}
	dict, err := catalog.NewDictionary([]catalog.Word{
		{Index: 0x0803, Text: "HELLO", Category: greetings},
		{Index: 0x0800, Text: "THANKS", Category: greetings},
	})
	require.NoError(t, err)
	e := mail.NewEngine(dict)

	ws := e.FromIndices(0x0803, 0x0800, 0x1234, 0x0803)
	out := WordSet(ws)
	assert.Contains(t, out, "HELLO (GREETINGS, 0803)")
	assert.Contains(t, out, "THANKS (GREETINGS, 0800)")
	assert.Contains(t, out, "???")
	assert.Contains(t, out, ws.Order.String())

	many := WordSets([]mail.WordSet{ws, ws, ws, ws})
	assert.Contains(t, many, "HELLO")
	assert.Empty(t, WordSets(nil))
}

func TestBox(t *testing.T) {
	species, err := catalog.Builtin("species")
	require.NoError(t, err)

	var b save.Box
	out := Box("BOX 1", &b, species)
	assert.Contains(t, out, "BOX 1")
	assert.Contains(t, out, "-")
}

func TestBoxName(t *testing.T) {
	raw := [save.BoxNameSize]byte{0xBC, 0xC9, 0xD2, 0x00, 0xA2, 0xFF, 0xFF, 0xFF, 0xFF}
	assert.Equal(t, "BC C9 D2 00 A2", BoxName(raw))
}
