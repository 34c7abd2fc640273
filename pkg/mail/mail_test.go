package mail

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

var (
	greetings = catalog.Category{Name: "GREETINGS", Scroll: 4}
	feelings  = catalog.Category{Name: "FEELINGS", Scroll: 9}
)

// testEngine builds an engine over a small dictionary whose indices pair up
// under XOR 1, so the low half of PV=1/TID=0 has replacements.
func testEngine(t testing.TB) *Engine {
	t.Helper()
	dict, err := catalog.NewDictionary([]catalog.Word{
		{Index: 0x0000, Text: "THANKS", Category: greetings},
		{Index: 0x0001, Text: "YES", Category: greetings},
		{Index: 0x0002, Text: "HERE GOES", Category: greetings},
		{Index: 0x0003, Text: "HELLO", Category: greetings},
		{Index: 0x0010, Text: "MEET", Category: feelings},
		{Index: 0x0011, Text: "PLAY", Category: feelings},
		{Index: 0x0012, Text: "HURRIED", Category: feelings},
		{Index: 0x0013, Text: "GOES", Category: feelings},
	})
	require.NoError(t, err)
	return NewEngine(dict)
}

// testRecord returns a decoded record with the given identity. Bit 1 of the
// first byte of every block word is clear, so flipping it through a key
// change always breaks the checksum.
func testRecord(t testing.TB, pv, tid uint32) *codec.Record {
	t.Helper()
	data := make([]byte, codec.RecordSize)
	binary.LittleEndian.PutUint32(data[codec.PVOffset:], pv)
	binary.LittleEndian.PutUint32(data[codec.OTIDOffset:], tid)
	copy(data[codec.NicknameOffset:], []byte{0xCA, 0xC5, 0xCC, 0xCC, 0xBF, 0xFF})
	for i := codec.SubstructuresOffset; i < codec.RecordSize; i++ {
		data[i] = byte(i*7) & 0xFD
	}
	data, err := codec.Fix(data)
	require.NoError(t, err)

	r, err := codec.Parse(data, false)
	require.NoError(t, err)
	require.False(t, r.BadEgg)
	return r
}

func indices(ws WordSet) [4]uint16 {
	var out [4]uint16
	for i, c := range ws.Slots() {
		out[i] = c.Word.Index
	}
	return out
}
