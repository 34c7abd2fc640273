package save

import (
	"encoding/binary"
	"fmt"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

// PC storage layout.
const (
	BoxRows    = 5
	BoxColumns = 6
	BoxSlots   = BoxRows * BoxColumns
	BoxSize    = BoxSlots * codec.RecordSize
	BoxCount   = 14

	BoxNameSize = 9

	pcCurrentBoxOffset = 0x0000
	pcRecordsOffset    = 0x0004
	pcBoxNamesOffset   = pcRecordsOffset + BoxCount*BoxSize
	pcWallpapersOffset = pcBoxNamesOffset + BoxCount*BoxNameSize
	pcSize             = pcWallpapersOffset + BoxCount
)

// PC is the Pokémon storage system.
type PC struct {
	CurrentBox uint32
	Boxes      [BoxCount]Box
	BoxNames   [BoxCount][BoxNameSize]byte
	Wallpapers []byte
}

// Box is a 5×6 grid of at-rest records.
type Box struct {
	data [BoxSize]byte
}

func parsePC(buf []byte) (PC, error) {
	if len(buf) < pcSize {
		return PC{}, fmt.Errorf("%w: PC storage is %d bytes, want %d", ErrShortImage, len(buf), pcSize)
	}

	pc := PC{
		CurrentBox: binary.LittleEndian.Uint32(buf[pcCurrentBoxOffset:]),
		Wallpapers: append([]byte(nil), buf[pcWallpapersOffset:]...),
	}
	for i := range pc.Boxes {
		copy(pc.Boxes[i].data[:], buf[pcRecordsOffset+i*BoxSize:])
		copy(pc.BoxNames[i][:], buf[pcBoxNamesOffset+i*BoxNameSize:])
	}
	return pc, nil
}

// Box returns the box with 0-based index i.
func (pc *PC) Box(i int) (*Box, error) {
	if i < 0 || i >= BoxCount {
		return nil, fmt.Errorf("box %d out of range [0, %d)", i, BoxCount)
	}
	return &pc.Boxes[i], nil
}

// Raw returns a copy of the at-rest record bytes at a 0-based position.
func (b *Box) Raw(row, col int) ([]byte, error) {
	if row < 0 || row >= BoxRows || col < 0 || col >= BoxColumns {
		return nil, fmt.Errorf("box position (%d, %d) out of range %dx%d", row, col, BoxRows, BoxColumns)
	}
	start := (row*BoxColumns + col) * codec.RecordSize
	out := make([]byte, codec.RecordSize)
	copy(out, b.data[start:])
	return out, nil
}

// Record decodes the record at a 0-based position.
func (b *Box) Record(row, col int) (*codec.Record, error) {
	raw, err := b.Raw(row, col)
	if err != nil {
		return nil, err
	}
	return codec.Parse(raw, true)
}

// Empty reports whether the slot at a 0-based position holds no record.
func (b *Box) Empty(row, col int) bool {
	raw, err := b.Raw(row, col)
	if err != nil {
		return true
	}
	for _, c := range raw {
		if c != 0 {
			return false
		}
	}
	return true
}
