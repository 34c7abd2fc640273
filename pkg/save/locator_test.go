package save

import (
	"encoding/binary"
	"testing"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignature = 0x08012025

// writeBlock lays out a save block whose physical section i holds role
// (i+rotation) mod 14, filling PC sections from pc.
func writeBlock(image []byte, start, rotation int, counter uint32, pc []byte) {
	for i := 0; i < SectionCount; i++ {
		role := Role((i + rotation) % SectionCount)
		section := image[start+i*SectionSize : start+(i+1)*SectionSize]

		if role >= RolePCA {
			offset := int(role-RolePCA) * RolePCA.PayloadSize()
			copy(section[:role.PayloadSize()], pc[offset:])
		}

		binary.LittleEndian.PutUint16(section[sectionIDOffset:], uint16(role))
		binary.LittleEndian.PutUint16(section[sectionChecksumOffset:], SectionChecksum(section[:role.PayloadSize()]))
		binary.LittleEndian.PutUint32(section[sectionSignatureOffset:], testSignature)
		binary.LittleEndian.PutUint32(section[sectionCounterOffset:], counter)
	}
}

func newPC(currentBox uint32, marker byte) []byte {
	pc := make([]byte, pcSize)
	binary.LittleEndian.PutUint32(pc[pcCurrentBoxOffset:], currentBox)
	for i := pcRecordsOffset; i < pcBoxNamesOffset; i += codec.RecordSize {
		pc[i+codec.NicknameOffset] = marker
	}
	for i := 0; i < BoxCount; i++ {
		copy(pc[pcBoxNamesOffset+i*BoxNameSize:], []byte{0xBC, 0xC9, 0xD2, 0xA1 + byte(i), 0xFF})
		pc[pcWallpapersOffset+i] = byte(i % 16)
	}
	return pc
}

func newImage() []byte {
	return make([]byte, 128*1024)
}

func TestLocate_SlotDeterminism(t *testing.T) {
	testCases := []struct {
		name     string
		counterA uint32
		counterB uint32
		wantSlot Slot
	}{
		{name: "A newer", counterA: 7, counterB: 5, wantSlot: SlotA},
		{name: "B newer", counterA: 5, counterB: 7, wantSlot: SlotB},
		{name: "tie favors B", counterA: 6, counterB: 6, wantSlot: SlotB},
		{name: "zero counters", counterA: 0, counterB: 0, wantSlot: SlotB},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			image := newImage()
			writeBlock(image, BlockAOffset, 0, tc.counterA, newPC(1, 'a'))
			writeBlock(image, BlockBOffset, 3, tc.counterB, newPC(2, 'b'))

			block, err := Locate(image)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSlot, block.Slot)

			wantBox, wantMarker := uint32(2), byte('b')
			wantCounter := tc.counterB
			if tc.wantSlot == SlotA {
				wantBox, wantMarker, wantCounter = 1, 'a', tc.counterA
			}
			assert.Equal(t, wantCounter, block.Counter)
			assert.Equal(t, wantBox, block.PC.CurrentBox)

			raw, err := block.PC.Boxes[0].Raw(0, 0)
			require.NoError(t, err)
			assert.Equal(t, wantMarker, raw[codec.NicknameOffset])
		})
	}
}

func TestLocate_CircularPCWalk(t *testing.T) {
	for rotation := 0; rotation < SectionCount; rotation++ {
		image := newImage()
		pc := newPC(9, 'x')

		// Give every record slot a distinct first byte so misplaced
		// sections show up as wrong values.
		for box := 0; box < BoxCount; box++ {
			for slot := 0; slot < BoxSlots; slot++ {
				at := pcRecordsOffset + box*BoxSize + slot*codec.RecordSize
				pc[at] = byte(box)
				pc[at+1] = byte(slot)
			}
		}

		writeBlock(image, BlockBOffset, rotation, 1, pc)

		block, err := Locate(image)
		require.NoError(t, err, "rotation %d", rotation)
		assert.Equal(t, uint32(9), block.PC.CurrentBox)

		for box := 0; box < BoxCount; box++ {
			for row := 0; row < BoxRows; row++ {
				for col := 0; col < BoxColumns; col++ {
					raw, err := block.PC.Boxes[box].Raw(row, col)
					require.NoError(t, err)
					if raw[0] != byte(box) || raw[1] != byte(row*BoxColumns+col) {
						t.Fatalf("rotation %d: box %d (%d,%d) holds %d/%d", rotation, box, row, col, raw[0], raw[1])
					}
				}
			}
			assert.Equal(t, byte(0xA1+box), block.PC.BoxNames[box][3])
		}
		assert.Len(t, block.PC.Wallpapers, BoxCount)
		assert.Equal(t, byte(13), block.PC.Wallpapers[13])
	}
}

func TestLocate_Sections(t *testing.T) {
	image := newImage()
	writeBlock(image, BlockBOffset, 4, 12, newPC(0, 'q'))

	block, err := Locate(image)
	require.NoError(t, err)
	require.Len(t, block.Sections, SectionCount)

	assert.Equal(t, Role(4), block.Sections[0].Role)
	for _, s := range block.Sections {
		assert.Equal(t, uint32(12), s.Counter)
		assert.Equal(t, uint32(testSignature), s.Signature)
		assert.Len(t, s.Data, s.Role.PayloadSize())
		assert.True(t, s.ChecksumValid(), "section %s", s.Role)
	}

	s, ok := block.Section(RolePCI)
	require.True(t, ok)
	assert.Equal(t, 2000, len(s.Data))
	assert.Equal(t, "PC buffer I", s.Role.String())
}

func TestLocate_ChecksumsNotEnforced(t *testing.T) {
	image := newImage()
	writeBlock(image, BlockBOffset, 0, 1, newPC(0, 'q'))
	// Corrupt the payload of the first PC section without fixing its checksum.
	image[BlockBOffset+int(RolePCA)*SectionSize+100] ^= 0xFF

	block, err := Locate(image)
	require.NoError(t, err)

	s, ok := block.Section(RolePCA)
	require.True(t, ok)
	assert.False(t, s.ChecksumValid())
}

func TestLocate_Errors(t *testing.T) {
	t.Run("short image", func(t *testing.T) {
		_, err := Locate(make([]byte, MinImageSize-1))
		assert.ErrorIs(t, err, ErrShortImage)
	})

	t.Run("no PC start section", func(t *testing.T) {
		image := newImage()
		writeBlock(image, BlockBOffset, 0, 1, newPC(0, 'q'))
		at := BlockBOffset + int(RolePCA)*SectionSize + sectionIDOffset
		binary.LittleEndian.PutUint16(image[at:], uint16(RoleTrainerInfo))

		_, err := Locate(image)
		assert.ErrorIs(t, err, ErrNoPCSection)
	})

	t.Run("unknown section id", func(t *testing.T) {
		image := newImage()
		writeBlock(image, BlockBOffset, 0, 1, newPC(0, 'q'))
		binary.LittleEndian.PutUint16(image[BlockBOffset+sectionIDOffset:], 99)

		_, err := Locate(image)
		assert.ErrorIs(t, err, ErrUnknownSection)
	})
}

func TestBox_RecordDecodes(t *testing.T) {
	plain := make([]byte, codec.RecordSize)
	binary.LittleEndian.PutUint32(plain[codec.PVOffset:], 0x00000001)
	binary.LittleEndian.PutUint32(plain[codec.OTIDOffset:], 0xCAFEBABE)
	binary.LittleEndian.PutUint16(plain[codec.SubstructuresOffset:], 0x0019)
	plain, err := codec.Fix(plain)
	require.NoError(t, err)

	r, err := codec.Parse(plain, false)
	require.NoError(t, err)
	atRest := r.Encode(true)

	pc := newPC(0, 0)
	box, row, col := 3, 2, 4
	copy(pc[pcRecordsOffset+box*BoxSize+(row*BoxColumns+col)*codec.RecordSize:], atRest)

	image := newImage()
	writeBlock(image, BlockAOffset, 7, 2, pc)

	block, err := Locate(image)
	require.NoError(t, err)

	b, err := block.PC.Box(box)
	require.NoError(t, err)

	raw, err := b.Raw(row, col)
	require.NoError(t, err)
	assert.Equal(t, atRest, raw)

	got, err := b.Record(row, col)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0019), got.Growth.Species)
	assert.False(t, got.BadEgg)
	assert.False(t, b.Empty(row, col))

	_, err = b.Raw(BoxRows, 0)
	assert.Error(t, err)
	_, err = block.PC.Box(BoxCount)
	assert.Error(t, err)
}
