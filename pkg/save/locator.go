// Package save locates the live save block of a Generation III save image
// and rebuilds the PC storage from its sections.
package save

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Save image layout.
const (
	BlockAOffset = 0x000000
	BlockBOffset = 0x00E000
	BlockSize    = BlockBOffset - BlockAOffset

	// MinImageSize is the smallest image holding both save blocks.
	MinImageSize = BlockBOffset + BlockSize

	pcSectionCount = int(RolePCI-RolePCA) + 1
)

var (
	ErrShortImage     = errors.New("save image too short")
	ErrNoPCSection    = errors.New("no PC start section in save block")
	ErrUnknownSection = errors.New("unknown save section")
)

// Slot names one of the two redundant save blocks.
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

// GameSaveBlock is the authoritative save block of an image.
type GameSaveBlock struct {
	Slot     Slot
	Counter  uint32
	Sections []Section
	PC       PC
}

// Locate picks the save block with the higher save counter (slot B on a
// tie) and rebuilds its PC storage. Section checksums are exposed but not
// enforced.
func Locate(image []byte) (*GameSaveBlock, error) {
	if len(image) < MinImageSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortImage, len(image), MinImageSize)
	}

	slot, start := SlotB, BlockBOffset
	counterA, counterB := blockCounter(image, BlockAOffset), blockCounter(image, BlockBOffset)
	counter := counterB
	if counterA > counterB {
		slot, start, counter = SlotA, BlockAOffset, counterA
	}

	block := image[start : start+BlockSize]
	sections := make([]Section, SectionCount)
	pcStart := -1
	for i := range sections {
		s, err := parseSection(block[i*SectionSize : (i+1)*SectionSize])
		if err != nil {
			return nil, fmt.Errorf("slot %s section %d: %w", slot, i, err)
		}
		sections[i] = s
		if s.Role == RolePCA && pcStart < 0 {
			pcStart = i
		}
	}
	if pcStart < 0 {
		return nil, fmt.Errorf("slot %s: %w", slot, ErrNoPCSection)
	}

	var pcBytes []byte
	for i := 0; i < pcSectionCount; i++ {
		pcBytes = append(pcBytes, sections[(pcStart+i)%SectionCount].Data...)
	}

	pc, err := parsePC(pcBytes)
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", slot, err)
	}

	return &GameSaveBlock{
		Slot:     slot,
		Counter:  counter,
		Sections: sections,
		PC:       pc,
	}, nil
}

// blockCounter reads the save counter from the last section of a block.
func blockCounter(image []byte, blockStart int) uint32 {
	at := blockStart + (SectionCount-1)*SectionSize + sectionCounterOffset
	return binary.LittleEndian.Uint32(image[at:])
}

// Section returns the section holding role.
func (b *GameSaveBlock) Section(role Role) (Section, bool) {
	for _, s := range b.Sections {
		if s.Role == role {
			return s, true
		}
	}
	return Section{}, false
}
