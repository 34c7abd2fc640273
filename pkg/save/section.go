package save

import (
	"encoding/binary"
	"fmt"
)

// Section footer offsets.
const (
	SectionSize = 4 * 1024

	sectionIDOffset        = 0x0FF4
	sectionChecksumOffset  = 0x0FF6
	sectionSignatureOffset = 0x0FF8
	sectionCounterOffset   = 0x0FFC
)

// Role is the fixed role of a save block section.
type Role uint16

const (
	RoleTrainerInfo Role = iota
	RoleTeamItems
	RoleGameState
	RoleMisc
	RoleRival
	RolePCA
	RolePCB
	RolePCC
	RolePCD
	RolePCE
	RolePCF
	RolePCG
	RolePCH
	RolePCI
)

// SectionCount is the number of sections in a save block.
const SectionCount = int(RolePCI) + 1

var roles = [SectionCount]struct {
	name string
	size int
}{
	RoleTrainerInfo: {"trainer info", 3884},
	RoleTeamItems:   {"team / items", 3968},
	RoleGameState:   {"game state", 3968},
	RoleMisc:        {"misc", 3968},
	RoleRival:       {"rival", 3848},
	RolePCA:         {"PC buffer A", 3968},
	RolePCB:         {"PC buffer B", 3968},
	RolePCC:         {"PC buffer C", 3968},
	RolePCD:         {"PC buffer D", 3968},
	RolePCE:         {"PC buffer E", 3968},
	RolePCF:         {"PC buffer F", 3968},
	RolePCG:         {"PC buffer G", 3968},
	RolePCH:         {"PC buffer H", 3968},
	RolePCI:         {"PC buffer I", 2000},
}

func (r Role) valid() bool {
	return int(r) < SectionCount
}

// PayloadSize is the number of meaningful bytes a section of this role
// holds.
func (r Role) PayloadSize() int {
	return roles[r].size
}

func (r Role) String() string {
	if !r.valid() {
		return fmt.Sprintf("Role(%d)", uint16(r))
	}
	return roles[r].name
}

// Section is one 4 KiB section of a save block.
type Section struct {
	Role      Role
	Checksum  uint16
	Signature uint32
	Counter   uint32
	Data      []byte
}

func parseSection(buf []byte) (Section, error) {
	role := Role(binary.LittleEndian.Uint16(buf[sectionIDOffset:]))
	if !role.valid() {
		return Section{}, fmt.Errorf("%w: id %d", ErrUnknownSection, uint16(role))
	}

	data := make([]byte, role.PayloadSize())
	copy(data, buf)

	return Section{
		Role:      role,
		Checksum:  binary.LittleEndian.Uint16(buf[sectionChecksumOffset:]),
		Signature: binary.LittleEndian.Uint32(buf[sectionSignatureOffset:]),
		Counter:   binary.LittleEndian.Uint32(buf[sectionCounterOffset:]),
		Data:      data,
	}, nil
}

// ComputedChecksum is the checksum the game computes over the payload: the
// 32-bit little-endian word sum folded to 16 bits.
func (s Section) ComputedChecksum() uint16 {
	return SectionChecksum(s.Data)
}

// ChecksumValid reports whether the stored checksum matches the payload.
func (s Section) ChecksumValid() bool {
	return s.ComputedChecksum() == s.Checksum
}

// SectionChecksum computes the section checksum of a payload.
func SectionChecksum(data []byte) uint16 {
	var sum uint32
	for i := 0; i+3 < len(data); i += 4 {
		sum += binary.LittleEndian.Uint32(data[i:])
	}
	return uint16(sum>>16) + uint16(sum)
}
