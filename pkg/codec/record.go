package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Record layout offsets.
const (
	PVOffset            = 0x00
	OTIDOffset          = 0x04
	NicknameOffset      = 0x08
	LanguageOffset      = 0x12
	FlagsOffset         = 0x13
	OTNameOffset        = 0x14
	MarkingsOffset      = 0x1B
	ChecksumOffset      = 0x1C
	SubstructuresOffset = 0x20

	NicknameSize = 10
	OTNameSize   = 7

	// RecordSize is the size of a boxed Pokémon record.
	RecordSize = SubstructuresOffset + SubstructuresSize

	badEggFlag = 0x01
)

// ErrShortBuffer is returned when a buffer is shorter than a record.
var ErrShortBuffer = errors.New("buffer too short for record")

// Record is a decoded boxed Pokémon. The exported fields are a decoded view
// of a private copy of the decrypted record bytes.
type Record struct {
	PersonalityValue uint32
	TrainerID        uint32
	Nickname         [NicknameSize]byte
	Language         uint8
	Flags            uint8
	TrainerName      [OTNameSize]byte
	Markings         uint8
	Checksum         uint16

	// BadEgg is set when the stored flag is set or the checksum does not
	// match the substructure block.
	BadEgg bool

	Order Order
	Key   uint32

	Growth  Growth
	Attacks Attacks
	EVs     EVsConditions
	Misc    Misc

	substructures Substructures
	data          [RecordSize]byte
}

// RecordCodec handles serialization and deserialization of records
type RecordCodec struct{}

// NewRecordCodec creates a new record codec instance
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// Decode parses the first RecordSize bytes of data. encrypted tells whether
// the substructure block is at-rest ciphertext or already decrypted.
func (c *RecordCodec) Decode(data []byte, encrypted bool) (*Record, error) {
	return Parse(data, encrypted)
}

// Encode serializes r, enciphering the substructure block when encrypted is
// true.
func (c *RecordCodec) Encode(r *Record, encrypted bool) []byte {
	return r.Encode(encrypted)
}

// Parse decodes a record. See RecordCodec.Decode.
func Parse(data []byte, encrypted bool) (*Record, error) {
	subs, err := DecodeSubstructures(data, encrypted)
	if err != nil {
		return nil, err
	}

	r := &Record{
		PersonalityValue: binary.LittleEndian.Uint32(data[PVOffset:]),
		TrainerID:        binary.LittleEndian.Uint32(data[OTIDOffset:]),
		Language:         data[LanguageOffset],
		Flags:            data[FlagsOffset],
		Markings:         data[MarkingsOffset],
		Checksum:         binary.LittleEndian.Uint16(data[ChecksumOffset:]),
		Order:            subs.Order,
		Key:              subs.Key,
		Growth:           parseGrowth(subs.Growth),
		Attacks:          parseAttacks(subs.Attacks),
		EVs:              parseEVsConditions(subs.EVs),
		Misc:             parseMisc(subs.Misc),
		substructures:    subs,
	}
	copy(r.Nickname[:], data[NicknameOffset:])
	copy(r.TrainerName[:], data[OTNameOffset:])

	copy(r.data[:SubstructuresOffset], data)
	copy(r.data[SubstructuresOffset:], subs.Encode(false))

	r.BadEgg = r.Flags&badEggFlag != 0 || Checksum(r.data[SubstructuresOffset:]) != r.Checksum

	return r, nil
}

// Encode returns the record bytes with the substructure block enciphered
// when encrypted is true. The bad egg flag forced by a checksum mismatch is
// not written back: encoding reproduces the bytes the record was decoded
// from.
func (r *Record) Encode(encrypted bool) []byte {
	out := make([]byte, RecordSize)
	copy(out, r.data[:])
	if encrypted {
		copy(out[SubstructuresOffset:], Cipher(r.data[SubstructuresOffset:], r.Key))
	}
	return out
}

// Bytes returns a copy of the decrypted record bytes.
func (r *Record) Bytes() []byte {
	return r.Encode(false)
}

// Substructures returns the decoded substructure block.
func (r *Record) Substructures() Substructures {
	return r.substructures
}

// ChecksumValid reports whether the stored checksum matches the block.
func (r *Record) ChecksumValid() bool {
	return Checksum(r.data[SubstructuresOffset:]) == r.Checksum
}

// Checksum sums the 16-bit little-endian words of a decrypted substructure
// block, modulo 0x10000.
func Checksum(block []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(block); i += 2 {
		sum += binary.LittleEndian.Uint16(block[i:])
	}
	return sum
}

// Fix returns a copy of the decrypted record bytes in data with the
// checksum recomputed from its substructure block.
func Fix(data []byte) ([]byte, error) {
	if len(data) < RecordSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(data), RecordSize)
	}
	out := make([]byte, RecordSize)
	copy(out, data)
	binary.LittleEndian.PutUint16(out[ChecksumOffset:], Checksum(out[SubstructuresOffset:]))
	return out, nil
}
