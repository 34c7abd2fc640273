package mail

import (
	"encoding/binary"
	"fmt"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

// Identity holds the two identity fields the mail words overwrite.
type Identity struct {
	PV  uint32
	TID uint32
}

// IdentityOf returns the identity of a decoded record.
func IdentityOf(r *codec.Record) Identity {
	return Identity{PV: r.PersonalityValue, TID: r.TrainerID}
}

// IdentityFromBytes reads the identity of a raw record. The identity fields
// are never encrypted, so raw may be at rest or decrypted.
func IdentityFromBytes(raw []byte) (Identity, error) {
	if len(raw) < codec.RecordSize {
		return Identity{}, fmt.Errorf("%w: %d < %d", codec.ErrShortBuffer, len(raw), codec.RecordSize)
	}
	return Identity{
		PV:  binary.LittleEndian.Uint32(raw[codec.PVOffset:]),
		TID: binary.LittleEndian.Uint32(raw[codec.OTIDOffset:]),
	}, nil
}

// Key is the substructure encryption key of the identity.
func (id Identity) Key() uint32 {
	return codec.KeyOf(id.PV, id.TID)
}

// Order is the substructure order of the identity.
func (id Identity) Order() codec.Order {
	return codec.OrderOf(id.PV)
}

func (id Identity) halves() [4]uint16 {
	return [4]uint16{uint16(id.PV), uint16(id.PV >> 16), uint16(id.TID), uint16(id.TID >> 16)}
}

// Candidate is a word chosen for one mail slot. The zero Candidate is the
// absent placeholder for a value the dictionary has no word for; applying
// it leaves that half of the identity unchanged.
type Candidate struct {
	Word    catalog.Word
	Present bool
	Cost    int
}

func (c Candidate) String() string {
	if !c.Present {
		return "???"
	}
	return c.Word.String()
}

// WordSet is the four words of a mail message and the substructure order
// writing them produces. The top row overwrites the personality value, the
// bottom row the trainer id; the left column writes the low halves.
type WordSet struct {
	TopLeft     Candidate
	TopRight    Candidate
	BottomLeft  Candidate
	BottomRight Candidate

	Order codec.Order
	Cost  int
}

// Slots returns the candidates in the order top-left, top-right,
// bottom-left, bottom-right.
func (ws WordSet) Slots() [4]Candidate {
	return [4]Candidate{ws.TopLeft, ws.TopRight, ws.BottomLeft, ws.BottomRight}
}

var slotOffsets = [4]int{
	codec.PVOffset,
	codec.PVOffset + 2,
	codec.OTIDOffset,
	codec.OTIDOffset + 2,
}

// ApplyTo returns the identity after writing the set's words over id.
func (ws WordSet) ApplyTo(id Identity) Identity {
	h := id.halves()
	for i, c := range ws.Slots() {
		if c.Present {
			h[i] = c.Word.Index
		}
	}
	return Identity{
		PV:  uint32(h[1])<<16 | uint32(h[0]),
		TID: uint32(h[3])<<16 | uint32(h[2]),
	}
}

// KeyPreserving reports whether writing the set over id keeps the
// encryption key, which is what keeps the record from turning into a bad
// egg.
func (ws WordSet) KeyPreserving(id Identity) bool {
	return ws.ApplyTo(id).Key() == id.Key()
}

// Apply writes the set's words into a copy of the record's at-rest bytes
// and decodes the result with the key derived from the new identity. Sets
// that are not key preserving are applied all the same.
func Apply(r *codec.Record, ws WordSet) (*codec.Record, error) {
	return patch(r.Encode(true), ws)
}

// ApplyBytes is Apply for a raw record. encrypted tells whether raw is at
// rest or decrypted.
func ApplyBytes(raw []byte, encrypted bool, ws WordSet) (*codec.Record, error) {
	r, err := codec.Parse(raw, encrypted)
	if err != nil {
		return nil, err
	}
	return Apply(r, ws)
}

func patch(atRest []byte, ws WordSet) (*codec.Record, error) {
	for i, c := range ws.Slots() {
		if c.Present {
			binary.LittleEndian.PutUint16(atRest[slotOffsets[i]:], c.Word.Index)
		}
	}
	return codec.Parse(atRest, true)
}
