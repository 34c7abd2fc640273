package codec

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// ChunkSize is the size of one substructure chunk.
	ChunkSize = 12
	// SubstructuresSize is the size of the whole substructure block.
	SubstructuresSize = ChunkSize * 4
)

// Tag identifies one of the four substructures.
type Tag byte

const (
	TagGrowth  Tag = 'G'
	TagAttacks Tag = 'A'
	TagEVs     Tag = 'E'
	TagMisc    Tag = 'M'
)

// Tags lists the substructure tags in canonical order.
var Tags = [4]Tag{TagGrowth, TagAttacks, TagEVs, TagMisc}

func (t Tag) String() string {
	return string(t)
}

// Order is one of the 24 permutations of the substructure tags. Its value
// is the PV mod 24 that selects it.
type Order struct {
	permutation string
	value       uint8
}

var orders = [24]Order{
	{"GAEM", 0}, {"GAME", 1}, {"GEAM", 2}, {"GEMA", 3}, {"GMAE", 4}, {"GMEA", 5},
	{"AGEM", 6}, {"AGME", 7}, {"AEGM", 8}, {"AEMG", 9}, {"AMGE", 10}, {"AMEG", 11},
	{"EGAM", 12}, {"EGMA", 13}, {"EAGM", 14}, {"EAMG", 15}, {"EMGA", 16}, {"EMAG", 17},
	{"MGAE", 18}, {"MGEA", 19}, {"MAGE", 20}, {"MAEG", 21}, {"MEGA", 22}, {"MEAG", 23},
}

// OrderOf returns the substructure order selected by a personality value.
func OrderOf(pv uint32) Order {
	return orders[pv%24]
}

// OrderByValue returns the order whose mod 24 value is v.
func OrderByValue(v uint8) (Order, bool) {
	if int(v) >= len(orders) {
		return Order{}, false
	}
	return orders[v], true
}

// ParseOrder looks an order up by its permutation string, ignoring case.
func ParseOrder(s string) (Order, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, o := range orders {
		if o.permutation == upper {
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("unknown substructure order %q", s)
}

// Orders returns all 24 orders by ascending value.
func Orders() []Order {
	out := make([]Order, len(orders))
	copy(out, orders[:])
	return out
}

// Permutation returns the order as a string such as "GAEM".
func (o Order) Permutation() string {
	return o.permutation
}

// Value returns the order's mod 24 value.
func (o Order) Value() uint8 {
	return o.value
}

// IsZero reports whether o is the zero Order rather than one of the 24.
func (o Order) IsZero() bool {
	return o.permutation == ""
}

// Position returns the chunk index, 0 to 3, at which the substructure
// tagged t is stored.
func (o Order) Position(t Tag) int {
	return strings.IndexByte(o.permutation, byte(t))
}

func (o Order) String() string {
	return o.permutation
}

// KeyOf returns the substructure encryption key.
func KeyOf(pv, otid uint32) uint32 {
	return pv ^ otid
}

// Cipher returns a copy of block with every 32-bit little-endian word XORed
// with key. Trailing bytes that do not fill a word are XORed with the
// matching key bytes.
func Cipher(block []byte, key uint32) []byte {
	var keyBytes [4]byte
	binary.LittleEndian.PutUint32(keyBytes[:], key)

	out := make([]byte, len(block))
	for i, b := range block {
		out[i] = b ^ keyBytes[i%4]
	}
	return out
}

// Substructures is the decoded substructure block of a record: the order
// and key derived from the identity fields and the four plaintext chunks,
// addressed by tag regardless of where they are stored.
type Substructures struct {
	Order   Order
	Key     uint32
	Growth  [ChunkSize]byte
	Attacks [ChunkSize]byte
	EVs     [ChunkSize]byte
	Misc    [ChunkSize]byte
}

// DecodeSubstructures derives the order and key from the identity fields of
// an 80-byte record and splits its substructure block into chunks. When
// decrypt is true the block is treated as at-rest ciphertext.
func DecodeSubstructures(record []byte, decrypt bool) (Substructures, error) {
	if len(record) < RecordSize {
		return Substructures{}, fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(record), RecordSize)
	}

	pv := binary.LittleEndian.Uint32(record[PVOffset:])
	otid := binary.LittleEndian.Uint32(record[OTIDOffset:])

	s := Substructures{
		Order: OrderOf(pv),
		Key:   KeyOf(pv, otid),
	}

	block := record[SubstructuresOffset : SubstructuresOffset+SubstructuresSize]
	if decrypt {
		block = Cipher(block, s.Key)
	}

	for _, t := range Tags {
		start := s.Order.Position(t) * ChunkSize
		copy(s.chunk(t)[:], block[start:start+ChunkSize])
	}

	return s, nil
}

// Encode lays the chunks out in the order's sequence and, when encrypt is
// true, enciphers the result with the key.
func (s Substructures) Encode(encrypt bool) []byte {
	block := make([]byte, SubstructuresSize)
	for _, t := range Tags {
		start := s.Order.Position(t) * ChunkSize
		chunk := s.Chunk(t)
		copy(block[start:], chunk[:])
	}

	if encrypt {
		return Cipher(block, s.Key)
	}
	return block
}

// Chunk returns the plaintext chunk tagged t.
func (s Substructures) Chunk(t Tag) [ChunkSize]byte {
	return *s.chunk(t)
}

func (s *Substructures) chunk(t Tag) *[ChunkSize]byte {
	switch t {
	case TagGrowth:
		return &s.Growth
	case TagAttacks:
		return &s.Attacks
	case TagEVs:
		return &s.EVs
	case TagMisc:
		return &s.Misc
	}
	panic(fmt.Sprintf("codec: unknown substructure tag %q", byte(t)))
}
