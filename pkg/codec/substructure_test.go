package codec

import (
	"bytes"
	"sort"
	"testing"
)

func TestOrders_Totality(t *testing.T) {
	seen := map[string]bool{}
	for v := 0; v < 24; v++ {
		o, ok := OrderByValue(uint8(v))
		if !ok {
			t.Fatalf("no order for value %d", v)
		}
		if int(o.Value()) != v {
			t.Errorf("order %s has value %d, want %d", o, o.Value(), v)
		}

		letters := []byte(o.Permutation())
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
		if string(letters) != "AEGM" {
			t.Errorf("order %s is not a permutation of GAEM", o)
		}

		if seen[o.Permutation()] {
			t.Errorf("order %s appears twice", o)
		}
		seen[o.Permutation()] = true

		parsed, err := ParseOrder(o.Permutation())
		if err != nil {
			t.Fatalf("ParseOrder(%q) failed: %v", o.Permutation(), err)
		}
		if parsed != o {
			t.Errorf("ParseOrder(%q) = %v, want %v", o.Permutation(), parsed, o)
		}
	}

	if _, ok := OrderByValue(24); ok {
		t.Error("expected no order for value 24")
	}
	if len(Orders()) != 24 {
		t.Errorf("expected 24 orders, got %d", len(Orders()))
	}
}

func TestOrderOf(t *testing.T) {
	testCases := []struct {
		pv   uint32
		want string
	}{
		{pv: 0, want: "GAEM"},
		{pv: 1, want: "GAME"},
		{pv: 23, want: "MEAG"},
		{pv: 24, want: "GAEM"},
		{pv: 0xFFFFFFFF, want: "EAMG"},
	}

	for _, tc := range testCases {
		if got := OrderOf(tc.pv).Permutation(); got != tc.want {
			t.Errorf("OrderOf(%#x) = %s, want %s", tc.pv, got, tc.want)
		}
	}
}

func TestParseOrder_CaseAndErrors(t *testing.T) {
	o, err := ParseOrder(" game ")
	if err != nil {
		t.Fatalf("ParseOrder failed: %v", err)
	}
	if o.Value() != 1 {
		t.Errorf("expected GAME to have value 1, got %d", o.Value())
	}

	if _, err := ParseOrder("GGGG"); err == nil {
		t.Error("expected error for invalid order")
	}
}

func TestCipher_Involution(t *testing.T) {
	block := make([]byte, SubstructuresSize)
	for i := range block {
		block[i] = byte(i * 7)
	}
	key := uint32(0xDEADBEEF)

	once := Cipher(block, key)
	if bytes.Equal(once, block) {
		t.Fatal("cipher did not change the block")
	}
	if !bytes.Equal(Cipher(block, key), once) {
		t.Error("same key produced different ciphertext")
	}
	if !bytes.Equal(Cipher(once, key), block) {
		t.Error("cipher is not its own inverse")
	}

	// Word-wise XOR with the little-endian key.
	if once[0] != block[0]^0xEF || once[3] != block[3]^0xDE {
		t.Errorf("unexpected key byte order: % x", once[:4])
	}
}

func TestSubstructures_DecodeEncodeInverse(t *testing.T) {
	for v := uint32(0); v < 24; v++ {
		raw := make([]byte, RecordSize)
		raw[PVOffset] = byte(v)
		raw[OTIDOffset] = 0x5A
		raw[OTIDOffset+3] = 0xA5
		for i := SubstructuresOffset; i < RecordSize; i++ {
			raw[i] = byte(i)
		}

		for _, encrypted := range []bool{false, true} {
			subs, err := DecodeSubstructures(raw, encrypted)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if subs.Order.Value() != uint8(v) {
				t.Errorf("order value %d, want %d", subs.Order.Value(), v)
			}
			if got := subs.Encode(encrypted); !bytes.Equal(got, raw[SubstructuresOffset:]) {
				t.Errorf("order %s encrypted=%v: encode is not the inverse of decode", subs.Order, encrypted)
			}
		}
	}
}

func TestSubstructures_ChunksFollowOrder(t *testing.T) {
	raw := make([]byte, RecordSize)
	raw[PVOffset] = 1 // GAME
	for pos, marker := range []byte{'g', 'a', 'm', 'e'} {
		raw[SubstructuresOffset+pos*ChunkSize] = marker
	}

	subs, err := DecodeSubstructures(raw, false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	want := map[Tag]byte{TagGrowth: 'g', TagAttacks: 'a', TagMisc: 'm', TagEVs: 'e'}
	for tag, marker := range want {
		if got := subs.Chunk(tag)[0]; got != marker {
			t.Errorf("chunk %s starts with %q, want %q", tag, got, marker)
		}
	}
}

func TestDecodeSubstructures_ShortBuffer(t *testing.T) {
	if _, err := DecodeSubstructures(make([]byte, RecordSize-1), true); err == nil {
		t.Error("expected error for short buffer")
	}
}
