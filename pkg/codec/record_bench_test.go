//go:build bench
// +build bench

package codec

import "testing"

func BenchmarkRecordCodec_Decode(b *testing.B) {
	c := NewRecordCodec()
	plain := decryptedRecord(b, 0x7F3A1C07, 0x5D2E3039)
	r, err := c.Decode(plain, false)
	if err != nil {
		b.Fatal(err)
	}
	atRest := c.Encode(r, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(atRest, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecordCodec_Encode(b *testing.B) {
	c := NewRecordCodec()
	r, err := c.Decode(decryptedRecord(b, 0x7F3A1C07, 0x5D2E3039), false)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Encode(r, true)
	}
}
