package codec_test

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

// ExampleRecordCodec_basic decodes a decrypted record and encodes it for
// storage.
func ExampleRecordCodec_basic() {
	c := codec.NewRecordCodec()

	raw := make([]byte, codec.RecordSize)
	binary.LittleEndian.PutUint32(raw[codec.PVOffset:], 1)
	// Growth is the first chunk in GAME order; species lives at its start.
	binary.LittleEndian.PutUint16(raw[codec.SubstructuresOffset:], 0x0115)
	raw, err := codec.Fix(raw)
	if err != nil {
		log.Fatal(err)
	}

	record, err := c.Decode(raw, false)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Order: %s\n", record.Order)
	fmt.Printf("Species: %#06x\n", record.Growth.Species)
	fmt.Printf("Bad egg: %t\n", record.BadEgg)
	fmt.Printf("Encoded %d bytes\n", len(c.Encode(record, true)))

	// Output:
	// Order: GAME
	// Species: 0x0115
	// Bad egg: false
	// Encoded 80 bytes
}

// ExampleRecordCodec_badEgg shows that a checksum mismatch is reported
// through the record rather than as an error.
func ExampleRecordCodec_badEgg() {
	c := codec.NewRecordCodec()

	raw := make([]byte, codec.RecordSize)
	raw[codec.SubstructuresOffset] = 0x01

	record, err := c.Decode(raw, false)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Bad egg: %t\n", record.BadEgg)

	// Output:
	// Bad egg: true
}

// ExampleRecordCodec_errorHandling demonstrates error handling
func ExampleRecordCodec_errorHandling() {
	c := codec.NewRecordCodec()

	_, err := c.Decode([]byte{0x01, 0x02, 0x03}, true)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
	}

	// Output:
	// Decode error: buffer too short for record: 3 < 80
}

func ExampleParseOrder() {
	o, err := codec.ParseOrder("mega")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(o, o.Value(), o.Position(codec.TagMisc))

	// Output:
	// MEGA 22 0
}
