// Package codec decodes and encodes the 80-byte Generation III boxed Pokémon
// record.
//
// # Record Format
//
// Records are stored little-endian with the following layout:
//
//	[PV(4)][OTID(4)][Nickname(10)][Language(1)][Flags(1)][OTName(7)]
//	[Markings(1)][Checksum(2)][Padding(2)][Substructures(48)]
//
// Fields:
//   - PV: personality value; PV mod 24 selects the substructure order
//   - OTID: original trainer id (public id in the low half, secret id in the high half)
//   - Flags: bit 0 is the bad egg flag
//   - Checksum: 16-bit sum of the decrypted substructure block
//   - Substructures: four 12-byte chunks (Growth, Attacks, EVs and
//     conditions, Misc) shuffled by the substructure order
//
// # Substructure Encryption
//
// At rest the substructure block is XORed with the encryption key
// PV XOR OTID, applied to every 32-bit little-endian word of the block.
// The cipher is its own inverse, so the same call encrypts and decrypts:
//
//	block := codec.Cipher(raw[codec.SubstructuresOffset:], codec.KeyOf(pv, otid))
//
// # Checksum
//
// The checksum is the sum of the 24 little-endian 16-bit words of the
// decrypted block, truncated to 16 bits. A record whose stored checksum
// does not match is a bad egg. This is not a decoding error: the record
// still decodes fully and Record.BadEgg reports true.
//
// # Usage
//
//	c := codec.NewRecordCodec()
//
//	// Decode an at-rest record, e.g. one read from a save file
//	record, err := c.Decode(raw, true)
//	if err != nil {
//	    return err // buffer too short
//	}
//
//	fmt.Println(record.Order, record.Growth.Species, record.BadEgg)
//
//	// Re-encode it exactly as it was read
//	again := c.Encode(record, true)
//
// # Immutability
//
// A decoded Record keeps a private copy of its decrypted bytes. Decode never
// retains the caller's buffer and Encode always returns a fresh slice, so
// records are safe to share between goroutines.
package codec
