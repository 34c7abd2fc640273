package codec

import "encoding/binary"

// Growth is the G substructure.
type Growth struct {
	Species    uint16
	HeldItem   uint16
	Experience uint32
	PPBonuses  uint8
	Friendship uint8
}

// PPUps splits the PP bonuses byte into the PP-up count of each move.
func (g Growth) PPUps() [4]uint8 {
	return [4]uint8{
		g.PPBonuses & 0x03,
		g.PPBonuses >> 2 & 0x03,
		g.PPBonuses >> 4 & 0x03,
		g.PPBonuses >> 6 & 0x03,
	}
}

func parseGrowth(b [ChunkSize]byte) Growth {
	return Growth{
		Species:    binary.LittleEndian.Uint16(b[0x0:]),
		HeldItem:   binary.LittleEndian.Uint16(b[0x2:]),
		Experience: binary.LittleEndian.Uint32(b[0x4:]),
		PPBonuses:  b[0x8],
		Friendship: b[0x9],
	}
}

// Attacks is the A substructure.
type Attacks struct {
	Moves [4]uint16
	PP    [4]uint8
}

func parseAttacks(b [ChunkSize]byte) Attacks {
	var a Attacks
	for i := range a.Moves {
		a.Moves[i] = binary.LittleEndian.Uint16(b[i*2:])
		a.PP[i] = b[0x8+i]
	}
	return a
}

// EVsConditions is the E substructure: effort values and contest stats.
type EVsConditions struct {
	HP        uint8
	Attack    uint8
	Defense   uint8
	Speed     uint8
	SpAttack  uint8
	SpDefense uint8

	Coolness  uint8
	Beauty    uint8
	Cuteness  uint8
	Smartness uint8
	Toughness uint8
	Feel      uint8
}

func parseEVsConditions(b [ChunkSize]byte) EVsConditions {
	return EVsConditions{
		HP:        b[0x0],
		Attack:    b[0x1],
		Defense:   b[0x2],
		Speed:     b[0x3],
		SpAttack:  b[0x4],
		SpDefense: b[0x5],
		Coolness:  b[0x6],
		Beauty:    b[0x7],
		Cuteness:  b[0x8],
		Smartness: b[0x9],
		Toughness: b[0xA],
		Feel:      b[0xB],
	}
}

// Misc is the M substructure.
type Misc struct {
	Pokerus          uint8
	MetLocation      uint8
	Origins          uint16
	IVEggAbility     uint32
	RibbonsObedience uint32
}

func parseMisc(b [ChunkSize]byte) Misc {
	return Misc{
		Pokerus:          b[0x0],
		MetLocation:      b[0x1],
		Origins:          binary.LittleEndian.Uint16(b[0x2:]),
		IVEggAbility:     binary.LittleEndian.Uint32(b[0x4:]),
		RibbonsObedience: binary.LittleEndian.Uint32(b[0x8:]),
	}
}

// PokerusDays is the number of days left before Pokérus is cured.
func (m Misc) PokerusDays() uint8 { return m.Pokerus & 0x0F }

// PokerusStrain is the Pokérus strain.
func (m Misc) PokerusStrain() uint8 { return m.Pokerus >> 4 }

func (m Misc) LevelMet() uint8 { return uint8(m.Origins & 0x7F) }

func (m Misc) GameOfOrigin() uint8 { return uint8(m.Origins >> 7 & 0x0F) }

func (m Misc) PokeBall() uint8 { return uint8(m.Origins >> 11 & 0x0F) }

// TrainerFemale reports the original trainer gender bit.
func (m Misc) TrainerFemale() bool { return m.Origins>>15 != 0 }

// Stat indexes the six individual values.
type Stat int

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpeed
	StatSpAttack
	StatSpDefense
)

// IV returns the 5-bit individual value of a stat.
func (m Misc) IV(s Stat) uint8 {
	return uint8(m.IVEggAbility >> (5 * uint(s)) & 0x1F)
}

// IVs returns all six individual values in Stat order.
func (m Misc) IVs() [6]uint8 {
	var ivs [6]uint8
	for s := StatHP; s <= StatSpDefense; s++ {
		ivs[s] = m.IV(s)
	}
	return ivs
}

func (m Misc) IsEgg() bool { return m.IVEggAbility>>30&0x01 != 0 }

// Ability is the ability slot, 0 or 1.
func (m Misc) Ability() uint8 { return uint8(m.IVEggAbility >> 31) }
