package api

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/bank"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/mail"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// IRecordBank defines the record bank operations the API exposes
type IRecordBank interface {
	Put(r *codec.Record, label string) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) (bank.Entry, error)
	List() ([]bank.Entry, error)
	Delete(id ksuid.KSUID) error
}

// EntryView is a catalog lookup result
type EntryView struct {
	Index  uint16 `json:"index"`
	Name   string `json:"name"`
	Glitch bool   `json:"glitch"`
}

func entryView(e catalog.Entry) EntryView {
	return EntryView{Index: e.Index, Name: e.Name, Glitch: e.Glitch}
}

// RecordView is the JSON field dump of a record
type RecordView struct {
	PersonalityValue uint32 `json:"personality_value"`
	TrainerID        uint32 `json:"trainer_id"`
	Order            string `json:"order"`
	Key              uint32 `json:"key"`
	Nickname         string `json:"nickname"`
	Language         uint8  `json:"language"`
	TrainerName      string `json:"trainer_name"`
	Markings         uint8  `json:"markings"`
	Checksum         uint16 `json:"checksum"`
	ChecksumValid    bool   `json:"checksum_valid"`
	BadEgg           bool   `json:"bad_egg"`

	Species    EntryView `json:"species"`
	HeldItem   EntryView `json:"held_item"`
	Experience uint32    `json:"experience"`
	PPUps      [4]uint8  `json:"pp_ups"`
	Friendship uint8     `json:"friendship"`

	Moves [4]EntryView `json:"moves"`
	PP    [4]uint8     `json:"pp"`

	EVs     [6]uint8 `json:"evs"`
	Contest [6]uint8 `json:"contest"`

	Pokerus       uint8     `json:"pokerus"`
	MetLocation   EntryView `json:"met_location"`
	LevelMet      uint8     `json:"level_met"`
	GameOfOrigin  uint8     `json:"game_of_origin"`
	PokeBall      uint8     `json:"poke_ball"`
	TrainerFemale bool      `json:"trainer_female"`
	IVs           [6]uint8  `json:"ivs"`
	IsEgg         bool      `json:"is_egg"`
	Ability       uint8     `json:"ability"`
	Ribbons       uint32    `json:"ribbons_obedience"`

	// Raw is the at-rest encoding, base64 encoded.
	Raw []byte `json:"raw"`
}

func newRecordView(r *codec.Record, cs *catalog.Catalogs) RecordView {
	ev := r.EVs
	v := RecordView{
		PersonalityValue: r.PersonalityValue,
		TrainerID:        r.TrainerID,
		Order:            r.Order.String(),
		Key:              r.Key,
		Nickname:         hex.EncodeToString(r.Nickname[:]),
		Language:         r.Language,
		TrainerName:      hex.EncodeToString(r.TrainerName[:]),
		Markings:         r.Markings,
		Checksum:         r.Checksum,
		ChecksumValid:    r.ChecksumValid(),
		BadEgg:           r.BadEgg,

		Species:    entryView(cs.Species.Lookup(r.Growth.Species)),
		HeldItem:   entryView(cs.Items.Lookup(r.Growth.HeldItem)),
		Experience: r.Growth.Experience,
		PPUps:      r.Growth.PPUps(),
		Friendship: r.Growth.Friendship,

		PP: r.Attacks.PP,

		EVs:     [6]uint8{ev.HP, ev.Attack, ev.Defense, ev.Speed, ev.SpAttack, ev.SpDefense},
		Contest: [6]uint8{ev.Coolness, ev.Beauty, ev.Cuteness, ev.Smartness, ev.Toughness, ev.Feel},

		Pokerus:       r.Misc.Pokerus,
		MetLocation:   entryView(cs.Locations.Lookup(uint16(r.Misc.MetLocation))),
		LevelMet:      r.Misc.LevelMet(),
		GameOfOrigin:  r.Misc.GameOfOrigin(),
		PokeBall:      r.Misc.PokeBall(),
		TrainerFemale: r.Misc.TrainerFemale(),
		IVs:           r.Misc.IVs(),
		IsEgg:         r.Misc.IsEgg(),
		Ability:       r.Misc.Ability(),
		Ribbons:       r.Misc.RibbonsObedience,

		Raw: r.Encode(true),
	}
	for i, m := range r.Attacks.Moves {
		v.Moves[i] = entryView(cs.Moves.Lookup(m))
	}
	return v
}

// SearchResponse lists the word sets found for a record
type SearchResponse struct {
	Order    string         `json:"order"`
	Count    int            `json:"count"`
	WordSets []mail.WordSet `json:"word_sets"`
}

// ApplyRequest is the body of a mail apply request
type ApplyRequest struct {
	Record    []byte          `json:"record"`
	Encrypted bool            `json:"encrypted"`
	Words     json.RawMessage `json:"words"`
}

// BankEntryView is a deposited record
type BankEntryView struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Deposited time.Time  `json:"deposited"`
	Record    RecordView `json:"record"`
}
