// Package render draws records, mail word sets and PC boxes for the
// terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/mail"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/save"
)

var (
	border  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	label   = lipgloss.NewStyle().Bold(true)
	glitch  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	good    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelSt = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("2")).
		Padding(0, 1)
)

// WordSetsPerRow is how many word set grids WordSets puts side by side.
const WordSetsPerRow = 3

func hex(n uint32, bytes int) string {
	return fmt.Sprintf("%0*X", bytes*2, n)
}

func rawHex(b []byte) string {
	return strings.ToUpper(fmt.Sprintf("% x", b))
}

func entry(e catalog.Entry, bytes int) string {
	s := fmt.Sprintf("%s (%s)", e.Name, hex(uint32(e.Index), bytes))
	if e.Glitch {
		return glitch.Render("GLITCH") + " " + s
	}
	return s
}

type field struct {
	name, value string
}

func panel(title string, fields ...field) string {
	var b strings.Builder
	b.WriteString(label.Render(title))
	for _, f := range fields {
		b.WriteString("\n")
		b.WriteString(label.Render(f.name + ": "))
		b.WriteString(f.value)
	}
	return panelSt.Render(b.String())
}

func yesNo(v bool) string {
	if v {
		return glitch.Render("True")
	}
	return good.Render("False")
}

// Record draws every field of r, naming catalog indices through cs.
func Record(r *codec.Record, cs *catalog.Catalogs) string {
	overall := panel("Overall information",
		field{"Personality value", hex(r.PersonalityValue, 4)},
		field{"Original trainer ID", hex(r.TrainerID, 4)},
		field{"Substructure order", r.Order.String()},
		field{"Encryption key", hex(r.Key, 4)},
		field{"Nickname", rawHex(r.Nickname[:])},
		field{"Language", hex(uint32(r.Language), 1)},
		field{"Bad egg?", yesNo(r.BadEgg)},
		field{"Original trainer name", rawHex(r.TrainerName[:])},
		field{"Markings", hex(uint32(r.Markings), 1)},
		field{"Checksum", hex(uint32(r.Checksum), 2)},
	)

	g := r.Growth
	ppUps := g.PPUps()
	growth := panel("Growth",
		field{"Species", entry(cs.Species.Lookup(g.Species), 2)},
		field{"Held item", entry(cs.Items.Lookup(g.HeldItem), 2)},
		field{"Experience", hex(g.Experience, 4)},
		field{"PP bonuses", fmt.Sprintf("%d - %d - %d - %d (%s)", ppUps[0], ppUps[1], ppUps[2], ppUps[3], hex(uint32(g.PPBonuses), 1))},
		field{"Friendship", hex(uint32(g.Friendship), 1)},
	)

	a := r.Attacks
	attacks := panel("Attacks",
		field{"Move 1", entry(cs.Moves.Lookup(a.Moves[0]), 2)},
		field{"Move 2", entry(cs.Moves.Lookup(a.Moves[1]), 2)},
		field{"Move 3", entry(cs.Moves.Lookup(a.Moves[2]), 2)},
		field{"Move 4", entry(cs.Moves.Lookup(a.Moves[3]), 2)},
		field{"PP", fmt.Sprintf("%s %s %s %s", hex(uint32(a.PP[0]), 1), hex(uint32(a.PP[1]), 1), hex(uint32(a.PP[2]), 1), hex(uint32(a.PP[3]), 1))},
	)

	e := r.EVs
	evs := panel("EVs and conditions",
		field{"HP EVs", hex(uint32(e.HP), 1)},
		field{"Attack EVs", hex(uint32(e.Attack), 1)},
		field{"Defense EVs", hex(uint32(e.Defense), 1)},
		field{"Speed EVs", hex(uint32(e.Speed), 1)},
		field{"Special Attack EVs", hex(uint32(e.SpAttack), 1)},
		field{"Special Defense EVs", hex(uint32(e.SpDefense), 1)},
		field{"Coolness", hex(uint32(e.Coolness), 1)},
		field{"Beauty", hex(uint32(e.Beauty), 1)},
		field{"Cuteness", hex(uint32(e.Cuteness), 1)},
		field{"Smartness", hex(uint32(e.Smartness), 1)},
		field{"Toughness", hex(uint32(e.Toughness), 1)},
		field{"Feel", hex(uint32(e.Feel), 1)},
	)

	m := r.Misc
	ivs := m.IVs()
	gender := "Male"
	if m.TrainerFemale() {
		gender = "Female"
	}
	misc := panel("Misc",
		field{"Pokérus", fmt.Sprintf("%s (days left %d, strain %d)", hex(uint32(m.Pokerus), 1), m.PokerusDays(), m.PokerusStrain())},
		field{"Met location", entry(cs.Locations.Lookup(uint16(m.MetLocation)), 1)},
		field{"Origins", fmt.Sprintf("%s (level %d, game %d, ball %d, %s trainer)", hex(uint32(m.Origins), 2), m.LevelMet(), m.GameOfOrigin(), m.PokeBall(), gender)},
		field{"IVs", fmt.Sprintf("%d/%d/%d/%d/%d/%d (%s)", ivs[0], ivs[1], ivs[2], ivs[3], ivs[4], ivs[5], hex(m.IVEggAbility, 4))},
		field{"Is egg?", fmt.Sprint(m.IsEgg())},
		field{"Ability", fmt.Sprint(m.Ability())},
		field{"Ribbons and obedience", hex(m.RibbonsObedience, 4)},
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, overall, growth),
		lipgloss.JoinHorizontal(lipgloss.Top, attacks, evs),
		misc,
	)
}

// WordSet draws the four words as they appear on the mail screen.
func WordSet(ws mail.WordSet) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		BorderRow(true).
		Rows(
			[]string{ws.TopLeft.String(), ws.TopRight.String()},
			[]string{ws.BottomLeft.String(), ws.BottomRight.String()},
		)

	caption := dim.Render(fmt.Sprintf("%s, cost %d", ws.Order, ws.Cost))
	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), caption)
}

// WordSets draws sets side by side, WordSetsPerRow to a row.
func WordSets(sets []mail.WordSet) string {
	var rows []string
	for start := 0; start < len(sets); start += WordSetsPerRow {
		end := min(start+WordSetsPerRow, len(sets))
		grids := make([]string, 0, end-start)
		for _, ws := range sets[start:end] {
			grids = append(grids, WordSet(ws)+" ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, grids...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Box draws the species in each slot of a PC box. Empty slots show a dash.
func Box(name string, b *save.Box, species *catalog.Catalog) string {
	rows := make([][]string, 0, save.BoxRows)
	for row := 0; row < save.BoxRows; row++ {
		cells := make([]string, 0, save.BoxColumns)
		for col := 0; col < save.BoxColumns; col++ {
			cells = append(cells, boxCell(b, row, col, species))
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left, label.Render(name), t.Render())
}

func boxCell(b *save.Box, row, col int, species *catalog.Catalog) string {
	if b.Empty(row, col) {
		return dim.Render("-")
	}
	r, err := b.Record(row, col)
	if err != nil {
		return glitch.Render("?")
	}
	if r.BadEgg {
		return glitch.Render("Bad Egg")
	}
	return species.Lookup(r.Growth.Species).Name
}

// BoxName shows a box name as raw bytes up to the 0xFF terminator. Names use
// the game's own character set.
func BoxName(raw [save.BoxNameSize]byte) string {
	n := len(raw)
	for i, c := range raw {
		if c == 0xFF {
			n = i
			break
		}
	}
	return rawHex(raw[:n])
}
