package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/save"
)

// readInput reads a whole file, or standard input for "" and "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// BoxPos is a 1-based PC position as typed on the command line.
type BoxPos struct {
	Box, Row, Col int
}

// parseBoxPos parses "box,row,col" with 1-based values.
func parseBoxPos(s string) (BoxPos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return BoxPos{}, fmt.Errorf("invalid box position %q: want box,row,col", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return BoxPos{}, fmt.Errorf("invalid box position %q: %w", s, err)
		}
		n[i] = v
	}
	return newBoxPos(n[0], n[1], n[2])
}

func newBoxPos(box, row, col int) (BoxPos, error) {
	if box < 1 || box > save.BoxCount {
		return BoxPos{}, fmt.Errorf("box %d out of range 1-%d", box, save.BoxCount)
	}
	if row < 1 || row > save.BoxRows {
		return BoxPos{}, fmt.Errorf("row %d out of range 1-%d", row, save.BoxRows)
	}
	if col < 1 || col > save.BoxColumns {
		return BoxPos{}, fmt.Errorf("column %d out of range 1-%d", col, save.BoxColumns)
	}
	return BoxPos{Box: box, Row: row, Col: col}, nil
}

// boxPosArgs parses the <box> <row> <col> positional arguments.
func boxPosArgs(args []string) (BoxPos, error) {
	var n [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return BoxPos{}, fmt.Errorf("invalid position %q: %w", a, err)
		}
		n[i] = v
	}
	return newBoxPos(n[0], n[1], n[2])
}

func loadSave(cmd *cobra.Command, path string) (*save.GameSaveBlock, error) {
	image, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	block, err := save.Locate(image)
	if err != nil {
		return nil, err
	}
	container.Logger().Debug().
		Str("slot", string(block.Slot)).
		Uint32("counter", block.Counter).
		Uint32("current_box", block.PC.CurrentBox).
		Msg("located save block")
	return block, nil
}

// boxRaw returns the at-rest bytes at a position of a save file.
func boxRaw(cmd *cobra.Command, savePath string, pos BoxPos) ([]byte, error) {
	block, err := loadSave(cmd, savePath)
	if err != nil {
		return nil, err
	}
	box, err := block.PC.Box(pos.Box - 1)
	if err != nil {
		return nil, err
	}
	return box.Raw(pos.Row-1, pos.Col-1)
}

// recordInput reads the record a mail command works on: decrypted bytes from
// --pkm-file, or at-rest bytes from --save at --box-pos.
func recordInput(cmd *cobra.Command) (*codec.Record, error) {
	pkmFile, _ := cmd.Flags().GetString("pkm-file")
	savePath, _ := cmd.Flags().GetString("save")
	boxPos, _ := cmd.Flags().GetString("box-pos")

	var (
		raw       []byte
		encrypted bool
		err       error
	)
	switch {
	case savePath != "" && pkmFile != "":
		return nil, fmt.Errorf("--pkm-file and --save are mutually exclusive")
	case savePath != "":
		if boxPos == "" {
			return nil, fmt.Errorf("--box-pos is required with --save")
		}
		pos, err := parseBoxPos(boxPos)
		if err != nil {
			return nil, err
		}
		if raw, err = boxRaw(cmd, savePath, pos); err != nil {
			return nil, err
		}
		encrypted = true
	default:
		if raw, err = readInput(cmd, pkmFile); err != nil {
			return nil, err
		}
	}

	r, err := codec.Parse(raw, encrypted)
	if err != nil {
		return nil, err
	}
	if r.BadEgg {
		container.Logger().Warn().Msg("input record is a bad egg")
	}
	return r, nil
}

func addRecordInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("pkm-file", "", "Decrypted record file (- for standard input)")
	cmd.Flags().String("save", "", "Save file to read the record from")
	cmd.Flags().String("box-pos", "", "1-based box,row,col of the record in --save")
}
