/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/render"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/save"
)

// pcCmd groups the commands reading the PC storage of a save file
var pcCmd = &cobra.Command{
	Use:   "pc",
	Short: "Read records from the PC storage of a save file",
}

// pcDumpCmd represents the pc dump command
var pcDumpCmd = &cobra.Command{
	Use:   "dump <box> <row> <col>",
	Short: "Write the bytes of a boxed record",
	Long: `Write the 80 bytes of the record at a 1-based box position to standard
output. The substructures are decrypted unless --decrypt=false.

Examples:
  pkm3hex pc dump 1 1 1 --save emerald.sav > first.pk3
  pkm3hex pc dump 14 5 6 --save emerald.sav --decrypt=false > last.pk3`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		savePath, _ := cmd.Flags().GetString("save")
		decrypt, _ := cmd.Flags().GetBool("decrypt")

		pos, err := boxPosArgs(args)
		if err != nil {
			return err
		}
		raw, err := boxRaw(cmd, savePath, pos)
		if err != nil {
			return err
		}

		if decrypt {
			r, err := codec.Parse(raw, true)
			if err != nil {
				return err
			}
			raw = r.Bytes()
		}

		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

// pcShowCmd represents the pc show command
var pcShowCmd = &cobra.Command{
	Use:   "show <box> <row> <col>",
	Short: "Decode and show a boxed record",
	Long: `Decode the record at a 1-based box position and show every field.

Example:
  pkm3hex pc show 1 2 3 --save emerald.sav`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		savePath, _ := cmd.Flags().GetString("save")

		pos, err := boxPosArgs(args)
		if err != nil {
			return err
		}
		raw, err := boxRaw(cmd, savePath, pos)
		if err != nil {
			return err
		}
		r, err := codec.Parse(raw, true)
		if err != nil {
			return err
		}

		cs, err := container.Catalogs()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Record(r, cs))
		return nil
	},
}

// pcBoxesCmd represents the pc boxes command
var pcBoxesCmd = &cobra.Command{
	Use:   "boxes",
	Short: "Show the species in every PC box",
	Long: `Show the species held in each slot of the PC boxes. With --box, only
that 1-based box.

Example:
  pkm3hex pc boxes --save emerald.sav --box 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		savePath, _ := cmd.Flags().GetString("save")
		only, _ := cmd.Flags().GetInt("box")

		block, err := loadSave(cmd, savePath)
		if err != nil {
			return err
		}
		cs, err := container.Catalogs()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Save slot %s, counter %d, current box %d\n", block.Slot, block.Counter, block.PC.CurrentBox+1)
		for i := range save.BoxCount {
			if only != 0 && only != i+1 {
				continue
			}
			box, err := block.PC.Box(i)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("Box %d  %s", i+1, render.BoxName(block.PC.BoxNames[i]))
			fmt.Fprintln(cmd.OutOrStdout(), render.Box(name, box, cs.Species))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pcCmd)
	pcCmd.AddCommand(pcDumpCmd, pcShowCmd, pcBoxesCmd)

	pcCmd.PersistentFlags().String("save", "", "Save file (- for standard input)")
	pcDumpCmd.Flags().Bool("decrypt", true, "Decrypt the substructures")
	pcBoxesCmd.Flags().Int("box", 0, "Only show this 1-based box")
}
