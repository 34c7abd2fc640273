/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/render"
)

// pkmCmd groups the commands working on a single record file
var pkmCmd = &cobra.Command{
	Use:   "pkm",
	Short: "Work with a single 80-byte record",
}

// pkmShowCmd represents the pkm show command
var pkmShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Decode and show a record",
	Long: `Decode an 80-byte record and show every field.

The record is read from file, or from standard input when file is - or
missing. By default the substructures are expected decrypted.

Examples:
  pkm3hex pkm show treecko.pk3
  pkm3hex pkm show --encrypted < boxed.pk3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypted, _ := cmd.Flags().GetBool("encrypted")

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		r, err := codec.Parse(raw, encrypted)
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

func init() {
	rootCmd.AddCommand(pkmCmd)
	pkmCmd.AddCommand(pkmShowCmd)

	pkmShowCmd.Flags().Bool("encrypted", false, "The substructures are enciphered, as stored in a box")
}
