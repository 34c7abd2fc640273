/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/api"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/render"
)

// bankCmd groups the record bank commands
var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Keep records in the local record bank",
	Long: `The record bank keeps records outside of any save file, under
bank.data_dir. Records are identified by a sortable id given on deposit.`,
}

func openBank() (api.RecordBankCloser, error) {
	dir := container.Config().Bank.DataDir
	b, err := container.GetBankFactory().OpenBank(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank %s: %w", dir, err)
	}
	return b, nil
}

func parseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("invalid record id %q: %w", s, err)
	}
	return id, nil
}

// bankPutCmd represents the bank put command
var bankPutCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Deposit a record",
	Long: `Deposit a record and print its id. The record is read from file, or
standard input, decrypted unless --encrypted is set.

Examples:
  pkm3hex bank put treecko.pk3 --label "before glitch"
  pkm3hex pc dump 1 1 1 --save emerald.sav | pkm3hex bank put`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("label")
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

		b, err := openBank()
		if err != nil {
			return err
		}
		defer b.Close()

		id, err := b.Put(r, label)
		if err != nil {
			return err
		}
		container.Logger().Info().Str("id", id.String()).Str("label", label).Msg("record deposited")
		fmt.Fprintln(cmd.OutOrStdout(), id.String())
		return nil
	},
}

// bankGetCmd represents the bank get command
var bankGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show or write out a deposited record",
	Long: `Show a deposited record. With --format binary the record bytes are
written instead, at rest unless --encrypted=false.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		encrypted, _ := cmd.Flags().GetBool("encrypted")

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		b, err := openBank()
		if err != nil {
			return err
		}
		defer b.Close()

		entry, err := b.Get(id)
		if err != nil {
			return err
		}

		switch format {
		case formatBinary:
			_, err = cmd.OutOrStdout().Write(entry.Record.Encode(encrypted))
			return err
		case formatPretty:
			cs, err := container.Catalogs()
			if err != nil {
				return err
			}
			if entry.Label != "" {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Label)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Record(entry.Record, cs))
			return nil
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	},
}

// bankListCmd represents the bank list command
var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deposited records, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBank()
		if err != nil {
			return err
		}
		defer b.Close()

		entries, err := b.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %08X  %s  %s\n",
				e.ID, e.Deposited().Format(time.RFC3339),
				e.Record.PersonalityValue, e.Record.Order, e.Label)
		}
		return nil
	},
}

// bankDeleteCmd represents the bank delete command
var bankDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a deposited record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		b, err := openBank()
		if err != nil {
			return err
		}
		defer b.Close()

		if err := b.Delete(id); err != nil {
			return err
		}
		container.Logger().Info().Str("id", id.String()).Msg("record deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bankCmd)
	bankCmd.AddCommand(bankPutCmd, bankGetCmd, bankListCmd, bankDeleteCmd)

	bankPutCmd.Flags().String("label", "", "Free text stored with the record")
	bankPutCmd.Flags().Bool("encrypted", false, "The substructures are enciphered, as stored in a box")

	bankGetCmd.Flags().String("format", formatPretty, "Output format: pretty or binary")
	bankGetCmd.Flags().Bool("encrypted", true, "Write the binary record at rest")
}
