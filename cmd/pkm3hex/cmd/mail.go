/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/mail"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/render"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatBinary = "binary"
)

// mailCmd groups the mail glitch commands
var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Find and apply mail glitch word sets",
	Long: `Find the mail words that overwrite a record's personality value and
trainer id while keeping its encryption key, so the record changes
substructure order without becoming a bad egg.

The record comes from --pkm-file (decrypted bytes) or from --save at
--box-pos. The word dictionary comes from catalogs.words in the
configuration, or --words.`,
}

func writeWordSets(cmd *cobra.Command, format string, sets []mail.WordSet) error {
	switch format {
	case formatJSON:
		if sets == nil {
			sets = []mail.WordSet{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sets)
	case formatPretty:
		fmt.Fprintln(cmd.OutOrStdout(), render.WordSets(sets))
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// mailOrderCmd represents the mail order command
var mailOrderCmd = &cobra.Command{
	Use:   "order <ORDER>",
	Short: "List the word sets giving a record a substructure order",
	Long: `List the key preserving word sets that give the record the target
substructure order, cheapest first. Exits with code 63 when there are none.

Examples:
  pkm3hex mail order GAME --pkm-file treecko.pk3 --limit 5
  pkm3hex mail order emag --save emerald.sav --box-pos 1,1,1 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			limit = container.Config().Search.Limit
		}

		target, err := codec.ParseOrder(args[0])
		if err != nil {
			return err
		}
		r, err := recordInput(cmd)
		if err != nil {
			return err
		}
		engine, err := container.Engine()
		if err != nil {
			return err
		}

		id := mail.IdentityOf(r)
		sets := mail.Cheapest(engine.ByOrder(id, target), limit)
		container.Logger().Debug().
			Str("from", id.Order().String()).
			Str("to", target.String()).
			Int("word_sets", len(sets)).
			Msg("mail search")

		if len(sets) == 0 && format != formatJSON {
			return noResults(ExitNoWords, "No mail glitch words found")
		}
		return writeWordSets(cmd, format, sets)
	},
}

// mailCheckCmd represents the mail check command
var mailCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the cheapest word set for every reachable order",
	Long: `For every substructure order the record can reach through the mail
glitch, show the cheapest word set reaching it. Exits with code 62 when no
order is reachable.

Example:
  pkm3hex mail check --save emerald.sav --box-pos 2,3,4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		r, err := recordInput(cmd)
		if err != nil {
			return err
		}
		engine, err := container.Engine()
		if err != nil {
			return err
		}

		sets := slices.Collect(engine.Survey(mail.IdentityOf(r)))
		if len(sets) == 0 && format != formatJSON {
			return noResults(ExitNoSurvey, "No substructure order is reachable")
		}
		return writeWordSets(cmd, format, sets)
	},
}

// mailApplyCmd represents the mail apply command
var mailApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write a word set over a record",
	Long: `Write a word set, in the JSON form the other mail commands print, over
the record's identity and show the result. With --format binary the record
bytes are written instead, at rest unless --encrypted=false.

Example:
  pkm3hex mail apply --words set.json --save emerald.sav --box-pos 1,1,1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wordsPath, _ := cmd.Flags().GetString("words-file")
		format, _ := cmd.Flags().GetString("format")
		encrypted, _ := cmd.Flags().GetBool("encrypted")

		r, err := recordInput(cmd)
		if err != nil {
			return err
		}
		engine, err := container.Engine()
		if err != nil {
			return err
		}
		data, err := readInput(cmd, wordsPath)
		if err != nil {
			return err
		}
		ws, err := engine.DecodeWordSet(data)
		if err != nil {
			return err
		}

		if !ws.KeyPreserving(mail.IdentityOf(r)) {
			container.Logger().Warn().Msg("word set changes the encryption key: the record will be a bad egg")
		}
		out, err := mail.Apply(r, ws)
		if err != nil {
			return err
		}

		switch format {
		case formatBinary:
			_, err = cmd.OutOrStdout().Write(out.Encode(encrypted))
			return err
		case formatPretty:
			cs, err := container.Catalogs()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Record(out, cs))
			return nil
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(mailCmd)
	mailCmd.AddCommand(mailOrderCmd, mailCheckCmd, mailApplyCmd)

	for _, c := range []*cobra.Command{mailOrderCmd, mailCheckCmd, mailApplyCmd} {
		addRecordInputFlags(c)
	}

	mailOrderCmd.Flags().Int("limit", 0, "Maximum number of word sets (0 for all; default from search.limit)")
	mailOrderCmd.Flags().String("format", formatPretty, "Output format: pretty or json")
	mailCheckCmd.Flags().String("format", formatPretty, "Output format: pretty or json")

	mailApplyCmd.Flags().String("words-file", "", "JSON word set to apply")
	mailApplyCmd.Flags().String("format", formatPretty, "Output format: pretty or binary")
	mailApplyCmd.Flags().Bool("encrypted", true, "Write the binary record at rest")
	if err := mailApplyCmd.MarkFlagRequired("words-file"); err != nil {
		panic(err)
	}
}
