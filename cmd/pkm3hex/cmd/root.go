/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/config"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/di"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/logx"
)

// Exit codes for a search that ran fine and found nothing.
const (
	ExitNoSurvey = 62
	ExitNoWords  = 63
)

// ExitError ends the program with Code instead of the generic failure code.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	return e.Msg
}

var (
	newContainer = di.NewContainer
	container    *di.Container
)

// SetContainerFactory sets how the dependency container is built once the
// configuration is loaded.
func SetContainerFactory(f func(*config.Config, zerolog.Logger) *di.Container) {
	newContainer = f
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pkm3hex",
	Short: "pkm3hex - Generation III record toolkit",
	Long: `pkm3hex decodes Generation III Pokémon records and save files, and finds
mail glitch word sets that change a record's substructure order without
turning it into a bad egg.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}

		if words, _ := cmd.Flags().GetString("words"); words != "" {
			cfg.Catalogs.Words = words
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}

		log, err := logx.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		container = newContainer(cfg, log)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "Configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("words", "", "Mail word dictionary YAML file (overrides catalogs.words)")
}

func noResults(code int, format string, args ...interface{}) error {
	return &ExitError{Code: code, Msg: fmt.Sprintf(format, args...)}
}
