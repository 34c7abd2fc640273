/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/config"
)

// configCmd groups the configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pkm3hex configuration file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration with a generated API key",
	Long: `Write a default configuration file at --config, with a freshly generated
API key for the HTTP server.

Examples:
  pkm3hex config init
  pkm3hex config init --config ./pkm3hex.yaml --bank-dir ./bank --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		bankDir, _ := cmd.Flags().GetString("bank-dir")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(configPath) && !force {
			return fmt.Errorf("configuration already exists at %s: use --force to overwrite", configPath)
		}

		cfg, err := config.BootstrapConfig(configPath, bankDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Bank directory: %s\n", cfg.Bank.DataDir)
		fmt.Fprintf(cmd.OutOrStdout(), "API key: %s\n", cfg.Server.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().String("bank-dir", "", "Record bank directory (default ./data/bank)")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}
