/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/api"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the pkm3hex REST API server. Every /api/v1 route requires the
X-API-Key header; /metrics and /swagger/ do not. An api_key of "auto" generates a key for
this run and logs it.

Examples:
  pkm3hex serve
  pkm3hex serve --port 9090 --bind 0.0.0.0 --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := container.Config()
		log := container.Logger()

		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Server.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Server.APIKey, _ = cmd.Flags().GetString("api-key")
		}

		if cfg.Server.APIKey == "" || cfg.Server.APIKey == "auto" {
			key, err := config.GenerateSecureKey(32)
			if err != nil {
				return err
			}
			cfg.Server.APIKey = key
			log.Warn().Str("api_key", key).Msg("generated an API key for this run")
		}

		engine, err := container.Engine()
		if err != nil {
			return err
		}
		catalogs, err := container.Catalogs()
		if err != nil {
			return err
		}
		b, err := openBank()
		if err != nil {
			return err
		}
		defer b.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		services := api.Services{Engine: engine, Catalogs: catalogs, Bank: b}
		serverConfig := api.ServerConfig{
			Port:   cfg.Server.Port,
			Bind:   cfg.Server.Bind,
			APIKey: cfg.Server.APIKey,
		}

		log.Info().
			Str("addr", fmt.Sprintf("%s:%d", serverConfig.Bind, serverConfig.Port)).
			Str("bank", cfg.Bank.DataDir).
			Msg("starting server")
		return container.GetServerFactory().CreateServerStarter().StartServer(ctx, services, serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (default from server.port)")
	serveCmd.Flags().String("bind", "", "Address to bind (default from server.bind)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (default from server.api_key)")
}
