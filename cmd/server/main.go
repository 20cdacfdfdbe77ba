package main

import (
	"fmt"
	"os"

	"github.com/divgaze/api/internal/config"
	"github.com/divgaze/api/internal/logging"
	"github.com/divgaze/api/internal/server"
	"github.com/divgaze/api/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "divgaze-api",
	Short: "Divgaze website backend",
	Long:  `Backend for the Divgaze website: serves the contact form endpoint and dispatches inquiry emails.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logConfig := &logging.LogConfig{
			Level:      "info",
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		}
		if err := logging.InitLogger(logConfig); err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger := logging.GetGlobalLogger()
		defer logger.Close()

		logger.Info("Starting server in %s mode on port %s", cfg.Environment, cfg.Port)
		if cfg.ResendAPIKey == "" {
			logger.Warn("RESEND_API_KEY is not set; email dispatch will fail")
		}

		srv := server.NewServer(cfg)
		srv.Init()

		if err := srv.Start(); err != nil {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetBuildInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
