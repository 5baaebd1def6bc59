package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/columbo-connector/pkg/server"
	"github.com/de-tools/columbo-connector/pkg/services/auth"
	"github.com/de-tools/columbo-connector/pkg/services/config"
	"github.com/de-tools/columbo-connector/pkg/services/connector"
	"github.com/de-tools/columbo-connector/pkg/services/mapper"
	"github.com/de-tools/columbo-connector/pkg/store/columbo"
	"github.com/de-tools/columbo-connector/pkg/store/credentials"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "columbo-connector",
		Short: "Serve the Columbo audit connector API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "columbo.yaml",
		"Path to the connector config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load connector config: %w", err)
	}

	credStore := credentials.NewFileStore(cfg.CredentialsPath)
	gate := auth.NewGate(credStore)

	client := columbo.NewClient(cfg.APIBaseURL, credStore, &http.Client{
		Timeout: cfg.HTTPTimeout,
	})
	conn := connector.New(client, mapper.New(cfg.StaticBaseURL))

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		return fmt.Errorf("missing SERVER_HOST or SERVER_PORT in the environment")
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Connector: conn,
			Gate:      gate,
		},
	})

	return webAPI.Start()
}
