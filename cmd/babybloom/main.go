package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/babybloom/internal/cli"
	"go.uber.org/zap"
)

var appLogger *zap.Logger

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "babybloom",
		Short:         "Pregnancy week-by-week guide server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			built, err := config.Build()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			appLogger = built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appLogger != nil {
				_ = appLogger.Sync()
			}
		},
		RunE: runServe,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Import content if it changed and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Validate the JSON content tables and import them into SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunImportCommand(resolveDBPath(), resolveDataDir(), appLogger, cmd.OutOrStdout())
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the JSON content tables without touching the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidateCommand(resolveDataDir(), cmd.OutOrStdout())
		},
	}

	var sitemapOut string
	sitemapCmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write the XML sitemap for the imported content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			siteURL, err := resolveSiteURL()
			if err != nil {
				return err
			}
			return cli.RunSitemapCommand(resolveDBPath(), siteURL, sitemapOut, appLogger, cmd.OutOrStdout())
		},
	}
	sitemapCmd.Flags().StringVarP(&sitemapOut, "out", "o", "sitemap.xml", `output file ("-" for stdout)`)

	var secretLength int
	secretCmd := &cobra.Command{
		Use:   "generate-secret",
		Short: "Print a random SECRET_KEY value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerateSecretCommand(secretLength, cmd.OutOrStdout())
		},
	}
	secretCmd.Flags().IntVar(&secretLength, "length", 0, "secret length (default 48)")

	rootCmd.AddCommand(serveCmd, importCmd, validateCmd, sitemapCmd, secretCmd)
	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadServerConfig()
	if err != nil {
		return err
	}
	return runServer(withLocation(config, appLogger), appLogger)
}

func withLocation(config serverConfig, log *zap.Logger) serverConfig {
	location, err := loadLocation(config.TimeZone)
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", zap.String("tz", config.TimeZone), zap.Error(err))
	}
	config.Location = location
	return config
}
