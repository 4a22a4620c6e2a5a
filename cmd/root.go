package cmd

import (
	"context"
	"io"

	"game-reviews/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// RootOptions holds state shared by every command.
type RootOptions struct {
	viper   *viper.Viper
	envFile string
}

// NewRootCommand creates the gamereviews command tree. Running it without
// a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{viper: viper.New()}

	cmd := &cobra.Command{
		Use:          "gamereviews",
		Short:        "Game Reviews API",
		Long:         "Serves and manages a collection of game reviews stored as one JSON document.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.LoadEnvFile(opts.envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load if present")
	flags.String("port", "", "HTTP listen port (env PORT)")
	flags.String("store", "", "store driver: file, postgres or sqlite (env STORE_DRIVER)")
	flags.String("reviews-file", "", "reviews JSON file for the file store (env REVIEWS_FILE)")
	flags.Bool("debug", false, "debug logging (env DEBUG)")

	bindFlag(opts.viper, "PORT", flags.Lookup("port"))
	bindFlag(opts.viper, "STORE_DRIVER", flags.Lookup("store"))
	bindFlag(opts.viper, "REVIEWS_FILE", flags.Lookup("reviews-file"))
	bindFlag(opts.viper, "DEBUG", flags.Lookup("debug"))

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewReviewsCommand(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newLogger builds the application logger writing to console, falling back
// to a production logger when the log directory cannot be created.
func newLogger(config *utils.Config, console io.Writer) *zap.Logger {
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, console)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Warn("Failed to init logger, using default production logger", zap.Error(err))
		return fallback
	}
	return logger
}

func loadConfig(opts *RootOptions) (*utils.Config, error) {
	return utils.LoadConfig(opts.viper)
}
