package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"game-reviews/internal/data/entity"
	"game-reviews/internal/data/repository"
	"game-reviews/internal/dto/request"
	"game-reviews/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewReviewsCommand groups commands that work on the store directly,
// without going through the HTTP server.
func NewReviewsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List, search and add reviews",
	}

	cmd.AddCommand(newReviewsListCommand(opts))
	cmd.AddCommand(newReviewsSearchCommand(opts))
	cmd.AddCommand(newReviewsAddCommand(opts))

	return cmd
}

func newReviewsListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every review as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, opts, func(service *usecase.Service) error {
				reviews, err := service.Query.FindAll(commandContext(cmd))
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), reviews)
			})
		},
	}
}

func newReviewsSearchCommand(opts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Print reviews whose title contains <title>, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("%w: title must not be empty", usecase.ErrValidation)
			}

			return withService(cmd, opts, func(service *usecase.Service) error {
				result, err := service.Query.FindByTitle(commandContext(cmd), args[0], request.ParseSearchFormat(format))
				if err != nil {
					return err
				}

				if result.Format == request.SearchFormatText {
					_, err := io.WriteString(cmd.OutOrStdout(), result.Text)
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result.Reviews)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", string(request.SearchFormatJSON), "output format (json|text)")

	return cmd
}

func newReviewsAddCommand(opts *RootOptions) *cobra.Command {
	var title, content, rating string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a review to the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, opts, func(service *usecase.Service) error {
				review, err := service.Submission.Submit(commandContext(cmd), &request.CreateReviewRequest{
					GameTitle: title,
					Content:   content,
					Rating:    entity.RatingFromString(rating),
				})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), review)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "game title")
	cmd.Flags().StringVar(&content, "content", "", "review text")
	cmd.Flags().StringVar(&rating, "rating", "", "rating, usually 1-10")

	return cmd
}

// withService opens the configured store for the duration of fn. Logs go
// to stderr, and only in debug mode.
func withService(cmd *cobra.Command, opts *RootOptions, fn func(service *usecase.Service) error) error {
	config, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if config.App.Debug {
		logger = newLogger(config, os.Stderr)
		defer logger.Sync()
	}

	repos, err := repository.Open(commandContext(cmd), config, logger)
	if err != nil {
		return err
	}
	defer repos.Close()

	return fn(usecase.NewService(repos, logger))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
