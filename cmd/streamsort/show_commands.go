package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"streamsort/internal/config"
	"streamsort/internal/queue"
	"streamsort/internal/session"
)

func newShowCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newAddCommand(ctx),
		newRemoveCommand(ctx),
		newListCommand(ctx),
		newSortCommand(ctx),
		newSearchCommand(ctx),
		newExportCommand(ctx),
		newImportCommand(ctx),
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var genre string
	var episodes string
	var rating string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a show to the end of the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				if err := sess.AddShow(args[0], genre, episodes, rating); err != nil {
					return fmt.Errorf("add show: %w", err)
				}
				if err := sess.SaveQueue(runCtx, ""); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%d in queue)\n", args[0], sess.Queue().Len())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre of the show")
	cmd.Flags().StringVarP(&episodes, "episodes", "e", "", "Number of episodes (at least 1)")
	cmd.Flags().StringVarP(&rating, "rating", "r", "", "Rating between 1.0 and 5.0")
	_ = cmd.MarkFlagRequired("episodes")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove TITLE",
		Aliases: []string{"rm"},
		Short:   "Remove the first show with an exactly matching title",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				if err := sess.RemoveShow(args[0]); err != nil {
					return fmt.Errorf("remove show: %w", err)
				}
				if err := sess.SaveQueue(runCtx, ""); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
				return nil
			})
		},
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Display the queue in its current order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				entries := sess.ListShows()
				if jsonOutput {
					return writeJSON(cmd, entries)
				}
				printShowTable(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "sort title|rating",
		Short:     "Sort the queue by title (A-Z) or rating (highest first)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(queue.SortByTitle), string(queue.SortByRating)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				if err := sess.SortQueue(args[0]); err != nil {
					return fmt.Errorf("sort queue: %w", err)
				}
				if err := sess.SaveQueue(runCtx, ""); err != nil {
					return err
				}
				printShowTable(cmd.OutOrStdout(), sess.ListShows())
				return nil
			})
		},
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search TITLE",
		Short: "Find the first show with an exactly matching title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				show, found := sess.SearchShow(args[0])
				if jsonOutput {
					payload := struct {
						Found bool        `json:"found"`
						Show  *queue.Show `json:"show,omitempty"`
					}{Found: found}
					if found {
						payload.Show = &show
					}
					return writeJSON(cmd, payload)
				}
				if !found {
					fmt.Fprintln(cmd.OutOrStdout(), "Show not found")
					printSuggestions(cmd.OutOrStdout(), sess.SuggestTitles(args[0]))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatShow(show))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export PATH",
		Short: "Write the queue to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveArgPath(args[0])
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				if err := sess.SaveQueue(runCtx, target); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s shows to %s\n", humanize.Comma(int64(sess.Queue().Len())), target)
				return nil
			})
		},
	}
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Replace the queue with the contents of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveArgPath(args[0])
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				result, err := sess.LoadQueue(runCtx, source)
				if err != nil {
					return err
				}
				if result.Missing || result.Unreadable {
					return fmt.Errorf("import %s: file missing or unreadable", source)
				}
				if err := sess.SaveQueue(runCtx, ""); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %s shows from %s\n", humanize.Comma(int64(result.Loaded())), source)
				if result.Skipped > 0 {
					fmt.Fprintf(out, "Skipped %s malformed %s\n", humanize.Comma(int64(result.Skipped)), pluralLines(result.Skipped))
				}
				return nil
			})
		},
	}
}

func resolveArgPath(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("path is required")
	}
	path, err := config.ExpandPath(value)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", value, err)
	}
	return path, nil
}

func pluralLines(n int) string {
	if n == 1 {
		return "line"
	}
	return "lines"
}
