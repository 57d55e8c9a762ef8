package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"streamsort/internal/session"
)

const menuText = `
StreamSort Menu:
1. Add a show to the queue
2. Remove a show by title
3. Display the current queue
4. Sort the queue
5. Search for a show by title
6. Save and Exit
7. Load queue from file
`

const (
	choiceAdd = iota + 1
	choiceRemove
	choiceDisplay
	choiceSort
	choiceSearch
	choiceSaveExit
	choiceLoad
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"menu"},
		Short:   "Run the interactive numbered menu",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, ctx)
		},
	}
}

func runShell(cmd *cobra.Command, ctx *commandContext) error {
	return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
		sh := &shell{
			sess: sess,
			in:   newLineReader(cmd.InOrStdin(), maxInputLine),
			out:  cmd.OutOrStdout(),
		}
		sh.printLoaded(sess.Queue().Len())
		return sh.run(runCtx)
	})
}

// shell drives one menu session. Input is read a line at a time. End of
// input saves and exits as if 6 had been chosen; so does a failing stdin,
// after the failure is reported. An oversized line is reported and the menu
// carries on.
type shell struct {
	sess *session.Session
	in   *lineReader
	out  io.Writer
}

func (s *shell) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, menuText)
		done, err := s.step(ctx)
		var inErr *inputError
		switch {
		case err == nil:
			if done {
				return nil
			}
		case errors.Is(err, io.EOF):
			return s.saveAndExit(ctx)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case errors.As(err, &inErr):
			s.reportError(err)
			return s.saveAndExit(ctx)
		default:
			s.reportError(err)
		}
	}
}

// step reads one menu choice and runs it.
func (s *shell) step(ctx context.Context) (bool, error) {
	line, err := s.prompt("Enter your choice: ")
	if err != nil {
		return false, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.out, "Error: Input must be a number.")
		return false, nil
	}
	return s.dispatch(ctx, choice)
}

func (s *shell) dispatch(ctx context.Context, choice int) (bool, error) {
	switch choice {
	case choiceAdd:
		return false, s.addShow()
	case choiceRemove:
		return false, s.removeShow()
	case choiceDisplay:
		s.displayQueue()
		return false, nil
	case choiceSort:
		return false, s.sortQueue()
	case choiceSearch:
		return false, s.searchShow()
	case choiceSaveExit:
		if err := s.sess.SaveQueue(ctx, ""); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, "Queue saved. Goodbye!")
		return true, nil
	case choiceLoad:
		result, err := s.sess.LoadQueue(ctx, "")
		if err != nil {
			return false, err
		}
		s.printLoaded(result.Loaded())
		return false, nil
	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again.")
		return false, nil
	}
}

func (s *shell) addShow() error {
	fields := make([]string, 0, 4)
	for _, label := range []string{
		"Enter title: ",
		"Enter genre: ",
		"Enter number of episodes: ",
		"Enter rating (1.0 - 5.0): ",
	} {
		value, err := s.prompt(label)
		if err != nil {
			return err
		}
		fields = append(fields, value)
	}
	if err := s.sess.AddShow(fields[0], fields[1], fields[2], fields[3]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Show added successfully!")
	return nil
}

func (s *shell) removeShow() error {
	title, err := s.prompt("Enter the title to remove: ")
	if err != nil {
		return err
	}
	if err := s.sess.RemoveShow(title); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Show removed.")
	return nil
}

func (s *shell) displayQueue() {
	entries := s.sess.ListShows()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "Queue is empty.")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(s.out, "%d. %s\n", entry.Index, formatShow(entry.Show))
	}
}

func (s *shell) sortQueue() error {
	option, err := s.prompt("Sort by:\n1. Title\n2. Rating\nChoice: ")
	if err != nil {
		return err
	}
	if err := s.sess.SortQueue(option); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Queue sorted.")
	return nil
}

func (s *shell) searchShow() error {
	title, err := s.prompt("Enter title to search: ")
	if err != nil {
		return err
	}
	show, found := s.sess.SearchShow(title)
	if !found {
		fmt.Fprintln(s.out, "Show not found.")
		printSuggestions(s.out, s.sess.SuggestTitles(title))
		return nil
	}
	fmt.Fprintf(s.out, "Found: %s\n", formatShow(show))
	return nil
}

func (s *shell) saveAndExit(ctx context.Context) error {
	fmt.Fprintln(s.out)
	if err := s.sess.SaveQueue(ctx, ""); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Queue saved. Goodbye!")
	return nil
}

func (s *shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.in.ReadLine()
}

func (s *shell) printLoaded(count int) {
	fmt.Fprintf(s.out, "Queue loaded from file (%s shows).\n", humanize.Comma(int64(count)))
}

func (s *shell) reportError(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}
