package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"streamsort/internal/queue"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var showHeaders = []string{"#", "Title", "Genre", "Episodes", "Rating"}

var showAligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func buildShowRows(entries []queue.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Index),
			entry.Show.Title,
			entry.Show.Genre,
			strconv.Itoa(entry.Show.Episodes),
			queue.FormatRating(entry.Show.Rating),
		})
	}
	return rows
}

// printShowTable writes the queue as a table, or a placeholder line when
// the queue is empty.
func printShowTable(out io.Writer, entries []queue.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "Queue is empty")
		return
	}
	fmt.Fprintln(out, renderTable(showHeaders, buildShowRows(entries), showAligns))
}

// formatShow renders a show the way the menu prints it.
func formatShow(show queue.Show) string {
	return fmt.Sprintf("%s | %s | %d episodes | Rating: %s",
		show.Title, show.Genre, show.Episodes, queue.FormatRating(show.Rating))
}

func printSuggestions(out io.Writer, titles []string) {
	if len(titles) == 0 {
		return
	}
	fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(titles, ", "))
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
