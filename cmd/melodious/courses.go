package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"melodious/internal/jsonutil"
)

// courseSummary is one row of `melodious courses --json`.
type courseSummary struct {
	Name         string   `json:"name"`
	Levels       []string `json:"levels"`
	DefaultLevel string   `json:"defaultLevel"`
}

func newCoursesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses and their levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows []courseSummary
			for _, name := range a.catalog.Names() {
				course, _ := a.catalog.Lookup(name)
				row := courseSummary{Name: name, DefaultLevel: course.DefaultLevel().String()}
				for _, l := range course.Levels() {
					row.Levels = append(row.Levels, l.String())
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if rows == nil {
					rows = []courseSummary{}
				}
				return jsonutil.Encode(out, rows)
			}
			_, err := fmt.Fprintln(out, coursesTable(rows))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func coursesTable(rows []courseSummary) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COURSE", "LEVELS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, r := range rows {
		t.Row(r.Name, strings.Join(r.Levels, ", "))
	}
	return t.String()
}
