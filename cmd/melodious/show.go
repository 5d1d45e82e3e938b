package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"melodious/internal/catalog"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		levelFlag string
		style     string
		width     int
	)
	cmd := &cobra.Command{
		Use:   "show COURSE",
		Short: "Print one course level as formatted Markdown",
		Example: `  melodious show "Carnatic Vocals"
  melodious show "English Pop" --level advanced`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			course, ok := a.catalog.Lookup(name)
			if !ok {
				return fmt.Errorf("show %q: %w", name, catalog.ErrUnknownCourse)
			}
			level := course.DefaultLevel()
			if levelFlag != "" {
				l, err := catalog.ParseLevel(levelFlag)
				if err != nil {
					return err
				}
				level = l
			}
			md, err := a.catalog.Markdown(name, level)
			if err != nil {
				return err
			}

			styleOpt := glamour.WithAutoStyle()
			if style != "auto" {
				styleOpt = glamour.WithStylePath(style)
			}
			r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&levelFlag, "level", "l", "", "level to show (beginner, intermediate, advanced)")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	return cmd
}
