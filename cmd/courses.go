package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/byxorna/coursebook/pkg/form"
	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	addFlags = struct {
		Code, Name, Progression, Syllabus string
	}{}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print every course as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses := sess.store.List()
			if len(courses) == 0 {
				color.Yellow("No courses yet. Add one with `coursebook add`.")
				return nil
			}
			color.Cyan("%d courses in %s", len(courses), sess.store.Location())
			writeTable(os.Stdout, courses)
			return nil
		},
	}

	showCmd = &cobra.Command{
		Use:   "show CODE",
		Short: "Render a single course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := sess.store.Get(args[0])
			if !ok {
				return fmt.Errorf("no course with code %q", args[0])
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(c.Markdown())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	addCmd = &cobra.Command{
		Use:   "add",
		Short: "Save a course, replacing any course with the same code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := v1.ParseProgression(addFlags.Progression)
			if err != nil {
				return err
			}

			ctrl := sess.controller()
			ctrl.SetFields(form.Fields{
				Code:        addFlags.Code,
				Name:        addFlags.Name,
				Progression: p,
				Syllabus:    addFlags.Syllabus,
			})
			n, err := ctrl.Submit()
			if err != nil {
				return err
			}
			color.Green(n.Message)
			return nil
		},
	}

	deleteCmd = &cobra.Command{
		Use:     "delete CODE",
		Aliases: []string{"rm"},
		Short:   "Remove a course",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeCourse(cmd.OutOrStdout(), sess, args[0])
		},
	}
)

func init() {
	addCmd.Flags().StringVar(&addFlags.Code, "code", "", "course code, e.g. CS101")
	addCmd.Flags().StringVar(&addFlags.Name, "name", "", "course name")
	addCmd.Flags().StringVarP(&addFlags.Progression, "progression", "p", string(v1.ProgressionA), "progression level (A, B or C)")
	addCmd.Flags().StringVar(&addFlags.Syllabus, "syllabus", "", "syllabus URL")
}

// removeCourse deletes code and reports one line. An absent code is still
// deleted, which rewrites the stored list unchanged.
func removeCourse(w io.Writer, s *session, code string) error {
	_, existed := s.store.Get(code)
	n, err := s.controller().Delete(code)
	if err != nil {
		return err
	}
	if !existed {
		color.New(color.FgYellow).Fprintf(w, "No course with code %q\n", code)
		return nil
	}
	color.New(color.FgGreen).Fprintln(w, n.Message)
	return nil
}

func writeTable(w io.Writer, courses []v1.Course) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Name", "Progression", "Syllabus"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, c := range courses {
		table.Append([]string{c.Code, c.Name, c.Progression.String(), c.Syllabus})
	}
	table.Render()
}
