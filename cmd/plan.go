package cmd

import (
	"errors"
	"fmt"

	"github.com/BurtMcGurt64/owlplanner/internal/adapters/render/calendar"
	"github.com/BurtMcGurt64/owlplanner/internal/adapters/tui"
	"github.com/BurtMcGurt64/owlplanner/internal/application"
	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *app) *cobra.Command {
	var coursesFlag string
	var withoutFlags []string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and browse weekly schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if coursesFlag != "" {
				return runPlanOnce(cmd, app, coursesFlag, withoutFlags)
			}
			return runPlanInteractive(cmd, app)
		},
	}

	cmd.Flags().StringVar(&coursesFlag, "courses", "", "Comma-separated course list; renders the top schedules once instead of starting the interactive session")
	cmd.Flags().StringSliceVar(&withoutFlags, "without", nil, "Preference flags to disable (e.g. lunch_break); repeatable")

	return cmd
}

func runPlanInteractive(cmd *cobra.Command, app *app) error {
	session := application.NewSession()
	defer session.Close()

	p := tea.NewProgram(
		tui.New(app.api, application.NewProber(app.api), session),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	_, err := p.Run()
	return err
}

func runPlanOnce(cmd *cobra.Command, app *app, rawCourses string, without []string) error {
	query := domain.ParseCourseQuery(rawCourses)
	if len(query) == 0 {
		return errors.New("no courses provided")
	}

	prefs := domain.DefaultPreferenceSet()
	for _, flag := range without {
		next, err := prefs.Toggle(flag)
		if err != nil {
			return fmt.Errorf("disable preference %q: %w", flag, err)
		}
		prefs = next
	}

	result, err := app.api.RequestSchedules(cmd.Context(), query, prefs)
	if err != nil {
		return err
	}

	output, err := calendar.Render(result, 0, calendar.DefaultGrid())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}
