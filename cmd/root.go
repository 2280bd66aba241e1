package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "owlplanner",
		Short:         "OwlPlanner: generate and browse weekly course schedules",
		Long:          "owlplanner asks the remote scheduling service for conflict-free weekly schedules matching your course list and preferences, and renders them as a selectable calendar in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlanCmd(app),
		newCoursesCmd(app),
	)

	return rootCmd
}
