package main

import (
	"fmt"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change forecast settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show forecast settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetForecastSettings(ctx)
			if err != nil {
				return err
			}

			variable := "included"
			if !settings.IncludeVariableSpending {
				variable = "excluded"
			}
			content := fmt.Sprintf("Low balance threshold: %s\nAlert window:          %d days\nVariable spending:     %s",
				cli.FormatMoney(settings.LowBalanceThreshold), settings.AlertDaysAhead, variable)
			fmt.Println(cli.RenderBox("Forecast settings", content))

			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		threshold float64
		daysAhead int
		variable  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change forecast settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetForecastSettings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("threshold") {
				settings.LowBalanceThreshold = threshold
			}
			if cmd.Flags().Changed("days-ahead") {
				settings.AlertDaysAhead = daysAhead
			}
			if cmd.Flags().Changed("variable-spending") {
				settings.IncludeVariableSpending = variable
			}

			if err := store.SaveForecastSettings(ctx, settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Forecast settings updated"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0, "low balance alert threshold")
	cmd.Flags().IntVar(&daysAhead, "days-ahead", 0, "days ahead to scan for low balance")
	cmd.Flags().BoolVar(&variable, "variable-spending", true, "include variable spending in projections")

	return cmd
}
