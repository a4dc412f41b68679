package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/kestrelworks/glidepath/internal/forecast"
	"github.com/kestrelworks/glidepath/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project your balance into the future",
		Long: `Project your daily balance from active recurring transactions and your
historical variable spending, with optimistic and pessimistic bands and
low-balance alerts.`,
		RunE: runForecast,
	}

	cmd.Flags().IntP("days", "d", 30, "Number of days to project")
	cmd.Flags().Bool("json", false, "Output the full forecast as JSON")

	_ = viper.BindPFlag("forecast.days", cmd.Flags().Lookup("days"))
	_ = viper.BindPFlag("forecast.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	days := viper.GetInt("forecast.days")
	asJSON := viper.GetBool("forecast.json")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	forecaster := service.NewForecaster(store)
	result, err := forecaster.ComputeForecast(ctx, days)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Balance forecast for the next %d days", days)))
	fmt.Println(cli.RenderBox("Summary", renderForecastSummary(&result.Summary)))

	for _, alert := range result.Alerts {
		switch alert.Severity {
		case forecast.SeverityWarning:
			fmt.Println(cli.FormatWarning(alert.Message))
		default:
			fmt.Println(cli.FormatInfo(alert.Message))
		}
	}

	return nil
}

func renderForecastSummary(summary *forecast.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current balance:    %s\n", cli.FormatMoney(summary.StartBalance))
	fmt.Fprintf(&b, "Projected balance:  %s\n", cli.FormatMoney(summary.EndBalance))
	fmt.Fprintf(&b, "Projected income:   %s\n", cli.FormatMoney(summary.TotalIncome))
	fmt.Fprintf(&b, "Projected expenses: %s", cli.FormatMoney(summary.TotalExpenses))
	if summary.DaysUntilLowBalance >= 0 {
		fmt.Fprintf(&b, "\nLow balance in:     %d day(s)", summary.DaysUntilLowBalance)
	}
	return b.String()
}
