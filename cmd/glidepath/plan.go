package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/kestrelworks/glidepath/internal/payoff"
	"github.com/kestrelworks/glidepath/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compare debt payoff strategies",
		Long: `Simulate paying off your debts month by month under both the avalanche
(highest interest first) and snowball (smallest balance first) strategies,
and recommend one.`,
		RunE: runPlan,
	}

	cmd.Flags().Float64P("extra", "e", 0, "Extra monthly payment to apply")
	cmd.Flags().Bool("json", false, "Output the full comparison as JSON")

	_ = viper.BindPFlag("plan.extra", cmd.Flags().Lookup("extra"))
	_ = viper.BindPFlag("plan.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	extra := viper.GetFloat64("plan.extra")
	asJSON := viper.GetBool("plan.json")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	planner := service.NewPlanner(store)
	result, err := planner.ComputeStrategy(ctx, extra)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Avalanche.Months == 0 {
		fmt.Println(cli.InfoStyle.Render("No debts recorded, nothing to plan."))
		return nil
	}

	fmt.Println(cli.FormatTitle("Debt payoff comparison"))
	fmt.Println(renderPlanSummary(&result.Avalanche))
	fmt.Println(renderPlanSummary(&result.Snowball))

	verdict := fmt.Sprintf("Recommendation: %s\n%s", strings.ToUpper(result.Comparison.Recommendation), result.Comparison.Reasoning)
	if result.Comparison.MonthsSaved != 0 || result.Comparison.InterestSaved != 0 {
		verdict += fmt.Sprintf("\n\nInterest difference: %s  Months difference: %d",
			cli.FormatMoney(result.Comparison.InterestSaved), result.Comparison.MonthsSaved)
	}
	fmt.Println(cli.RenderBox("Verdict", verdict))

	if result.Avalanche.Months == payoff.MaxSimulationMonths {
		fmt.Println(cli.FormatWarning("At the current minimum payments these debts may never be paid off."))
	}

	return nil
}

func renderPlanSummary(plan *payoff.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payoff time: %d months (%.1f years)\n", plan.Months, plan.Years)
	fmt.Fprintf(&b, "Total interest: %s\n", cli.FormatMoney(plan.TotalInterestPaid))
	fmt.Fprintf(&b, "Total paid: %s\n", cli.FormatMoney(plan.TotalPaid))

	order := make([]string, 0, len(plan.PayoffOrder))
	for _, ref := range plan.PayoffOrder {
		order = append(order, ref.Title)
	}
	fmt.Fprintf(&b, "Order: %s", strings.Join(order, " → "))

	return cli.RenderBox(strings.ToTitle(plan.Method[:1])+plan.Method[1:], b.String())
}
