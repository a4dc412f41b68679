package main

import (
	"fmt"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/kestrelworks/glidepath/internal/payoff"
	"github.com/kestrelworks/glidepath/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a safe extra debt payment",
		Long: `Compute how much extra you can safely put toward debt each month,
based on your imported balance, recurring expenses, and a safety buffer.`,
		RunE: runSuggest,
	}

	cmd.Flags().Float64P("buffer", "b", payoff.DefaultSafetyBuffer, "Safety buffer to keep untouched")
	_ = viper.BindPFlag("suggest.buffer", cmd.Flags().Lookup("buffer"))

	return cmd
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	buffer := viper.GetFloat64("suggest.buffer")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	planner := service.NewPlanner(store)
	suggestion, err := planner.SuggestExtraPayment(ctx, buffer)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("Conservative: %s\nModerate:     %s\nAggressive:   %s\n\n%s",
		cli.FormatMoney(suggestion.Conservative),
		cli.FormatMoney(suggestion.Moderate),
		cli.FormatMoney(suggestion.Aggressive),
		suggestion.Message)
	fmt.Println(cli.RenderBox("Extra payment suggestion", content))

	return nil
}
