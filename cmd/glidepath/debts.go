package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/kestrelworks/glidepath/internal/model"
	"github.com/spf13/cobra"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Manage debt records",
		Long:  `List, add, and remove the debts that payoff plans are computed from.`,
	}

	cmd.AddCommand(listDebtsCmd())
	cmd.AddCommand(addDebtCmd())
	cmd.AddCommand(removeDebtCmd())

	return cmd
}

func listDebtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			debts, err := store.GetDebts(ctx)
			if err != nil {
				return fmt.Errorf("failed to get debts: %w", err)
			}

			if len(debts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No debts recorded. Use 'glidepath debts add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tTitle\tBalance\tAPR\tPaid/Total\tMin payment\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 20), strings.Repeat("-", 10),
				strings.Repeat("-", 6), strings.Repeat("-", 10), strings.Repeat("-", 11))

			var total float64
			for _, d := range debts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.1f%%\t%d/%d\t%s\n",
					d.ID, d.Title, cli.FormatMoney(d.RemainingAmount), d.InterestRate,
					d.InstallmentsPaid, d.InstallmentsTotal, cli.FormatMoney(d.MinimumPayment()))
				total += d.RemainingAmount
			}
			fmt.Fprintf(w, "\tTotal\t%s\t\t\t\n", cli.FormatMoney(total))

			return nil
		},
	}
}

func addDebtCmd() *cobra.Command {
	var (
		rate  float64
		total int
		paid  int
	)

	cmd := &cobra.Command{
		Use:   "add <title> <balance>",
		Short: "Add a new debt",
		Long:  `Record a debt with its outstanding balance, annual interest rate, and installment term.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			balance, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			debt := &model.Debt{
				Title:             args[0],
				RemainingAmount:   balance,
				InterestRate:      rate,
				InstallmentsTotal: total,
				InstallmentsPaid:  paid,
			}
			if err := store.SaveDebt(ctx, debt); err != nil {
				return fmt.Errorf("failed to save debt: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added debt %q (id %d)", debt.Title, debt.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent (e.g. 18.0)")
	cmd.Flags().IntVar(&total, "installments", 0, "total number of installments")
	cmd.Flags().IntVar(&paid, "paid", 0, "installments already paid")

	return cmd
}

func removeDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid debt id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteDebt(ctx, id); err != nil {
				return fmt.Errorf("failed to remove debt: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed debt %d", id)))
			return nil
		},
	}
}
