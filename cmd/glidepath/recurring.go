package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/kestrelworks/glidepath/internal/model"
	"github.com/spf13/cobra"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring transactions",
		Long: `List, add, and remove the recurring transactions (paychecks, rent,
subscriptions) that drive the balance forecast.`,
	}

	cmd.AddCommand(listRecurringCmd())
	cmd.AddCommand(addRecurringCmd())
	cmd.AddCommand(removeRecurringCmd())

	return cmd
}

func listRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			recs, err := store.GetRecurringTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get recurring transactions: %w", err)
			}

			if len(recs) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recurring transactions. Use 'glidepath recurring add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "ID\tMerchant\tAmount\tFrequency\tNext due\tActive\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 20), strings.Repeat("-", 10),
				strings.Repeat("-", 9), strings.Repeat("-", 10), strings.Repeat("-", 6))

			for _, rec := range recs {
				active := "yes"
				if !rec.Active {
					active = "no"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					rec.ID, rec.MerchantPattern, cli.FormatMoney(rec.AverageAmount),
					rec.Frequency, rec.NextExpectedDate.Format("2006-01-02"), active)
			}

			return nil
		},
	}
}

func addRecurringCmd() *cobra.Command {
	var (
		frequency string
		nextDate  string
	)

	cmd := &cobra.Command{
		Use:   "add <merchant> <amount>",
		Short: "Add a recurring transaction",
		Long: `Record an expected repeating cash flow. Use a positive amount for income
and a negative amount for an expense.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			next, err := time.Parse("2006-01-02", nextDate)
			if err != nil {
				return fmt.Errorf("invalid next date %q (want YYYY-MM-DD): %w", nextDate, err)
			}

			freq := model.Frequency(frequency)
			if !freq.IsValid() {
				return fmt.Errorf("invalid frequency %q (want weekly, biweekly, monthly, or quarterly)", frequency)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec := &model.RecurringTransaction{
				MerchantPattern:  args[0],
				AverageAmount:    amount,
				Frequency:        freq,
				NextExpectedDate: next,
				Active:           true,
			}
			if err := store.SaveRecurringTransaction(ctx, rec); err != nil {
				return fmt.Errorf("failed to save recurring transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added recurring transaction %q (id %d)", rec.MerchantPattern, rec.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "frequency (weekly, biweekly, monthly, quarterly)")
	cmd.Flags().StringVar(&nextDate, "next", time.Now().Format("2006-01-02"), "next expected date (YYYY-MM-DD)")

	return cmd
}

func removeRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a recurring transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteRecurringTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to remove recurring transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed recurring transaction %d", id)))
			return nil
		},
	}
}
