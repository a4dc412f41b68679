package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kestrelworks/glidepath/internal/cli"
	"github.com/kestrelworks/glidepath/internal/model"
	"github.com/kestrelworks/glidepath/internal/ofx"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import bank transactions from OFX or QFX (Quicken) statement exports.
Imported transactions drive the current balance and the variable spending
average used by forecasts and payment suggestions.

Examples:
  glidepath import-ofx ~/Downloads/checking_jan.qfx
  glidepath import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	parser := ofx.NewParser()
	seen := make(map[string]bool)
	var transactions []model.Transaction

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			slog.Error("Failed to open file", "file", path, "error", err)
			continue
		}

		parsed, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", path, "error", err)
			continue
		}

		added := 0
		for _, txn := range parsed {
			if !seen[txn.Hash] {
				seen[txn.Hash] = true
				transactions = append(transactions, txn)
				added++
			}
		}

		slog.Info("Processed file",
			"file", filepath.Base(path),
			"transactions", len(parsed),
			"added", added,
			"duplicates", len(parsed)-added)
	}

	if len(transactions) == 0 {
		fmt.Println(cli.FormatWarning("No transactions found in any file"))
		return nil
	}

	if dryRun {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("Dry run: would import %d transaction(s)", len(transactions))))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	count, err := store.GetTransactionCount(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s); %d stored in total", len(transactions), count)))
	return nil
}
