package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smartspend/internal/aggregator"
	"smartspend/internal/core"
	"smartspend/internal/services"
	"smartspend/internal/store/memory"
)

type rootOptions struct {
	rules  string
	period string
	asOf   string
}

// NewRootCommand builds the smartspend-cli command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "smartspend-cli",
		Short:         "Classify transactions and print budget reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.rules, "rules", os.Getenv("RULES_FILE"), "YAML rules file (built-in rules when empty)")

	root.AddCommand(newClassifyCommand(opts), newImportCommand(opts), newDemoCommand(opts))
	return root
}

func addReportFlags(cmd *cobra.Command, opts *rootOptions) {
	cmd.Flags().StringVar(&opts.period, "period", string(aggregator.All), "report window: all, last30 or last90")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "evaluate windows as of this date (YYYY-MM-DD), default today")
}

func newClassifyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <description...>",
		Short: "Show which category a description falls into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := LoadClassifier(opts.rules)
			if err != nil {
				return err
			}
			m := cls.Explain(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Category: %s\n", m.Category)
			if m.Fallback() {
				fmt.Fprintln(out, "Rule:     none (fallback)")
			} else {
				fmt.Fprintf(out, "Rule:     #%d (keyword %q)\n", m.RuleIndex+1, m.Keyword)
			}
			return nil
		},
	}
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV export and print the budget report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, window, err := newLocalService(opts)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer f.Close()

			res, err := svc.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions (%d skipped)\n\n", res.Imported, res.Skipped)
			return printReport(cmd, svc, window)
		},
	}
	addReportFlags(cmd, opts)
	return cmd
}

func newDemoCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the budget report for the bundled demo month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, window, err := newLocalService(opts)
			if err != nil {
				return err
			}
			res, err := svc.LoadDemo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d demo transactions\n\n", res.Imported)
			return printReport(cmd, svc, window)
		},
	}
	addReportFlags(cmd, opts)
	return cmd
}

// newLocalService builds an in-memory ledger for one CLI run.
func newLocalService(opts *rootOptions) (*services.LedgerService, aggregator.Window, error) {
	window, err := aggregator.ParseWindow(opts.period)
	if err != nil {
		return nil, "", err
	}
	cls, err := LoadClassifier(opts.rules)
	if err != nil {
		return nil, "", err
	}
	svc := services.NewLedgerService(memory.New(nil), cls, nil)
	if opts.asOf != "" {
		t, err := core.ParseDate(opts.asOf)
		if err != nil {
			return nil, "", fmt.Errorf("--as-of: %w", err)
		}
		svc.WithClock(func() time.Time { return t })
	}
	return svc, window, nil
}
