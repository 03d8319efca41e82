package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartspend/internal/aggregator"
	"smartspend/internal/core"
	"smartspend/internal/recommend"
	"smartspend/internal/services"
)

func printReport(cmd *cobra.Command, svc *services.LedgerService, w aggregator.Window) error {
	r, err := svc.Report(cmd.Context(), w)
	if err != nil {
		return err
	}
	renderReport(cmd.OutOrStdout(), r, recommend.Build(r))
	return nil
}

func renderReport(out io.Writer, r aggregator.Report, v recommend.View) {
	fmt.Fprintf(out, "Period:       %s (%d transactions)\n", r.Window, r.Count)
	fmt.Fprintf(out, "Total spend:  %s of %s budgeted\n", core.FormatRupees(r.Total), core.FormatRupees(r.TotalTarget))
	fmt.Fprintf(out, "Status:       %s", r.Status.Label)
	if r.Status.OverBudget {
		fmt.Fprintf(out, " (%d categories)", r.Status.CategoriesOver)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Top category: %s\n", v.TopInsight)

	if len(v.Breakdown) > 0 {
		fmt.Fprintln(out)
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tSPENT\tTARGET\tUSED\tNOTE")
		for _, b := range v.Breakdown {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s%%\t%s\n",
				b.Category, core.FormatRupees(b.Amount), core.FormatRupees(b.Target), b.Percentage.String(), b.Note)
		}
		tw.Flush()
	}

	fmt.Fprintln(out)
	if len(v.Exceeding) == 0 {
		fmt.Fprintln(out, v.OnBudget)
	} else {
		fmt.Fprintln(out, "Exceeding budget:")
		for _, e := range v.Exceeding {
			fmt.Fprintf(out, "  %s: %s\n", e.Category, e.Detail)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Recommendation: %s\n", v.Primary)
	if len(v.Tips) > 0 {
		fmt.Fprintln(out, "Tips:")
		for _, tip := range v.Tips {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
	}
}
