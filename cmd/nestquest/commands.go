package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nestquest/internal/api"
	"nestquest/internal/calc"
	"nestquest/internal/ports"
	"nestquest/internal/services/narrative"
	"nestquest/internal/taxtable"
)

var offersPath string

var summaryCmd = &cobra.Command{
	Use:   "summary [offer...]",
	Short: "Summarize offers from the offers file",
	Long: `Summarize every offer in the offers file, or only the ones named by
position (1, 2, ...) or company. The file looks like:

  offers:
    - company: Acme
      location: Austin, TX
      base: 120000
      bonus: 10000
      signOn: 20000
      equity: { type: RSU, amount: 400, vestingPeriodYears: 4, marketRatePerUnit: 100 }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCalculator()
		if err != nil {
			return err
		}
		offers, err := readOffers(offersPath)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			selected := offers[:0:0]
			for _, ref := range args {
				o, err := findOffer(offers, ref)
				if err != nil {
					return err
				}
				selected = append(selected, o)
			}
			offers = selected
		}

		out := cmd.OutOrStdout()
		summaries := make([]calc.Summary, 0, len(offers))
		for _, o := range offers {
			summaries = append(summaries, c.Summarize(o))
		}
		if jsonOutput {
			views := make([]api.Summary, 0, len(summaries))
			for _, s := range summaries {
				views = append(views, api.FromSummary(s))
			}
			return writeJSON(out, views)
		}
		for i, s := range summaries {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeSummary(out, s)
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare FIRST SECOND",
	Short: "Compare two offers side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCalculator()
		if err != nil {
			return err
		}
		offers, err := readOffers(offersPath)
		if err != nil {
			return err
		}
		first, err := findOffer(offers, args[0])
		if err != nil {
			return err
		}
		second, err := findOffer(offers, args[1])
		if err != nil {
			return err
		}
		if first.ID == second.ID {
			return fmt.Errorf("cannot compare an offer with itself")
		}

		cmp := c.Compare(first, second)
		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, api.FromComparison(ports.ComparisonView{Comparison: cmp}))
		}
		writeComparison(out, cmp)
		return nil
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List locations in the reference tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCalculator()
		if err != nil {
			return err
		}
		locs := c.Tables().Locations()
		out := cmd.OutOrStdout()
		if jsonOutput {
			views := make([]api.Location, 0, len(locs))
			for _, l := range locs {
				views = append(views, api.FromLocation(l))
			}
			return writeJSON(out, views)
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LOCATION\tRENT/MO\tFOOD/MO\tSTATE SUPPL.\tLOCAL SUPPL.")
		for _, l := range locs {
			fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%s\t%s\n", l.Key(), l.MonthlyRent, l.MonthlyFood,
				percent(l.StateSupplementalTaxRate), percent(l.LocalSupplementalTaxRate))
		}
		return tw.Flush()
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Work with reference table files",
}

var tablesValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a reference table file for malformed brackets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := taxtable.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", tables)
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(w io.Writer, s calc.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n", s.Offer.Company, location(s))
	fmt.Fprintf(tw, "  Total compensation\t%s\n", narrative.FormatMoney(s.TotalCompensation))
	fmt.Fprintf(tw, "  Taxes (fed/state/local)\t%s / %s / %s\n",
		narrative.FormatMoney(s.Budget.FederalTax), narrative.FormatMoney(s.Budget.StateTax), narrative.FormatMoney(s.Budget.LocalTax))
	fmt.Fprintf(tw, "  Effective salary\t%s\n", narrative.FormatMoney(s.EffectiveSalary))
	fmt.Fprintf(tw, "  Rent / food / other\t%s / %s / %s\n",
		narrative.FormatMoney(s.Budget.Rent), narrative.FormatMoney(s.Budget.Food), narrative.FormatMoney(s.Budget.OtherExpenses))
	fmt.Fprintf(tw, "  Savings\t%s\n", narrative.FormatMoney(s.Budget.Savings))
	fmt.Fprintf(tw, "  FIRE number\t%s\n", narrative.FormatMoney(s.Fire.FireTarget))
	fmt.Fprintf(tw, "  Years to FIRE (0%% / 4.25%% / 10%%)\t%s / %s / %s\n",
		years(s.Fire.YearsAt0Pct), years(s.Fire.YearsAt4_25Pct), years(s.Fire.YearsAt10Pct))
	_ = tw.Flush()
}

func writeComparison(w io.Writer, c calc.Comparison) {
	writeSummary(w, c.First)
	fmt.Fprintln(w)
	writeSummary(w, c.Second)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Difference (%s minus %s)\n", c.Second.Offer.Company, c.First.Offer.Company)
	fmt.Fprintf(w, "  Total compensation  %s\n", signedMoney(c.Delta.TotalCompensation))
	fmt.Fprintf(w, "  Effective salary    %s\n", signedMoney(c.Delta.EffectiveSalary))
	fmt.Fprintf(w, "  FIRE number         %s\n", signedMoney(c.Delta.FireTarget))
	switch c.Delta.FasterToFire {
	case calc.LeaderFirst:
		fmt.Fprintf(w, "  %s reaches FIRE first at 4.25%%\n", c.First.Offer.Company)
	case calc.LeaderSecond:
		fmt.Fprintf(w, "  %s reaches FIRE first at 4.25%%\n", c.Second.Offer.Company)
	case calc.LeaderTie:
		fmt.Fprintln(w, "  Both reach FIRE at the same time at 4.25%")
	default:
		fmt.Fprintln(w, "  Neither offer reaches FIRE")
	}
}

func location(s calc.Summary) string {
	if s.Location == nil {
		if s.Offer.Location == "" {
			return "no location"
		}
		return s.Offer.Location + ", not in reference tables"
	}
	return s.Location.Key()
}

func years(h calc.Horizon) string {
	if !h.Reachable {
		return "not reachable"
	}
	return fmt.Sprintf("%.2f", h.Years)
}

func signedMoney(v int64) string {
	if v > 0 {
		return "+" + narrative.FormatMoney(v)
	}
	return narrative.FormatMoney(v)
}

func percent(rate float64) string {
	if rate == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", rate*100)
}
