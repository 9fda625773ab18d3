package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nestquest/internal/calc"
)

// BuildPrompt asks for a location comparison grounded in both offers' numbers.
func BuildPrompt(c calc.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compare %s and %s in terms of culture, cost, lifestyle for post-graduates. "+
		"List pros and cons for each location.\n\n",
		orUnknown(c.First.Offer.Location), orUnknown(c.Second.Offer.Location))
	writeOffer(&b, c.First)
	b.WriteString("\n")
	writeOffer(&b, c.Second)
	b.WriteString("\nConsider these financial details in your comparison and analysis.\n")
	return b.String()
}

func writeOffer(b *strings.Builder, s calc.Summary) {
	fmt.Fprintf(b, "%s Offer Details:\n", s.Offer.Company)
	fmt.Fprintf(b, "- Base Salary: %s\n", FormatMoney(s.Offer.Base))
	fmt.Fprintf(b, "- Total Compensation: %s\n", FormatMoney(s.TotalCompensation))
	fmt.Fprintf(b, "- Effective Salary: %s\n", FormatMoney(s.EffectiveSalary))
	fmt.Fprintf(b, "- FIRE Number: %s\n", FormatMoney(s.Fire.FireTarget))
	fmt.Fprintf(b, "- Years to FIRE (No Interest): %s\n", formatYears(s.Fire.YearsAt0Pct))
	fmt.Fprintf(b, "- Years to FIRE (4.25%% Return): %s\n", formatYears(s.Fire.YearsAt4_25Pct))
	fmt.Fprintf(b, "- Years to FIRE (10%% Return): %s\n", formatYears(s.Fire.YearsAt10Pct))
}

func formatYears(h calc.Horizon) string {
	if !h.Reachable {
		return "not reachable"
	}
	return strconv.FormatFloat(h.Years, 'f', 2, 64)
}

func orUnknown(location string) string {
	if strings.TrimSpace(location) == "" {
		return "an unspecified location"
	}
	return location
}

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders whole dollars with thousands separators, e.g. $120,000
// or -$1,500.
func FormatMoney(v int64) string {
	s := moneyPrinter.Sprintf("%d", v)
	if digits, ok := strings.CutPrefix(s, "-"); ok {
		return "-$" + digits
	}
	return "$" + s
}
