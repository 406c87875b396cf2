package stressind

import (
	"fmt"
	"sort"
	"strings"
	"time"

	m "stressindicator/internal/model"
)

const reportRule = "======================================================================"
const reportSubRule = "----------------------------------------------------------------------"

const reportDateLayout = "2006-01-02"

// Coverage verdict tiers. Thresholds documented in DESIGN.md.
const (
	excellentCoverage = 0.9
	goodCoverage      = 0.7
	fairCoverage      = 0.5
)

func CoverageVerdict(coverage float64) string {
	switch {
	case coverage >= excellentCoverage:
		return "[OK] EXCELLENT - Ready for stress testing!"
	case coverage >= goodCoverage:
		return "[OK] GOOD - Sufficient for stress testing"
	case coverage >= fairCoverage:
		return "[!!] FAIR - May need additional data sources"
	default:
		return "[!!] POOR - Review API keys and connectivity"
	}
}

type ReportInput struct {
	GeneratedAt   time.Time
	Start         time.Time
	End           time.Time
	Fred          []m.QualityRecord
	Market        []m.QualityRecord
	Spreads       []m.TimeSeries
	Formulas      []m.SpreadFormula
	SpreadQuality []m.QualityRecord
	Coverage      float64
}

// RenderReport produces the fixed-order plain-text quality report:
// header, FRED summary, market summary, spread latest values, coverage
// verdict. It must render sensibly even when nothing was fetched.
func RenderReport(in ReportInput) string {

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(reportRule)
	line("STRESS TESTING INDICATORS - DATA QUALITY REPORT")
	line(reportRule)
	line("Generated: %s", in.GeneratedAt.Format("2006-01-02 15:04:05"))
	line("Date Range: %s to %s", in.Start.Format(reportDateLayout), in.End.Format(reportDateLayout))
	line("")

	line("1. FRED DATA SUMMARY")
	line(reportSubRule)
	renderProviderSection(line, in.Fred, true)
	line("")

	line("2. YAHOO FINANCE DATA SUMMARY")
	line(reportSubRule)
	renderProviderSection(line, in.Market, false)
	line("")

	line("3. COMPUTED SOVEREIGN SPREADS")
	line(reportSubRule)
	renderSpreadSection(line, in.Spreads, in.Formulas, in.SpreadQuality)
	line("")

	line(reportRule)
	line("COVERAGE ASSESSMENT")
	line(reportRule)
	target := len(in.Fred) + len(in.Market)
	fetched := fetchedCount(in.Fred) + fetchedCount(in.Market)
	line("Target Indicators: %d", target)
	line("Successfully Fetched: %d", fetched)
	line("Coverage: %.1f%%", in.Coverage*100)
	line("")
	line(CoverageVerdict(in.Coverage))
	line("")
	line(reportRule)

	return b.String()
}

func renderProviderSection(line func(string, ...any), records []m.QualityRecord, byCategory bool) {

	fetched := fetchedCount(records)
	if fetched == 0 {
		line("No data available")
		return
	}

	first, last := providerSpan(records)
	line("Total Series Fetched: %d", fetched)
	line("Date Range: %s to %s", first.Format(reportDateLayout), last.Format(reportDateLayout))
	line("Total Observations: %d", totalObservations(records))

	if byCategory {
		line("")
		line("By Category:")
		order, means := CategoryMissing(records)
		for _, c := range order {
			line("  %s: %d series, %.2f%% missing", capitalize(c.String()), categoryCount(records, c), means[c]*100)
		}
	}

	line("")
	line("Data Quality:")
	line("  Overall Missing Data: %.2f%%", overallMissing(records)*100)

	if byCategory {
		line("  Top 5 Series with Missing Data:")
		for _, r := range worstMissing(records, 5) {
			line("    %s: %.1f%%", r.Name, r.MissingRatio*100)
		}
	}
}

func renderSpreadSection(line func(string, ...any), spreads []m.TimeSeries, formulas []m.SpreadFormula, records []m.QualityRecord) {

	computed := 0
	for _, ts := range spreads {
		if !ts.Empty() {
			computed++
		}
	}

	line("Total Spreads Computed: %d", computed)
	if computed == 0 {
		line("No spreads computed")
		return
	}

	desc := make(map[string]string, len(formulas))
	for _, f := range formulas {
		desc[f.Name] = f.Description
	}

	line("")
	line("Latest Values:")
	for _, ts := range spreads {
		date, v, ok := ts.Latest()
		if !ok {
			line("  %s: no data (%s)", ts.ID, desc[ts.ID])
			continue
		}
		line("  %s: %.2f bps (%s, as of %s)", ts.ID, v, desc[ts.ID], date.Format(reportDateLayout))
	}

	if len(records) == 0 {
		return
	}
	line("")
	line("Data Quality:")
	for _, r := range records {
		line("  %s: %d obs, %.2f%% missing", r.ID, r.Observations, r.MissingRatio*100)
	}
}

func fetchedCount(records []m.QualityRecord) int {
	n := 0
	for _, r := range records {
		if r.Fetched() {
			n++
		}
	}
	return n
}

func totalObservations(records []m.QualityRecord) int {
	n := 0
	for _, r := range records {
		n += r.Observations
	}
	return n
}

func categoryCount(records []m.QualityRecord, c m.Category) int {
	n := 0
	for _, r := range records {
		if r.Fetched() && r.Category == c {
			n++
		}
	}
	return n
}

// providerSpan is the widest [first, last] over fetched series.
func providerSpan(records []m.QualityRecord) (time.Time, time.Time) {
	var first, last time.Time
	for _, r := range records {
		if !r.Fetched() {
			continue
		}
		if first.IsZero() || r.FirstDate.Before(first) {
			first = r.FirstDate
		}
		if r.LastDate.After(last) {
			last = r.LastDate
		}
	}
	return first, last
}

// overallMissing is the mean missing ratio across fetched series.
func overallMissing(records []m.QualityRecord) float64 {
	fetched := 0
	sum := 0.0
	for _, r := range records {
		if r.Fetched() {
			fetched++
			sum += r.MissingRatio
		}
	}
	if fetched == 0 {
		return 0
	}
	return sum / float64(fetched)
}

func worstMissing(records []m.QualityRecord, n int) []m.QualityRecord {
	fetched := make([]m.QualityRecord, 0, len(records))
	for _, r := range records {
		if r.Fetched() {
			fetched = append(fetched, r)
		}
	}
	sort.SliceStable(fetched, func(i, j int) bool {
		return fetched[i].MissingRatio > fetched[j].MissingRatio
	})
	if len(fetched) > n {
		fetched = fetched[:n]
	}
	return fetched
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
