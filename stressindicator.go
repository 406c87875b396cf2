package stressind

import (
	"fmt"
	"os"
	"time"

	m "stressindicator/internal/model"

	"github.com/rs/zerolog"
)

// StressIndicator runs the fetch-compute-report pipeline: catalog →
// fetchers → spreads → quality report → output files. Everything is
// sequential; a per-series failure is recorded, never fatal.
type StressIndicator struct {
	stat     SeriesFetcher
	mkt      SeriesFetcher
	fred     []m.SeriesSpec
	market   []m.SeriesSpec
	formulas []m.SpreadFormula
	outDir   string
	start    time.Time
	end      time.Time
	lg       zerolog.Logger
}

type StressIndicatorConfig struct {
	StatFetcher   SeriesFetcher
	MarketFetcher SeriesFetcher
	FredSeries    []m.SeriesSpec
	MarketSeries  []m.SeriesSpec
	Spreads       []m.SpreadFormula
	OutputDir     string
	Start         time.Time
	End           time.Time
}

func NewStressIndicator(conf StressIndicatorConfig) *StressIndicator {

	return &StressIndicator{
		stat:     conf.StatFetcher,
		mkt:      conf.MarketFetcher,
		fred:     conf.FredSeries,
		market:   conf.MarketSeries,
		formulas: conf.Spreads,
		outDir:   conf.OutputDir,
		start:    conf.Start,
		end:      conf.End,
		lg:       zerolog.New(os.Stdout).With().Str("Module", "StressIndicator").Timestamp().Logger(),
	}
}

// RunResult is everything one run produced. The writer consumes it; the
// quality report inside it is the single source of truth for what
// succeeded.
type RunResult struct {
	GeneratedAt   time.Time
	Fred          []m.TimeSeries
	Market        []m.TimeSeries
	Spreads       []m.TimeSeries
	FredQuality   []m.QualityRecord
	MarketQuality []m.QualityRecord
	SpreadQuality []m.QualityRecord
	Coverage      float64
	Report        string
}

// Summary is the one-line notification text for a finished run.
func (r *RunResult) Summary() string {
	fetched := 0
	for _, rec := range r.FredQuality {
		if rec.Fetched() {
			fetched++
		}
	}
	for _, rec := range r.MarketQuality {
		if rec.Fetched() {
			fetched++
		}
	}
	target := len(r.FredQuality) + len(r.MarketQuality)
	return fmt.Sprintf("Stress indicator fetch complete: %d/%d series (%.1f%% coverage) %s",
		fetched, target, r.Coverage*100, CoverageVerdict(r.Coverage))
}

// Run executes the whole pipeline and writes all output files. The
// returned error covers file writes only; fetch and computation failures
// are recorded in the result and its report.
func (s *StressIndicator) Run() (*RunResult, error) {
	s.lg.Info().
		Time("start", s.start).
		Time("end", s.end).
		Int("target", len(s.fred)+len(s.market)).
		Msg("Starting stress indicator run")

	res := &RunResult{GeneratedAt: time.Now()}

	res.Fred = s.fetchAll(s.stat, s.fred)
	res.Market = s.fetchAll(s.mkt, s.market)

	res.Spreads = ComputeSpreads(s.formulas, res.Fred, s.lg)

	res.FredQuality = AssessAll(s.fred, res.Fred)
	res.MarketQuality = AssessAll(s.market, res.Market)
	res.SpreadQuality = AssessAll(s.spreadSpecs(), res.Spreads)
	res.Coverage = Coverage(append(append([]m.QualityRecord{}, res.FredQuality...), res.MarketQuality...))

	res.Report = RenderReport(ReportInput{
		GeneratedAt:   res.GeneratedAt,
		Start:         s.start,
		End:           s.end,
		Fred:          res.FredQuality,
		Market:        res.MarketQuality,
		Spreads:       res.Spreads,
		Formulas:      s.formulas,
		SpreadQuality: res.SpreadQuality,
		Coverage:      res.Coverage,
	})

	if err := NewWriter(s.outDir).WriteAll(res); err != nil {
		return res, fmt.Errorf("output writing incomplete\n%w", err)
	}

	s.lg.Info().Float64("coverage", res.Coverage).Msg("Run finished")
	return res, nil
}

// spreadSpecs synthesizes a catalog entry per formula so derived series
// go through the same quality assessment as raw ones. Frequency and unit
// follow the minuend; inner-joined dates never exceed its calendar.
func (s *StressIndicator) spreadSpecs() []m.SeriesSpec {

	byID := make(map[string]m.SeriesSpec, len(s.fred))
	for _, spec := range s.fred {
		byID[spec.ID] = spec
	}

	specs := make([]m.SeriesSpec, 0, len(s.formulas))
	for _, f := range s.formulas {
		spec := m.SeriesSpec{
			ID:          f.Name,
			Name:        f.Name,
			Description: f.Description,
			Frequency:   m.Daily,
			Category:    m.Spread,
		}
		if src, ok := byID[f.Minuend]; ok {
			spec.Frequency = src.Frequency
			spec.Unit = src.Unit
		}
		specs = append(specs, spec)
	}
	return specs
}

// fetchAll walks the catalog sequentially. A failed identifier becomes an
// empty series so it still shows up downstream with zero coverage.
func (s *StressIndicator) fetchAll(f SeriesFetcher, specs []m.SeriesSpec) []m.TimeSeries {

	series := make([]m.TimeSeries, 0, len(specs))
	for i, spec := range specs {
		s.lg.Debug().Str("series", spec.ID).Msgf("Fetching [%d/%d]", i+1, len(specs))

		ts, err := f.Series(spec.ID, s.start, s.end)
		if err != nil {
			s.lg.Error().Err(err).Str("series", spec.ID).Msg("Fetch failed, recorded as zero coverage")
			series = append(series, m.TimeSeries{ID: spec.ID})
			continue
		}
		series = append(series, ts)
	}
	return series
}
