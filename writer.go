package stressind

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	m "stressindicator/internal/model"

	"github.com/rs/zerolog"
)

// Output file names inside the trial folder.
const (
	FredDataFile      = "fred_stress_indicators.csv"
	YahooDataFile     = "yahoo_market_data.csv"
	SpreadDataFile    = "sovereign_spreads.csv"
	FredMetadataFile   = "fred_metadata.csv"
	YahooMetadataFile  = "yahoo_metadata.csv"
	SpreadMetadataFile = "spreads_metadata.csv"
	ReportFile         = "data_quality_report.txt"
)

const csvDateLayout = "2006-01-02"

// Writer serializes one run into flat files under a single directory.
// Each file is written independently; one failure never discards the
// others.
type Writer struct {
	dir string
	lg  zerolog.Logger
}

func NewWriter(dir string) *Writer {
	return &Writer{
		dir: dir,
		lg:  zerolog.New(os.Stdout).With().Str("Module", "Writer").Timestamp().Logger(),
	}
}

// WriteAll writes every output file and joins the individual failures.
func (w *Writer) WriteAll(res *RunResult) error {

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s\n%w", w.dir, err)
	}

	var errs []error
	write := func(name string, fn func(string) error) {
		path := filepath.Join(w.dir, name)
		if err := fn(path); err != nil {
			w.lg.Error().Err(err).Str("file", name).Msg("Write failed")
			errs = append(errs, err)
			return
		}
		w.lg.Info().Str("file", name).Msg("Written")
	}

	write(FredDataFile, func(p string) error { return writeWide(p, res.Fred) })
	write(YahooDataFile, func(p string) error { return writeWide(p, res.Market) })
	write(SpreadDataFile, func(p string) error { return writeWide(p, res.Spreads) })
	write(FredMetadataFile, func(p string) error { return writeMetadata(p, res.FredQuality) })
	write(YahooMetadataFile, func(p string) error { return writeMetadata(p, res.MarketQuality) })
	write(SpreadMetadataFile, func(p string) error { return writeMetadata(p, res.SpreadQuality) })
	write(ReportFile, func(p string) error { return os.WriteFile(p, []byte(res.Report), 0o644) })

	return errors.Join(errs...)
}

// writeWide writes a date-by-series table: rows are the union of dates in
// ascending order, one column per series, empty cells for missing values.
func writeWide(path string, series []m.TimeSeries) error {

	dateSet := make(map[int64]time.Time)
	values := make([]map[int64]m.Point, len(series))
	for i, ts := range series {
		values[i] = make(map[int64]m.Point, len(ts.Points))
		for _, p := range ts.Points {
			key := p.Date.Unix()
			dateSet[key] = p.Date
			values[i][key] = p
		}
	}

	keys := make([]int64, 0, len(dateSet))
	for k := range dateSet {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s\n%w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	header := make([]string, 0, len(series)+1)
	header = append(header, "date")
	for _, ts := range series {
		header = append(header, ts.ID)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, k := range keys {
		row[0] = dateSet[k].Format(csvDateLayout)
		for i := range series {
			row[i+1] = ""
			if p, ok := values[i][k]; ok && p.Valid {
				row[i+1] = strconv.FormatFloat(p.Value, 'f', -1, 64)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeMetadata writes one row per catalog entry with its spec fields and
// the computed quality fields.
func writeMetadata(path string, records []m.QualityRecord) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s\n%w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write([]string{
		"series_code", "name", "description", "frequency", "unit", "category",
		"first_date", "last_date", "observations", "missing_pct",
	}); err != nil {
		return err
	}

	for _, r := range records {
		first, last := "", ""
		if r.Fetched() {
			first = r.FirstDate.Format(csvDateLayout)
			last = r.LastDate.Format(csvDateLayout)
		}
		if err := cw.Write([]string{
			r.ID,
			r.Name,
			r.Description,
			r.Frequency.String(),
			r.Unit,
			r.Category.String(),
			first,
			last,
			strconv.Itoa(r.Observations),
			strconv.FormatFloat(r.MissingRatio*100, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
