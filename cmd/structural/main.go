// Command structural prepares the auxiliary data folder for the other
// statistical agencies' APIs: World Bank structural series per stress-test
// country, plus sample ECB SDW, IMF SDMX and BIS documents. Every endpoint
// fails gracefully; provenance is recorded in structural_metadata.csv.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	dataDir       = "data_repository"
	rawDir        = dataDir + "/raw"
	structuralDir = rawDir + "/structural"
	metadataFile  = structuralDir + "/structural_metadata.csv"

	worldBankURL = "https://api.worldbank.org/v2/country/%s/indicator/%s?format=json&per_page=2000"
)

var countries = []string{"FRA", "DEU", "ITA", "ESP", "USA", "GBR", "CHE"}

var indicators = map[string]string{
	"GC.DOD.TOTL.GD.ZS": "general_government_gross_debt_pct_gdp",
}

type download struct {
	SeriesId  string
	Url       string
	Filename  string
	Notes     string
	Frequency string
}

var downloads = []download{
	{
		SeriesId:  "BSI:M.U2.N.A.A20.A.1.U2.3000.Z01.E",
		Url:       "https://sdw-wsrest.ecb.europa.eu/service/data/BSI/M.U2.N.A.A20.A.1.U2.3000.Z01.E?detail=dataonly&startPeriod=2018-01&format=sdmx-json",
		Filename:  "ecb_bsi_loans_nfc.json",
		Notes:     "ECB BSI - Loans to NFCs (Euro area)",
		Frequency: "monthly",
	},
	{
		SeriesId:  "IFS:USA.NGDP_R",
		Url:       "https://dataservices.imf.org/REST/SDMX_JSON.svc/CompactData/IFS/USA.NGDP_R?startPeriod=2015",
		Filename:  "imf_ifs_usa_ngdp.json",
		Notes:     "IMF IFS real GDP (USA)",
		Frequency: "annual",
	},
	{
		SeriesId:  "BIS:LBS_D_PUB",
		Url:       "https://stats.bis.org/api/views/LBS_D_PUB/CSV?downloadfilename=LBS_D_PUB.csv",
		Filename:  "bis_lbs_d_pub.csv",
		Notes:     "BIS Locational Banking Statistics (public CSV)",
		Frequency: "quarterly",
	},
}

type provenance struct {
	SeriesId  string
	Url       string
	Filename  string
	Ok        bool
	Notes     string
	Frequency string
}

func main() {

	lg := zerolog.New(os.Stdout).With().Str("Module", "Structural").Timestamp().Logger()

	for _, dir := range []string{dataDir, rawDir, structuralDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}

	client := &http.Client{Timeout: 30 * time.Second}
	summary := make([]provenance, 0)

	for _, country := range countries {
		for indicator, name := range indicators {
			url := fmt.Sprintf(worldBankURL, country, indicator)
			filename := fmt.Sprintf("%s_%s.csv", name, country)

			err := fetchWorldBank(client, url, country, indicator, filepath.Join(structuralDir, filename))
			if err != nil {
				lg.Error().Err(err).Str("country", country).Str("indicator", indicator).Msg("World Bank fetch failed")
			} else {
				lg.Info().Str("file", filename).Msg("World Bank series written")
			}
			summary = append(summary, provenance{
				SeriesId: "WB:" + indicator + "." + country, Url: url, Filename: filename,
				Ok: err == nil, Notes: "World Bank " + name, Frequency: "annual",
			})
		}
	}

	for _, d := range downloads {
		err := fetchToFile(client, d.Url, filepath.Join(structuralDir, d.Filename))
		if err != nil {
			lg.Error().Err(err).Str("series", d.SeriesId).Msg("Download failed")
		} else {
			lg.Info().Str("file", d.Filename).Msg("Downloaded")
		}
		summary = append(summary, provenance{
			SeriesId: d.SeriesId, Url: d.Url, Filename: d.Filename,
			Ok: err == nil, Notes: d.Notes, Frequency: d.Frequency,
		})
	}

	if err := writeMetadata(metadataFile, summary); err != nil {
		lg.Error().Err(err).Msg("Metadata write failed")
		os.Exit(1)
	}

	ok := 0
	for _, p := range summary {
		if p.Ok {
			ok++
		}
	}
	lg.Info().Int("ok", ok).Int("total", len(summary)).Str("metadata", metadataFile).Msg("Structural fetch complete")
}

type wbRecord struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// fetchWorldBank writes one country/indicator series as CSV. The World
// Bank payload is a two-element array: paging info, then the records.
func fetchWorldBank(client *http.Client, url, country, indicator, outPath string) error {

	res, err := client.Get(url)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return err
	}
	if len(payload) < 2 {
		return fmt.Errorf("no data returned for %s %s", country, indicator)
	}

	var records []wbRecord
	if err := json.Unmarshal(payload[1], &records); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"country", "year", "value", "indicator"}); err != nil {
		return err
	}
	for _, r := range records {
		if r.Value == nil {
			continue
		}
		if err := cw.Write([]string{country, r.Date, strconv.FormatFloat(*r.Value, 'f', -1, 64), indicator}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fetchToFile(client *http.Client, url, outPath string) error {

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "stressindicator-structural/1.0")

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, res.Body)
	return err
}

func writeMetadata(path string, summary []provenance) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"series_id", "url", "filename", "status", "fetched_at", "notes", "frequency"}); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range summary {
		status := "OK"
		if !p.Ok {
			status = "FAIL"
		}
		if err := cw.Write([]string{p.SeriesId, p.Url, p.Filename, status, now, p.Notes, p.Frequency}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
