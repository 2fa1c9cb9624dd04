package scrape

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/oarkflow/anonymizer"
	"github.com/oarkflow/errors"
	"github.com/oarkflow/search"
	"github.com/sirupsen/logrus"

	"github.com/oarkflow/tradesignal/config"
	"github.com/oarkflow/tradesignal/feed"
	"github.com/oarkflow/tradesignal/feed/csv"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/102.0.5005.115 Safari/537.36"

// headerMapping renames the site's table headers to canonical sheet columns
var headerMapping = map[string]string{
	"Symbol":      "Symbol",
	"Open":        "OpenPrice",
	"High":        "HighPrice",
	"Low":         "LowPrice",
	"Close":       "ClosePrice",
	"VWAP":        "VWAP",
	"Vol":         "Volume",
	"Prev. Close": "PreviousClose",
	"Turnover":    "Turnover",
	"Trans.":      "Transactions",
}

// Scrape fetches today's share-price table, unless the engine already
// holds rows for today
func Scrape(dataDir string) error {
	now := time.Now()

	engine, err := search.GetEngine[map[string]any](feed.EngineName)
	if err == nil {
		result, err := engine.Search(&search.Params{
			Query:      now.Format(time.DateOnly),
			Properties: []string{"Date"},
		})
		if err == nil && result.Count > 0 {
			logrus.Infof("sheet for %v already ingested, scrape skipped", now.Format(time.DateOnly))
			return nil
		}
	}

	return FetchDay(now, dataDir)
}

// FetchDay downloads one day's table and writes the canonical daily sheet
func FetchDay(day time.Time, dataDir string) error {
	url := config.Config.ScrapeURL
	table := ScrapeTable(url, config.Config.ScrapeDomain)
	if len(table) < 2 {
		return errors.New("no table rows scraped from " + url)
	}

	rows, err := CanonicalRows(table, day)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return errors.NewE(err, "creating data directory", "")
	}

	path := feed.DailyFileName(dataDir, day)
	if err := csv.ExportFile(path, feed.Columns, rows); err != nil {
		return err
	}

	logrus.Infof("scraped %v rows into %v", len(rows), path)
	return nil
}

// ScrapeTable collects the first bordered table at url as text cells,
// header row first, duplicate rows removed
func ScrapeTable(url, domain string) [][]string {
	options := []colly.CollectorOption{
		colly.UserAgent(userAgent),
	}
	if domain != "" {
		options = append(options, colly.AllowedDomains(domain))
	}
	c := colly.NewCollector(options...)

	var df [][]string
	var headers []string

	c.OnHTML("table.table-bordered", func(e *colly.HTMLElement) {
		e.ForEach("tr", func(_ int, el *colly.HTMLElement) {
			var row []string
			el.ForEach("th, td", func(_ int, cell *colly.HTMLElement) {
				row = append(row, strings.TrimSpace(cell.Text))
			})
			if len(headers) == 0 {
				headers = row
			} else {
				df = append(df, row)
			}
		})
	})

	c.OnRequest(func(r *colly.Request) {
		logrus.Infof("visiting %v", r.URL.String())
	})

	c.OnError(func(r *colly.Response, err error) {
		logrus.Warnf("scrape error: %v: %v", r.StatusCode, err)
	})

	c.Visit(url)

	if headers == nil {
		return nil
	}
	return append([][]string{headers}, dedupe(df)...)
}

func dedupe(rows [][]string) [][]string {
	unique := make(map[string]bool)
	var out [][]string
	for _, row := range rows {
		key := strings.Join(row, ",")
		if !unique[key] {
			unique[key] = true
			out = append(out, append([]string{}, row...))
		}
	}
	return out
}

// CanonicalRows projects a scraped table onto the canonical sheet
// columns and stamps every row with the trading day
func CanonicalRows(table [][]string, day time.Time) ([]map[string]any, error) {
	position := map[string]int{}
	for i, header := range table[0] {
		if canonical, ok := headerMapping[header]; ok {
			position[canonical] = i
		}
	}
	if _, ok := position["Symbol"]; !ok {
		return nil, errors.New("scraped table has no Symbol column")
	}
	if _, ok := position["ClosePrice"]; !ok {
		return nil, errors.New("scraped table has no Close column")
	}

	date := day.Format("2006-01-02")
	rows := make([]map[string]any, 0, len(table)-1)
	for _, record := range table[1:] {
		row := map[string]any{"Date": date}
		for _, column := range feed.Columns {
			if column == "Date" {
				continue
			}
			idx, ok := position[column]
			if !ok || idx >= len(record) {
				row[column] = ""
				continue
			}
			value := record[idx]
			if column != "Symbol" {
				// the site prints numbers with thousands separators,
				// sheets store them plain
				value = strings.ReplaceAll(value, ",", "")
			}
			row[column] = value
		}
		if row["Symbol"] == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NormalizeDataDir renames legacy hyphenated sheet files to the
// canonical underscore form and rewrites site-style headers
func NormalizeDataDir(dir string) error {
	dirInfos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, dirInfo := range dirInfos {
		name := dirInfo.Name()
		if filepath.Ext(name) != ".csv" {
			continue
		}

		path := filepath.Join(dir, name)
		if strings.Contains(name, "-") {
			output, err := anonymizer.Transform("<year>-<month>-<date>.csv", "<year>_<month>_<date>.csv", name)
			if err != nil {
				return err
			}
			renamed := filepath.Join(dir, output)
			if err := os.Rename(path, renamed); err != nil {
				return err
			}
			path = renamed
		}

		if err := RenameHeaders(path, path); err != nil {
			return err
		}
	}
	return nil
}

// RenameHeaders renames the headers in the CSV file based on the provided mapping,
// headers absent from the mapping stay as they are
func RenameHeaders(inputFile, outputFile string, headMap ...map[string]string) error {
	mapping := headerMapping
	if len(headMap) > 0 {
		mapping = headMap[0]
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	reader := stdcsv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read CSV data: %v", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no data in CSV file")
	}

	headers := records[0]
	for i, header := range headers {
		if renamed, found := mapping[header]; found {
			headers[i] = renamed
		}
	}
	records[0] = headers

	outFile, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer outFile.Close()

	writer := stdcsv.NewWriter(outFile)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV data: %v", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error during flush: %v", err)
	}

	return nil
}
