package feed

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/oarkflow/convert"
	"github.com/oarkflow/date"
	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"
	"github.com/oarkflow/search"

	"github.com/oarkflow/tradesignal/feed/csv"
)

// EngineName is the search engine holding every ingested daily row
const EngineName = "stock"

// Index orders ingested rows by symbol and day, filled by InitMarketData
var Index = NewTimeIndex()

// InitMarketData loads every daily sheet under directory into the
// search engine and the time index
func InitMarketData(directory string) error {
	rows, err := LoadDirectory(directory)
	if err != nil {
		return errors.NewE(err, "loading market data", "")
	}
	if len(rows) == 0 {
		return errors.New(fmt.Sprintf("no daily sheets found under %s", directory))
	}

	engine, err := search.SetEngine[map[string]any](EngineName, &search.Config{})
	if err != nil {
		return errors.NewE(err, "search engine init", "")
	}

	log.Info().Int("rows", len(rows)).Msg("Indexing stock")
	engine.InsertWithPool(rows, runtime.NumCPU(), 1000)
	log.Info().Msg("Indexed stock")

	Index = BuildIndex(rows)
	return nil
}

// Row is one symbol on one daily sheet
type Row struct {
	Symbol        string  `csv:"Symbol"`
	Date          string  `csv:"Date"`
	OpenPrice     float64 `csv:"OpenPrice"`
	HighPrice     float64 `csv:"HighPrice"`
	LowPrice      float64 `csv:"LowPrice"`
	ClosePrice    float64 `csv:"ClosePrice"`
	VWAP          float64 `csv:"VWAP"`
	Volume        float64 `csv:"Volume"`
	PreviousClose float64 `csv:"PreviousClose"`
	Turnover      float64 `csv:"Turnover"`
	Transactions  int     `csv:"Transactions"`
}

// Columns is the canonical column order of a daily sheet
var Columns = []string{
	"Symbol", "Date", "OpenPrice", "HighPrice", "LowPrice", "ClosePrice",
	"VWAP", "Volume", "PreviousClose", "Turnover", "Transactions",
}

func parseFloat(value string) (float64, error) {
	value = strings.ReplaceAll(value, ",", "")
	return strconv.ParseFloat(value, 64)
}

func parseInt(value string) (int64, error) {
	value = strings.ReplaceAll(value, ",", "")
	return strconv.ParseInt(value, 10, 64)
}

func removeCommas(value string) string {
	return strings.ReplaceAll(value, ",", "")
}

// RowFromMap converts an ingested map to a Row instance
func RowFromMap(dataMap map[string]any) (Row, error) {
	var row Row

	toFloat := func(key string) (float64, error) {
		switch val := dataMap[key].(type) {
		case string:
			cleaned := removeCommas(val)
			if cleaned == "-" || cleaned == "" {
				return 0, nil
			}
			return strconv.ParseFloat(cleaned, 64)
		case float64:
			return val, nil
		case nil:
			return 0, nil
		default:
			return 0, fmt.Errorf("value for key %s is not numeric: %v", key, val)
		}
	}

	var ok bool
	if row.Symbol, ok = dataMap["Symbol"].(string); !ok {
		return row, fmt.Errorf("invalid type for Symbol")
	}
	if row.Date, ok = dataMap["Date"].(string); !ok {
		return row, fmt.Errorf("invalid type for Date")
	}

	var err error
	if row.OpenPrice, err = toFloat("OpenPrice"); err != nil {
		return row, err
	}
	if row.HighPrice, err = toFloat("HighPrice"); err != nil {
		return row, err
	}
	if row.LowPrice, err = toFloat("LowPrice"); err != nil {
		return row, err
	}
	if row.ClosePrice, err = toFloat("ClosePrice"); err != nil {
		return row, err
	}
	if row.VWAP, err = toFloat("VWAP"); err != nil {
		return row, err
	}
	if row.Volume, err = toFloat("Volume"); err != nil {
		return row, err
	}
	if row.PreviousClose, err = toFloat("PreviousClose"); err != nil {
		return row, err
	}
	if row.Turnover, err = toFloat("Turnover"); err != nil {
		return row, err
	}

	if transactions, ok := convert.ToInt(dataMap["Transactions"]); ok {
		row.Transactions = transactions
	} else {
		return row, fmt.Errorf("invalid type for Transactions")
	}

	return row, nil
}

// ToMap is the inverse of RowFromMap, used when writing daily sheets
func (r Row) ToMap() map[string]any {
	return map[string]any{
		"Symbol":        r.Symbol,
		"Date":          r.Date,
		"OpenPrice":     r.OpenPrice,
		"HighPrice":     r.HighPrice,
		"LowPrice":      r.LowPrice,
		"ClosePrice":    r.ClosePrice,
		"VWAP":          r.VWAP,
		"Volume":        r.Volume,
		"PreviousClose": r.PreviousClose,
		"Turnover":      r.Turnover,
		"Transactions":  r.Transactions,
	}
}

// DailyFileName places the sheet of one trading day under directory
func DailyFileName(directory string, day time.Time) string {
	return filepath.Join(directory, day.Format("2006_01_02")+".csv")
}

// dateFromFilename recovers the trading day a sheet belongs to,
// 2024_06_03.csv and 2024-06-03.csv both parse
func dateFromFilename(path string) (string, error) {
	stem := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(path), ".csv"), "_", "-")
	day, err := dateparse.ParseAny(stem)
	if err != nil {
		return "", errors.Wrap(err, "sheet filename is not a date: "+stem, "")
	}
	return day.Format("2006-01-02"), nil
}

// ParseSheet reads one daily sheet, normalizes numeric columns and
// stamps every row with the day taken from the filename
func ParseSheet(filename string) ([]map[string]any, error) {
	rows, err := csv.ReadFile(filename, ',')
	if err != nil {
		return nil, err
	}

	day, err := dateFromFilename(filename)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		for key, val := range row {
			text := fmt.Sprintf("%v", val)
			switch {
			case key == "Symbol" || key == "Date":
			case text == "-" || text == "":
				row[key] = 0.0
			case key == "Transactions":
				if row[key], err = parseInt(text); err != nil {
					return nil, errors.Wrap(err, fmt.Sprintf("%s: %v", key, val), "")
				}
			default:
				if row[key], err = parseFloat(text); err != nil {
					return nil, errors.Wrap(err, fmt.Sprintf("%s: %v", key, val), "")
				}
			}
		}
		row["Date"] = day
		rows[i] = row
	}

	return rows, nil
}

// LoadDirectory parses every csv sheet under directory concurrently
func LoadDirectory(directory string) ([]map[string]any, error) {
	var allRows []map[string]any
	var mu sync.Mutex
	var wg sync.WaitGroup
	var errList []error
	rowCh := make(chan []map[string]any)
	errCh := make(chan error)
	doneCh := make(chan struct{})

	go func() {
		err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(path) == ".csv" {
				wg.Add(1)
				go func(path string) {
					defer wg.Done()
					rows, err := ParseSheet(path)
					if err != nil {
						errCh <- err
						return
					}
					rowCh <- rows
				}(path)
			}
			return nil
		})

		if err != nil {
			errCh <- err
		}

		wg.Wait()
		close(doneCh)
	}()

	for {
		select {
		case rows := <-rowCh:
			mu.Lock()
			allRows = append(allRows, rows...)
			mu.Unlock()
		case err := <-errCh:
			mu.Lock()
			errList = append(errList, err)
			mu.Unlock()
		case <-doneCh:
			if len(errList) > 0 {
				return nil, fmt.Errorf("errors occurred: %v", errList)
			}
			return allRows, nil
		}
	}
}

// BuildIndex orders rows by symbol and day for range scans
func BuildIndex(rows []map[string]any) *TimeIndex {
	index := NewTimeIndex()
	for _, row := range rows {
		symbol, _ := row["Symbol"].(string)
		dateStr, _ := row["Date"].(string)
		if symbol == "" || dateStr == "" {
			continue
		}
		day, err := date.Parse(dateStr)
		if err != nil {
			log.Warn().Str("date", dateStr).Msg("unparseable sheet date, row skipped")
			continue
		}
		index.Add(symbol, day.Unix()*1000, row)
	}
	return index
}
