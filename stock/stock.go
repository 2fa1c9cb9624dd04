package stock

import (
	"fmt"
	"sort"
	"time"

	"github.com/markcheno/go-quote"
	"github.com/oarkflow/search"

	"github.com/oarkflow/tradesignal/feed"
)

const timeFormat = "2006-01-02"

// GetStockData reads daily stockdata for symbol (NABIL, NICA...etc) during today ~ before dayPeriod
// out of the ingested sheets. dayPeriod must be day(1day, 30days...etc).
func GetStockData(symbol string, dayPeriod int) (*quote.Quote, error) {
	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -dayPeriod)
	engine, err := search.GetEngine[map[string]any](feed.EngineName)
	if err != nil {
		return nil, err
	}
	result, err := engine.Search(&search.Params{
		Query:      symbol,
		Properties: []string{"Symbol"},
		Condition:  fmt.Sprintf("Date BETWEEN '%s' AND '%s'", startDay.Format(timeFormat), endDay.Format(timeFormat)),
	})
	if err != nil {
		return nil, err
	}
	return GetQuote[map[string]any](symbol, result), nil
}

// GetQuote converts search hits to a Quote, rows sorted by day
func GetQuote[T any](symbol string, result search.Result[T]) *quote.Quote {
	rows := make([]map[string]any, 0, len(result.Hits))
	for _, hit := range result.Hits {
		if row, ok := any(hit.Data).(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		di, _ := rows[i]["Date"].(string)
		dj, _ := rows[j]["Date"].(string)
		return di < dj
	})

	qt := quote.NewQuote(symbol, len(rows))
	for i, row := range rows {
		d, _ := time.Parse(timeFormat, row["Date"].(string))
		o, _ := row["OpenPrice"].(float64)
		h, _ := row["HighPrice"].(float64)
		l, _ := row["LowPrice"].(float64)
		c, _ := row["ClosePrice"].(float64)
		v, _ := row["Volume"].(float64)

		qt.Date[i] = d
		qt.Open[i] = o
		qt.High[i] = h
		qt.Low[i] = l
		qt.Close[i] = c
		qt.Volume[i] = v
	}
	return &qt
}

// GetRemoteData downloads daily stockdata for symbol (GOOGL, FB...etc) from Yahoo,
// for markets the scraper does not cover.
// If stock data is not downloaded due to bad symbol, an error returns.
func GetRemoteData(symbol string, dayPeriod int) (*quote.Quote, error) {
	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -dayPeriod)
	q, err := quote.NewQuoteFromYahoo(symbol, startDay.Format(timeFormat), endDay.Format(timeFormat), quote.Daily, true)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
