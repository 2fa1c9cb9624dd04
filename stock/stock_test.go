package stock_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oarkflow/tradesignal/feed"
	"github.com/oarkflow/tradesignal/stock"
)

func TestGetStockData(t *testing.T) {
	assert := assert.New(t)

	dataDir := filepath.Join(t.TempDir(), "date")
	assert.NoError(feed.EnsureData(dataDir))
	assert.NoError(feed.InitMarketData(dataDir))

	stock1, err1 := stock.GetStockData("NABIL", 2000)
	stock2, err2 := stock.GetStockData("TEST", 2000)

	assert.Nil(err1)
	assert.Equal("NABIL", stock1.Symbol)
	assert.Len(stock1.Date, 90)
	assert.True(stock1.Date[0].Before(stock1.Date[len(stock1.Date)-1]))
	// wrong symbol
	// err is nil, even if symbol is wrong
	assert.Nil(err2)
	assert.Len(stock2.Date, 0)
}
