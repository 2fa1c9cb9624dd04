package scrape_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oarkflow/tradesignal/scrape"
)

const tablePage = `<html><body>
<table class="table-bordered">
<tr><th>S.No</th><th>Symbol</th><th>Open</th><th>High</th><th>Low</th><th>Close</th><th>VWAP</th><th>Vol</th><th>Prev. Close</th><th>Turnover</th><th>Trans.</th></tr>
<tr><td>1</td><td>NABIL</td><td>610.00</td><td>620.00</td><td>605.00</td><td>612.40</td><td>613.10</td><td>1,200</td><td>608.00</td><td>734,880.00</td><td>45</td></tr>
<tr><td>2</td><td>NICA</td><td>880.00</td><td>890.00</td><td>872.00</td><td>875.00</td><td>876.00</td><td>900</td><td>881.00</td><td>787,500.00</td><td>30</td></tr>
<tr><td>2</td><td>NICA</td><td>880.00</td><td>890.00</td><td>872.00</td><td>875.00</td><td>876.00</td><td>900</td><td>881.00</td><td>787,500.00</td><td>30</td></tr>
</table>
</body></html>`

func TestScrapeTable(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tablePage))
	}))
	defer server.Close()

	table := scrape.ScrapeTable(server.URL, "")

	assert.Len(table, 3)
	assert.Equal("Symbol", table[0][1])
	assert.Equal("NABIL", table[1][1])
	assert.Equal("NICA", table[2][1])
}

func TestCanonicalRows(t *testing.T) {
	assert := assert.New(t)

	table := [][]string{
		{"S.No", "Symbol", "Open", "High", "Low", "Close", "VWAP", "Vol", "Prev. Close", "Turnover", "Trans."},
		{"1", "NABIL", "610.00", "620.00", "605.00", "612.40", "613.10", "1,200", "608.00", "734,880.00", "45"},
		{"2", "", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
	}
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	rows, err := scrape.CanonicalRows(table, day)

	assert.NoError(err)
	assert.Len(rows, 1)
	assert.Equal("NABIL", rows[0]["Symbol"])
	assert.Equal("2024-06-03", rows[0]["Date"])
	assert.Equal("612.40", rows[0]["ClosePrice"])
	// thousands separators never reach the sheet
	assert.Equal("1200", rows[0]["Volume"])
	assert.Equal("734880.00", rows[0]["Turnover"])
}

func TestCanonicalRowsMissingColumns(t *testing.T) {
	assert := assert.New(t)

	day := time.Now()

	_, err := scrape.CanonicalRows([][]string{{"S.No", "Open"}}, day)
	assert.Error(err)

	_, err = scrape.CanonicalRows([][]string{{"Symbol", "Open"}}, day)
	assert.Error(err)
}

func TestRenameHeaders(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sheet.csv")
	content := "Symbol,Open,Close,Extra\nNABIL,610.00,612.40,x\n"
	assert.NoError(os.WriteFile(path, []byte(content), 0644))

	assert.NoError(scrape.RenameHeaders(path, path))

	rewritten, err := os.ReadFile(path)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(string(rewritten)), "\n")
	assert.Equal("Symbol,OpenPrice,ClosePrice,Extra", lines[0])
	assert.Equal("NABIL,610.00,612.40,x", lines[1])
}

func TestNormalizeDataDir(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	content := "Symbol,Close\nNABIL,612.40\n"
	assert.NoError(os.WriteFile(filepath.Join(dir, "2024-06-03.csv"), []byte(content), 0644))

	assert.NoError(scrape.NormalizeDataDir(dir))

	_, err := os.Stat(filepath.Join(dir, "2024_06_03.csv"))
	assert.NoError(err)

	rewritten, err := os.ReadFile(filepath.Join(dir, "2024_06_03.csv"))
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(rewritten), "Symbol,ClosePrice"))
}
