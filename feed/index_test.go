package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oarkflow/tradesignal/feed"
)

func TestTimeIndex(t *testing.T) {
	assert := assert.New(t)

	ix := feed.NewTimeIndex()
	ix.Add("NICA", 2000, map[string]any{"ClosePrice": 875.0})
	ix.Add("NABIL", 1000, map[string]any{"ClosePrice": 610.0})
	ix.Add("NABIL", 3000, map[string]any{"ClosePrice": 620.0})
	ix.Add("NABIL", 2000, map[string]any{"ClosePrice": 612.4})

	assert.Equal(4, ix.Len())
	assert.Equal([]string{"NABIL", "NICA"}, ix.Symbols())

	rows := ix.Range("NABIL", 1000, 2000)
	assert.Len(rows, 2)
	assert.Equal(610.0, rows[0]["ClosePrice"])
	assert.Equal(612.4, rows[1]["ClosePrice"])

	latest, ok := ix.Latest("NABIL")
	assert.True(ok)
	assert.Equal(620.0, latest["ClosePrice"])

	_, ok = ix.Latest("HDL")
	assert.False(ok)
}

func TestTimeIndexReplaces(t *testing.T) {
	assert := assert.New(t)

	ix := feed.NewTimeIndex()
	ix.Add("NABIL", 1000, map[string]any{"ClosePrice": 610.0})
	ix.Add("NABIL", 1000, map[string]any{"ClosePrice": 611.0})

	assert.Equal(1, ix.Len())
	rows := ix.Range("NABIL", 0, 2000)
	assert.Len(rows, 1)
	assert.Equal(611.0, rows[0]["ClosePrice"])
}

func TestBuildIndex(t *testing.T) {
	assert := assert.New(t)

	ix := feed.BuildIndex([]map[string]any{
		{"Symbol": "NABIL", "Date": "2024-06-03", "ClosePrice": 612.4},
		{"Symbol": "NABIL", "Date": "2024-06-04", "ClosePrice": 620.0},
		{"Symbol": "", "Date": "2024-06-04"},
		{"Symbol": "NICA", "Date": "never a date"},
	})

	assert.Equal(2, ix.Len())
	latest, ok := ix.Latest("NABIL")
	assert.True(ok)
	assert.Equal(620.0, latest["ClosePrice"])
}
