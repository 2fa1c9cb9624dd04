package models_test

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/markcheno/go-quote"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oarkflow/tradesignal/app/models"
)

// syntheticQuote builds a deterministic rising price wave so suite
// runs never touch a remote feed
func syntheticQuote(symbol string, days int) *quote.Quote {
	q := &quote.Quote{
		Symbol: symbol,
		Date:   make([]time.Time, days),
		Open:   make([]float64, days),
		High:   make([]float64, days),
		Low:    make([]float64, days),
		Close:  make([]float64, days),
		Volume: make([]float64, days),
	}

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		price := 100 + 0.3*float64(i) + 6*math.Sin(float64(i)/7)
		q.Date[i] = start.AddDate(0, 0, i)
		q.Open[i] = price - 0.5
		q.High[i] = price + 1.5
		q.Low[i] = price - 1.5
		q.Close[i] = price
		q.Volume[i] = 10000 + 500*float64(i%9)
	}

	return q
}

type ModelsTestSuite struct {
	suite.Suite
	Candles *models.Candles
}

func (suite *ModelsTestSuite) SetupSuite() {
	logrus.SetLevel(logrus.ErrorLevel)
	models.DB, _ = gorm.Open(sqlite.Open("models_test.sqlite3"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	models.DB.AutoMigrate(
		&models.Candle{},
		&models.StrategyScore{},
		&models.AlertEvent{},
	)

	suite.Candles = models.NewCandlesFromQuote("VOO", syntheticQuote("VOO", 120))
}

func (suite *ModelsTestSuite) SetupTest() {
	suite.Candles.CreateCandles()
}

func (suite *ModelsTestSuite) TearDownTest() {
	models.AllDeleteCandles()
	models.DeleteScores("VOO")
	models.DeleteAlerts("VOO")
}

func (suite *ModelsTestSuite) TearDownSuite() {
	os.Remove("models_test.sqlite3")
}

func TestModels(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}
