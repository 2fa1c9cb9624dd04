package models_test

import (
	"github.com/oarkflow/tradesignal/app/models"
)

func (suite *ModelsTestSuite) TestCreateCandles() {
	candles := models.NewCandlesFromQuote("SPY", syntheticQuote("SPY", 10))

	suite.NotEmpty(candles)

	candles.CreateCandles()
	defer models.DeleteCandles("SPY")

	cframe := models.GetCandleFrame("SPY", 500)
	suite.Len(cframe.Candles, 10)
}

func (suite *ModelsTestSuite) TestGetCandleFrame() {
	cframe := models.GetCandleFrame("VOO", 500)
	times := []int64{}
	for _, candle := range cframe.Candles {
		times = append(times, candle.Time)
	}

	suite.Equal("VOO", cframe.Symbol)
	suite.Len(cframe.Candles, 120)
	suite.IsIncreasing(times)
}

func (suite *ModelsTestSuite) TestGetCandleFrameScopesSymbol() {
	other := models.NewCandlesFromQuote("SPY", syntheticQuote("SPY", 20))
	other.CreateCandles()
	defer models.DeleteCandles("SPY")

	cframe := models.GetCandleFrame("SPY", 500)

	suite.Len(cframe.Candles, 20)
	for _, candle := range cframe.Candles {
		suite.Equal("SPY", candle.Symbol)
	}
}

func (suite *ModelsTestSuite) TestLastCandleTime() {
	cframe := models.GetCandleFrame("VOO", 500)
	lastTime := cframe.Candles[len(cframe.Candles)-1].Time
	lastCandleTime, err := models.LastCandleTime("VOO")

	suite.Equal(lastTime, lastCandleTime)
	suite.Nil(err)
}

func (suite *ModelsTestSuite) TestMatchTime() {
	cframe := models.GetCandleFrame("VOO", 500)
	firstCandle := cframe.Candles[0]
	lastCandle := cframe.Candles[len(cframe.Candles)-1]

	firstMatch, err1 := models.MatchTime("VOO", firstCandle.Time)
	lastMatch, err2 := models.MatchTime("VOO", lastCandle.Time)

	suite.Equal(firstCandle.ID, firstMatch)
	suite.Nil(err1)
	suite.Equal(lastCandle.ID, lastMatch)
	suite.Nil(err2)

	wrongMatch, err := models.MatchTime("VOO", firstCandle.Time+1)

	suite.Equal(0, wrongMatch)
	suite.NotNil(err)
}

func (suite *ModelsTestSuite) TestAllDeleteCandles() {
	models.AllDeleteCandles()
	cframe := models.GetCandleFrame("VOO", 10)

	suite.Empty(cframe.Candles)
}
