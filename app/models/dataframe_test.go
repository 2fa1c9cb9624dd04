package models_test

import (
	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/indicator"
)

func (suite *ModelsTestSuite) TestDataFrame() {
	dframe := models.NewDataFrame()
	suite.Nil(dframe.CandleFrame)
	suite.Nil(dframe.ScoreFrame)
	suite.Nil(dframe.AlertFrame)

	dframe.AddCandleFrame("VOO", 100)
	suite.Equal("VOO", dframe.CandleFrame.Symbol)
	suite.Len(dframe.CandleFrame.Candles, 100)

	dframe.AddScoreFrame("VOO")
	suite.Empty(dframe.ScoreFrame.Scores)

	dframe.AddAlertFrame("VOO", 10)
	suite.Empty(dframe.AlertFrame.Alerts)
}

func (suite *ModelsTestSuite) TestToSeries() {
	cframe := models.GetCandleFrame("VOO", 500)
	series, err := cframe.ToSeries(indicator.DefaultParams())

	suite.Nil(err)
	suite.Equal(120, series.Len())
	suite.Equal("VOO", series.Symbol())
	suite.Contains(series.ColumnNames(), indicator.RSI)
	suite.Contains(series.ColumnNames(), indicator.MACD)

	view := series.At(series.Len() - 1)
	rsi, ok := view.Value(indicator.RSI)
	suite.True(ok)
	suite.GreaterOrEqual(rsi, 0.0)
	suite.LessOrEqual(rsi, 100.0)
}

func (suite *ModelsTestSuite) TestCandleFrameColumns() {
	cframe := models.GetCandleFrame("VOO", 500)

	suite.Len(cframe.Opens(), 120)
	suite.Len(cframe.Highs(), 120)
	suite.Len(cframe.Lows(), 120)
	suite.Len(cframe.Closes(), 120)
	suite.Len(cframe.Volumes(), 120)
	suite.Len(cframe.Times(), 120)
	suite.IsIncreasing(cframe.Times())
}
