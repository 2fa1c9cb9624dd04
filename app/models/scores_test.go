package models_test

import (
	"math"

	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/backtest"
)

func (suite *ModelsTestSuite) TestNewStrategyScore() {
	result := &backtest.Result{
		Symbol:         "VOO",
		Strategy:       "rsi_macd_30_70",
		Rank:           1,
		InitialCapital: 1000000,
		FinalCapital:   1100000.123,
		TotalReturnPct: 10.0123,
		WinRate:        0.66667,
		MaxDrawdownPct: -12.344,
		SharpeRatio:    1.2345,
		ProfitFactor:   math.Inf(1),
		Trades: []backtest.Trade{
			{EntryTime: 1000, ExitTime: 2000, EntryPrice: 100, ExitPrice: 110, Quantity: 10, Pnl: 100},
		},
	}

	score := models.NewStrategyScore("run-1", result)

	suite.Equal("run-1", score.RunID)
	suite.Equal("VOO", score.Symbol)
	suite.Equal(1, score.Rank)
	suite.Equal(1100000.12, score.FinalCapital)
	suite.Equal(10.01, score.TotalReturnPct)
	suite.Equal(0.6667, score.WinRate)
	suite.Equal(-12.34, score.MaxDrawdownPct)
	suite.Equal(float64(models.ProfitFactorCap), score.ProfitFactor)
	suite.Equal(1, score.TradeCount)
	suite.NotEmpty(score.TradeBlob)

	trades, err := score.Trades()
	suite.Nil(err)
	suite.Len(trades, 1)
	suite.Equal(100.0, trades[0].Pnl)
	suite.Equal(int64(2000), trades[0].ExitTime)
}

func (suite *ModelsTestSuite) TestScoreTradesEmpty() {
	score := models.StrategyScore{}

	trades, err := score.Trades()
	suite.Nil(err)
	suite.Nil(trades)
}

func (suite *ModelsTestSuite) TestScoreFrameLatestRun() {
	first := []models.StrategyScore{
		{RunID: "old", Timestamp: 1000, Symbol: "VOO", Strategy: "a", Rank: 1},
	}
	second := []models.StrategyScore{
		{RunID: "new", Timestamp: 2000, Symbol: "VOO", Strategy: "flagged", Rank: 0, InsufficientSample: true},
		{RunID: "new", Timestamp: 2000, Symbol: "VOO", Strategy: "b", Rank: 2},
		{RunID: "new", Timestamp: 2000, Symbol: "VOO", Strategy: "a", Rank: 1},
	}

	suite.Nil(models.SaveScores(first))
	suite.Nil(models.SaveScores(second))

	sframe := models.GetScoreFrame("VOO")

	suite.Equal("new", sframe.RunID)
	suite.Len(sframe.Scores, 3)
	suite.Equal(1, sframe.Scores[0].Rank)
	suite.Equal(2, sframe.Scores[1].Rank)
	suite.Equal("flagged", sframe.Scores[2].Strategy)
}

func (suite *ModelsTestSuite) TestScoreFrameNoRuns() {
	sframe := models.GetScoreFrame("DAMY")

	suite.Empty(sframe.RunID)
	suite.Empty(sframe.Scores)
}
