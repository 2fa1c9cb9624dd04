package models_test

import (
	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/strategy"
)

func (suite *ModelsTestSuite) TestRank() {
	request := models.RankRequest{Symbol: "VOO", Period: 500, Metric: "total_return_pct"}
	cfg := backtest.Config{InitialCapital: 1000000, MinBars: 60}

	sframe, err := request.Rank(cfg, strategy.Battery())

	suite.Nil(err)
	suite.NotEmpty(sframe.RunID)
	suite.NotEmpty(sframe.Scores)

	stored := models.GetScoreFrame("VOO")
	suite.Equal(sframe.RunID, stored.RunID)
	suite.Len(stored.Scores, len(sframe.Scores))

	lastRank := 0
	for _, score := range stored.Scores {
		suite.Equal("VOO", score.Symbol)
		if score.Rank == 0 {
			suite.True(score.InsufficientSample)
			continue
		}
		suite.Greater(score.Rank, lastRank)
		lastRank = score.Rank
	}
}

func (suite *ModelsTestSuite) TestRankReplacesPreviousRun() {
	request := models.RankRequest{Symbol: "VOO", Period: 500}
	cfg := backtest.Config{InitialCapital: 1000000, MinBars: 60}

	first, err := request.Rank(cfg, strategy.BuiltIn())
	suite.Nil(err)

	second, err := request.Rank(cfg, strategy.BuiltIn())
	suite.Nil(err)
	suite.NotEqual(first.RunID, second.RunID)

	var count int64
	models.DB.Model(&models.StrategyScore{}).Where("symbol = ?", "VOO").Count(&count)
	suite.Equal(int64(len(second.Scores)), count)
}

func (suite *ModelsTestSuite) TestRankUnknownSymbol() {
	request := models.RankRequest{Symbol: "NOPE", Period: 500}
	cfg := backtest.Config{InitialCapital: 1000000, MinBars: 30}

	_, err := request.Rank(cfg, strategy.Battery())

	suite.NotNil(err)
	var derr *backtest.DataError
	suite.ErrorAs(err, &derr)
}
