package models

import (
	"fmt"

	"github.com/oarkflow/xid"
	"github.com/sirupsen/logrus"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/indicator"
)

// RankRequest recieves ranking parameters at json
type RankRequest struct {
	Symbol     string            `json:"symbol"`
	Period     int               `json:"period"`
	Metric     string            `json:"metric"`
	Indicators *indicator.Params `json:"indicators"`
}

// Rank executes the strategy battery over stored candles and replaces
// the stored scores of the symbol with the new run.
// Caution, the Symbol in RankRequest is the same to ticker symbol of the candle data,
// if those are different, deal with frontend process
func (rr *RankRequest) Rank(cfg backtest.Config, strategies []backtest.Strategy) (*ScoreFrame, error) {
	cframe := GetCandleFrame(rr.Symbol, rr.Period)
	if len(cframe.Candles) == 0 {
		return nil, &backtest.DataError{Reason: fmt.Sprintf("no candles stored for %s", rr.Symbol)}
	}

	params := indicator.DefaultParams()
	if rr.Indicators != nil {
		params = *rr.Indicators
	}

	series, err := cframe.ToSeries(params)
	if err != nil {
		return nil, err
	}

	logrus.Infof("ranking start: %v, %v bars, %v strategies", rr.Symbol, series.Len(), len(strategies))

	batch, err := backtest.RunAll(series, strategies, cfg, backtest.Metric(rr.Metric))
	if err != nil {
		return nil, err
	}

	runID := xid.New().String()
	scores := make([]StrategyScore, 0, len(batch.Results))
	for _, result := range batch.Ranked {
		scores = append(scores, *NewStrategyScore(runID, result))
	}
	// flagged runs follow the ranked ones, same order GetScoreFrame uses
	for _, result := range batch.Results {
		if result.InsufficientSample {
			scores = append(scores, *NewStrategyScore(runID, result))
		}
	}
	for _, result := range batch.Results {
		if result.SkippedBuys > 0 {
			logrus.Infof("%v: skipped %v buys on insufficient capital", result.Strategy, result.SkippedBuys)
		}
	}
	for _, failure := range batch.Failures {
		logrus.Warnf("ranking failure: %v: %v", failure.Strategy, failure.Reason)
	}

	DeleteScores(rr.Symbol)
	if err := SaveScores(scores); err != nil {
		return nil, err
	}

	logrus.Infof("ranking end: %v, %v ranked, %v failed", rr.Symbol, len(batch.Ranked), len(batch.Failures))

	return &ScoreFrame{RunID: runID, Scores: scores, Failures: batch.Failures}, nil
}
