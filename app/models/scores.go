package models

import (
	"encoding/json"
	"math"
	"time"

	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/utils"
)

// ProfitFactorCap stands in for an infinite profit factor (no losing
// trades) in stored rows and json payloads
const ProfitFactorCap = 9999

// StrategyScore is one ranked strategy result, one row per strategy per run
type StrategyScore struct {
	ID                 int     `json:"-"`
	RunID              string  `gorm:"index" json:"run_id"`
	Timestamp          int64   `json:"timestamp"`
	Symbol             string  `gorm:"index" json:"symbol"`
	Strategy           string  `json:"strategy"`
	Rank               int     `gorm:"column:rank_position" json:"rank"`
	InitialCapital     float64 `json:"initial_capital"`
	FinalCapital       float64 `json:"final_capital"`
	TotalReturnPct     float64 `json:"total_return_pct"`
	WinRate            float64 `json:"win_rate"`
	MaxDrawdownPct     float64 `json:"max_drawdown_pct"`
	SharpeRatio        float64 `json:"sharpe_ratio"`
	ProfitFactor       float64 `json:"profit_factor"`
	TradeCount         int     `json:"trade_count"`
	ForcedExit         bool    `json:"forced_exit"`
	SkippedBuys        int     `json:"skipped_buys"`
	InsufficientSample bool    `json:"insufficient_sample"`
	TradeBlob          string  `json:"-"`
}

// NewStrategyScore converts one engine result to a database row,
// rounding display metrics and packing the trade list
func NewStrategyScore(runID string, result *backtest.Result) *StrategyScore {
	score := StrategyScore{
		RunID:              runID,
		Timestamp:          time.Now().Unix() * 1000,
		Symbol:             result.Symbol,
		Strategy:           result.Strategy,
		Rank:               result.Rank,
		InitialCapital:     result.InitialCapital,
		FinalCapital:       (math.Round(result.FinalCapital*100) / 100),
		TotalReturnPct:     (math.Round(result.TotalReturnPct*100) / 100),
		WinRate:            (math.Round(result.WinRate*10000) / 10000),
		MaxDrawdownPct:     (math.Round(result.MaxDrawdownPct*100) / 100),
		SharpeRatio:        (math.Round(result.SharpeRatio*100) / 100),
		ProfitFactor:       result.ProfitFactor,
		TradeCount:         len(result.Trades),
		ForcedExit:         result.ForcedExit,
		SkippedBuys:        result.SkippedBuys,
		InsufficientSample: result.InsufficientSample,
	}

	if math.IsInf(score.ProfitFactor, 1) || score.ProfitFactor > ProfitFactorCap {
		score.ProfitFactor = ProfitFactorCap
	} else {
		score.ProfitFactor = (math.Round(score.ProfitFactor*100) / 100)
	}

	if blob, err := json.Marshal(result.Trades); err == nil {
		score.TradeBlob = utils.Compress(blob)
	}

	return &score
}

// Trades unpacks the trade list stored with the score
func (score *StrategyScore) Trades() ([]backtest.Trade, error) {
	if score.TradeBlob == "" {
		return nil, nil
	}

	raw, err := utils.Decompress(score.TradeBlob)
	if err != nil {
		return nil, err
	}

	var trades []backtest.Trade
	if err := json.Unmarshal(raw, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// SaveScores creates score rows in database
func SaveScores(scores []StrategyScore) error {
	if len(scores) == 0 {
		return nil
	}
	return DB.Create(&scores).Error
}

// DeleteScores deletes all score rows of one symbol
func DeleteScores(symbol string) {
	DB.Where("symbol = ?", symbol).Delete(&StrategyScore{})
}

// GetScoreFrame gets scores of the latest run for one symbol, ranked
// rows first in rank order, unranked rows behind them
func GetScoreFrame(symbol string) *ScoreFrame {
	sframe := ScoreFrame{}

	var last StrategyScore
	if err := DB.Where("symbol = ?", symbol).Order("timestamp desc").First(&last).Error; err != nil {
		return &sframe
	}

	var scores []StrategyScore
	DB.Where("run_id = ?", last.RunID).
		Order("CASE WHEN rank_position = 0 THEN 999999 ELSE rank_position END").
		Find(&scores)

	sframe.RunID = last.RunID
	sframe.Scores = scores
	return &sframe
}

// ScoreFrame is strategy score data frame
type ScoreFrame struct {
	RunID    string             `json:"run_id,omitempty"`
	Scores   []StrategyScore    `json:"scores,omitempty"`
	Failures []backtest.Failure `json:"failures,omitempty"`
}
