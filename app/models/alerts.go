package models

import (
	"github.com/oarkflow/xid"

	"github.com/oarkflow/tradesignal/backtest"
)

// Alert actions. BUY and SELL mirror the engine signals, WATCH marks
// a recent entry that is still close enough to act on
const (
	ActionBuy   = string(backtest.BUY)
	ActionSell  = string(backtest.SELL)
	ActionWatch = "WATCH"
)

// AlertEvent is one emitted alert, persisted for the API and exports
type AlertEvent struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	Timestamp int64   `json:"timestamp"`
	Symbol    string  `gorm:"index" json:"symbol"`
	Strategy  string  `json:"strategy"`
	Action    string  `json:"action"`
	Price     float64 `json:"price"`
	Note      string  `json:"note,omitempty"`
}

// NewAlertEvent stamps an alert with an id
func NewAlertEvent(symbol, strategy, action string, price float64, barTime int64, note string) AlertEvent {
	return AlertEvent{
		ID:        xid.New().String(),
		Timestamp: barTime,
		Symbol:    symbol,
		Strategy:  strategy,
		Action:    action,
		Price:     price,
		Note:      note,
	}
}

// SaveAlerts creates alert rows in database
func SaveAlerts(alerts []AlertEvent) error {
	if len(alerts) == 0 {
		return nil
	}
	return DB.Create(&alerts).Error
}

// GetAlertFrame gets latest alerts of one symbol for limit
func GetAlertFrame(symbol string, limit int) *AlertFrame {
	var alerts []AlertEvent
	DB.Where("symbol = ?", symbol).Order("timestamp desc").Limit(limit).Find(&alerts)

	return &AlertFrame{Alerts: alerts}
}

// DeleteAlerts deletes alert rows of one symbol
func DeleteAlerts(symbol string) {
	DB.Where("symbol = ?", symbol).Delete(&AlertEvent{})
}

// AlertFrame is alert data frame
type AlertFrame struct {
	Alerts []AlertEvent `json:"alerts,omitempty"`
}
