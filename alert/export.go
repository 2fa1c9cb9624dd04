package alert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/oarkflow/errors"

	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/feed/csv"
)

// exportColumns fixes the column order of the alert sheet
var exportColumns = []string{"ID", "Timestamp", "Symbol", "Strategy", "Action", "Price", "Note"}

// ExportCSV writes the day's alerts as one csv sheet under dir and
// returns the file path
func ExportCSV(dir string, day time.Time, alerts []models.AlertEvent) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewE(err, "Unable to create alert directory", "")
	}

	rows := make([]map[string]any, 0, len(alerts))
	for _, event := range alerts {
		rows = append(rows, map[string]any{
			"ID":        event.ID,
			"Timestamp": event.Timestamp,
			"Symbol":    event.Symbol,
			"Strategy":  event.Strategy,
			"Action":    event.Action,
			"Price":     event.Price,
			"Note":      event.Note,
		})
	}

	// single worker keeps the rows in ranked order
	buffer := csv.ProcessWrite(exportColumns, rows, 1)
	fileName := filepath.Join(dir, "alerts_"+day.Format("2006_01_02")+".csv")
	if err := os.WriteFile(fileName, buffer.Bytes(), 0644); err != nil {
		return "", errors.NewE(err, "Unable to write alert csv", "")
	}
	return fileName, nil
}

// ExportJSON writes the day's alerts as one json document under dir
// and returns the file path
func ExportJSON(dir string, day time.Time, alerts []models.AlertEvent) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewE(err, "Unable to create alert directory", "")
	}

	payload, err := json.MarshalIndent(&models.AlertFrame{Alerts: alerts}, "", "  ")
	if err != nil {
		return "", errors.NewE(err, "Unable to encode alerts", "")
	}

	fileName := filepath.Join(dir, "alerts_"+day.Format("2006_01_02")+".json")
	if err := os.WriteFile(fileName, payload, 0644); err != nil {
		return "", errors.NewE(err, "Unable to write alert json", "")
	}
	return fileName, nil
}
