package models_test

import (
	"github.com/oarkflow/tradesignal/app/models"
)

func (suite *ModelsTestSuite) TestAlertEvents() {
	alerts := []models.AlertEvent{
		models.NewAlertEvent("VOO", "trend_adx_25", models.ActionBuy, 101.5, 1000, ""),
		models.NewAlertEvent("VOO", "rsi_macd_30_70", models.ActionWatch, 99.0, 2000, "entry 2 bars ago"),
	}

	suite.NotEqual(alerts[0].ID, alerts[1].ID)
	suite.Nil(models.SaveAlerts(alerts))

	aframe := models.GetAlertFrame("VOO", 10)

	suite.Len(aframe.Alerts, 2)
	suite.Equal(models.ActionWatch, aframe.Alerts[0].Action)
	suite.Equal(models.ActionBuy, aframe.Alerts[1].Action)
	suite.Equal("entry 2 bars ago", aframe.Alerts[0].Note)
}

func (suite *ModelsTestSuite) TestAlertFrameLimit() {
	alerts := []models.AlertEvent{
		models.NewAlertEvent("VOO", "a", models.ActionBuy, 100, 1000, ""),
		models.NewAlertEvent("VOO", "b", models.ActionSell, 101, 2000, ""),
		models.NewAlertEvent("VOO", "c", models.ActionWatch, 102, 3000, ""),
	}
	suite.Nil(models.SaveAlerts(alerts))

	aframe := models.GetAlertFrame("VOO", 2)

	suite.Len(aframe.Alerts, 2)
	suite.Equal(int64(3000), aframe.Alerts[0].Timestamp)
}

func (suite *ModelsTestSuite) TestDeleteAlerts() {
	suite.Nil(models.SaveAlerts([]models.AlertEvent{
		models.NewAlertEvent("VOO", "a", models.ActionBuy, 100, 1000, ""),
	}))

	models.DeleteAlerts("VOO")

	suite.Empty(models.GetAlertFrame("VOO", 10).Alerts)
}
