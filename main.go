package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oarkflow/tradesignal/alert"
	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/app/server"
	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/config"
	"github.com/oarkflow/tradesignal/feed"
	"github.com/oarkflow/tradesignal/log"
	"github.com/oarkflow/tradesignal/scrape"
	"github.com/oarkflow/tradesignal/stock"
	"github.com/oarkflow/tradesignal/strategy"
)

// lookbackDays reaches far enough back to cover the bundled sheets on
// a fresh checkout.
const lookbackDays = 2000

func main() {
	config.InitConfig()

	mode := "pipeline"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	// codegen output stays clean
	if mode == "archive" {
		log.SetQuiet()
	} else {
		log.SetLogging()
	}

	switch mode {
	case "pipeline":
		initMarketData()
		models.InitDB()
		runPipeline()
	case "serve":
		initMarketData()
		models.InitDB()
		server.Run()
	case "scrape":
		initMarketData()
		if err := scrape.Scrape(config.Config.DataDir); err != nil {
			logrus.Fatalf("scrape error: %v", err)
		}
	case "archive":
		if err := feed.GenerateArchive(config.Config.DataDir, "feed/archive_data.go"); err != nil {
			logrus.Fatalf("archive error: %v", err)
		}
	default:
		logrus.Fatalf("unknown mode: %v", mode)
	}
}

func initMarketData() {
	if err := feed.EnsureData(config.Config.DataDir); err != nil {
		logrus.Fatalf("data seed error: %v", err)
	}
	if err := feed.InitMarketData(config.Config.DataDir); err != nil {
		logrus.Fatalf("market data error: %v", err)
	}
}

// runPipeline refreshes candles for every indexed symbol, ranks the
// strategy battery and pushes the day's alerts.
func runPipeline() {
	symbols := feed.Index.Symbols()
	if len(symbols) == 0 {
		logrus.Fatal("no symbols in the market data")
	}

	cfg := config.BacktestConfig()
	battery := strategy.Battery()
	day := time.Now()

	var dayAlerts []models.AlertEvent
	for _, symbol := range symbols {
		symbolAlerts, err := signalSymbol(symbol, cfg, battery)
		if err != nil {
			logrus.Warnf("signal error, symbol: %v: %v", symbol, err)
			continue
		}
		dayAlerts = append(dayAlerts, symbolAlerts...)
	}

	if err := models.SaveAlerts(dayAlerts); err != nil {
		logrus.Warnf("alert save error: %v", err)
	}
	if _, err := alert.ExportCSV(config.Config.AlertCSVDir, day, dayAlerts); err != nil {
		logrus.Warnf("alert csv error: %v", err)
	}
	if _, err := alert.ExportJSON(config.Config.AlertJSONDir, day, dayAlerts); err != nil {
		logrus.Warnf("alert json error: %v", err)
	}

	if config.Config.TelegramChat != "" {
		notifier := alert.NewNotifier(alert.ResolveToken(), config.Config.TelegramChat)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := notifier.Send(ctx, dayAlerts); err != nil {
			logrus.Warnf("telegram error: %v", err)
		}
	}

	logrus.Infof("pipeline end: %v symbols, %v alerts", len(symbols), len(dayAlerts))
}

// signalSymbol stores fresh candles, ranks the battery over them and
// derives the symbol's alerts from the ranked trades.
func signalSymbol(symbol string, cfg backtest.Config, battery []backtest.Strategy) ([]models.AlertEvent, error) {
	q, err := stock.GetStockData(symbol, lookbackDays)
	if err != nil {
		return nil, err
	}
	if len(q.Date) == 0 {
		return nil, fmt.Errorf("no stock data")
	}
	models.DeleteCandles(symbol)
	models.NewCandlesFromQuote(symbol, q).CreateCandles()

	rr := models.RankRequest{Symbol: symbol, Period: lookbackDays, Metric: config.Config.Metric}
	sframe, err := rr.Rank(cfg, battery)
	if err != nil {
		return nil, err
	}

	cframe := models.GetCandleFrame(symbol, 1)
	if len(cframe.Candles) == 0 {
		return nil, fmt.Errorf("no candles stored")
	}
	last := cframe.Candles[0]
	finalBar := backtest.Bar{
		Time:   last.Time,
		Open:   last.Open,
		High:   last.High,
		Low:    last.Low,
		Close:  last.Close,
		Volume: last.Volume,
	}

	ranked := make([]*backtest.Result, 0, len(sframe.Scores))
	for i := range sframe.Scores {
		score := &sframe.Scores[i]
		trades, err := score.Trades()
		if err != nil {
			logrus.Warnf("trade blob error, strategy: %v: %v", score.Strategy, err)
			continue
		}
		ranked = append(ranked, &backtest.Result{Symbol: score.Symbol, Strategy: score.Strategy, Trades: trades})
	}

	return alert.Build(finalBar, ranked, config.Config.WatchWindow), nil
}
