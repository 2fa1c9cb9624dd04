package config

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/oarkflow/tradesignal/backtest"
)

// Config represents config info
var Config ConfList

// ConfList has contents of config.ini
type ConfList struct {
	DBdriver string
	DBname   string
	Port     int
	IP       string

	InitialCapital float64
	Commission     float64
	Slippage       float64
	MinBars        int
	MinTrades      int
	PeriodsPerYear int
	Workers        int
	Metric         string

	WatchWindow  int
	AlertCSVDir  string
	AlertJSONDir string
	TelegramChat string

	DataDir string

	ScrapeDomain string
	ScrapeURL    string
}

// InitConfig initializes config settings
func InitConfig() {
	conf, err := ini.Load("config.ini")
	if err != nil {
		logrus.Warnf("init file open error: %v", err)
		conf = ini.Empty()
	}

	Config = ConfList{
		DBdriver: conf.Section("db").Key("driver").String(),
		DBname:   conf.Section("db").Key("name").MustString("tradesignal.sqlite3"),
		Port:     conf.Section("web").Key("port").MustInt(8080),
		IP:       conf.Section("web").Key("ip").String(),

		InitialCapital: conf.Section("backtest").Key("initial_capital").MustFloat64(1000000),
		Commission:     conf.Section("backtest").Key("commission").MustFloat64(0),
		Slippage:       conf.Section("backtest").Key("slippage").MustFloat64(0),
		MinBars:        conf.Section("backtest").Key("min_bars").MustInt(backtest.DefaultMinBars),
		MinTrades:      conf.Section("backtest").Key("min_trades").MustInt(0),
		PeriodsPerYear: conf.Section("backtest").Key("periods_per_year").MustInt(backtest.DefaultPeriodsPerYear),
		Workers:        conf.Section("backtest").Key("workers").MustInt(1),
		Metric:         conf.Section("backtest").Key("metric").MustString(string(backtest.MetricTotalReturn)),

		WatchWindow:  conf.Section("alert").Key("watch_window").MustInt(3),
		AlertCSVDir:  conf.Section("alert").Key("csv_dir").MustString("./out"),
		AlertJSONDir: conf.Section("alert").Key("json_dir").MustString("./out"),
		TelegramChat: conf.Section("alert").Key("telegram_chat").String(),

		DataDir: conf.Section("feed").Key("data_dir").MustString("./data/date"),

		ScrapeDomain: conf.Section("scrape").Key("domain").MustString("www.sharesansar.com"),
		ScrapeURL:    conf.Section("scrape").Key("url").MustString("https://www.sharesansar.com/today-share-price"),
	}
}

// BacktestConfig builds the explicit engine config from the loaded
// settings. The engine itself never reads this global.
func BacktestConfig() backtest.Config {
	return backtest.Config{
		InitialCapital: Config.InitialCapital,
		Commission:     Config.Commission,
		Slippage:       Config.Slippage,
		MinBars:        Config.MinBars,
		MinTrades:      Config.MinTrades,
		PeriodsPerYear: Config.PeriodsPerYear,
		Workers:        Config.Workers,
	}
}
