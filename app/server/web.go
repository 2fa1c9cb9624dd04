package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/oarkflow/tradesignal/app/models"
	"github.com/oarkflow/tradesignal/backtest"
	"github.com/oarkflow/tradesignal/config"
	"github.com/oarkflow/tradesignal/stock"
	"github.com/oarkflow/tradesignal/strategy"
)

const defaultAlertLimit = 50

// JSONError is json error massage
type JSONError struct {
	Error string `json:"error"`
}

func errorAPI(w http.ResponseWriter, message string, code int) {
	jsonMessage, err := json.Marshal(JSONError{Error: message})
	if err != nil {
		logrus.Warnf("error message create error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	w.Write(jsonMessage)
}

// CandleGetAPIHandler gets candle data, score data and alert data,
// when path is "/api/candle"
func CandleGetAPIHandler(w http.ResponseWriter, req *http.Request) {
	logrus.Infof("candle get request: url -> %s", req.URL)

	fetch, _ := strconv.ParseBool(req.URL.Query().Get("fetch"))
	symbol := req.URL.Query().Get("symbol")
	period, err := strconv.Atoi(req.URL.Query().Get("period"))

	if symbol == "" {
		errorAPI(w, "bad parameter(symbol)", http.StatusBadRequest)
		return
	}

	if err != nil {
		errorAPI(w, "bad parameter(period)", http.StatusBadRequest)
		return
	}

	dframe := models.NewDataFrame()

	// Refreshes stored candles from the indexed market data
	if fetch {
		q, err := stock.GetStockData(symbol, period)
		if err != nil || len(q.Date) == 0 {
			logrus.Warnf("stock get error, symbol: %v", symbol)
			errorAPI(w, fmt.Sprintf("stock get error, symbol: %v", symbol), http.StatusBadRequest)
			return
		}
		models.DeleteCandles(symbol)
		models.NewCandlesFromQuote(symbol, q).CreateCandles()
	}

	dframe.AddCandleFrame(symbol, period)

	scores, _ := strconv.ParseBool(req.URL.Query().Get("scores"))
	alerts, _ := strconv.ParseBool(req.URL.Query().Get("alerts"))

	if scores {
		dframe.AddScoreFrame(symbol)
	}
	if alerts {
		dframe.AddAlertFrame(symbol, defaultAlertLimit)
	}

	js, err := json.Marshal(dframe)
	if err != nil {
		logrus.Warnf("candle json error: %v", err)
		errorAPI(w, "candle json error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

// BacktestAPIHandler ranks the strategy battery over stored candles,
// when path is "/api/backtest"
func BacktestAPIHandler(w http.ResponseWriter, req *http.Request) {
	logrus.Info("backtest request")
	dec := json.NewDecoder(req.Body)

	var rr models.RankRequest
	if err := dec.Decode(&rr); err != nil {
		logrus.Warnf("backtest params error: %v", err)
		errorAPI(w, fmt.Sprintf("backtest params error: %v", err), http.StatusInternalServerError)
		return
	}

	sframe, err := rr.Rank(config.BacktestConfig(), strategy.Battery())
	if err != nil {
		logrus.Warnf("backtest error: %v", err)
		var dataErr *backtest.DataError
		if errors.As(err, &dataErr) {
			errorAPI(w, fmt.Sprintf("backtest error: %v", err), http.StatusBadRequest)
			return
		}
		errorAPI(w, fmt.Sprintf("backtest error: %v", err), http.StatusInternalServerError)
		return
	}

	dframe := models.NewDataFrame()
	dframe.ScoreFrame = sframe

	js, err := json.Marshal(dframe)
	if err != nil {
		logrus.Warnf("score json error: %v", err)
		errorAPI(w, "score json error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

// RankingGetAPIHandler returns the scores of the latest ranking run,
// when path is "/api/ranking"
func RankingGetAPIHandler(w http.ResponseWriter, req *http.Request) {
	logrus.Infof("ranking get request: url -> %s", req.URL)

	symbol := req.URL.Query().Get("symbol")
	if symbol == "" {
		errorAPI(w, "bad parameter(symbol)", http.StatusBadRequest)
		return
	}

	js, err := json.Marshal(models.GetScoreFrame(symbol))
	if err != nil {
		logrus.Warnf("ranking json error: %v", err)
		errorAPI(w, "ranking json error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

// AlertGetAPIHandler returns recent alert events, when path is "/api/alert"
func AlertGetAPIHandler(w http.ResponseWriter, req *http.Request) {
	logrus.Infof("alert get request: url -> %s", req.URL)

	symbol := req.URL.Query().Get("symbol")
	if symbol == "" {
		errorAPI(w, "bad parameter(symbol)", http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(req.URL.Query().Get("limit"))
	if err != nil {
		limit = defaultAlertLimit
	}

	js, err := json.Marshal(models.GetAlertFrame(symbol, limit))
	if err != nil {
		logrus.Warnf("alert json error: %v", err)
		errorAPI(w, "alert json error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

// Run starts webserver
func Run() {
	logrus.Info("server start")
	http.HandleFunc("/api/candle", CandleGetAPIHandler)
	http.HandleFunc("/api/backtest", BacktestAPIHandler)
	http.HandleFunc("/api/ranking", RankingGetAPIHandler)
	http.HandleFunc("/api/alert", AlertGetAPIHandler)
	logrus.Fatalln(http.ListenAndServe(fmt.Sprintf(":%d", config.Config.Port), nil))
}
