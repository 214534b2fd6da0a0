package main

import (
	"currency-converter/config"
	"currency-converter/exchange"
	"currency-converter/http"
	"currency-converter/rates"
	"flag"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	nhttp "net/http"
)

func main() {
	configPath := flag.String("c", "config.env", "path to an optional env file")
	flag.Parse()

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load(*configPath)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, cfg.Level)

	table := rates.Default()

	convertService := exchange.NewService(table.Lookup)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	server := http.NewServer(convertService, table, log.With(logger, "component", "http"))

	level.Info(logger).Log("msg", "listening", "addr", cfg.HTTPAddr)
	if err := nhttp.ListenAndServe(cfg.HTTPAddr, server); err != nil {
		level.Error(logger).Log("msg", "http server stopped", "err", err)
		os.Exit(1)
	}
}
