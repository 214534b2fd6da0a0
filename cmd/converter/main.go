package main

import (
	"currency-converter/config"
	"currency-converter/console"
	"currency-converter/exchange"
	"currency-converter/rates"
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	configPath := flag.String("c", "config.env", "path to an optional env file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-c config.env]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	// stdout belongs to the console, logs go to stderr
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

	c, err := console.New(convertService, table, log.With(logger, "component", "console"), cfg.SourceCurrency(), cfg.TargetCurrency(), os.Stdout)
	if err != nil {
		level.Error(logger).Log("msg", "building console", "err", err)
		os.Exit(1)
	}
	if err := c.Run(os.Stdin); err != nil {
		level.Error(logger).Log("msg", "console stopped", "err", err)
		os.Exit(1)
	}
}
