package log_test

import (
	"github.com/conlog/conlog/log"
)

func Example_install() {
	// A conflict means a sink was already installed; the first stays active.
	_ = log.Init("info")

	log.Info("server", "application started")
	log.Error("server/db", "failed to connect")
}

func Example_directives() {
	logger := log.New("warn,server=debug,server/metrics=off")

	logger.Debug("server/http", "verbose detail for the server tree")
	logger.Warn("worker", "other targets use the global threshold")
	logger.Error("server/metrics", "silenced entirely")
}

func Example_level() {
	_ = log.InitLevel(log.LevelDebug)

	log.Debug("cache", "single global threshold, no directive parsing")
}

func Example_environment() {
	// Fails when the variable is unset; nothing is installed in that case.
	if err := log.InitEnv(log.OSEnv{}, "LOG"); err != nil {
		log.Error("init", err.Error())
	}
}

func Example_slogBridge() {
	slogger := log.New("trace").Slog()

	slogger.Info("request served",
		"target", "server/http",
		"status", 200,
	)
}
