package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
)

// envConfig is read from the environment.
type envConfig struct {
	TraceLevel string `env:"SCENECTL_TRACE_LEVEL" envDefault:"error"`
	NoColor    bool   `env:"SCENECTL_NO_COLOR"`
}

// traceKeys are the tracers of the packages scenectl uses.
var traceKeys = []string{"geoscene.scene", "geoscene.signal", "geoscene.scenefile", "geoscene.cmd"}

func loadEnv() (*envConfig, error) {
	cfg := &envConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (cfg *envConfig) apply() {
	if cfg.NoColor {
		color.NoColor = true
	}
	level := traceLevel(cfg.TraceLevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
