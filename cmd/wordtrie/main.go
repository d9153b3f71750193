package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/oarkflow/wordtrie"
	"github.com/oarkflow/wordtrie/config"
	"github.com/oarkflow/wordtrie/logger"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file (yaml, json or toml)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	lg, err := logger.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() {
		_ = lg.Sync()
	}()

	analyzer := wordtrie.NewSimpleAnalyzer(
		wordtrie.SimpleAnalyzerWithStopWords(cfg.StopWords...),
		wordtrie.SimpleAnalyzerWithMinLength(cfg.MinLength),
	)
	manager := wordtrie.NewManager(lg, wordtrie.WithAnalyzer(analyzer))
	if _, err := manager.Open(cfg.Dictionary).Add(cfg.SeedWords...); err != nil {
		lg.Fatal("seed dictionary", zap.Error(err))
	}

	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = cfg.Prompt
	}
	shell, err := wordtrie.NewShell(manager, cfg.Dictionary,
		wordtrie.ShellWithOutput(cfg.Output),
		wordtrie.ShellWithPrompt(prompt),
		wordtrie.ShellWithLogger(lg),
	)
	if err != nil {
		lg.Fatal("create shell", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := shell.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		lg.Error("shell", zap.Error(err))
	}
}
