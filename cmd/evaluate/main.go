package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/app"
	"github.com/airenas/hmm-ocr-corrector/internal/evaluate"
	"github.com/airenas/hmm-ocr-corrector/internal/report"
)

func main() {
	goapp.StartWithDefault()
	cfg := goapp.Config

	ctx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	dataCfg, err := app.DataConfig(cfg)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't read data config")
	}
	trained, err := app.Train(ctx, dataCfg)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't train model")
	}
	if cfg.GetBool("print.tables") {
		if err := report.WriteModel(os.Stdout, trained.Model); err != nil {
			goapp.Log.Fatal().Err(err).Msg("can't print model")
		}
	}

	res, err := evaluate.Run(ctx, trained.Decoder, trained.HeldOut, evaluate.Config{Workers: cfg.GetInt("evaluate.workers")})
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't evaluate")
	}
	if err := report.WriteEvaluation(os.Stdout, res); err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't print evaluation")
	}
}
