package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/app"
	"github.com/airenas/hmm-ocr-corrector/internal/db"
	"github.com/airenas/hmm-ocr-corrector/internal/service"
	"github.com/labstack/gommon/color"
)

func main() {
	goapp.StartWithDefault()

	printBanner()

	cfg := goapp.Config

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	dataCfg, err := app.DataConfig(cfg)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't read data config")
	}
	trained, err := app.Train(ctx, dataCfg)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't train model")
	}

	data := &service.Data{}
	data.Ctx = ctx
	data.Port = cfg.GetInt("port")
	data.Decoder = trained.Decoder
	data.Model = app.Info(trained.Model)
	goapp.Log.Info().Str("fingerprint", data.Model.Fingerprint).Msg("model")

	if url := cfg.GetString("cache.url"); url != "" {
		rc, err := db.NewRedisCache(url, cfg.GetDuration("cache.ttl"))
		if err != nil {
			goapp.Log.Fatal().Err(err).Msg("can't init redis cache")
		}
		defer rc.Close()
		data.Cache = rc
	} else {
		data.Cache = db.NewMemoryCache(cfg.GetInt("cache.limit"))
	}

	doneCh, err := service.StartWebServer(data)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't start web server")
	}

	/////////////////////// Waiting for terminate
	waitCh := make(chan os.Signal, 2)
	signal.Notify(waitCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-waitCh:
		goapp.Log.Info().Msg("Got exit signal")
	case <-doneCh:
		goapp.Log.Info().Msg("Service exit")
	}
	cancelFunc()
	select {
	case <-doneCh:
		goapp.Log.Info().Msg("All code returned. Now exit. Bye")
	case <-time.After(time.Second * 15):
		goapp.Log.Warn().Msg("Timeout gracefull shutdown")
	}
}

var (
	version = "DEV"
)

func printBanner() {
	banner :=
		`
    HMM OCR CORRECTOR v: %s
	
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("https://github.com/airenas/hmm-ocr-corrector"))
}
