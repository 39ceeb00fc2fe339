// Package app wires configuration, data loading and estimation for commands
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/api"
	"github.com/airenas/hmm-ocr-corrector/internal/data"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
	"github.com/spf13/viper"
)

// Trained keeps the estimated model with the held-out data
type Trained struct {
	Model   *hmm.Model
	Decoder *hmm.Decoder
	HeldOut []data.Pair
}

// DataConfig reads the data section of the configuration
func DataConfig(cfg *viper.Viper) (*data.Config, error) {
	res := data.DefaultConfig()
	if cfg == nil {
		return &res, nil
	}
	var loaded data.Config
	if err := cfg.UnmarshalKey("data", &loaded); err != nil {
		return nil, fmt.Errorf("read data config: %w", err)
	}
	res.Merge(&loaded)
	return &res, nil
}

// Train loads pairs from the configured source, estimates the model on the
// first split pairs and keeps the rest for evaluation
func Train(ctx context.Context, cfg *data.Config) (*Trained, error) {
	src, err := data.NewSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("init source: %w", err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}
	pairs, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	estimation, heldOut := data.Split(pairs, cfg.Split)
	goapp.Log.Info().Int("pairs", len(pairs)).Int("estimation", len(estimation)).Int("heldOut", len(heldOut)).Msg("loaded")

	truth, ocr := data.Unzip(estimation)
	m, err := hmm.Estimate(truth, ocr)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}
	d, err := hmm.NewDecoder(m)
	if err != nil {
		return nil, fmt.Errorf("init decoder: %w", err)
	}
	return &Trained{Model: m, Decoder: d, HeldOut: heldOut}, nil
}

// Info describes the model for the service
func Info(m *hmm.Model) api.ModelInfo {
	return api.ModelInfo{
		Fingerprint: m.Fingerprint(),
		States:      m.States().String(),
		Symbols:     m.Observed().String(),
		Words:       m.Words,
		Skipped:     len(m.Skipped),
	}
}
