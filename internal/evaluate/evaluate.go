// Package evaluate measures how many OCR letter errors the decoder fixes
package evaluate

import (
	"context"
	"runtime"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/hmm-ocr-corrector/internal/data"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
	"golang.org/x/sync/errgroup"
)

// Decoder decodes one observation
type Decoder interface {
	Decode(obs string) hmm.Path
}

// Config holds evaluation parameters
type Config struct {
	Workers int `mapstructure:"workers"` // 0 means runtime.NumCPU()
}

// Correction describes a held-out word with at least one fixed letter
type Correction struct {
	OCR     string `json:"ocr"`
	Decoded string `json:"decoded"`
	Truth   string `json:"truth"`
	Fixed   int    `json:"fixed"`
}

// Report aggregates evaluation results
type Report struct {
	Words       int          `json:"words"`
	Letters     int          `json:"letters"`
	Corrected   int          `json:"corrected"`
	Skipped     int          `json:"skipped"`
	ZeroProb    int          `json:"zeroProb"`
	Corrections []Correction `json:"corrections,omitempty"`
}

type wordResult struct {
	letters int
	fixed   int
	skipped bool
	zero    bool
	decoded string
}

// Run decodes every OCR word of pairs and counts letters where the OCR was
// wrong and the decoded letter equals the ground truth
func Run(ctx context.Context, decoder Decoder, pairs []data.Pair, cfg Config) (*Report, error) {
	start := time.Now()
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]wordResult, len(pairs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pairs {
		if err := gCtx.Err(); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = evaluateWord(decoder, pairs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Report{}
	for i, r := range results {
		if r.skipped {
			res.Skipped++
			continue
		}
		res.Words++
		res.Letters += r.letters
		res.Corrected += r.fixed
		if r.zero {
			res.ZeroProb++
		}
		if r.fixed > 0 {
			res.Corrections = append(res.Corrections, Correction{OCR: pairs[i].OCR, Decoded: r.decoded,
				Truth: pairs[i].Truth, Fixed: r.fixed})
		}
	}
	goapp.Log.Info().Int("words", res.Words).Int("letters", res.Letters).Int("corrected", res.Corrected).
		Int("skipped", res.Skipped).Int("zeroProb", res.ZeroProb).Int("workers", workers).
		Dur("elapsed", time.Since(start)).Msg("evaluated")
	return res, nil
}

func evaluateWord(decoder Decoder, p data.Pair) wordResult {
	obs, truth := []rune(p.OCR), []rune(p.Truth)
	if len(obs) != len(truth) {
		goapp.Log.Debug().Str("word", p.Truth).Str("ocr", p.OCR).Msg("skip length mismatch")
		return wordResult{skipped: true}
	}
	path := decoder.Decode(p.OCR)
	res := wordResult{letters: len(obs), decoded: path.Word}
	if !path.Found() {
		res.zero = true
		return res
	}
	decoded := []rune(path.Word)
	for j := range obs {
		if obs[j] != truth[j] && decoded[j] == truth[j] {
			res.fixed++
		}
	}
	return res
}
