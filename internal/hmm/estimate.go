package hmm

import (
	"fmt"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
)

type options struct {
	states *Alphabet
}

// Option configures estimation
type Option func(*options)

// WithStates sets the hidden states every table must cover, A-Z by default
func WithStates(states *Alphabet) Option {
	return func(o *options) {
		if states != nil {
			o.states = states
		}
	}
}

// Estimate counts initial, transition and emission frequencies from paired
// ground truth and OCR words. truth[i] must correspond to ocr[i].
// Pairs of different length are logged and left out of the emission table.
func Estimate(truth, ocr []string, opts ...Option) (*Model, error) {
	start := time.Now()
	if len(truth) != len(ocr) {
		return nil, fmt.Errorf("%d vs %d: %w", len(truth), len(ocr), ErrPairCount)
	}
	o := &options{states: Letters()}
	for _, opt := range opts {
		opt(o)
	}

	hidden := AlphabetOf(truth...).Join(o.states)
	observed := AlphabetOf(ocr...)

	res := &Model{states: o.states}
	var err error
	if res.Initial, res.Words, err = estimateInitial(truth, hidden); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if res.Transition, err = estimateTransition(truth, hidden); err != nil {
		return nil, fmt.Errorf("transition: %w", err)
	}
	if res.Emission, res.Skipped, err = estimateEmission(truth, ocr, hidden, observed); err != nil {
		return nil, fmt.Errorf("emission: %w", err)
	}
	goapp.Log.Info().Int("pairs", len(truth)).Int("words", res.Words).Int("skipped", len(res.Skipped)).
		Int("states", hidden.Len()).Int("symbols", observed.Len()).Dur("elapsed", time.Since(start)).Msg("estimated")
	return res, nil
}

// estimateInitial normalizes first letter counts by the number of non-empty words
func estimateInitial(truth []string, hidden *Alphabet) (*Vector, int, error) {
	c := NewVectorCounter(TableInitial, hidden)
	words := 0
	for _, w := range truth {
		rw := []rune(w)
		if len(rw) == 0 {
			continue
		}
		if err := c.Add(rw[0]); err != nil {
			return nil, 0, err
		}
		words++
	}
	return c.Vector(float64(words)), words, nil
}

func estimateTransition(truth []string, hidden *Alphabet) (*Table, error) {
	c := NewCounter(TableTransition, hidden, hidden)
	for _, w := range truth {
		rw := []rune(w)
		for i := 0; i+1 < len(rw); i++ {
			if err := c.Add(rw[i], rw[i+1]); err != nil {
				return nil, err
			}
		}
	}
	return c.Table(), nil
}

func estimateEmission(truth, ocr []string, hidden, observed *Alphabet) (*Table, []int, error) {
	c := NewCounter(TableEmission, hidden, observed)
	var skipped []int
	for i := range truth {
		rw, ro := []rune(truth[i]), []rune(ocr[i])
		if len(rw) != len(ro) {
			goapp.Log.Warn().Int("pair", i).Str("word", truth[i]).Str("ocr", ocr[i]).
				Msg("word and OCR output do not match in length")
			skipped = append(skipped, i)
			continue
		}
		for j := range rw {
			if err := c.Add(rw[j], ro[j]); err != nil {
				return nil, nil, err
			}
		}
	}
	return c.Table(), skipped, nil
}
