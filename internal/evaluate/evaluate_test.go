package evaluate

import (
	"context"
	"testing"

	"github.com/airenas/hmm-ocr-corrector/internal/data"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapDecoder map[string]hmm.Path

func (md mapDecoder) Decode(obs string) hmm.Path {
	return md[obs]
}

func TestRun(t *testing.T) {
	dec := mapDecoder{
		"C4T": {Word: "CAT", Prob: 0.5},
		"D0C": {Word: "DOG", Prob: 0.1},
		"BAT": {Word: "BIT", Prob: 0.2},
	}
	pairs := []data.Pair{
		{Truth: "CAT", OCR: "C4T"},   // one fixed
		{Truth: "DOG", OCR: "D0C"},   // two fixed
		{Truth: "BAT", OCR: "BAT"},   // broken by the decoder, nothing fixed
		{Truth: "EEL", OCR: "EE1"},   // zero probability
		{Truth: "HORSE", OCR: "H0R"}, // skipped
	}
	for _, workers := range []int{0, 1, 3} {
		got, err := Run(context.Background(), dec, pairs, Config{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, &Report{Words: 4, Letters: 12, Corrected: 3, Skipped: 1, ZeroProb: 1,
			Corrections: []Correction{
				{OCR: "C4T", Decoded: "CAT", Truth: "CAT", Fixed: 1},
				{OCR: "D0C", Decoded: "DOG", Truth: "DOG", Fixed: 2},
			}}, got)
	}
}

func TestRun_Model(t *testing.T) {
	m, err := hmm.Estimate([]string{"CAR", "CAR", "CAT"}, []string{"CAT", "CAT", "CAT"})
	require.NoError(t, err)
	d, err := hmm.NewDecoder(m)
	require.NoError(t, err)

	got, err := Run(context.Background(), d, []data.Pair{{Truth: "CAR", OCR: "CAT"}, {Truth: "CAT", OCR: "CAT"}}, Config{})
	require.NoError(t, err)
	assert.Equal(t, 6, got.Letters)
	assert.Equal(t, 1, got.Corrected)
	assert.Equal(t, []Correction{{OCR: "CAT", Decoded: "CAR", Truth: "CAR", Fixed: 1}}, got.Corrections)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cf := context.WithCancel(context.Background())
	cf()
	_, err := Run(ctx, mapDecoder{}, []data.Pair{{Truth: "A", OCR: "A"}}, Config{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	got, err := Run(context.Background(), mapDecoder{}, nil, Config{})
	require.NoError(t, err)
	assert.Equal(t, &Report{}, got)
}
