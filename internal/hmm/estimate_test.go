package hmm

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestEstimate_CatCar(t *testing.T) {
	m, err := Estimate([]string{"CAT", "CAR"}, []string{"CAT", "CAT"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, m.Emission.Prob('R', 'T'))
	assert.Equal(t, 1.0, m.Emission.Prob('T', 'T'))
	assert.Equal(t, 1.0, m.Emission.Prob('C', 'C'))
	assert.Equal(t, 1.0, m.Initial.Prob('C'))
	assert.Equal(t, 0.0, m.Initial.Prob('A'))
	assert.Equal(t, 1.0, m.Transition.Prob('C', 'A'))
	assert.Equal(t, 0.5, m.Transition.Prob('A', 'T'))
	assert.Equal(t, 0.5, m.Transition.Prob('A', 'R'))
	assert.False(t, m.Transition.Observed('T'))
	assert.Equal(t, 2, m.Words)
	assert.Empty(t, m.Skipped)
	assert.Equal(t, "ACT", m.Observed().String())
	assert.Equal(t, 26, m.Hidden().Len())
}

func TestEstimate_PairCount(t *testing.T) {
	_, err := Estimate([]string{"CAT", "CAR"}, []string{"CAT"})
	assert.True(t, errors.Is(err, ErrPairCount))
}

func TestEstimate_SkipsLengthMismatch(t *testing.T) {
	m, err := Estimate([]string{"CAT", "DOG"}, []string{"CAT", "D0"})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, m.Skipped)
	assert.False(t, m.Emission.Observed('D'))
	assert.False(t, m.Emission.Observed('G'))
	assert.Equal(t, 0.0, m.Emission.Prob('D', '0'))
	// initial and transition still use every ground truth word
	assert.Equal(t, 0.5, m.Initial.Prob('D'))
	assert.Equal(t, 1.0, m.Transition.Prob('O', 'G'))
}

func TestEstimate_EmptyWords(t *testing.T) {
	m, err := Estimate([]string{"", "AB"}, []string{"", "AB"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Words)
	assert.Equal(t, 1.0, m.Initial.Prob('A'))
}

func TestEstimate_CustomStates(t *testing.T) {
	m, err := Estimate([]string{"ab"}, []string{"ab"}, WithStates(NewAlphabet('a', 'b', 'c')))
	require.NoError(t, err)
	assert.Equal(t, "abc", m.States().String())
	assert.Equal(t, "abc", m.Hidden().String())
}

func TestEstimate_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		truth, ocr := randomPairs(r, 40)
		m, err := Estimate(truth, ocr)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, floats.Sum(m.Initial.Values()), 1e-9)
		hidden, observed := m.Hidden(), m.Observed()
		for _, s := range hidden.Symbols() {
			if m.Transition.Observed(s) {
				assert.InDelta(t, 1.0, floats.Sum(m.Transition.Row(s)), 1e-9)
			}
			if m.Emission.Observed(s) {
				assert.InDelta(t, 1.0, floats.Sum(m.Emission.Row(s)), 1e-9)
			}
			for _, n := range hidden.Symbols() {
				assert.NotPanics(t, func() { m.Transition.Prob(s, n) })
			}
			for _, o := range observed.Symbols() {
				assert.NotPanics(t, func() { m.Emission.Prob(s, o) })
			}
		}
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	truth, ocr := randomPairs(r, 100)
	m1, err := Estimate(truth, ocr)
	require.NoError(t, err)
	m2, err := Estimate(truth, ocr)
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
	assert.Equal(t, m1.Fingerprint(), m2.Fingerprint())

	m3, err := Estimate(truth[1:], ocr[1:])
	require.NoError(t, err)
	assert.NotEqual(t, m1.Fingerprint(), m3.Fingerprint())
}

// randomPairs makes words over a small alphabet with sporadic OCR noise
// and an occasional length mismatch
func randomPairs(r *rand.Rand, n int) ([]string, []string) {
	letters := []rune("ABCDE")
	noise := map[rune]rune{'A': '4', 'B': '8', 'C': 'G', 'D': '0', 'E': 'F'}
	truth, ocr := make([]string, n), make([]string, n)
	for i := 0; i < n; i++ {
		l := 1 + r.Intn(6)
		w, o := make([]rune, l), make([]rune, l)
		for j := range w {
			w[j] = letters[r.Intn(len(letters))]
			o[j] = w[j]
			if r.Intn(4) == 0 {
				o[j] = noise[w[j]]
			}
		}
		truth[i], ocr[i] = string(w), string(o)
		if r.Intn(15) == 0 {
			ocr[i] += "X"
		}
	}
	return truth, ocr
}
