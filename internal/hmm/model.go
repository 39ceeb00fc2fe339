// Package hmm estimates a letter level hidden Markov model from ground truth
// and OCR word pairs and decodes OCR output with the Viterbi algorithm.
//
// Hidden states are ground truth letters, observations are OCR symbols. All
// tables are dense over their alphabets: a missing key is never meaningful,
// and a zero value means the event was not seen in training.
package hmm

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Model keeps estimated HMM parameters. It is read only after Estimate returns.
type Model struct {
	Initial    *Vector
	Transition *Table
	Emission   *Table
	// Words is the number of non-empty ground truth words used for the initial table
	Words int
	// Skipped keeps indexes of pairs left out of the emission table
	Skipped []int

	states *Alphabet
}

// States returns the candidate decoding states the model was estimated for
func (m *Model) States() *Alphabet {
	return m.states
}

// Hidden returns the hidden state alphabet
func (m *Model) Hidden() *Alphabet {
	return m.Transition.Contexts()
}

// Observed returns the OCR symbol alphabet
func (m *Model) Observed() *Alphabet {
	return m.Emission.Outcomes()
}

// Fingerprint returns a stable hash of all model values
func (m *Model) Fingerprint() string {
	h := xxhash.New()
	buf := make([]byte, 8)
	writeF := func(f float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(f))
		_, _ = h.Write(buf)
	}
	_, _ = h.WriteString(m.Hidden().String())
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(m.Observed().String())
	for _, v := range m.Initial.probs {
		writeF(v)
	}
	for _, v := range m.Transition.probs {
		writeF(v)
	}
	for _, v := range m.Emission.probs {
		writeF(v)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
