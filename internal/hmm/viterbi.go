package hmm

import (
	"fmt"
)

// Path is a decoded hidden state sequence with its joint probability.
// Zero value means no sequence can explain the observation.
type Path struct {
	Word string
	Prob float64
}

// Found reports whether the path explains the observation
func (p Path) Found() bool {
	return p.Prob > 0
}

// Decoder finds the most probable ground truth word for an OCR observation.
// It copies the needed model values into dense slices and is safe for concurrent use.
type Decoder struct {
	states   []rune
	observed *Alphabet
	initial  []float64 // [state]
	trans    []float64 // [prev*k + next]
	emission []float64 // [state*m + symbol]
}

// NewDecoder prepares a decoder over the model candidate states
func NewDecoder(m *Model) (*Decoder, error) {
	if m == nil || m.states == nil || m.states.Len() == 0 {
		return nil, ErrNoStates
	}
	hidden := m.Hidden()
	k, obsLen := m.states.Len(), m.Observed().Len()
	idx := make([]int, k)
	for s := 0; s < k; s++ {
		r := m.states.Symbol(s)
		i, ok := hidden.Index(r)
		if !ok {
			return nil, fmt.Errorf("'%c': %w", r, ErrStateNotInModel)
		}
		idx[s] = i
	}
	res := &Decoder{
		states:   m.states.Symbols(),
		observed: m.Observed(),
		initial:  make([]float64, k),
		trans:    make([]float64, k*k),
		emission: make([]float64, k*obsLen),
	}
	for s := 0; s < k; s++ {
		res.initial[s] = m.Initial.At(idx[s])
		for n := 0; n < k; n++ {
			res.trans[s*k+n] = m.Transition.At(idx[s], idx[n])
		}
		for o := 0; o < obsLen; o++ {
			res.emission[s*obsLen+o] = m.Emission.At(idx[s], o)
		}
	}
	return res, nil
}

// Decode returns the most probable hidden word for the observation.
// On exact ties the state earlier in alphabet order wins. If every path has
// zero probability, for example because of a symbol never seen in training,
// the zero Path is returned.
func (d *Decoder) Decode(obs string) Path {
	l, ok := d.sweep([]rune(obs))
	if !ok {
		return Path{}
	}
	best, arg := 0.0, -1
	for s, v := range l.scores {
		if v > best {
			best, arg = v, s
		}
	}
	if arg < 0 {
		return Path{}
	}
	return Path{Word: l.trace(arg), Prob: best}
}

// Paths returns the best path ending in each candidate state, in state order.
// States no path can reach get the zero Path.
func (d *Decoder) Paths(obs string) []Path {
	res := make([]Path, len(d.states))
	l, ok := d.sweep([]rune(obs))
	if !ok {
		return res
	}
	for s, v := range l.scores {
		if v > 0 {
			res[s] = Path{Word: l.trace(s), Prob: v}
		}
	}
	return res
}

// States returns candidate states in decoding order
func (d *Decoder) States() []rune {
	return append([]rune(nil), d.states...)
}

type lattice struct {
	states []rune
	scores []float64 // final position
	back   []int     // [(t-1)*k + s], -1 when unreachable
	n      int
}

func (l *lattice) trace(s int) string {
	k := len(l.states)
	word := make([]rune, l.n)
	word[l.n-1] = l.states[s]
	for t := l.n - 1; t > 0; t-- {
		s = l.back[(t-1)*k+s]
		word[t-1] = l.states[s]
	}
	return string(word)
}

// sweep runs the left to right recurrence keeping only the previous scores
func (d *Decoder) sweep(obs []rune) (*lattice, bool) {
	n, k := len(obs), len(d.states)
	if n == 0 {
		return nil, false
	}
	m := d.observed.Len()
	cols := make([]int, n)
	for i, r := range obs {
		oi, ok := d.observed.Index(r)
		if !ok {
			return nil, false
		}
		cols[i] = oi
	}

	prev, cur := make([]float64, k), make([]float64, k)
	for s := 0; s < k; s++ {
		prev[s] = d.initial[s] * d.emission[s*m+cols[0]]
	}
	back := make([]int, (n-1)*k)
	for t := 1; t < n; t++ {
		bt := back[(t-1)*k : t*k]
		for s := 0; s < k; s++ {
			e := d.emission[s*m+cols[t]]
			best, arg := 0.0, -1
			for p := 0; p < k; p++ {
				if v := prev[p] * d.trans[p*k+s] * e; v > best {
					best, arg = v, p
				}
			}
			cur[s], bt[s] = best, arg
		}
		prev, cur = cur, prev
	}
	return &lattice{states: d.states, scores: prev, back: back, n: n}, true
}
