package hmm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Table keeps conditional probabilities P(outcome | context) in a dense
// row-major matrix over the full context x outcome alphabets.
// Rows of contexts never seen in data are all zero.
type Table struct {
	kind     TableKind
	contexts *Alphabet
	outcomes *Alphabet
	probs    []float64
	totals   []float64
}

// Counter accumulates (context, outcome) counts for a Table
type Counter struct {
	kind     TableKind
	contexts *Alphabet
	outcomes *Alphabet
	counts   []float64
}

// NewCounter creates a counter over complete alphabets
func NewCounter(kind TableKind, contexts, outcomes *Alphabet) *Counter {
	return &Counter{kind: kind, contexts: contexts, outcomes: outcomes,
		counts: make([]float64, contexts.Len()*outcomes.Len())}
}

// Add counts one occurrence of the pair
func (c *Counter) Add(context, outcome rune) error {
	ci, ok := c.contexts.Index(context)
	if !ok {
		return fmt.Errorf("%s context '%c': %w", c.kind, context, ErrUnknownSymbol)
	}
	oi, ok := c.outcomes.Index(outcome)
	if !ok {
		return fmt.Errorf("%s outcome '%c': %w", c.kind, outcome, ErrUnknownSymbol)
	}
	c.counts[ci*c.outcomes.Len()+oi]++
	return nil
}

// Table normalizes every row by its own total.
// A row with no observations is left all zero.
func (c *Counter) Table() *Table {
	n := c.outcomes.Len()
	res := &Table{kind: c.kind, contexts: c.contexts, outcomes: c.outcomes,
		probs: append([]float64(nil), c.counts...), totals: make([]float64, c.contexts.Len())}
	for ci := range res.totals {
		row := res.probs[ci*n : (ci+1)*n]
		total := floats.Sum(row)
		res.totals[ci] = total
		if total == 0 {
			continue
		}
		floats.Scale(1/total, row)
	}
	return res
}

// Kind returns the table kind
func (t *Table) Kind() TableKind {
	return t.kind
}

// Contexts returns the context alphabet
func (t *Table) Contexts() *Alphabet {
	return t.contexts
}

// Outcomes returns the outcome alphabet
func (t *Table) Outcomes() *Alphabet {
	return t.outcomes
}

// At returns the probability by dense indexes
func (t *Table) At(ci, oi int) float64 {
	return t.probs[ci*t.outcomes.Len()+oi]
}

// Prob returns P(outcome | context).
// It panics if a key is outside of the table alphabets: tables are complete,
// so such a query is a programming error.
func (t *Table) Prob(context, outcome rune) float64 {
	return t.At(t.contextIndex(context), t.outcomeIndex(outcome))
}

// Row returns a copy of the context row ordered as Outcomes
func (t *Table) Row(context rune) []float64 {
	ci := t.contextIndex(context)
	n := t.outcomes.Len()
	return append([]float64(nil), t.probs[ci*n:(ci+1)*n]...)
}

// Observed reports whether the context had at least one counted outcome
func (t *Table) Observed(context rune) bool {
	return t.totals[t.contextIndex(context)] > 0
}

// Count returns the number of observations counted for the context
func (t *Table) Count(context rune) float64 {
	return t.totals[t.contextIndex(context)]
}

func (t *Table) contextIndex(r rune) int {
	i, ok := t.contexts.Index(r)
	if !ok {
		panic(fmt.Sprintf("hmm: %s table has no context '%c' (%U)", t.kind, r, r))
	}
	return i
}

func (t *Table) outcomeIndex(r rune) int {
	i, ok := t.outcomes.Index(r)
	if !ok {
		panic(fmt.Sprintf("hmm: %s table has no outcome '%c' (%U)", t.kind, r, r))
	}
	return i
}

// Vector keeps an unconditional distribution over an alphabet
type Vector struct {
	kind    TableKind
	symbols *Alphabet
	probs   []float64
	counts  []float64
}

// VectorCounter accumulates symbol counts for a Vector
type VectorCounter struct {
	kind    TableKind
	symbols *Alphabet
	counts  []float64
}

// NewVectorCounter creates a counter over a complete alphabet
func NewVectorCounter(kind TableKind, symbols *Alphabet) *VectorCounter {
	return &VectorCounter{kind: kind, symbols: symbols, counts: make([]float64, symbols.Len())}
}

// Add counts one occurrence of the symbol
func (c *VectorCounter) Add(r rune) error {
	i, ok := c.symbols.Index(r)
	if !ok {
		return fmt.Errorf("%s symbol '%c': %w", c.kind, r, ErrUnknownSymbol)
	}
	c.counts[i]++
	return nil
}

// Vector divides counts by total. Zero total leaves all values at zero.
func (c *VectorCounter) Vector(total float64) *Vector {
	res := &Vector{kind: c.kind, symbols: c.symbols,
		probs: append([]float64(nil), c.counts...), counts: append([]float64(nil), c.counts...)}
	if total > 0 {
		floats.Scale(1/total, res.probs)
	}
	return res
}

// Symbols returns the vector alphabet
func (v *Vector) Symbols() *Alphabet {
	return v.symbols
}

// At returns the probability by a dense index
func (v *Vector) At(i int) float64 {
	return v.probs[i]
}

// Prob returns the probability of the symbol, panics for an unknown symbol
func (v *Vector) Prob(r rune) float64 {
	return v.probs[v.index(r)]
}

// Observed reports whether the symbol was counted at least once
func (v *Vector) Observed(r rune) bool {
	return v.counts[v.index(r)] > 0
}

// Values returns a copy of probabilities ordered as Symbols
func (v *Vector) Values() []float64 {
	return append([]float64(nil), v.probs...)
}

func (v *Vector) index(r rune) int {
	i, ok := v.symbols.Index(r)
	if !ok {
		panic(fmt.Sprintf("hmm: %s table has no state '%c' (%U)", v.kind, r, r))
	}
	return i
}
