package hmm

import (
	"sort"
	"strings"
)

// Alphabet is an ordered set of symbols with a dense index
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet creates a sorted alphabet from the provided symbols, duplicates are dropped
func NewAlphabet(symbols ...rune) *Alphabet {
	set := make(map[rune]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	res := &Alphabet{symbols: make([]rune, 0, len(set)), index: make(map[rune]int, len(set))}
	for s := range set {
		res.symbols = append(res.symbols, s)
	}
	sort.Slice(res.symbols, func(i, j int) bool { return res.symbols[i] < res.symbols[j] })
	for i, s := range res.symbols {
		res.index[s] = i
	}
	return res
}

// AlphabetOf collects all runes of the words
func AlphabetOf(words ...string) *Alphabet {
	var all []rune
	for _, w := range words {
		all = append(all, []rune(w)...)
	}
	return NewAlphabet(all...)
}

// Letters returns A-Z
func Letters() *Alphabet {
	res := make([]rune, 0, 'Z'-'A'+1)
	for r := 'A'; r <= 'Z'; r++ {
		res = append(res, r)
	}
	return NewAlphabet(res...)
}

// Join returns a new alphabet containing symbols of both
func (a *Alphabet) Join(other *Alphabet) *Alphabet {
	return NewAlphabet(append(append([]rune{}, a.symbols...), other.symbols...)...)
}

// Index returns a position of the symbol
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Symbol returns the symbol at position i
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Contains reports whether r belongs to the alphabet
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Len returns the alphabet size
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of ordered symbols
func (a *Alphabet) Symbols() []rune {
	return append([]rune(nil), a.symbols...)
}

func (a *Alphabet) String() string {
	var sb strings.Builder
	for _, s := range a.symbols {
		sb.WriteRune(s)
	}
	return sb.String()
}
