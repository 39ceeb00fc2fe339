package db

import (
	"fmt"

	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
)

type entry struct {
	Word string  `json:"word"`
	Prob float64 `json:"prob"`
}

func toEntry(p hmm.Path) entry {
	return entry{Word: p.Word, Prob: p.Prob}
}

func (e entry) path() hmm.Path {
	return hmm.Path{Word: e.Word, Prob: e.Prob}
}

// Key builds a cache key bound to a model fingerprint, so results of other models never match
func Key(fingerprint, obs string) string {
	return fmt.Sprintf("decode:%s:%s", fingerprint, obs)
}
