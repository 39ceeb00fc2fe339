// Package report prints model tables and evaluation summaries
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/airenas/hmm-ocr-corrector/internal/evaluate"
	"github.com/airenas/hmm-ocr-corrector/internal/hmm"
)

// WriteModel prints initial, transition and emission tables in key order.
// Only states observed as a table context are listed.
func WriteModel(w io.Writer, m *hmm.Model) error {
	bw := &errWriter{w: w}
	bw.printf("Initial state probabilities:\n")
	for _, s := range m.Hidden().Symbols() {
		if m.Initial.Observed(s) {
			bw.printf("%c %s\n", s, formatProb(m.Initial.Prob(s)))
		}
	}
	bw.printf("\n")
	writeTable(bw, "Transition probabilities:", m.Transition)
	writeTable(bw, "Emission probabilities:", m.Emission)
	return bw.err
}

func writeTable(bw *errWriter, title string, t *hmm.Table) {
	bw.printf("%s\n", title)
	outcomes := t.Outcomes().Symbols()
	for _, c := range t.Contexts().Symbols() {
		if !t.Observed(c) {
			continue
		}
		row := t.Row(c)
		items := make([]string, len(outcomes))
		for i, o := range outcomes {
			items[i] = fmt.Sprintf("%c:%s", o, formatProb(row[i]))
		}
		bw.printf("%c [%s]\n\n", c, strings.Join(items, " "))
	}
}

// WriteEvaluation prints corrected words and the final summary
func WriteEvaluation(w io.Writer, r *evaluate.Report) error {
	bw := &errWriter{w: w}
	for _, c := range r.Corrections {
		bw.printf("OCR output: %s Corrected word: %s\n", c.OCR, c.Decoded)
	}
	bw.printf("Out of %d letters, %d were corrected.\n", r.Letters, r.Corrected)
	if r.Skipped > 0 || r.ZeroProb > 0 {
		bw.printf("Skipped pairs: %d, undecodable words: %d\n", r.Skipped, r.ZeroProb)
	}
	return bw.err
}

func formatProb(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
