// Package data loads paired ground truth and OCR words
package data

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCountMismatch is returned when ground truth and OCR lists have different sizes
var ErrCountMismatch = errors.New("ground truth and OCR line counts differ")

// Pair keeps a ground truth word and its OCR reading
type Pair struct {
	Truth string `json:"truth"`
	OCR   string `json:"ocr"`
}

// Source provides training pairs
type Source interface {
	Load(ctx context.Context) ([]Pair, error)
}

// Zip joins line aligned lists into pairs
func Zip(truth, ocr []string) ([]Pair, error) {
	if len(truth) != len(ocr) {
		return nil, fmt.Errorf("%d vs %d: %w", len(truth), len(ocr), ErrCountMismatch)
	}
	res := make([]Pair, len(truth))
	for i := range truth {
		res[i] = Pair{Truth: truth[i], OCR: ocr[i]}
	}
	return res, nil
}

// Unzip splits pairs into ground truth and OCR lists
func Unzip(pairs []Pair) (truth, ocr []string) {
	truth, ocr = make([]string, len(pairs)), make([]string, len(pairs))
	for i, p := range pairs {
		truth[i], ocr[i] = p.Truth, p.OCR
	}
	return truth, ocr
}

// Split returns the first n pairs for estimation and the rest for evaluation
func Split(pairs []Pair, n int) (estimation, heldOut []Pair) {
	if n < 0 {
		n = 0
	}
	if n > len(pairs) {
		n = len(pairs)
	}
	return pairs[:n], pairs[n:]
}

// ReadLines reads all lines trimming surrounding white space
func ReadLines(r io.Reader) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		res = append(res, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// FileSource reads two line aligned word files
type FileSource struct {
	TruthPath string
	OCRPath   string
}

// Load implements Source
func (fs *FileSource) Load(ctx context.Context) ([]Pair, error) {
	truth, err := readFile(fs.TruthPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ocr, err := readFile(fs.OCRPath)
	if err != nil {
		return nil, err
	}
	return Zip(truth, ocr)
}

func readFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	res, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return res, nil
}
