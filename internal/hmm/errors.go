package hmm

import "errors"

var (
	// ErrUnknownSymbol is returned when a counted symbol is outside of the table alphabets
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrPairCount is returned when ground truth and OCR lists differ in size
	ErrPairCount = errors.New("ground truth and OCR word counts differ")
	// ErrStateNotInModel is returned when a decoder state is missing in the estimated model
	ErrStateNotInModel = errors.New("state not in model")
	// ErrNoStates is returned when a decoder is configured without candidate states
	ErrNoStates = errors.New("no states")
)
