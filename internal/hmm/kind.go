//go:generate stringer -type=TableKind -trimprefix=Table
package hmm

// TableKind identifies one of the model tables
type TableKind int

const (
	TableInitial TableKind = iota
	TableTransition
	TableEmission
)
