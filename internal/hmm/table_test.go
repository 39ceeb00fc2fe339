package hmm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNewAlphabet(t *testing.T) {
	a := NewAlphabet('C', 'A', 'B', 'A')
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "ABC", a.String())
	i, ok := a.Index('C')
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = a.Index('Z')
	assert.False(t, ok)
	assert.Equal(t, 'B', a.Symbol(1))
}

func TestAlphabetOf(t *testing.T) {
	a := AlphabetOf("CAT", "D0G", "")
	assert.Equal(t, "0ACDGT", a.String())
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", Letters().String())
	assert.Equal(t, "0ABCDT", AlphabetOf("AB0").Join(AlphabetOf("CDT")).String())
}

func TestCounter_Table(t *testing.T) {
	c := NewCounter(TableTransition, NewAlphabet('A', 'B', 'C'), NewAlphabet('x', 'y'))
	require.NoError(t, c.Add('A', 'x'))
	require.NoError(t, c.Add('A', 'x'))
	require.NoError(t, c.Add('A', 'y'))
	require.NoError(t, c.Add('B', 'y'))

	tb := c.Table()
	assert.InDelta(t, 2.0/3, tb.Prob('A', 'x'), 1e-12)
	assert.InDelta(t, 1.0/3, tb.Prob('A', 'y'), 1e-12)
	assert.Equal(t, 0.0, tb.Prob('B', 'x'))
	assert.Equal(t, 1.0, tb.Prob('B', 'y'))
	assert.Equal(t, []float64{0, 0}, tb.Row('C'))
	assert.True(t, tb.Observed('A'))
	assert.False(t, tb.Observed('C'))
	assert.Equal(t, 3.0, tb.Count('A'))
	assert.InDelta(t, 1.0, floats.Sum(tb.Row('A')), 1e-9)
}

func TestCounter_Add_Unknown(t *testing.T) {
	c := NewCounter(TableEmission, NewAlphabet('A'), NewAlphabet('x'))
	err := c.Add('B', 'x')
	assert.True(t, errors.Is(err, ErrUnknownSymbol))
	err = c.Add('A', 'z')
	assert.True(t, errors.Is(err, ErrUnknownSymbol))
}

func TestTable_Prob_PanicsOnUnknownKey(t *testing.T) {
	tb := NewCounter(TableEmission, NewAlphabet('A'), NewAlphabet('x')).Table()
	assert.PanicsWithValue(t, "hmm: Emission table has no context 'B' (U+0042)", func() { tb.Prob('B', 'x') })
	assert.Panics(t, func() { tb.Prob('A', 'y') })
	assert.Panics(t, func() { tb.Observed('?') })
}

func TestVectorCounter_Vector(t *testing.T) {
	c := NewVectorCounter(TableInitial, NewAlphabet('A', 'B', 'C'))
	require.NoError(t, c.Add('A'))
	require.NoError(t, c.Add('A'))
	require.NoError(t, c.Add('C'))
	assert.True(t, errors.Is(c.Add('Z'), ErrUnknownSymbol))

	v := c.Vector(4)
	assert.Equal(t, 0.5, v.Prob('A'))
	assert.Equal(t, 0.0, v.Prob('B'))
	assert.Equal(t, 0.25, v.Prob('C'))
	assert.False(t, v.Observed('B'))
	assert.True(t, v.Observed('C'))
	assert.PanicsWithValue(t, "hmm: Initial table has no state 'Z' (U+005A)", func() { v.Prob('Z') })
}

func TestVectorCounter_ZeroTotal(t *testing.T) {
	v := NewVectorCounter(TableInitial, NewAlphabet('A')).Vector(0)
	assert.Equal(t, []float64{0}, v.Values())
}

func TestTableKind_String(t *testing.T) {
	assert.Equal(t, "Initial", TableInitial.String())
	assert.Equal(t, "Transition", TableTransition.String())
	assert.Equal(t, "Emission", TableEmission.String())
	assert.Equal(t, "TableKind(5)", TableKind(5).String())
}
