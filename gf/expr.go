package gf

// Here symbolic linear combinations over the galois field 2 are implemented.
// An expression is the XOR of a number of state bits and input data bits,
// kept as two lists of bit indices.

import (
	"sort"
	"strconv"
	"strings"
)

// Expr is the XOR of state[i] for i in State and data[j] for j in Data.
// The raw form may carry an index more than once; an even number of
// occurrences cancels out, but only Canon resolves that. The empty
// expression is the constant 0.
type Expr struct {
	State []int
	Data  []int
}

// Zero returns the constant 0 expression.
func Zero() Expr {
	return Expr{}
}

// StateBit returns the expression consisting of the single bit state[i].
func StateBit(i int) Expr {
	return Expr{State: []int{i}}
}

// Clone returns a deep copy, so mutating one expression can never
// reach through to another.
func (e Expr) Clone() Expr {
	c := Expr{
		State: make([]int, len(e.State)),
		Data:  make([]int, len(e.Data)),
	}
	copy(c.State, e.State)
	copy(c.Data, e.Data)
	return c
}

// Xor accumulates o into e. This is raw accumulation: indices are
// concatenated and duplicates are left in place until Canon runs.
func (e Expr) Xor(o Expr) Expr {
	e.State = append(e.State, o.State...)
	e.Data = append(e.Data, o.Data...)
	return e
}

// WithData accumulates the single data bit j into e.
func (e Expr) WithData(j int) Expr {
	e.Data = append(e.Data, j)
	return e
}

// Canon reduces e to canonical form: since x^x = 0, an index survives
// only if it occurs an odd number of times. Surviving indices are sorted
// ascending. Canon is idempotent and allocates fresh slices.
func (e Expr) Canon() Expr {
	return Expr{
		State: canonIndices(e.State),
		Data:  canonIndices(e.Data),
	}
}

func canonIndices(raw []int) []int {
	cnt := make(map[int]int, len(raw))
	for _, ix := range raw {
		cnt[ix]++
	}
	out := make([]int, 0, len(cnt))
	for ix, c := range cnt {
		if c%2 == 1 {
			out = append(out, ix)
		}
	}
	sort.Ints(out)
	return out
}

// IsZero reports whether the canonical form of e is the constant 0.
func (e Expr) IsZero() bool {
	c := e.Canon()
	return len(c.State) == 0 && len(c.Data) == 0
}

// Equal compares the canonical forms of two expressions.
func (e Expr) Equal(o Expr) bool {
	a, b := e.Canon(), o.Canon()
	return equalIndices(a.State, b.State) && equalIndices(a.Data, b.Data)
}

func equalIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Eval evaluates e over concrete state and data words, returning 0 or 1.
// Bit i of a word is (word>>i)&1.
func (e Expr) Eval(state, data uint64) uint64 {
	var bit uint64
	for _, ix := range e.State {
		bit ^= (state >> uint(ix)) & 1
	}
	for _, ix := range e.Data {
		bit ^= (data >> uint(ix)) & 1
	}
	return bit
}

// String renders the canonical form, eg "state[2] ^ data[0]", or "0".
func (e Expr) String() string {
	c := e.Canon()
	terms := make([]string, 0, len(c.State)+len(c.Data))
	for _, ix := range c.State {
		terms = append(terms, "state["+strconv.Itoa(ix)+"]")
	}
	for _, ix := range c.Data {
		terms = append(terms, "data["+strconv.Itoa(ix)+"]")
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " ^ ")
}
