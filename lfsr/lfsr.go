// Package lfsr derives the combinational update equations of a CRC/LFSR
// shift register. For a polynomial, register configuration and data bus
// width it symbolically clocks the register once per input bit and reports,
// for every register bit, which current state bits and input data bits XOR
// together to form its next value.
package lfsr

import (
	"strconv"

	"golang.org/x/xerrors"

	"github.com/zoricak/crcgen/gf"
	u "github.com/zoricak/crcgen/util"
)

var (
	// ErrInvalidPolynomial is returned when the polynomial has no zeroth
	// order term. Such a register would not feed its input back at all.
	ErrInvalidPolynomial = xerrors.New("polynomial must include zeroth order term")

	// ErrInvalidDimension is returned for a non-positive register or data
	// width, or a register wider than 64 bits.
	ErrInvalidDimension = xerrors.New("invalid register or data width")
)

// Config selects the shift register topology. There are exactly two.
type Config byte

const (
	// Galois feeds the register output back into the taps after the shift.
	Galois Config = iota
	// Fibonacci folds all tap outputs into the shifted-in bit before the shift.
	Fibonacci
)

func (c Config) String() string {
	if c == Fibonacci {
		return "fibonacci"
	}
	return "galois"
}

// ParseConfig maps the command line spelling to a Config.
func ParseConfig(s string) (Config, error) {
	switch s {
	case "galois":
		return Galois, nil
	case "fibonacci":
		return Fibonacci, nil
	}
	return 0, xerrors.Errorf("invalid configuration '%s'", s)
}

// Params describes one synthesis run.
type Params struct {
	Width     int    // register width W, 1..64
	DataWidth int    // input bits consumed per clock, >= 1
	Poly      uint64 // polynomial; bit W is implicit, bit 0 must be set
	Config    Config
	Extend    bool   // widen the state to DataWidth when DataWidth > Width
	Reverse   bool   // bit-reverse inputs, outputs and the initial value
	Init      uint64 // reset value, masked to the effective state width
}

func (p Params) validate() error {
	if p.Width < 1 || p.Width > 64 || p.DataWidth < 1 {
		return u.WrapErr("validate", ErrInvalidDimension)
	}
	if p.Poly&1 == 0 {
		return u.WrapErr("validate", ErrInvalidPolynomial)
	}
	return nil
}

// Equations is the result of a synthesis run: one canonical expression per
// bit of the effective state. Cells[p] is the next value of state bit p.
type Equations struct {
	Params

	StateWidth int       // Width, or DataWidth when extension applies
	Cells      []gf.Expr // canonical, len == StateWidth
	Init       uint64    // init masked to StateWidth bits, before any reversal

	// TransformedInit is the reset value the register should actually load:
	// equal to Init unless the equations have been reversed.
	TransformedInit uint64
}

// Apply evaluates one clock of the equation set over concrete state and
// data words. It exists for consumers that want to emulate the generated
// circuit in software, and for the test suite.
func (e *Equations) Apply(state, data uint64) uint64 {
	var next uint64
	for p, c := range e.Cells {
		next |= c.Eval(state, data) << uint(p)
	}
	return next
}

// PolyString renders the polynomial as a sum of powers, eg
// "x^8 + x^2 + x + 1".
func (p Params) PolyString() string {
	s := "1"
	for i := 1; i < p.Width; i++ {
		if p.Poly&(1<<uint(i)) != 0 {
			if i == 1 {
				s = "x + " + s
			} else {
				s = "x^" + strconv.Itoa(i) + " + " + s
			}
		}
	}
	return "x^" + strconv.Itoa(p.Width) + " + " + s
}

func mask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (1 << uint(n)) - 1
}

// reverseBits mirrors the low n bits of v.
func reverseBits(v uint64, n int) uint64 {
	var out uint64
	for i := 0; i < n; i++ {
		if v&(1<<uint(i)) != 0 {
			out |= 1 << uint(n-1-i)
		}
	}
	return out
}
