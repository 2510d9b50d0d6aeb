package lfsr

import "github.com/zoricak/crcgen/gf"

// Synthesize simulates the shift register for one full data word and
// returns the next-state equation of every bit of the effective state.
// It is a pure function of its parameters.
func Synthesize(p Params) (*Equations, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	poly := p.Poly & mask(p.Width) // bit W is implicit

	// Before any clock, output bit i is just state bit i.
	cells := make([]gf.Expr, p.Width)
	for i := range cells {
		cells[i] = gf.StateBit(i)
	}

	var step stepFunc = galoisStep
	if p.Config == Fibonacci {
		step = fibonacciStep
	}

	// Clock once per data bit, MSB first. Evicted expressions are kept
	// newest first, so overflow[0] is the bit that fell off on the final
	// clock, ie the one sitting just past the register's far end.
	var overflow []gf.Expr
	for i := p.DataWidth - 1; i >= 0; i-- {
		ev := step(cells, poly, i)
		overflow = append([]gf.Expr{ev}, overflow...)
	}

	sw := p.Width
	if p.Extend && p.DataWidth > p.Width {
		sw = p.DataWidth
		cells = append(cells, overflow[:sw-p.Width]...)
	}

	for i := range cells {
		cells[i] = cells[i].Canon()
	}

	init := p.Init & mask(sw)
	eqs := &Equations{
		Params:          p,
		StateWidth:      sw,
		Cells:           cells,
		Init:            init,
		TransformedInit: init,
	}
	if p.Reverse {
		eqs = eqs.Reversed()
	}
	return eqs, nil
}

// Reversed returns a fresh equation set with bit-reversed outputs, state
// inputs and data inputs, and a bit-reversed reset value. The receiver is
// left untouched. Reversing twice yields the original equations.
func (e *Equations) Reversed() *Equations {
	sw, d := e.StateWidth, e.DataWidth

	cells := make([]gf.Expr, sw)
	for p := 0; p < sw; p++ {
		src := e.Cells[sw-1-p]
		var m gf.Expr
		for _, ix := range src.State {
			m.State = append(m.State, sw-1-ix)
		}
		for _, ix := range src.Data {
			m.Data = append(m.Data, d-1-ix)
		}
		cells[p] = m.Canon()
	}

	return &Equations{
		Params:          e.Params,
		StateWidth:      sw,
		Cells:           cells,
		Init:            e.Init,
		TransformedInit: reverseBits(e.TransformedInit, sw),
	}
}
