package lfsr

// One-bit clocking of the symbolic register, in both topologies.
//
// Galois style (example for CRC16, 0x8005)
//
//  ,-------------------+---------------------------------+------------,
//  |                   |                                 |            |
//  |  .----.  .----.   V   .----.  .----.       .----.   V   .----.   |
//  `->|  0 |->|  1 |->(+)->|  2 |->|  3 |->...->| 14 |->(+)->| 15 |->(+)<-DIN (MSB first)
//     '----'  '----'       '----'  '----'       '----'       '----'
//
// Fibonacci style (example for 64b66b, 0x8000000001)
//
//  ,-----------------------------(+)<------------------------------,
//  |                              ^                                |
//  |  .----.  .----.       .----. |  .----.       .----.  .----.   |
//  `->|  0 |->|  1 |->...->| 38 |-+->| 39 |->...->| 56 |->| 57 |->(+)<-DIN (MSB first)
//     '----'  '----'       '----'    '----'       '----'  '----'
//
// Both steps mutate cells in place, consume one data bit index and return
// the expression shifted out past the far end. They accumulate raw index
// lists; cancellation of even-multiplicity terms happens later, in one
// canonicalization pass over the finished equations.

import "github.com/zoricak/crcgen/gf"

type stepFunc func(cells []gf.Expr, poly uint64, data_ix int) gf.Expr

// galoisStep computes the shift-in value from the last cell and the data
// bit, shifts, then XORs that same value into every tap position.
func galoisStep(cells []gf.Expr, poly uint64, data_ix int) gf.Expr {
	w := len(cells)
	fb := cells[w-1].Clone().WithData(data_ix)

	evicted := cells[w-1]
	for k := w - 1; k > 0; k-- {
		cells[k] = cells[k-1]
	}
	cells[0] = fb

	// Taps see the feedback after the shift.
	for t := 1; t < w; t++ {
		if poly&(1<<uint(t)) != 0 {
			cells[t] = cells[t].Xor(fb)
		}
	}
	return evicted
}

// fibonacciStep folds every tap output into the feedback before shifting.
// The last cell is the implicit x^W tap.
func fibonacciStep(cells []gf.Expr, poly uint64, data_ix int) gf.Expr {
	w := len(cells)
	fb := cells[w-1].Clone().WithData(data_ix)
	for t := 1; t < w; t++ {
		if poly&(1<<uint(t)) != 0 {
			fb = fb.Xor(cells[t-1])
		}
	}

	evicted := cells[w-1]
	for k := w - 1; k > 0; k-- {
		cells[k] = cells[k-1]
	}
	cells[0] = fb
	return evicted
}
