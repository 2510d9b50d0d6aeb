// Package render emits a synthesized equation set as a Verilog 2001 module.
// It decides nothing about the equations themselves; naming, port shape and
// register boilerplate live here.
package render

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/zoricak/crcgen/gf"
	"github.com/zoricak/crcgen/lfsr"
	u "github.com/zoricak/crcgen/util"
)

var (
	//go:embed module.v.tmpl
	module_tmpl string
)

var tmpl = template.Must(template.New("module").Parse(module_tmpl))

type Options struct {
	Name    string // module name; DefaultName when empty
	Bare    bool   // combinational logic only, no register wrapper
	Load    bool   // include a parallel load path
	CmdLine string // invocation echoed into the header comment
}

// DefaultName builds the conventional module name, eg crc_32_8_0x4c11db7,
// with _load/_bare/_rev suffixes for the matching options.
func DefaultName(e *lfsr.Equations, opt Options) string {
	name := fmt.Sprintf("crc_%d_%d_0x%x", e.Width, e.DataWidth, e.Poly)
	if opt.Load {
		name += "_load"
	}
	if opt.Bare {
		name += "_bare"
	}
	if e.Reverse {
		name += "_rev"
	}
	return name
}

// Module writes the Verilog module for e to w.
func Module(w io.Writer, e *lfsr.Equations, opt Options) error {
	name := opt.Name
	if name == "" {
		name = DefaultName(e, opt)
	}

	assigns := make([]string, len(e.Cells))
	for p, c := range e.Cells {
		assigns[p] = rhs(c)
	}

	err := tmpl.Execute(w, struct {
		Name             string
		W, SW, DW        int
		Wm1, SWm1, DWm1  int
		Poly             uint64
		Init, Init2      uint64
		PolyStr, CmdLine string
		Config           string
		Bare, Load       bool
		Extend, Reverse  bool
		Assigns          []string
	}{
		Name:    name,
		W:       e.Width,
		SW:      e.StateWidth,
		DW:      e.DataWidth,
		Wm1:     e.Width - 1,
		SWm1:    e.StateWidth - 1,
		DWm1:    e.DataWidth - 1,
		Poly:    e.Poly,
		Init:    e.Init,
		Init2:   e.TransformedInit,
		PolyStr: e.PolyString(),
		CmdLine: opt.CmdLine,
		Config:  e.Config.String(),
		Bare:    opt.Bare,
		Load:    opt.Load,
		Extend:  e.Extend,
		Reverse: e.Reverse,
		Assigns: assigns,
	})
	if err != nil {
		return u.WrapErr("render module", err)
	}
	return nil
}

// rhs joins one equation's terms with XOR, eg
// "crc_state[31] ^ data_in[7] ^ data_in[1]". A zero equation is "0".
func rhs(c gf.Expr) string {
	terms := make([]string, 0, len(c.State)+len(c.Data))
	for _, ix := range c.State {
		terms = append(terms, fmt.Sprintf("crc_state[%d]", ix))
	}
	for _, ix := range c.Data {
		terms = append(terms, fmt.Sprintf("data_in[%d]", ix))
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " ^ ")
}
