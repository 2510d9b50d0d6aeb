package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zoricak/crcgen/io"
	"github.com/zoricak/crcgen/lfsr"
	"github.com/zoricak/crcgen/render"
	u "github.com/zoricak/crcgen/util"
)

var (
	width      int
	data_width int
	init_val   int64
	config_str string
	load       bool
	bare       bool
	extend     bool
	reverse    bool
	mod_name   string
	out_file   string

	root_cmd = &cobra.Command{
		Use:   "crcgen",
		Short: "Generate combinatorial LFSR/CRC logic in Verilog.",
		Long: `crcgen derives the parallel update equations of a CRC/LFSR shift
register for an arbitrary polynomial, register configuration and data bus
width, and writes them out as a Verilog module.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate()
		},
	}
)

func Execute() error {
	iit()
	return root_cmd.Execute()
}

func iit() {
	root_cmd.Flags().IntVarP(&width, "width", "w", 32, "width of CRC")
	root_cmd.Flags().IntVarP(&data_width, "datawidth", "d", 8, "width of input data bus")
	root_cmd.Flags().StringP("poly", "p", "0x04c11db7", "CRC polynomial")
	root_cmd.Flags().Int64VarP(&init_val, "init", "i", -1, "CRC initial state")
	root_cmd.Flags().StringVarP(&config_str, "config", "c", "galois", "LFSR configuration ({\"galois\",\"fibonacci\"})")
	root_cmd.Flags().BoolVarP(&load, "load", "l", false, "include load logic")
	root_cmd.Flags().BoolVarP(&bare, "bare", "b", false, "only generate combinatorial logic")
	root_cmd.Flags().BoolVarP(&extend, "extend", "e", false, "extend state width to data width")
	root_cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "bit-reverse input and output")
	root_cmd.Flags().StringVarP(&mod_name, "name", "n", "", "module name")
	root_cmd.Flags().StringVarP(&out_file, "output", "o", "", "output file name")
	viper.BindPFlag("poly", root_cmd.Flags().Lookup("poly"))
}

func generate() error {
	poly, err := strconv.ParseUint(viper.GetString("poly"), 0, 64)
	if err != nil {
		return u.WrapErr("parse polynomial", err)
	}
	config, err := lfsr.ParseConfig(config_str)
	if err != nil {
		return err
	}

	eqs, err := lfsr.Synthesize(lfsr.Params{
		Width:     width,
		DataWidth: data_width,
		Poly:      poly,
		Config:    config,
		Extend:    extend,
		Reverse:   reverse,
		Init:      uint64(init_val),
	})
	if err != nil {
		return err
	}

	opt := render.Options{
		Name:    mod_name,
		Bare:    bare,
		Load:    load,
		CmdLine: cmdLine(poly),
	}
	if opt.Name == "" {
		opt.Name = render.DefaultName(eqs, opt)
	}
	out := out_file
	if out == "" {
		out = opt.Name + ".v"
	}

	fmt.Printf("Opening file '%s'...\n", out)
	f, err := io.CreateFile(out)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("Generating CRC module %s...\n", opt.Name)
	var buf bytes.Buffer
	if err := render.Module(&buf, eqs, opt); err != nil {
		return err
	}
	if err := io.WriteTo(f, buf.Bytes()); err != nil {
		return err
	}

	fmt.Println("Done")
	return nil
}

// cmdLine reconstructs the invocation for the generated file's header.
func cmdLine(poly uint64) string {
	s := fmt.Sprintf("crcgen -w %d -d %d -p 0x%x -i %d -c %s",
		width, data_width, poly, init_val, config_str)
	if load {
		s += " -l"
	}
	if bare {
		s += " -b"
	}
	if extend {
		s += " -e"
	}
	if reverse {
		s += " -r"
	}
	if mod_name != "" {
		s += " -n " + mod_name
	}
	if out_file != "" {
		s += " -o " + out_file
	}
	return s
}
