// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/rom2msx/internal/config"
	"github.com/retroenv/rom2msx/internal/layout"
	"github.com/retroenv/rom2msx/internal/options"
)

// ParseFlags parses command line flags and returns program and layout options
func ParseFlags() (options.Program, options.Layout, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, options.Layout, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Usage = func() {} // usage is printed by the caller through UsageError
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(reorderArgs(flags, arguments)); err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, options.Layout{}, usageErr
	}
	args := flags.Args()
	if len(args) == 0 && opts.Input == "" && opts.Batch == "" {
		return opts, options.Layout{}, &UsageError{flags: flags, msg: "no input file given"}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Layout{}, err
	}
	assignPositional(&opts, args)

	if opts.Config != "" {
		if err := applyDefaults(flags, &opts); err != nil {
			return opts, options.Layout{}, err
		}
	}

	layoutOpts, err := createLayoutOptions(opts)
	if err != nil {
		return opts, options.Layout{}, err
	}

	return opts, layoutOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: rom2msx [options] <input.rom> [output.bin] [options]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

type boolFlag interface {
	IsBoolFlag() bool
}

// reorderArgs moves all flags and their values in front of the file arguments,
// allowing options to be passed after the files. Arguments following a "--"
// are always treated as files.
func reorderArgs(flags *flag.FlagSet, arguments []string) []string {
	var flagArgs, files []string

	for i := 0; i < len(arguments); i++ {
		arg := arguments[i]
		if arg == "--" {
			files = append(files, arguments[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			files = append(files, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := flags.Lookup(name)
		if f == nil {
			continue // reported by flags.Parse
		}
		if bf, ok := f.Value.(boolFlag); ok && bf.IsBoolFlag() {
			continue
		}
		if i+1 == len(arguments) {
			return flagArgs // let flags.Parse report the missing value
		}
		i++
		flagArgs = append(flagArgs, arguments[i])
	}

	if len(files) == 0 {
		return flagArgs
	}
	return append(append(flagArgs, "--"), files...)
}

// validateArgs checks the file arguments left after flag parsing.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to convert, please pass options before \"--\"", arg),
			}
		}
	}
	if len(args) > 2 {
		return &UsageError{
			msg: fmt.Sprintf("Too many arguments, expected input and optional output file but got %d", len(args)),
		}
	}
	return nil
}

// assignPositional sets input and output file from the positional arguments,
// explicit -i and -o flags take precedence.
func assignPositional(opts *options.Program, args []string) {
	if len(args) > 0 && opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
		args = args[1:]
	}
	if len(args) > 0 && opts.Output == "" {
		opts.Output = args[0]
	}
}

// applyDefaults fills all options that were not set on the command line
// from the TOML config file.
func applyDefaults(flags *flag.FlagSet, opts *options.Program) error {
	defaults, err := config.LoadDefaults(opts.Config)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if defaults.Chip != nil && !set["chip"] {
		opts.Chip = *defaults.Chip
	}
	if defaults.Type != nil && !set["type"] {
		opts.Type = *defaults.Type
	}
	if defaults.Address != nil && !set["addr"] {
		opts.Address = *defaults.Address
	}
	if defaults.Jobs != nil && !set["j"] {
		opts.Jobs = *defaults.Jobs
	}
	if defaults.Verify != nil && !set["verify"] {
		opts.Verify = *defaults.Verify
	}
	return nil
}

// createLayoutOptions validates the option values and converts them to layout options.
func createLayoutOptions(opts options.Program) (options.Layout, error) {
	layoutOpts := options.NewLayout()

	chip, err := layout.ParseChip(opts.Chip)
	if err != nil {
		return layoutOpts, err
	}
	layoutOpts.Chip = chip

	mapper, err := layout.ParseMapper(opts.Type)
	if err != nil {
		return layoutOpts, err
	}
	layoutOpts.Mapper = mapper

	if opts.Address != layout.NoStartHint {
		if opts.Address < 0 || opts.Address >= layout.Simple64KBanks {
			return layoutOpts, fmt.Errorf("start bank %d outside of 0..%d", opts.Address, layout.Simple64KBanks-1)
		}
		layoutOpts.StartHint = opts.Address
	}

	if opts.Jobs < 0 {
		return layoutOpts, fmt.Errorf("invalid number of parallel jobs %d", opts.Jobs)
	}

	return layoutOpts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output flash image, input name with .bin extension if no name given")
	flags.StringVar(&opts.Config, "c", "", "TOML file with default conversion settings (chip, type, addr, jobs, verify)")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .bin file naming, for example *.rom")
	flags.IntVar(&opts.Chip, "chip", int(layout.DefaultChip), "flash chip size in KiB (64/128/256/512)")
	flags.StringVar(&opts.Type, "type", "mega", "mapper type of the cartridge (mega/rc755/s64k)")
	flags.IntVar(&opts.Address, "addr", layout.NoStartHint, "start bank 0..7 for Simple64K, automatic placement if not given")
	flags.IntVar(&opts.Jobs, "j", 0, "number of files converted in parallel in batch mode, number of CPUs if 0")
	flags.BoolVar(&opts.Verify, "verify", false, "read back the written image and verify the bank layout")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
