// Package config parses the antec CLI flag table (spec §6) into a Config
// value. It wires github.com/spf13/cobra for the single root command (the
// binary takes no subcommands) and github.com/joho/godotenv for loading
// default include paths from a .antecenv file before flags are parsed, so
// flags still win over the file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Config is the parsed form of spec §6's CLI table. Flags whose effect is
// out of front-end scope (Optimize, Compile, Run, EmitLLVM, BuildLib,
// Evaluate) are still accepted and recorded: the front-end notices them
// and prints that it is front-end only, rather than silently ignoring
// them.
type Config struct {
	SourceFile string
	OutputFile string

	// IncludeDir is not a spec §6 flag: it's how this front-end locates
	// additional module roots for module.Discover. Bound to a name the
	// spec table doesn't claim, since "-lib" means "build as library".
	IncludeDir []string

	Optimize bool // -O
	Compile  bool // -c
	Run      bool // -r
	EmitLLVM bool // -emit-llvm
	BuildLib bool // -lib
	Evaluate bool // -e

	PrintTokens bool // -l
	PrintAST    bool // -p

	Help bool
}

const envFile = ".antecenv"

// EnvIncludePath names the variable .antecenv may set, mirroring the
// original compiler's colon-separated ANTEC_INCLUDE_PATH.
const EnvIncludePath = "ANTEC_INCLUDE_PATH"

// Parse builds a Config from args (normally os.Args[1:]), having first
// loaded envFile from the working directory if it exists. Flags always
// override whatever envFile set.
func Parse(args []string) (*Config, error) {
	_ = godotenv.Load(envFile) // missing .antecenv is not an error

	cfg := &Config{}
	if v := os.Getenv(EnvIncludePath); v != "" {
		cfg.IncludeDir = strings.Split(v, ":")
	}

	root := &cobra.Command{
		Use:           "antec [source-file]",
		Short:         "antec compiles source written in the ante language",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			if len(posArgs) == 1 {
				cfg.SourceFile = posArgs[0]
			}
			return nil
		},
	}
	// pflag reads a single-dash word as a run of one-letter shorthands, so
	// the table's multi-letter single-dash flags are rewritten to their
	// double-dash form before parsing.
	normalized := make([]string, len(args))
	for i, a := range args {
		switch a {
		case "-lib", "-emit-llvm", "-help":
			a = "-" + a
		}
		normalized[i] = a
	}
	root.SetArgs(normalized)

	flags := root.Flags()
	flags.StringVarP(&cfg.OutputFile, "output", "o", "", "output file name")
	flags.StringArrayVarP(&cfg.IncludeDir, "include", "I", cfg.IncludeDir, "additional module include path (repeatable)")
	flags.BoolVarP(&cfg.Optimize, "optimize", "O", false, "enable optimization passes (front-end only: recorded, not performed)")
	flags.BoolVarP(&cfg.Compile, "compile", "c", false, "compile to an object file (front-end only: recorded, not performed)")
	flags.BoolVarP(&cfg.Run, "run", "r", false, "JIT and run the program (front-end only: recorded, not performed)")
	flags.BoolVarP(&cfg.Evaluate, "eval", "e", false, "evaluate/interpret (front-end only: recorded, not performed)")
	flags.BoolVarP(&cfg.PrintAST, "parse", "p", false, "print the parsed AST and stop")
	flags.BoolVarP(&cfg.PrintTokens, "lex", "l", false, "print the token stream and stop")
	flags.BoolVar(&cfg.EmitLLVM, "emit-llvm", false, "emit LLVM IR (front-end only: recorded, not performed)")
	flags.BoolVar(&cfg.BuildLib, "lib", false, "build as a library (front-end only: recorded, not performed)")
	flags.BoolVar(&cfg.Help, "help", false, "print this help message")

	if err := root.Execute(); err != nil {
		return nil, fmt.Errorf("argument not recognized: %w", err)
	}
	return cfg, nil
}

// FrontEndOnlyNotice returns a non-empty string naming any flag cfg set
// whose effect this module never implements, per spec §6's
// front-end/codegen boundary.
func (c *Config) FrontEndOnlyNotice() string {
	var flags []string
	if c.Optimize {
		flags = append(flags, "-O")
	}
	if c.Compile {
		flags = append(flags, "-c")
	}
	if c.Run {
		flags = append(flags, "-r")
	}
	if c.EmitLLVM {
		flags = append(flags, "-emit-llvm")
	}
	if c.BuildLib {
		flags = append(flags, "-lib")
	}
	if c.Evaluate {
		flags = append(flags, "-e")
	}
	if len(flags) == 0 {
		return ""
	}
	return fmt.Sprintf("front-end only: %s recorded but not acted on (no codegen/JIT/optimizer in this build)", strings.Join(flags, ", "))
}
