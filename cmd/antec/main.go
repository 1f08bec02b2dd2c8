// Command antec drives the front-end pipeline described in spec.md: lex,
// parse, resolve. It never reaches code generation, the JIT, or the
// optimizer — those stay behind the internal/emitter interface, which this
// binary does not implement.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/antec-lang/antec/internal/ast"
	"github.com/antec-lang/antec/internal/config"
	"github.com/antec-lang/antec/internal/diag"
	"github.com/antec-lang/antec/internal/lexer"
	"github.com/antec-lang/antec/internal/module"
	"github.com/antec-lang/antec/internal/parser"
	"github.com/antec-lang/antec/internal/resolver"
	"github.com/mattn/go-isatty"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Help || cfg.SourceFile == "" {
		fmt.Fprintln(os.Stderr, "usage: antec [flags] <source-file>")
		if cfg.Help {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if notice := cfg.FrontEndOnlyNotice(); notice != "" {
		fmt.Fprintln(os.Stderr, notice)
	}

	source, err := os.ReadFile(cfg.SourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", cfg.SourceFile, err)
		os.Exit(1)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd())

	if cfg.PrintTokens {
		printTokens(string(source), cfg.SourceFile, tty)
		return
	}

	p := parser.New(string(source), cfg.SourceFile, tty)
	root, errs := p.ParseRoot()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	if cfg.PrintAST {
		fmt.Print(ast.Print(root))
		return
	}

	if err := runResolution(root, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printTokens echoes the lexer's raw token stream, the way the `-l` flag
// drove the original lexer's debug-print mode.
func printTokens(source, filename string, tty bool) {
	lex := lexer.New(source, filename, tty)
	var sb strings.Builder
	for {
		tok := lex.Next()
		lex.Print(&sb, tok)
		if tok.Kind == lexer.EndOfInput {
			break
		}
	}
	fmt.Print(sb.String())
}

// runResolution builds the module tree from the working directory and any
// -I include paths, then runs the name resolver over root, rendering any
// diagnostics it accumulates.
func runResolution(root *ast.Root, cfg *config.Config) error {
	tree := module.NewRoot()
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	roots := append([]string{wd}, cfg.IncludeDir...)
	if err := module.Discover(tree, roots); err != nil {
		return fmt.Errorf("discovering modules: %w", err)
	}

	reporter := diag.NewReporter(os.Stderr)
	res := resolver.New(tree, reporter)
	res.Resolve(root)

	if reporter.HasErrors() {
		reporter.Render()
		return fmt.Errorf("resolution failed")
	}
	return nil
}
