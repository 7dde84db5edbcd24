// Command minicc tokenizes a source file of the C-like input language and
// prints one located token per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"minicc/pkg/lexer"
	"minicc/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("minicc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("quiet", false, "do not echo the source before the tokens")
	dump := fs.Bool("dump", false, "dump the token list structurally after printing it")
	strict := fs.Bool("strict-keywords", false, "only match keywords on identifier boundaries")
	verbose := fs.Bool("v", false, "log debug information to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: minicc [flags] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	path := fs.Arg(0)
	logger.Debug("reading source", "path", path)
	src, err := utils.ReadSource(path)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read source file %q: %v\n", path, err)
		return 1
	}

	if !*quiet {
		fmt.Fprintln(stdout, src)
	}

	var opts []lexer.Option
	if *strict {
		opts = append(opts, lexer.WithKeywordBoundary())
	}

	start := time.Now()
	tokens, err := lexer.Lex(src, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "lex error:", err)
		return 1
	}
	logger.Debug("lexed source", "bytes", len(src), "tokens", len(tokens), "elapsed", time.Since(start))

	for _, tok := range tokens {
		fmt.Fprintln(stdout, tok)
	}

	if *dump {
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
		cfg.Fdump(stdout, tokens)
	}
	return 0
}
