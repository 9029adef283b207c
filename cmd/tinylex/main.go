// tinylex prints the token stream of a Tiny Language source file, one token
// per line, ending with the EOF token. On a lexical error it reports the
// diagnostic on stderr and exits non-zero.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tinylang/tinylex/lexer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tinylex - Tiny Language tokenizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  tinylex [file]\n")
		fmt.Fprintf(os.Stderr, "  tinylex < program.t\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		input []byte
		err   error
	)
	switch name := flag.Arg(0); name {
	case "", "-":
		input, err = io.ReadAll(os.Stdin)
	default:
		input, err = os.ReadFile(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
}
