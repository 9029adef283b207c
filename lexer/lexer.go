// Package lexer turns Tiny Language source text into a sequence of tokens.
//
// Scanning is driven by a fixed table of patterns ordered by priority; at
// every position the first pattern that matches the unconsumed input wins and
// its handler emits zero or one tokens. A successful run always ends with
// exactly one EOF token. On the first lexical error the run stops and returns
// an *Error carrying the position and offending fragment.
//
// Identifier and numeral lexemes are substrings of the scanned input and
// share its backing memory; decoded string contents are owned copies.
package lexer

type lexer struct {
	source string

	pos  int
	line int
	col  int

	tokens []Token
	last   TokenType
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
		col:    1,
	}
}

func (lx *lexer) rest() string {
	return lx.source[lx.pos:]
}

func (lx *lexer) atEOF() bool {
	return lx.pos >= len(lx.source)
}

// advance moves the cursor past text, keeping the line and column counters
// in step with every newline consumed.
func (lx *lexer) advance(text string) {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
	}
	lx.pos += len(text)
}

// push records a token at the current cursor position. Handlers push before
// they advance, so the token carries the position of its first character.
func (lx *lexer) push(tt TokenType, lexeme string) {
	lx.tokens = append(lx.tokens, NewToken(tt, lexeme, lx.line, lx.col))
	lx.last = tt
}

// afterOperand reports whether the previously emitted token could have ended
// an operand, in which case a following "-" must be subtraction.
func (lx *lexer) afterOperand() bool {
	switch lx.last {
	case TokenIdentifier, TokenInteger, TokenString, TokenCloseParen:
		return true
	}
	return false
}

func (lx *lexer) errorf(reason error, fragment string) error {
	return &Error{
		Line:     lx.line,
		Col:      lx.col,
		Fragment: clip(fragment),
		Err:      reason,
	}
}

func (lx *lexer) run() error {
	for !lx.atEOF() {
		if err := lx.step(); err != nil {
			return err
		}
	}
	lx.push(TokenEOF, "")
	return nil
}

// step matches the pattern table against the unconsumed input and dispatches
// to the first match. Every pattern matches at least one character and every
// handler advances past its match, so the cursor makes progress on each step.
func (lx *lexer) step() error {
	rest := lx.rest()
	for i := range patterns {
		if match := patterns[i].re.FindString(rest); match != "" {
			return patterns[i].run(lx, match)
		}
	}
	return lx.errorf(ErrNoMatch, rest)
}

// clip bounds the fragment carried on an Error.
func clip(s string) string {
	const max = 20
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Tokenize takes source text and returns all the tokens within it, or an
// error if a token can't be identified. The returned sequence always ends
// with a single EOF token, even for empty input.
func Tokenize(in []byte) ([]Token, error) {
	return TokenizeString(string(in))
}

// TokenizeString is the string form of Tokenize.
func TokenizeString(in string) ([]Token, error) {
	lx := newLexer(in)
	if err := lx.run(); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}
