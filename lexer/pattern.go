package lexer

import (
	"regexp"
	"strconv"
	"strings"
)

// handler turns the text matched by a pattern into zero or one tokens and
// advances the cursor past everything it consumed.
type handler func(lx *lexer, match string) error

// pattern pairs a recognizer, anchored to the start of the unconsumed input,
// with the action taken when it matches.
type pattern struct {
	re  *regexp.Regexp
	run handler
}

// patterns is checked top to bottom at every cursor position and the first
// match wins. Slice order is the disambiguation mechanism: keywords are
// listed ahead of the identifier rule (each with a trailing word boundary so
// "iffy" falls through to identifier), and two-rune operators ahead of their
// one-rune prefixes.
var patterns = []pattern{
	{regexp.MustCompile(`^\s+`), skip},
	{regexp.MustCompile(`^/\*`), blockComment},
	{regexp.MustCompile(`^"`), stringLiteral},
	{regexp.MustCompile(`^'`), charLiteral},
	{regexp.MustCompile(`^-[0-9]+`), signedInteger},
	{regexp.MustCompile(`^[0-9]+`), emit(TokenInteger)},

	{regexp.MustCompile(`^if\b`), emit(TokenKeywordIf)},
	{regexp.MustCompile(`^else\b`), emit(TokenKeywordElse)},
	{regexp.MustCompile(`^while\b`), emit(TokenKeywordWhile)},
	{regexp.MustCompile(`^print\b`), emit(TokenKeywordPrint)},
	{regexp.MustCompile(`^putc\b`), emit(TokenKeywordPutc)},

	{regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*`), emit(TokenIdentifier)},

	{regexp.MustCompile(`^==`), emit(TokenOpEqual)},
	{regexp.MustCompile(`^!=`), emit(TokenOpNotEqual)},
	{regexp.MustCompile(`^<=`), emit(TokenOpLessEqual)},
	{regexp.MustCompile(`^>=`), emit(TokenOpGreaterEqual)},
	{regexp.MustCompile(`^&&`), emit(TokenOpAnd)},
	{regexp.MustCompile(`^\|\|`), emit(TokenOpOr)},

	{regexp.MustCompile(`^=`), emit(TokenOpAssign)},
	{regexp.MustCompile(`^!`), emit(TokenOpNot)},
	{regexp.MustCompile(`^<`), emit(TokenOpLess)},
	{regexp.MustCompile(`^>`), emit(TokenOpGreater)},
	{regexp.MustCompile(`^\+`), emit(TokenOpAdd)},
	{regexp.MustCompile(`^-`), emit(TokenOpSubtract)},
	{regexp.MustCompile(`^\*`), emit(TokenOpMultiply)},
	{regexp.MustCompile(`^/`), emit(TokenOpDivide)},
	{regexp.MustCompile(`^%`), emit(TokenOpMod)},

	{regexp.MustCompile(`^\(`), emit(TokenOpenParen)},
	{regexp.MustCompile(`^\)`), emit(TokenCloseParen)},
	{regexp.MustCompile(`^\{`), emit(TokenOpenBrace)},
	{regexp.MustCompile(`^\}`), emit(TokenCloseBrace)},
	{regexp.MustCompile(`^;`), emit(TokenSemicolon)},
	{regexp.MustCompile(`^,`), emit(TokenComma)},
}

// emit produces a handler that pushes the matched text as a token of the
// given type. Covers fixed-width tokens as well as verbatim extracts
// (identifiers, numerals).
func emit(tt TokenType) handler {
	return func(lx *lexer, match string) error {
		lx.push(tt, match)
		lx.advance(match)
		return nil
	}
}

// skip consumes the matched text without producing a token.
func skip(lx *lexer, match string) error {
	lx.advance(match)
	return nil
}

// blockComment consumes everything up to and including the closing "*/",
// embedded newlines included. The comment produces no token.
func blockComment(lx *lexer, match string) error {
	rest := lx.rest()
	end := strings.Index(rest[len(match):], "*/")
	if end < 0 {
		return lx.errorf(ErrUnterminatedLiteral, rest)
	}
	lx.advance(rest[:len(match)+end+2])
	return nil
}

// stringLiteral consumes characters until the closing quote, decoding escape
// sequences along the way, and pushes the decoded content.
func stringLiteral(lx *lexer, match string) error {
	rest := lx.rest()

	var sb strings.Builder
	i := len(match)
	for i < len(rest) {
		switch c := rest[i]; c {
		case '"':
			lx.push(TokenString, sb.String())
			lx.advance(rest[:i+1])
			return nil
		case '\\':
			if i+1 >= len(rest) {
				return lx.errorf(ErrUnterminatedLiteral, rest)
			}
			dec, ok := escapes[rest[i+1]]
			if !ok {
				return lx.errorf(ErrInvalidEscape, rest[i:i+2])
			}
			sb.WriteByte(dec)
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return lx.errorf(ErrUnterminatedLiteral, rest)
}

// charLiteral consumes one plain or escaped character plus the closing quote
// and pushes its code point as an Integer token.
func charLiteral(lx *lexer, match string) error {
	rest := lx.rest()
	if len(rest) < 2 {
		return lx.errorf(ErrUnterminatedLiteral, rest)
	}

	var code byte
	width := 0
	switch c := rest[1]; c {
	case '\'':
		return lx.errorf(ErrEmptyCharLiteral, rest[:2])
	case '\n', '\r':
		return lx.errorf(ErrUnterminatedLiteral, rest[:1])
	case '\\':
		if len(rest) < 3 {
			return lx.errorf(ErrUnterminatedLiteral, rest)
		}
		dec, ok := escapes[rest[2]]
		if !ok {
			return lx.errorf(ErrInvalidEscape, rest[1:3])
		}
		code = dec
		width = 2
	default:
		code = c
		width = 1
	}

	if len(rest) < width+2 || rest[width+1] != '\'' {
		return lx.errorf(ErrUnterminatedLiteral, rest)
	}

	lx.push(TokenInteger, strconv.Itoa(int(code)))
	lx.advance(rest[:width+2])
	return nil
}

// signedInteger decides whether a leading "-" binds into a negative Integer
// token or stands alone as the subtraction operator. It binds only when no
// operand can have just ended: at start of input, or when the previously
// emitted token is not an identifier, integer, string or ")".
func signedInteger(lx *lexer, match string) error {
	if lx.afterOperand() {
		lx.push(TokenOpSubtract, match[:1])
		lx.advance(match[:1])
		return nil
	}
	lx.push(TokenInteger, match)
	lx.advance(match)
	return nil
}
