package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota

	TokenIdentifier // Names: [_a-zA-Z][_a-zA-Z0-9]*
	TokenInteger    // Integer numerals, including decoded character literals
	TokenString     // Double-quoted strings, escape sequences decoded

	TokenKeywordIf
	TokenKeywordElse
	TokenKeywordWhile
	TokenKeywordPrint
	TokenKeywordPutc

	TokenOpAdd          // "+"
	TokenOpSubtract     // "-"
	TokenOpMultiply     // "*"
	TokenOpDivide       // "/"
	TokenOpMod          // "%"
	TokenOpNot          // "!"
	TokenOpLess         // "<"
	TokenOpLessEqual    // "<="
	TokenOpGreater      // ">"
	TokenOpGreaterEqual // ">="
	TokenOpEqual        // "=="
	TokenOpNotEqual     // "!="
	TokenOpAssign       // "="
	TokenOpAnd          // "&&"
	TokenOpOr           // "||"

	TokenOpenParen  // "("
	TokenCloseParen // ")"
	TokenOpenBrace  // "{"
	TokenCloseBrace // "}"
	TokenSemicolon  // ";"
	TokenComma      // ","

	TokenEOF // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid: "invalid",

	TokenIdentifier: "identifier",
	TokenInteger:    "integer",
	TokenString:     "string",

	TokenKeywordIf:    "keyword_if",
	TokenKeywordElse:  "keyword_else",
	TokenKeywordWhile: "keyword_while",
	TokenKeywordPrint: "keyword_print",
	TokenKeywordPutc:  "keyword_putc",

	TokenOpAdd:          "op_add",
	TokenOpSubtract:     "op_subtract",
	TokenOpMultiply:     "op_multiply",
	TokenOpDivide:       "op_divide",
	TokenOpMod:          "op_mod",
	TokenOpNot:          "op_not",
	TokenOpLess:         "op_less",
	TokenOpLessEqual:    "op_less_equal",
	TokenOpGreater:      "op_greater",
	TokenOpGreaterEqual: "op_greater_equal",
	TokenOpEqual:        "op_equal",
	TokenOpNotEqual:     "op_not_equal",
	TokenOpAssign:       "op_assign",
	TokenOpAnd:          "op_and",
	TokenOpOr:           "op_or",

	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenOpenBrace:  "open_brace",
	TokenCloseBrace: "close_brace",
	TokenSemicolon:  "semicolon",
	TokenComma:      "comma",

	TokenEOF: "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
