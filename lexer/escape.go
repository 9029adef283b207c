package lexer

// escapes maps the character following a backslash inside a string or
// character literal to its decoded value. A backslash followed by anything
// not listed here is a lexical error.
var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'\'': '\'',
	'0':  0,
}
