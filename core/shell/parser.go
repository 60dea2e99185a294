package shell

import "strings"

// Delimiters separate tokens on a command line.
const Delimiters = " \t\r\n\a"

func isDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}

// Tokenize splits a line into whitespace delimited words. There is no
// quoting, escaping or expansion. Runs of delimiters count as a single
// separator, so a line of only delimiters yields no tokens.
//
// The returned tokens are substrings of line and share its storage.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isDelimiter)
}
