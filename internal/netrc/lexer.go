package netrc

import (
	"strings"
)

// lexer splits a netrc file into tokens. It has two states: normal token
// scanning, and macro-body consumption entered after a macdef keyword.
// Macro bodies run to the first blank line and are discarded without
// interpretation.
type lexer struct {
	data string
	pos  int
}

func newLexer(data string) *lexer {
	return &lexer{data: data}
}

// next returns the next token, honoring double-quoted strings so values
// may contain whitespace. The second return is false at end of input.
func (l *lexer) next() (string, bool) {
	for l.pos < len(l.data) && isSpace(l.data[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.data) {
		return "", false
	}
	if l.data[l.pos] == '"' {
		l.pos++
		start := l.pos
		end := strings.IndexByte(l.data[start:], '"')
		if end < 0 {
			// unterminated quote, take the rest
			tok := l.data[start:]
			l.pos = len(l.data)
			return tok, true
		}
		tok := l.data[start : start+end]
		l.pos = start + end + 1
		return tok, true
	}
	start := l.pos
	for l.pos < len(l.data) && !isSpace(l.data[l.pos]) {
		l.pos++
	}
	return l.data[start:l.pos], true
}

// skipMacro consumes a macro body: the remainder of the current line,
// then every following line up to and including the first blank one.
func (l *lexer) skipMacro() {
	l.skipLine()
	for l.pos < len(l.data) {
		lineStart := l.pos
		l.skipLine()
		if strings.TrimSpace(l.data[lineStart:l.pos]) == "" {
			return
		}
	}
}

func (l *lexer) skipLine() {
	for l.pos < len(l.data) && l.data[l.pos] != '\n' {
		l.pos++
	}
	if l.pos < len(l.data) {
		l.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
