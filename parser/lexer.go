package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/0xalexb/hjarta-cfg/document"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokNewline
	tokWord
	tokString
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokColon
	tokComma
	tokAssign
)

var tokenNames = map[tokenType]string{ //nolint:gochecknoglobals
	tokEOF:      "end of file",
	tokNewline:  "newline",
	tokWord:     "word",
	tokString:   "string",
	tokLBracket: "'['",
	tokRBracket: "']'",
	tokLBrace:   "'{'",
	tokRBrace:   "'}'",
	tokLParen:   "'('",
	tokRParen:   "')'",
	tokColon:    "':'",
	tokComma:    "','",
	tokAssign:   "'='",
}

func (t tokenType) String() string {
	return tokenNames[t]
}

var punctuation = map[rune]tokenType{ //nolint:gochecknoglobals
	'[': tokLBracket,
	']': tokRBracket,
	'{': tokLBrace,
	'}': tokRBrace,
	'(': tokLParen,
	')': tokRParen,
	':': tokColon,
	',': tokComma,
	'=': tokAssign,
}

type token struct {
	typ  tokenType
	text string
	pos  document.Pos
}

func (t token) describe() string {
	switch t.typ {
	case tokWord:
		return fmt.Sprintf("word %q", t.text)
	case tokString:
		return fmt.Sprintf("string %q", t.text)
	default:
		return t.typ.String()
	}
}

// lexer splits .cfg source into tokens. Comments are dropped, newlines are
// kept because they terminate headers and entries.
type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	src = strings.TrimPrefix(src, "\uFEFF")

	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peekRune() (rune, int) {
	if l.off >= len(l.src) {
		return utf8.RuneError, 0
	}

	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) advance(size int, r rune) {
	l.off += size

	if r == '\n' {
		l.line++
		l.col = 1

		return
	}

	l.col++
}

func (l *lexer) pos() document.Pos {
	return document.Pos{Line: l.line, Column: l.col}
}

func (l *lexer) next() (token, error) {
	for {
		r, size := l.peekRune()
		if size == 0 {
			return token{typ: tokEOF, pos: l.pos()}, nil
		}

		start := l.pos()

		switch {
		case r == utf8.RuneError && size == 1:
			return token{}, newError(start, ErrSyntax, "invalid UTF-8 encoding")
		case r == 0:
			return token{}, newError(start, ErrSyntax, "NUL byte in input")
		case r == '\n':
			l.advance(size, r)

			return token{typ: tokNewline, pos: start}, nil
		case r == ' ' || r == '\t' || r == '\r':
			l.advance(size, r)
		case r == '#' || r == ';':
			l.skipComment()
		case r == '"':
			return l.quoted(start)
		case r == '`':
			return l.raw(start)
		default:
			if typ, ok := punctuation[r]; ok {
				l.advance(size, r)

				return token{typ: typ, text: string(r), pos: start}, nil
			}

			if !document.IsWordRune(r) {
				return token{}, newError(start, ErrSyntax, fmt.Sprintf("unexpected character %q", r))
			}

			return l.word(start), nil
		}
	}
}

func (l *lexer) skipComment() {
	for {
		r, size := l.peekRune()
		if size == 0 || r == '\n' {
			return
		}

		l.advance(size, r)
	}
}

func (l *lexer) word(start document.Pos) token {
	begin := l.off

	for {
		r, size := l.peekRune()
		if size == 0 || !document.IsWordRune(r) {
			break
		}

		l.advance(size, r)
	}

	return token{typ: tokWord, text: l.src[begin:l.off], pos: start}
}

// quoted reads a double-quoted literal and unquotes it with Go escape rules.
func (l *lexer) quoted(start document.Pos) (token, error) {
	begin := l.off

	l.advance(1, '"')

	for {
		r, size := l.peekRune()

		switch {
		case size == 0 || r == '\n':
			return token{}, newError(start, ErrSyntax, "unterminated string")
		case r == '\\':
			l.advance(size, r)

			r, size = l.peekRune()
			if size == 0 || r == '\n' {
				return token{}, newError(start, ErrSyntax, "unterminated string")
			}

			l.advance(size, r)
		case r == '"':
			l.advance(size, r)

			text, err := strconv.Unquote(l.src[begin:l.off])
			if err != nil {
				return token{}, newError(start, ErrSyntax, "invalid escape sequence in string")
			}

			return token{typ: tokString, text: text, pos: start}, nil
		default:
			l.advance(size, r)
		}
	}
}

// raw reads a backtick literal. Its content is taken verbatim and may span lines.
func (l *lexer) raw(start document.Pos) (token, error) {
	l.advance(1, '`')

	begin := l.off

	for {
		r, size := l.peekRune()
		if size == 0 {
			return token{}, newError(start, ErrSyntax, "unterminated raw string")
		}

		if r == '`' {
			text := strings.ReplaceAll(l.src[begin:l.off], "\r\n", "\n")

			l.advance(size, r)

			return token{typ: tokString, text: text, pos: start}, nil
		}

		l.advance(size, r)
	}
}
