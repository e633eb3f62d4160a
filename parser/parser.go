package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-cfg/document"
)

// Parse parses src into a validated document. The name is used in error
// messages and as Document.Name; it may be empty.
func Parse(name string, src []byte) (*document.Document, error) {
	p := &parser{lex: newLexer(string(src))}

	doc, err := p.parse()
	if err == nil {
		err = validate(doc)
	}

	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			perr.File = name
		}

		return nil, err
	}

	doc.Name = name

	return doc, nil
}

// ParseString is Parse for string input.
func ParseString(name, src string) (*document.Document, error) {
	return Parse(name, []byte(src))
}

type parser struct {
	lex *lexer
	tok token
	// peeked holds a token read ahead by peekSignificant.
	peeked []token
}

func (p *parser) advance() error {
	if len(p.peeked) > 0 {
		p.tok = p.peeked[0]
		p.peeked = p.peeked[1:]

		return nil
	}

	tok, err := p.lex.next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

// peekSignificant returns the first token after the current one that is not
// a newline, without consuming anything.
func (p *parser) peekSignificant() (token, error) {
	for _, tok := range p.peeked {
		if tok.typ != tokNewline {
			return tok, nil
		}
	}

	for {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}

		p.peeked = append(p.peeked, tok)

		if tok.typ != tokNewline {
			return tok, nil
		}
	}
}

// skipNewlines advances past newline tokens.
func (p *parser) skipNewlines() error {
	for p.tok.typ == tokNewline {
		err := p.advance()
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) unexpected(context string) error {
	return newError(p.tok.pos, ErrSyntax, fmt.Sprintf("unexpected %s %s", p.tok.describe(), context))
}

func (p *parser) expect(typ tokenType, context string) (token, error) {
	if p.tok.typ != typ {
		return token{}, newError(p.tok.pos, ErrSyntax,
			fmt.Sprintf("expected %s %s, found %s", typ, context, p.tok.describe()))
	}

	tok := p.tok

	return tok, p.advance()
}

func (p *parser) endOfLine(context string) error {
	switch p.tok.typ {
	case tokNewline:
		return p.advance()
	case tokEOF:
		return nil
	default:
		return p.unexpected(context)
	}
}

func (p *parser) parse() (*document.Document, error) {
	doc := &document.Document{}
	var current *document.Section

	err := p.advance()
	if err != nil {
		return nil, err
	}

	for {
		err = p.skipNewlines()
		if err != nil {
			return nil, err
		}

		switch p.tok.typ {
		case tokEOF:
			return doc, nil
		case tokLBracket:
			current, err = p.header()
			if err != nil {
				return nil, err
			}

			doc.Sections = append(doc.Sections, current)
		case tokWord:
			if current == nil {
				current = &document.Section{Name: document.RootSection, Pos: p.tok.pos}
				doc.Sections = append(doc.Sections, current)
			}

			entry, err := p.entry()
			if err != nil {
				return nil, err
			}

			current.Entries = append(current.Entries, entry)
		default:
			return nil, p.unexpected("at start of line")
		}
	}
}

func (p *parser) ident(context string) (token, error) {
	tok, err := p.expect(tokWord, context)
	if err != nil {
		return token{}, err
	}

	if !document.IsIdent(tok.text) {
		return token{}, newError(tok.pos, ErrSyntax, fmt.Sprintf("invalid identifier %q %s", tok.text, context))
	}

	return tok, nil
}

// header parses "[name]" or "[name : parent]" with an optional attribute list.
func (p *parser) header() (*document.Section, error) {
	sec := &document.Section{Pos: p.tok.pos}

	err := p.advance()
	if err != nil {
		return nil, err
	}

	name, err := p.ident("as section name")
	if err != nil {
		return nil, err
	}

	sec.Name = name.text

	if p.tok.typ == tokColon {
		err = p.advance()
		if err != nil {
			return nil, err
		}

		parent, err := p.ident("as parent section name")
		if err != nil {
			return nil, err
		}

		sec.Parent = parent.text
	}

	_, err = p.expect(tokRBracket, "to close section header")
	if err != nil {
		return nil, err
	}

	if p.tok.typ == tokLParen {
		sec.Attributes, err = p.attributes()
		if err != nil {
			return nil, err
		}
	}

	return sec, p.endOfLine("after section header")
}

func (p *parser) attributes() ([]string, error) {
	items, err := p.list(tokRParen, "in attribute list")
	if err != nil {
		return nil, err
	}

	attrs := make([]string, 0, len(items))
	for _, item := range items {
		attrs = append(attrs, item.Text)
	}

	return attrs, nil
}

// entry parses "key = value".
func (p *parser) entry() (*document.Entry, error) {
	key, err := p.ident("as key")
	if err != nil {
		return nil, err
	}

	_, err = p.expect(tokAssign, fmt.Sprintf("after key %q", key.text))
	if err != nil {
		return nil, err
	}

	value, err := p.value(key.text)
	if err != nil {
		return nil, err
	}

	err = p.endOfLine(fmt.Sprintf("after value of %q", key.text))
	if err != nil {
		return nil, err
	}

	return &document.Entry{Key: key.text, Value: value, Pos: key.pos}, nil
}

func (p *parser) value(key string) (document.Value, error) {
	pos := p.tok.pos

	var (
		value document.Value
		err   error
	)

	switch p.tok.typ {
	case tokString:
		value, err = p.stringValue()
	case tokWord:
		value = document.NewScalar(p.tok.text, false)
		err = p.advance()
	case tokLBrace:
		var items []document.Scalar

		items, err = p.list(tokRBrace, "in tuple")
		value = document.NewTuple(items...)
	case tokLBracket:
		var items []document.Scalar

		items, err = p.list(tokRBracket, "in array")
		value = document.NewArray(items...)
	default:
		return document.Value{}, newError(pos, ErrSyntax,
			fmt.Sprintf("expected value for %q, found %s", key, p.tok.describe()))
	}

	if err != nil {
		return document.Value{}, err
	}

	value.Pos = pos

	return value, nil
}

// stringValue concatenates a run of string literals. A literal on a following
// line continues the value because no statement can start with a string.
func (p *parser) stringValue() (document.Value, error) {
	var sb strings.Builder

	for {
		sb.WriteString(p.tok.text)

		err := p.advance()
		if err != nil {
			return document.Value{}, err
		}

		if p.tok.typ == tokString {
			continue
		}

		if p.tok.typ != tokNewline {
			break
		}

		next, err := p.peekSignificant()
		if err != nil {
			return document.Value{}, err
		}

		if next.typ != tokString {
			break
		}

		err = p.skipNewlines()
		if err != nil {
			return document.Value{}, err
		}
	}

	return document.NewScalar(sb.String(), true), nil
}

// list parses comma separated scalars up to the closing token. The current
// token is the opening delimiter. Newlines inside the list are ignored.
func (p *parser) list(closing tokenType, context string) ([]document.Scalar, error) {
	items := []document.Scalar{}

	err := p.advance()
	if err != nil {
		return nil, err
	}

	for {
		err = p.skipNewlines()
		if err != nil {
			return nil, err
		}

		if p.tok.typ == closing {
			return items, p.advance()
		}

		switch p.tok.typ {
		case tokWord:
			items = append(items, document.Scalar{Text: p.tok.text})
		case tokString:
			items = append(items, document.Scalar{Text: p.tok.text, Quoted: true})
		case tokLBracket, tokLBrace:
			return nil, newError(p.tok.pos, ErrSyntax, "nested lists are not supported "+context)
		default:
			return nil, p.unexpected(context)
		}

		err = p.advance()
		if err != nil {
			return nil, err
		}

		err = p.skipNewlines()
		if err != nil {
			return nil, err
		}

		switch p.tok.typ {
		case tokComma:
			err = p.advance()
			if err != nil {
				return nil, err
			}
		case closing:
		default:
			return nil, newError(p.tok.pos, ErrSyntax,
				fmt.Sprintf("expected ',' or %s %s, found %s", closing, context, p.tok.describe()))
		}
	}
}
