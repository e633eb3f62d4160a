package document

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const delimiters = "[]{}(),:=#;\"`"

// IsWordRune reports whether r may appear in a bare word.
func IsWordRune(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsControl(r) && !strings.ContainsRune(delimiters, r)
}

// IsWord reports whether s can be written without quotes.
func IsWord(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !IsWordRune(r) {
			return false
		}
	}

	return true
}

// IsIdent reports whether s is a valid section name, parent name or key:
// a letter or underscore followed by letters, digits, '_', '.' or '-'.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || isASCIILetter(r):
		case i > 0 && (r == '.' || r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}

	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Encode writes doc to w in canonical form. Root entries come first, then
// one block per section separated by blank lines.
func Encode(w io.Writer, doc *Document) error {
	var sb strings.Builder

	first := true

	if root, ok := doc.Section(RootSection); ok && len(root.Entries) > 0 {
		writeEntries(&sb, root)

		first = false
	}

	for _, sec := range doc.Sections {
		if sec.Name == RootSection {
			continue
		}

		if !first {
			sb.WriteByte('\n')
		}

		first = false

		writeHeader(&sb, sec)
		writeEntries(&sb, sec)
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	return nil
}

func writeHeader(sb *strings.Builder, sec *Section) {
	sb.WriteByte('[')
	sb.WriteString(sec.Name)

	if sec.Parent != "" {
		sb.WriteString(" : ")
		sb.WriteString(sec.Parent)
	}

	sb.WriteByte(']')

	if sec.Attributes != nil {
		sb.WriteString(" (")

		for i, attr := range sec.Attributes {
			if i > 0 {
				sb.WriteString(", ")
			}

			writeText(sb, attr, false)
		}

		sb.WriteByte(')')
	}

	sb.WriteByte('\n')
}

func writeEntries(sb *strings.Builder, sec *Section) {
	for _, e := range sec.Entries {
		sb.WriteString(e.Key)
		sb.WriteString(" = ")
		writeValue(sb, e.Value)
		sb.WriteByte('\n')
	}
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.Kind {
	case KindScalar:
		writeText(sb, v.Scalar.Text, v.Scalar.Quoted)
	case KindTuple:
		writeList(sb, '{', '}', v.Items)
	case KindArray:
		writeList(sb, '[', ']', v.Items)
	}
}

func writeList(sb *strings.Builder, open, closing byte, items []Scalar) {
	sb.WriteByte(open)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		writeText(sb, item.Text, item.Quoted)
	}

	sb.WriteByte(closing)
}

func writeText(sb *strings.Builder, text string, quoted bool) {
	if !quoted && IsWord(text) {
		sb.WriteString(text)

		return
	}

	sb.WriteString(strconv.Quote(text))
}
