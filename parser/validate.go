package parser

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-cfg/document"
)

// validate checks the rules that span more than one statement: unique
// sections, unique keys per section, declared parents and acyclic inheritance.
func validate(doc *document.Document) error {
	sections := make(map[string]*document.Section, len(doc.Sections))

	for _, sec := range doc.Sections {
		if prev, ok := sections[sec.Name]; ok {
			return newError(sec.Pos, ErrDuplicateSection,
				fmt.Sprintf("section %q already declared at %s", sec.Name, prev.Pos))
		}

		sections[sec.Name] = sec

		keys := make(map[string]document.Pos, len(sec.Entries))

		for _, entry := range sec.Entries {
			if prev, ok := keys[entry.Key]; ok {
				return newError(entry.Pos, ErrDuplicateKey,
					fmt.Sprintf("key %q in section %q already declared at %s", entry.Key, sec.Name, prev))
			}

			keys[entry.Key] = entry.Pos
		}
	}

	for _, sec := range doc.Sections {
		if sec.Parent == "" {
			continue
		}

		if _, ok := sections[sec.Parent]; !ok {
			return newError(sec.Pos, ErrUnknownParent,
				fmt.Sprintf("section %q inherits from undeclared section %q", sec.Name, sec.Parent))
		}
	}

	for _, sec := range doc.Sections {
		if sec.Parent == "" {
			continue
		}

		err := checkCycle(sec, sections)
		if err != nil {
			return err
		}
	}

	return nil
}

func checkCycle(start *document.Section, sections map[string]*document.Section) error {
	chain := []string{start.Name}
	seen := map[string]bool{start.Name: true}

	for cur := start; cur.Parent != ""; cur = sections[cur.Parent] {
		chain = append(chain, cur.Parent)

		if seen[cur.Parent] {
			return newError(start.Pos, ErrInheritanceCycle, strings.Join(chain, " -> "))
		}

		seen[cur.Parent] = true
	}

	return nil
}
