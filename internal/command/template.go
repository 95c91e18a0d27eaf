// Package command builds the shell command line for a single input file by
// substituting the file path into a tokenized command template.
package command

import "strings"

// Placeholder is the token replaced with the current input file path.
const Placeholder = "$"

// Template is an ordered list of command tokens, immutable once created.
type Template struct {
	tokens []string
}

// NewTemplate creates a template from its tokens.
func NewTemplate(tokens []string) Template {
	copied := make([]string, len(tokens))
	copy(copied, tokens)
	return Template{tokens: copied}
}

// HasPlaceholder reports whether any token is the file placeholder.
// Callers should warn the user when it is absent: the same literal command
// will run for every input file.
func (t Template) HasPlaceholder() bool {
	for _, tok := range t.tokens {
		if tok == Placeholder {
			return true
		}
	}
	return false
}

// Build returns the command line for filePath: every placeholder token is
// replaced with filePath and the tokens are joined with single spaces. A
// template without a placeholder is returned unchanged.
func (t Template) Build(filePath string) string {
	parts := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		if tok == Placeholder {
			parts[i] = filePath
		} else {
			parts[i] = tok
		}
	}
	return strings.Join(parts, " ")
}

// String returns the literal template, tokens joined with single spaces.
func (t Template) String() string {
	return strings.Join(t.tokens, " ")
}

// Empty reports whether the template has no tokens.
func (t Template) Empty() bool {
	return len(t.tokens) == 0
}
