package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
)

// Classify derives the conventional type identifier for a relation name.
// Only the last token is singularized:
//   - "notes" -> "Note"
//   - "merge_requests" -> "MergeRequest"
//   - "project_members" -> "ProjectMember"
func Classify(relation string) string {
	tokens := Tokenize(relation)
	if len(tokens) == 0 {
		return ""
	}

	last := len(tokens) - 1
	tokens[last] = inflection.Singular(strings.ToLower(tokens[last]))

	var b strings.Builder

	b.Grow(len(relation))

	for _, tok := range tokens {
		b.WriteString(capitalize(strings.ToLower(tok)))
	}

	return b.String()
}

// Tableize derives the conventional relation name for a type identifier.
// A namespace qualifier is folded into the name: "ci.Commit" -> "ci_commits".
func Tableize(typeID string) string {
	tokens := Tokenize(strings.ReplaceAll(typeID, ".", "_"))
	if len(tokens) == 0 {
		return ""
	}

	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}

	last := len(tokens) - 1
	tokens[last] = inflection.Plural(tokens[last])

	return strings.Join(tokens, "_")
}

// Tokenize splits an identifier into tokens on separators and CamelCase humps.
// Examples:
//   - "merge_requests" -> ["merge", "requests"]
//   - "MergeRequest" -> ["Merge", "Request"]
//   - "CIStatus" -> ["CI", "Status"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "mergeRequest" -> split before 'R'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "CIStatus" -> "CI" + "Status"
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
