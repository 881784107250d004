package feature

import (
	"regexp"
	"strings"
	"unicode"
)

// Definition is one named feature: a pure function from source text to a value.
// Definitions are evaluated in schema order so vectors from different documents
// carry the same keys in the same order.
type Definition struct {
	Name    string
	Extract func(source string) int
}

// Keyword is a risky token watched as a literal substring flag.
type Keyword struct {
	Token string
	Flag  string
}

// NewKeyword derives the flag name from the token: dots become underscores,
// so "tx.origin" is reported as has_tx_origin.
func NewKeyword(token string) Keyword {
	return Keyword{Token: token, Flag: "has_" + strings.ReplaceAll(token, ".", "_")}
}

// DefaultKeywords is the built-in risky-keyword list. Matching is substring-based
// rather than whole-word because compound tokens like call.value and block.timestamp
// are not identifiers.
var DefaultKeywords = []Keyword{
	NewKeyword("delegatecall"),
	NewKeyword("call.value"),
	NewKeyword("tx.origin"),
	NewKeyword("selfdestruct"),
	NewKeyword("block.timestamp"),
}

var (
	rePayable = regexp.MustCompile(`\bpayable\b`)
	rePublic  = regexp.MustCompile(`\bpublic\b`)
)

// Schema builds the ordered feature definitions for a keyword list. The counts come
// first, then one flag per keyword, then the reentrancy pattern flag.
func Schema(keywords []Keyword) []Definition {
	defs := []Definition{
		{Name: "n_lines", Extract: countLines},
		{Name: "n_payable", Extract: countToken(rePayable)},
		{Name: "n_public", Extract: countToken(rePublic)},
	}
	for _, kw := range keywords {
		token := kw.Token
		defs = append(defs, Definition{Name: kw.Flag, Extract: func(src string) int {
			if strings.Contains(src, token) {
				return 1
			}
			return 0
		}})
	}
	defs = append(defs, Definition{Name: "has_reentrancy_pattern", Extract: hasReentrancyPattern})
	return defs
}

// countLines counts newline-terminated records; a trailing partial line still counts
// as one line. The empty document has zero lines.
func countLines(src string) int {
	if src == "" {
		return 0
	}
	n := strings.Count(src, "\n")
	if !strings.HasSuffix(src, "\n") {
		n++
	}
	return n
}

// countToken counts whole-word, case-sensitive occurrences. Word boundaries keep
// identifiers like "publication" from matching "public".
func countToken(re *regexp.Regexp) func(string) int {
	return func(src string) int {
		return len(re.FindAllStringIndex(src, -1))
	}
}

// hasReentrancyPattern detects the value-transfer call syntax regardless of
// formatting: the source is stripped of all whitespace (unicode.IsSpace) before
// matching, so call{ value : x } and call{value: x} are equivalent.
func hasReentrancyPattern(src string) int {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
	if strings.Contains(stripped, "call{value:") {
		return 1
	}
	return 0
}
