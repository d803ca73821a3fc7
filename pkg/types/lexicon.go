package types

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s trimmed, NFC-normalized and Unicode case-folded. All name,
// path and lexicon comparisons go through Fold so that "DOOM" and "doom", or
// composed and decomposed Cyrillic, compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(s))
}

// Lexicon is an immutable set of folded game titles. The zero value is an
// empty lexicon and is valid everywhere a Lexicon is accepted.
type Lexicon struct {
	titles map[string]struct{}
	sorted []string
}

// NewLexicon folds and deduplicates titles. Blank entries are dropped.
func NewLexicon(titles []string) Lexicon {
	set := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		f := Fold(t)
		if f == "" {
			continue
		}
		set[f] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for t := range set {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)
	return Lexicon{titles: set, sorted: sorted}
}

// Has reports whether the folded form of title is in the lexicon.
func (l Lexicon) Has(title string) bool {
	_, ok := l.titles[Fold(title)]
	return ok
}

// Len returns the number of distinct titles.
func (l Lexicon) Len() int {
	return len(l.sorted)
}

// Titles returns the folded titles in sorted order. The slice is shared and
// must not be modified.
func (l Lexicon) Titles() []string {
	return l.sorted
}
