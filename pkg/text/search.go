package text

import (
	"unicode"

	"github.com/charmbracelet/bubbles/list"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize text to aid in the filtering process. In particular, we remove
// diacritics, "ö" becomes "o". Note that Mn is the unicode key for nonspacing
// marks.
func Normalize(in string) (string, error) {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(transformer, in)
	return out, err
}

// Filter ranks targets against term with fuzzy matching on normalized text.
// It satisfies list.FilterFunc.
func Filter(term string, targets []string) []list.Rank {
	needle, err := Normalize(term)
	if err != nil {
		needle = term
	}

	normalized := make([]string, len(targets))
	for i, t := range targets {
		n, err := Normalize(t)
		if err != nil {
			n = t
		}
		normalized[i] = n
	}

	matches := fuzzy.Find(needle, normalized)
	ranks := make([]list.Rank, len(matches))
	for i, m := range matches {
		ranks[i] = list.Rank{
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return ranks
}

func TruncateWithTail(txt string, width uint, ellipsis string) string {
	return truncate.StringWithTail(txt, width, ellipsis)
}
