// Package similarity scores a candidate joke against the corpus of canonical
// jokes and open suggestions. Scores are Sørensen–Dice coefficients over
// character bigrams of normalized text, in [0, 1].
package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Match struct {
	Index int
	Score float64
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize folds case, strips accents and drops whitespace and punctuation
// so that repeated runs over the same input always score identically.
func Normalize(s string) string {
	folded := cases.Fold().String(s)

	stripped, _, err := transform.String(stripAccents, folded)
	if err != nil {
		stripped = folded
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Compare returns the Dice coefficient of the two normalized strings.
func Compare(first, second string) float64 {
	a := []rune(Normalize(first))
	b := []rune(Normalize(second))

	if string(a) == string(b) {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(a)-1)
	for i := 0; i < len(a)-1; i++ {
		bigrams[string(a[i:i+2])]++
	}

	intersection := 0
	for i := 0; i < len(b)-1; i++ {
		bigram := string(b[i : i+2])
		if bigrams[bigram] > 0 {
			bigrams[bigram]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(a)+len(b)-2)
}

// FindBestMatch scores target against every corpus entry and returns the
// best one. An empty corpus yields index -1.
func FindBestMatch(target string, corpus []string) Match {
	best := Match{Index: -1}

	for i, entry := range corpus {
		score := Compare(target, entry)
		if best.Index == -1 || score > best.Score {
			best = Match{Index: i, Score: score}
		}
	}

	return best
}
