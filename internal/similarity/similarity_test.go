package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsAccentsCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, "pourquoilescanardsontilsdesplumes", Normalize("Pourquoi les canards ont-ils des plumes ?"))
	assert.Equal(t, Normalize("École !"), Normalize("ecole"))
}

func TestCompare_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, Compare("Toc toc", "toc toc !"))
}

func TestCompare_CompletelyDifferentStrings(t *testing.T) {
	assert.Equal(t, 0.0, Compare("abcd", "wxyz"))
}

func TestCompare_Deterministic(t *testing.T) {
	first := Compare("Quel est le comble du jardinier ?", "Quel est le comble pour un jardinier ?")
	second := Compare("Quel est le comble du jardinier ?", "Quel est le comble pour un jardinier ?")

	assert.Greater(t, first, 0.6)
	assert.Equal(t, first, second)
}

func TestCompare_ShortStrings(t *testing.T) {
	assert.Equal(t, 0.0, Compare("a", "b"))
	assert.Equal(t, 1.0, Compare("a", "a"))
}

func TestFindBestMatch(t *testing.T) {
	corpus := []string{
		"Pourquoi les plongeurs plongent-ils en arrière ?",
		"Quel est le comble du jardinier ?",
		"Que dit une imprimante dans l'eau ?",
	}

	match := FindBestMatch("quel est le comble du jardinier", corpus)
	assert.Equal(t, 1, match.Index)
	assert.Equal(t, 1.0, match.Score)
}

func TestFindBestMatch_EmptyCorpus(t *testing.T) {
	match := FindBestMatch("anything", nil)
	assert.Equal(t, -1, match.Index)
}
