// Package presentation builds the textual region of a proposal rendering:
// an immutable base (the joke itself) followed by mutable annotations (a
// correction warning and the godfather decision line). The region is
// modeled as a structured value and only flattened at the platform
// boundary, so resynchronization never has to splice strings.
package presentation

import (
	"fmt"
	"strings"

	"joke_suggestions_system/internal/db/models"
)

const (
	ColorProposed = 0x5865f2
	ColorAccepted = 0x57f287
	ColorRefused  = 0xed4245
	ColorReplaced = 0x99aab5
	ColorPrimary  = 0x0099ff
	ColorInfo     = 0xfee75c
)

const (
	blockSeparator   = "\n\n"
	warningMarker    = "⚠️"
	godfathersMarker = "⭐"
)

// Region is the mutable text region of a rendering. Base never changes
// after submission; the annotations are rebuilt on every synchronization.
type Region struct {
	Base       string
	Warning    string
	Godfathers string
}

// Compose flattens the region. The flat text is write-only: every
// resynchronization recomposes it from the store, never from the previous
// text, so repeated syncs always rewrite the same bytes and annotations
// cannot accumulate.
func (r Region) Compose() string {
	blocks := []string{r.Base}
	if r.Warning != "" {
		blocks = append(blocks, warningMarker+" "+r.Warning)
	}
	if r.Godfathers != "" {
		blocks = append(blocks, godfathersMarker+" "+r.Godfathers)
	}
	return strings.Join(blocks, blockSeparator)
}

// FormatJoke renders the immutable base block of a proposal.
func FormatJoke(category models.Category, question, answer string) string {
	return fmt.Sprintf("> **Type**: %s\n> **Blague**: %s\n> **Réponse**: %s",
		models.CategoryNames[category], question, answer)
}

// GodfatherLine renders the decision annotation from ledger state. Actor
// ids are rendered as mentions, Discord resolves them client side.
func GodfatherLine(approverIDs, disapproverIDs []string) string {
	var parts []string
	if len(approverIDs) > 0 {
		parts = append(parts, "✅ "+mentionList(approverIDs))
	}
	if len(disapproverIDs) > 0 {
		parts = append(parts, "❌ "+mentionList(disapproverIDs))
	}
	return strings.Join(parts, " ")
}

func mentionList(ids []string) string {
	mentions := make([]string, len(ids))
	for i, id := range ids {
		mentions[i] = "<@" + id + ">"
	}
	return strings.Join(mentions, ", ")
}

type Field struct {
	Name  string
	Value string
}

// View is what the platform adapter writes back to the rendering.
type View struct {
	Description string
	Fields      []Field
	Footer      string
	Color       int
}

// OpenView renders an open proposal with its current annotations.
func OpenView(region Region) View {
	return View{
		Description: region.Compose(),
		Color:       ColorProposed,
	}
}

// TerminalView strips all annotations and stamps the terminal footer, so a
// decided proposal keeps only its base content and a fixed status marker.
func TerminalView(region Region, proposal *models.Proposal) View {
	view := View{
		Description: Region{Base: region.Base}.Compose(),
		Footer:      terminalFooter(proposal),
	}

	switch {
	case proposal.Merged:
		view.Color = ColorAccepted
	case proposal.Refused:
		view.Color = ColorRefused
	default:
		view.Color = ColorReplaced
	}

	return view
}

func terminalFooter(proposal *models.Proposal) string {
	if proposal.IsSuggestion() {
		if proposal.Merged {
			return "Blague ajoutée"
		}
		return "Suggestion refusée"
	}

	switch {
	case proposal.Merged && proposal.TargetsPublishedJoke():
		return "Correction migrée vers la blague"
	case proposal.Merged:
		return "Correction migrée vers la suggestion"
	case proposal.Refused:
		return "Correction refusée"
	default:
		return "Correction obsolète"
	}
}

// SimilarJokeField is the warning annotation attached at submission time
// when the similarity score lands between the two thresholds.
func SimilarJokeField(category models.Category, question, answer string) Field {
	return Field{
		Name:  "Blague similaire",
		Value: FormatJoke(category, question, answer),
	}
}
