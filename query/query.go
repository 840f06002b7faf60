// Package query is an interactive synonym lookup over the built graphs.
package query

import (
	"fmt"
	"sort"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/rmanak/wordvec-syns/graph"
)

const maxSuggestions = 12

// Handler runs the lookup REPL over one graph per category.
type Handler struct {
	Graphs []*graph.Graph
}

func NewHandler(graphs []*graph.Graph) *Handler {
	return &Handler{Graphs: graphs}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 type a word for its synonyms, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("syns query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		word := strings.TrimSpace(in)
		if word == "" {
			continue
		}

		history = append(history, in)

		found := false
		for _, g := range h.Graphs {
			syns := synonyms(g, word)
			if len(syns) == 0 {
				continue
			}

			found = true
			fmt.Printf("📖 %-6s %s\n", g.Pos, strings.Join(syns, ", "))
		}

		if !found {
			fmt.Printf("❌ no synonyms for %q\n", word)
		}
	}
}

// synonyms returns the sorted neighbor list of word in g, or nil when
// word is not a vertex.
func synonyms(g *graph.Graph, word string) []string {
	neighbors := g.Neighbors(word)
	if len(neighbors) == 0 {
		return nil
	}

	syns := make([]string, 0, len(neighbors))
	for w := range neighbors {
		syns = append(syns, w)
	}
	sort.Strings(syns)

	return syns
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if "" == befCursor {
			return s
		}

		for _, g := range h.Graphs {
			for _, w := range g.Words() {
				if !strings.HasPrefix(w, befCursor) {
					continue
				}

				s = append(s, prompt.Suggest{Text: w, Description: g.Pos})
				if len(s) >= maxSuggestions {
					return s
				}
			}
		}

		return s
	}
}
