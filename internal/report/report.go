// Package report renders a finished simulation's results: each hunter's
// exit reason, the case file's collected evidence checklist, and the
// final victory determination against the ghost's true kind. Grounded on
// main.c's results_print/casefile_results_print, reworked as a single
// buffered text renderer instead of a sequence of printf calls.
package report

import (
	"fmt"
	"io"
	"strings"

	"haunted-house/internal/evidence"
	"haunted-house/internal/ghost"
	"haunted-house/internal/hunter"
)

// Write renders the final report for g and hunters to w.
func Write(w io.Writer, g *ghost.Ghost, hunters []*hunter.Hunter, collected evidence.Set) {
	fmt.Fprintln(w, "=== Hunt Results ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Hunters:")
	for _, h := range hunters {
		fmt.Fprintf(w, "  %-16s (#%d): %s\n", h.Name(), h.ID(), h.ExitReason())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Evidence checklist:")
	for _, k := range evidence.All {
		mark := " "
		if collected.Contains(k) {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s\n", mark, k)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Ghost was: %s\n", g.Kind())
	if evidence.IsValidGhost(collected) && evidence.GhostKind(collected) == g.Kind() {
		fmt.Fprintln(w, "Victory: the hunters correctly identified the ghost.")
	} else if evidence.IsValidGhost(collected) {
		fmt.Fprintf(w, "Result: the hunters identified %s, which was not the true ghost.\n", evidence.GhostKind(collected))
	} else {
		fmt.Fprintln(w, "Result: the hunters never gathered enough evidence to identify the ghost.")
	}
}

// Summary renders the same report to a string, for callers that want the
// text rather than a stream (e.g. a test assertion or a log line).
func Summary(g *ghost.Ghost, hunters []*hunter.Hunter, collected evidence.Set) string {
	var b strings.Builder
	Write(&b, g, hunters, collected)
	return b.String()
}
