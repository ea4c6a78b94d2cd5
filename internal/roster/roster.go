// Package roster implements the interactive hunter-setup collaborator:
// a CLI that prompts for hunter names and optional starting devices and
// assigns ids sequentially, mirroring main.c's
// get_hunters/hunter_user_create prompt loop. The core consumes the resulting []hunter.Spec; it never parses
// user input itself.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"haunted-house/internal/evidence"
	"haunted-house/internal/hunter"
)

// doneSentinel is the name a user types to stop adding hunters, mirroring
// the original's "done" sentinel check.
const doneSentinel = "done"

// Build reads hunter specs interactively from r, writing prompts to w,
// until the user enters doneSentinel as a name or maxHunters is reached.
// Each hunter is prompted for a name and an optional starting device
// index (0..6, blank for none); ids are assigned sequentially starting
// at nextID. Names are normalized to NFC so two terminals or input
// methods that encode the same name as different code point sequences
// still compare and log identically.
func Build(r io.Reader, w io.Writer, nextID int, maxHunters int) ([]hunter.Spec, error) {
	scanner := bufio.NewScanner(r)
	var specs []hunter.Spec

	for len(specs) < maxHunters {
		fmt.Fprintf(w, "Hunter name (or %q to finish): ", doneSentinel)
		if !scanner.Scan() {
			break
		}
		name := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if name == "" {
			continue
		}
		if strings.EqualFold(name, doneSentinel) {
			break
		}
		if len(name) > 64 {
			name = name[:64]
		}

		device, err := promptDevice(scanner, w)
		if err != nil {
			return nil, err
		}

		specs = append(specs, hunter.Spec{
			Name:   name,
			ID:     nextID,
			Device: device,
		})
		nextID++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("roster: reading input: %w", err)
	}
	return specs, nil
}

// promptDevice asks for an optional device index 0..6 (matching
// evidence.All's bit order); a blank line defaults to EMF, the original's
// device-0 default.
func promptDevice(scanner *bufio.Scanner, w io.Writer) (evidence.Kind, error) {
	fmt.Fprint(w, "Starting device [0=EMF 1=Orbs 2=Radio 3=Temperature 4=Fingerprints 5=Writing 6=Infrared, blank=EMF]: ")
	if !scanner.Scan() {
		return evidence.EMF, nil
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return evidence.EMF, nil
	}
	idx, err := strconv.Atoi(text)
	if err != nil || idx < 0 || idx >= len(evidence.All) {
		fmt.Fprintf(w, "invalid device index %q, defaulting to EMF\n", text)
		return evidence.EMF, nil
	}
	return evidence.All[idx], nil
}

// Default returns n non-interactive hunter specs cycling through the
// seven device kinds, for batch/scripted runs that skip the interactive
// prompt entirely.
func Default(n int, nextID int) []hunter.Spec {
	specs := make([]hunter.Spec, n)
	for i := range specs {
		specs[i] = hunter.Spec{
			Name:   fmt.Sprintf("Hunter-%d", nextID+i),
			ID:     nextID + i,
			Device: evidence.All[i%len(evidence.All)],
		}
	}
	return specs
}
