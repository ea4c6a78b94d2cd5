package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestHunterMoveLogsBothRooms(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger("HUNTER-1", "info", &buf)
	l.HunterMove("Priya", 1, "Foyer", "Kitchen")
	out := buf.String()
	if !strings.Contains(out, "Foyer -> Kitchen") {
		t.Errorf("expected room transition in output, got: %s", out)
	}
}

func TestGhostExitLogsBoredom(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger("GHOST", "info", &buf)
	l.GhostExit("Mare", 15)
	out := buf.String()
	if !strings.Contains(out, "boredom=15") {
		t.Errorf("expected boredom count in output, got: %s", out)
	}
}

func TestGhostIdleSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger("GHOST", "info", &buf)
	l.GhostIdle("Mare", "Attic")
	if buf.Len() > 0 {
		t.Errorf("GhostIdle logs at debug and should be suppressed at info level, got: %s", buf.String())
	}
}

func TestHunterExitIncludesReasonAndCounters(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger("HUNTER-2", "info", &buf)
	l.HunterExit("Sam", 2, "Bored", 15, 3)
	out := buf.String()
	if !strings.Contains(out, "Bored") || !strings.Contains(out, "boredom=15") || !strings.Contains(out, "fear=3") {
		t.Errorf("expected reason and counters in output, got: %s", out)
	}
}
