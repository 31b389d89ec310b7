package grove

import (
	"strings"
	"testing"
)

const testLog = `
# comment
20|bob|M|src/main.go
10|alice|A|src/main.go|FF0000

10|alice|A|README
30|carol|D|README
`

func TestParseCustomLog(t *testing.T) {
	entries, err := ParseCustomLog(strings.NewReader(testLog))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("len = %d, want 4", len(entries))
	}

	// Sorted by time, stable for ties.
	want := []string{"src/main.go", "README", "src/main.go", "README"}
	for i, e := range entries {
		if e.Path != want[i] {
			t.Errorf("entry %d path = %q, want %q", i, e.Path, want[i])
		}
	}

	e := entries[0]
	if e.Time != 10 || e.User != "alice" || e.Action != ActionAdd {
		t.Errorf("entry 0 = %+v", e)
	}
	if !e.HasColour || e.TouchColour() != (Color{1, 0, 0}) {
		t.Errorf("entry 0 colour = %v (has=%v)", e.TouchColour(), e.HasColour)
	}
	if entries[2].TouchColour() != ColorModify {
		t.Errorf("entry 2 colour = %v, want modify colour", entries[2].TouchColour())
	}
	if entries[3].Action != ActionDelete || entries[3].TouchColour() != ColorDelete {
		t.Errorf("entry 3 = %+v", entries[3])
	}
}

func TestParseCustomLogErrors(t *testing.T) {
	tests := []struct {
		name, log, want string
	}{
		{"fields", "1|a|A", "line 1"},
		{"timestamp", "x|a|A|f", "bad timestamp"},
		{"action", "1|a|X|f", "bad action"},
		{"path", "1|a|A| ", "empty path"},
		{"colour", "1|a|A|f|nothex", "bad colour"},
		{"line number", "1|a|A|f\n\n2|a|Q|f", "line 3"},
	}
	for _, tt := range tests {
		_, err := ParseCustomLog(strings.NewReader(tt.log))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q should contain %q", tt.name, err, tt.want)
		}
	}
}

func TestReplayerAdvance(t *testing.T) {
	entries, err := ParseCustomLog(strings.NewReader(testLog))
	if err != nil {
		t.Fatal(err)
	}
	sim := NewSimulation(DefaultSettings())
	// Log time and simulation time run at the same rate.
	r := NewReplayer(sim, entries, 86400)

	if n := r.Advance(0); n != 2 {
		t.Errorf("Advance(0) applied %d, want 2 (both t=10 entries)", n)
	}
	if sim.NumFiles() != 2 {
		t.Errorf("NumFiles = %d, want 2", sim.NumFiles())
	}

	if n := r.Advance(10); n != 1 {
		t.Errorf("Advance(10) applied %d, want 1", n)
	}
	if r.Done() {
		t.Error("replayer should not be done yet")
	}

	r.Advance(10)
	if !r.Done() {
		t.Error("replayer should be done")
	}
	readme := sim.File("README")
	if readme == nil {
		t.Fatal("README should exist")
	}
	if readme.LastAction() != readme.Elapsed()-sim.Settings().IdleTime {
		t.Error("deleted file should be fast-forwarded into its fade")
	}
	if r.Advance(1) != 0 {
		t.Error("Advance after Done should apply nothing")
	}
}
