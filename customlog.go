package grove

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Action is the kind of change a log entry records.
type Action byte

const (
	ActionAdd    Action = 'A'
	ActionModify Action = 'M'
	ActionDelete Action = 'D'
)

// Touch colors for each action.
var (
	ColorAdd    = Color{0, 1, 0}
	ColorModify = Color{1, 0.7, 0}
	ColorDelete = Color{1, 0, 0}
)

// Colour returns the touch color for the action.
func (a Action) Colour() Color {
	switch a {
	case ActionAdd:
		return ColorAdd
	case ActionDelete:
		return ColorDelete
	default:
		return ColorModify
	}
}

// LogEntry is one line of a custom activity log:
//
//	timestamp|user|type|path[|colour]
type LogEntry struct {
	Time   int64
	User   string
	Action Action
	Path   string

	Colour    Color
	HasColour bool
}

// TouchColour is the explicit entry color if present, else the action color.
func (e LogEntry) TouchColour() Color {
	if e.HasColour {
		return e.Colour
	}
	return e.Action.Colour()
}

// ParseCustomLog reads a custom activity log. Blank lines and lines starting
// with '#' are skipped. Entries are returned sorted by time, stable for
// equal timestamps.
func ParseCustomLog(r io.Reader) ([]LogEntry, error) {
	var entries []LogEntry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		e, err := parseLogLine(line)
		if err != nil {
			return nil, fmt.Errorf("grove: custom log line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grove: read custom log: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Time < entries[j].Time })
	return entries, nil
}

func parseLogLine(line string) (LogEntry, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 4 || len(fields) > 5 {
		return LogEntry{}, fmt.Errorf("expected 4 or 5 fields, got %d", len(fields))
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return LogEntry{}, fmt.Errorf("bad timestamp %q: %w", fields[0], err)
	}

	act := strings.TrimSpace(fields[2])
	if len(act) != 1 || !strings.ContainsAny(act, "AMD") {
		return LogEntry{}, fmt.Errorf("bad action %q", fields[2])
	}

	path := strings.TrimSpace(fields[3])
	if path == "" {
		return LogEntry{}, fmt.Errorf("empty path")
	}

	e := LogEntry{
		Time:   ts,
		User:   fields[1],
		Action: Action(act[0]),
		Path:   path,
	}

	if len(fields) == 5 && strings.TrimSpace(fields[4]) != "" {
		c, err := ParseHexColor(strings.TrimSpace(fields[4]))
		if err != nil {
			return LogEntry{}, fmt.Errorf("bad colour %q: %w", fields[4], err)
		}
		e.Colour = c
		e.HasColour = true
	}
	return e, nil
}

// Replayer feeds log entries into a Simulation against a virtual clock.
// Log time runs SecondsPerDay simulation seconds per 86400 log seconds.
type Replayer struct {
	sim     *Simulation
	entries []LogEntry
	cursor  int

	secondsPerDay float64
	clock         float64 // log seconds since the first entry
}

// NewReplayer creates a replayer over entries, which must be sorted by time.
func NewReplayer(sim *Simulation, entries []LogEntry, secondsPerDay float64) *Replayer {
	if secondsPerDay <= 0 {
		secondsPerDay = 1
	}
	return &Replayer{sim: sim, entries: entries, secondsPerDay: secondsPerDay}
}

// Done reports whether every entry has been applied.
func (r *Replayer) Done() bool {
	return r.cursor >= len(r.entries)
}

// Advance moves the virtual clock forward by dt simulation seconds and
// applies every entry that became due. Returns the number applied.
func (r *Replayer) Advance(dt float64) int {
	if r.Done() {
		return 0
	}
	r.clock += dt * 86400 / r.secondsPerDay
	start := r.entries[0].Time

	applied := 0
	for ; r.cursor < len(r.entries); r.cursor++ {
		e := r.entries[r.cursor]
		if float64(e.Time-start) > r.clock {
			break
		}
		r.apply(e)
		applied++
	}
	return applied
}

func (r *Replayer) apply(e LogEntry) {
	r.sim.Touch(e.Path, e.TouchColour())
	if e.Action == ActionDelete {
		r.sim.Remove(e.Path, false)
	}
}
