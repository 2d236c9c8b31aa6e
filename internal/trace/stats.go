package trace

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Stats aggregates an event stream into counts per kind and per
// sequence identity. Identity collapses parameters, so every DECSET
// counts under "CSI ?h" no matter which mode it set.
type Stats struct {
	Kinds     map[Kind]int
	Sequences map[string]int
	Total     int
}

// NewStats returns empty counters.
func NewStats() *Stats {
	return &Stats{
		Kinds:     make(map[Kind]int),
		Sequences: make(map[string]int),
	}
}

// Add folds one event into the counters.
func (s *Stats) Add(ev Event) {
	s.Total++
	s.Kinds[ev.Kind]++

	if id := identity(ev); id != "" {
		s.Sequences[id]++
	}
}

// identity names the sequence shape an event belongs to, "" for events
// that have none (prints, puts, unhooks).
func identity(ev Event) string {
	withName := func(id string) string {
		if ev.Name != "" {
			return id + " " + ev.Name
		}
		return id
	}
	switch ev.Kind {
	case KindExecute:
		return withName(ev.Byte)
	case KindCsi:
		inter := ev.Intermediates
		var marker string
		if inter != "" && inter[0] >= 0x3c && inter[0] <= 0x3f {
			marker, inter = inter[:1], inter[1:]
		}
		return withName("CSI " + marker + inter + ev.Final)
	case KindEsc:
		return withName("ESC " + ev.Intermediates + ev.Final)
	case KindHook:
		return "DCS " + ev.Intermediates + ev.Final
	case KindOsc:
		code := "?"
		if len(ev.Payload) > 0 {
			code = ev.Payload[0]
		}
		return withName("OSC " + code)
	}
	return ""
}

// WriteTo renders the counters sorted by frequency, then
// alphabetically for ties.
func (s *Stats) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "events: %d\n\n", s.Total)

	sb.WriteString("by kind:\n")
	for _, line := range sortedCounts(kindCounts(s.Kinds)) {
		sb.WriteString("  " + line + "\n")
	}

	if len(s.Sequences) > 0 {
		sb.WriteString("\nby sequence:\n")
		for _, line := range sortedCounts(s.Sequences) {
			sb.WriteString("  " + line + "\n")
		}
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func kindCounts(kinds map[Kind]int) map[string]int {
	out := make(map[string]int, len(kinds))
	for k, n := range kinds {
		out[string(k)] = n
	}
	return out
}

func sortedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%6d  %s", counts[k], k)
	}
	return lines
}
