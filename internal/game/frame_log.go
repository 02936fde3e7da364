package game

import (
	"fmt"
	"strings"
)

// FrameLogEntry is one recorded simulation event.
type FrameLogEntry struct {
	Tick     int
	Category string  // input, move, ray
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] input    key_down         forward
func (e FrameLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// FrameLog collects structured events from a Simulation. Verbose mode also
// records a per-tick pose entry.
type FrameLog struct {
	entries []FrameLogEntry
	verbose bool
	limit   int // 0 = unbounded; otherwise oldest entries are dropped
}

// NewFrameLog creates a FrameLog keeping at most limit entries (0 = no limit).
func NewFrameLog(verbose bool, limit int) *FrameLog {
	return &FrameLog{verbose: verbose, limit: limit}
}

// Add records a new entry.
func (fl *FrameLog) Add(tick int, category, key, value string, numVal float64) {
	fl.entries = append(fl.entries, FrameLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
	if fl.limit > 0 && len(fl.entries) > fl.limit {
		fl.entries = append(fl.entries[:0], fl.entries[len(fl.entries)-fl.limit:]...)
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (fl *FrameLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !fl.verbose {
		return
	}
	fl.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (fl *FrameLog) Entries() []FrameLogEntry {
	return fl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (fl *FrameLog) Filter(category, key string) []FrameLogEntry {
	var out []FrameLogEntry
	for _, e := range fl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (fl *FrameLog) CountCategory(category, key string) int {
	return len(fl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (fl *FrameLog) LastOf(category, key string) (FrameLogEntry, bool) {
	entries := fl.Filter(category, key)
	if len(entries) == 0 {
		return FrameLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format renders the most recent n entries, one per line (n <= 0 = all).
func (fl *FrameLog) Format(n int) string {
	entries := fl.entries
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
