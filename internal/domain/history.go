package domain

import "time"

// HistoryEntry is one persisted query and the command derived from it.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Query     string `json:"query"`
	Command   string `json:"command"`
	Shell     string `json:"shell"`
}

// NewHistoryEntry stamps an entry with the given time in UTC.
func NewHistoryEntry(at time.Time, query, command, shell string) HistoryEntry {
	return HistoryEntry{
		Timestamp: at.UTC().Format(TimestampFormat),
		Query:     query,
		Command:   command,
		Shell:     shell,
	}
}

// TrimHistory keeps the newest max entries.
func TrimHistory(entries []HistoryEntry, max int) []HistoryEntry {
	if max <= 0 || len(entries) <= max {
		return entries
	}
	return entries[len(entries)-max:]
}

// LastEntries returns the final n entries in order, or all entries when n <= 0.
func LastEntries(entries []HistoryEntry, n int) []HistoryEntry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
