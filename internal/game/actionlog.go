package game

// LogEntry is one human-readable record of something that happened.
type LogEntry struct {
	Message string
}

// ActionLog is an append-only sequence of log entries.
type ActionLog struct {
	entries []LogEntry
	bus     *EventBus
}

// NewActionLog creates an empty log.
func NewActionLog(bus *EventBus) *ActionLog {
	return &ActionLog{bus: bus}
}

// Append adds an entry and publishes a log-appended event.
func (al *ActionLog) Append(entry LogEntry) {
	al.entries = append(al.entries, entry)
	if al.bus != nil {
		al.bus.Publish(Event{
			Type:    EventLogAppended,
			Message: entry.Message,
		})
	}
}

// Entries returns the log in append order. The returned slice is a copy.
func (al *ActionLog) Entries() []LogEntry {
	out := make([]LogEntry, len(al.entries))
	copy(out, al.entries)
	return out
}
