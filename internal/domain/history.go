package domain

import "time"

// HistoryRecord is one prior translation, keyed by timestamp.
type HistoryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Command   string    `json:"command"`
}
