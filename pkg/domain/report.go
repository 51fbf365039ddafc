package domain

import "time"

// Report is the result of solving one graph.
type Report struct {
	Outcome   Outcome       `json:"outcome"`
	Stats     CacheStats    `json:"stats"`
	Cached    bool          `json:"cached"`
	Relabeled bool          `json:"relabeled"`
	Borders   []int         `json:"borders,omitempty"`
	Duration  time.Duration `json:"duration"`
	// Stored is set when the outcome came from a result store.
	Stored bool `json:"stored,omitempty"`
}
