package domain

import "fmt"

// CacheStats counts range cache lookups during one solve.
type CacheStats struct {
	Hits      int    `json:"hits"`
	HitSteps  uint64 `json:"hit_steps"`
	Misses    int    `json:"misses"`
	MissSteps uint64 `json:"miss_steps"`
}

// Crossings is the number of range cache lookups, hit or miss.
func (s CacheStats) Crossings() int {
	return s.Hits + s.Misses
}

// Steps is the number of automaton steps covered by the cache.
func (s CacheStats) Steps() uint64 {
	return s.HitSteps + s.MissSteps
}

func (s CacheStats) String() string {
	return fmt.Sprintf("{%d %d %d %d}", s.Hits, s.HitSteps, s.Misses, s.MissSteps)
}
