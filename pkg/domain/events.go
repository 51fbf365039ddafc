package domain

import (
	"context"
	"time"
)

// CaseEvent describes a case entering or leaving the solver.
type CaseEvent struct {
	Case     int           `json:"case"`
	Nodes    int           `json:"nodes"`
	Cached   bool          `json:"cached"`
	Outcome  Outcome       `json:"outcome"`
	Stats    CacheStats    `json:"stats"`
	Duration time.Duration `json:"duration"`
}

// CacheEvent describes a range cache miss or a loop confined to one range.
type CacheEvent struct {
	RangeLo int       `json:"range_lo"`
	RangeHi int       `json:"range_hi"`
	Entry   WalkState `json:"entry"`
	Steps   uint64    `json:"steps"`
}

// SolveHooks defines callbacks for solver observability.
// Any of them may be nil.
type SolveHooks struct {
	OnCaseStart func(context.Context, *CaseEvent)
	OnCaseDone  func(context.Context, *CaseEvent)
	OnCacheMiss func(context.Context, *CacheEvent)
	OnInnerLoop func(context.Context, *CacheEvent)
}

// Merge returns hooks that call h first and then other.
func (h SolveHooks) Merge(other SolveHooks) SolveHooks {
	return SolveHooks{
		OnCaseStart: chainCase(h.OnCaseStart, other.OnCaseStart),
		OnCaseDone:  chainCase(h.OnCaseDone, other.OnCaseDone),
		OnCacheMiss: chainCache(h.OnCacheMiss, other.OnCacheMiss),
		OnInnerLoop: chainCache(h.OnInnerLoop, other.OnInnerLoop),
	}
}

func chainCase(a, b func(context.Context, *CaseEvent)) func(context.Context, *CaseEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *CaseEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainCache(a, b func(context.Context, *CacheEvent)) func(context.Context, *CacheEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *CacheEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
