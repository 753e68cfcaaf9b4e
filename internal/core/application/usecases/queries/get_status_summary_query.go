package queries

import (
	"errors"
	"time"

	"pharmadmin/internal/pkg/guard"
)

var (
	ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
		"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
	)
)

// GetStatusSummaryQuery reads the per-status counts of both indexes and
// the last sync outcome of each.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// StatusCount is the number of records in one status.
type StatusCount struct {
	Status string
	Count  int
}

// SyncView is the last sync outcome of one collection. Ran is false until
// the first cycle finishes.
type SyncView struct {
	Ran         bool
	CycleID     string
	LastSuccess time.Time
	FinishedAt  time.Time
	Loaded      int
	Skipped     int
	LastError   string
}

// CollectionSummary describes one index.
type CollectionSummary struct {
	Total    int
	ByStatus []StatusCount
	Sync     SyncView
}

type GetStatusSummaryQueryResponse struct {
	Orders          CollectionSummary
	InTransitOrders CollectionSummary
}
