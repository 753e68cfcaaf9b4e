package commands

import (
	"errors"

	"pharmadmin/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrSyncInTransitOrdersCommandIsNotConstructed = errors.New(
		"SyncInTransitOrdersCommand must be created via NewSyncInTransitOrdersCommand constructor",
	)
)

// SyncInTransitOrdersCommand asks for a full refresh of the in-transit index.
type SyncInTransitOrdersCommand struct {
	cycleID string

	guard guard.ConstructorGuard
}

// NewSyncInTransitOrdersCommand creates a sync command with a new cycle id.
func NewSyncInTransitOrdersCommand() SyncInTransitOrdersCommand {
	return SyncInTransitOrdersCommand{
		cycleID: uuid.NewString(),
		guard:   guard.NewConstructorGuard(),
	}
}

func (c SyncInTransitOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncInTransitOrdersCommandIsNotConstructed)
}

func (c SyncInTransitOrdersCommand) CycleID() string {
	return c.cycleID
}
