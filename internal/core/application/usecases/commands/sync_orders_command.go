package commands

import (
	"errors"

	"pharmadmin/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrSyncOrdersCommandIsNotConstructed = errors.New(
		"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
	)
)

// SyncOrdersCommand asks for a full refresh of the e-commerce order index
// from the backend. Each command carries a fresh cycle id used to correlate
// the log lines of one refresh.
//
// Example:
//
//	cmd := NewSyncOrdersCommand()
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order sync %s failed: %w", cmd.CycleID(), err)
//	}
type SyncOrdersCommand struct {
	cycleID string

	guard guard.ConstructorGuard
}

// NewSyncOrdersCommand creates a sync command with a new cycle id.
func NewSyncOrdersCommand() SyncOrdersCommand {
	return SyncOrdersCommand{
		cycleID: uuid.NewString(),
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
}

// CycleID returns the id that tags this sync cycle.
func (c SyncOrdersCommand) CycleID() string {
	return c.cycleID
}
