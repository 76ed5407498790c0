package inventory

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrNotTrashable is returned for items that cannot be deleted.
	ErrNotTrashable = errors.New("inventory: item cannot be trashed")
	// ErrNothingPending is returned by Confirm without a pending request.
	ErrNothingPending = errors.New("inventory: no pending deletion")
)

// DefaultConfirmTimeout is how long a deletion waits for confirmation.
const DefaultConfirmTimeout = 5.0

// Trash deletes items in two steps: Request marks one, Confirm removes it.
// An unconfirmed request expires after the timeout.
type Trash struct {
	inv     *Inventory
	catalog *Catalog
	timeout float64
	logger  *log.Logger

	pending   string
	remaining float64
}

// NewTrash creates a trash bound to inv. Items missing from the catalog
// are treated as trashable. Non-positive timeouts use DefaultConfirmTimeout.
func NewTrash(inv *Inventory, catalog *Catalog, timeout float64, logger *log.Logger) *Trash {
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Trash{inv: inv, catalog: catalog, timeout: timeout, logger: logger}
}

// Request marks the named item for deletion, replacing any earlier request.
func (t *Trash) Request(name string) error {
	if !t.inv.Has(name) {
		return fmt.Errorf("%w: %s", ErrNotInInventory, name)
	}
	if it, ok := t.catalog.Get(name); ok && !it.Trashable {
		t.logger.Info("trash refused", "item", name)
		return fmt.Errorf("%w: %s", ErrNotTrashable, name)
	}
	t.pending = name
	t.remaining = t.timeout
	return nil
}

// Confirm deletes one of the pending item and returns its name.
func (t *Trash) Confirm() (string, error) {
	if t.pending == "" {
		return "", ErrNothingPending
	}
	name := t.pending
	t.Cancel()
	if t.inv.Remove(name, 1) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotInInventory, name)
	}
	t.logger.Info("item trashed", "item", name)
	return name, nil
}

// Cancel drops the pending request.
func (t *Trash) Cancel() {
	t.pending = ""
	t.remaining = 0
}

// Advance counts down the pending request, expiring it at zero.
func (t *Trash) Advance(dt float64) {
	if t.pending == "" {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.logger.Debug("trash request expired", "item", t.pending)
		t.Cancel()
	}
}

// Pending returns the item awaiting confirmation.
func (t *Trash) Pending() (string, bool) {
	return t.pending, t.pending != ""
}

// Remaining returns the seconds left to confirm.
func (t *Trash) Remaining() float64 {
	return t.remaining
}
