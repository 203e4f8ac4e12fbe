/**
 * @description
 * In-memory implementation of the AuditTrail. Entries are stored in
 * creation order and read back newest-first; nothing is ever edited or
 * removed.
 */
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trustmark/designation-service/internal/domain"
)

// MemoryAuditTrail is the in-memory append-only audit log.
type MemoryAuditTrail struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
	now     func() time.Time
}

// NewMemoryAuditTrail creates an empty audit trail.
func NewMemoryAuditTrail() *MemoryAuditTrail {
	return &MemoryAuditTrail{now: time.Now}
}

// Record appends exactly one entry with a fresh id and the current time.
// It never fails and never mutates prior entries.
func (t *MemoryAuditTrail) Record(ctx context.Context, action domain.AuditAction, accountID, details string, status domain.AuditStatus, institutionResponse string) domain.AuditEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := domain.AuditEntry{
		ID:                  uuid.NewString(),
		Timestamp:           t.now(),
		Action:              action,
		AccountID:           accountID,
		Details:             details,
		Status:              status,
		InstitutionResponse: institutionResponse,
	}
	t.entries = append(t.entries, entry)
	return entry
}

// Entries returns the full log, most recent entry first.
func (t *MemoryAuditTrail) Entries(ctx context.Context) []domain.AuditEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.AuditEntry, len(t.entries))
	for i, e := range t.entries {
		out[len(t.entries)-1-i] = e
	}
	return out
}
