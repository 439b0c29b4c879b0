package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/bankwire/src/internal/domain"
)

// TransferRepository keeps committed transfers in insertion order. Append does
// not deduplicate; the engine appends each committed transfer exactly once.
type TransferRepository struct {
	mu        sync.RWMutex
	transfers []domain.Transfer
	index     map[string]int
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{
		index: make(map[string]int),
	}
}

func (r *TransferRepository) Append(_ context.Context, transfer domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[transfer.ID]; !exists {
		r.index[transfer.ID] = len(r.transfers)
	}
	r.transfers = append(r.transfers, transfer)
	return nil
}

func (r *TransferRepository) FindByID(_ context.Context, id string) (domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return domain.Transfer{}, fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
	}
	return r.transfers[pos], nil
}

func (r *TransferRepository) ListAll(_ context.Context) ([]domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transfer, len(r.transfers))
	copy(out, r.transfers)
	return out, nil
}

func (r *TransferRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transfers = nil
	r.index = make(map[string]int)
	return nil
}
