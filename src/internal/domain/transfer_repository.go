package domain

import "context"

// TransferRepository is the append-only log of committed transfers.
type TransferRepository interface {
	Append(ctx context.Context, transfer Transfer) error
	FindByID(ctx context.Context, id string) (Transfer, error)
	ListAll(ctx context.Context) ([]Transfer, error)
	Clear(ctx context.Context) error
}
