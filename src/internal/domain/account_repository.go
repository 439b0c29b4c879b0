package domain

import "context"

// AccountRepository is the account store. Debit and Credit do not check
// sufficiency; callers hold the account lock and validate beforehand.
type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	Delete(ctx context.Context, id string) (Account, error)
	Debit(ctx context.Context, id string, amount Money) (Account, error)
	Credit(ctx context.Context, id string, amount Money) (Account, error)
	ListAll(ctx context.Context) ([]Account, error)
	Clear(ctx context.Context) error
}
