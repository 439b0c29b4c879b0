package service_interfaces

import (
	"context"

	"github.com/api-sage/bankwire/src/internal/adapter/http/models"
	"github.com/api-sage/bankwire/src/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	ClearAccounts(ctx context.Context) (commons.Response[models.ClearResponse], error)
}
