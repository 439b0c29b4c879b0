package service_interfaces

import (
	"context"

	"github.com/api-sage/bankwire/src/internal/adapter/http/models"
	"github.com/api-sage/bankwire/src/internal/commons"
)

type TransferService interface {
	SubmitTransfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	GetTransfer(ctx context.Context, transferID string) (commons.Response[models.TransferResponse], error)
	ListTransfers(ctx context.Context) (commons.Response[[]models.TransferResponse], error)
	ClearTransfers(ctx context.Context) (commons.Response[models.ClearResponse], error)
}
