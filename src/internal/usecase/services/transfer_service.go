package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bankwire/src/internal/adapter/http/models"
	"github.com/api-sage/bankwire/src/internal/commons"
	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/api-sage/bankwire/src/internal/logger"
	"github.com/api-sage/bankwire/src/internal/usecase/validation"
	"github.com/google/uuid"
)

type TransferExecutor interface {
	Execute(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error)
}

// TransferPublisher announces committed transfers. Implementations live in
// adapter/events.
type TransferPublisher interface {
	PublishTransferCommitted(ctx context.Context, transfer domain.Transfer) error
}

type TransferService struct {
	accountRepo  domain.AccountRepository
	transferRepo domain.TransferRepository
	engine       TransferExecutor
	publisher    TransferPublisher
}

func NewTransferService(
	accountRepo domain.AccountRepository,
	transferRepo domain.TransferRepository,
	engine TransferExecutor,
	publisher TransferPublisher,
) *TransferService {
	return &TransferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		engine:       engine,
		publisher:    publisher,
	}
}

func (s *TransferService) SubmitTransfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service submit transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		err = fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
		return commons.FailedResponse[models.TransferResponse](failureMessage(err), err), err
	}

	senderID := strings.TrimSpace(req.SenderAccountID)
	receiverID := strings.TrimSpace(req.ReceiverAccountID)
	if err := validation.ValidateTransferRequest(senderID, receiverID); err != nil {
		return commons.FailedResponse[models.TransferResponse](failureMessage(err), err), err
	}

	currency, err := s.transferCurrency(ctx, senderID, req.Currency)
	if err != nil {
		return commons.FailedResponse[models.TransferResponse](failureMessage(err), err), err
	}

	pending := domain.NewTransfer(
		uuid.NewString(),
		senderID,
		receiverID,
		domain.NewMoney(req.Money, currency),
		time.Now().UTC(),
	)

	// Only the engine deadline ends a transfer; a client going away must not.
	execCtx := context.WithoutCancel(ctx)

	transfer, err := s.engine.Execute(execCtx, pending)
	if err != nil {
		logger.Error("transfer service transfer failed", err, logger.Fields{
			"transferId": transfer.ID,
			"status":     transfer.Status,
		})
		return commons.FailedResponse[models.TransferResponse](failureMessage(err), err), err
	}

	if s.publisher != nil {
		if pubErr := s.publisher.PublishTransferCommitted(execCtx, transfer); pubErr != nil {
			logger.Error("transfer service publish committed event failed", pubErr, logger.Fields{
				"transferId": transfer.ID,
			})
		}
	}

	return commons.SuccessResponse("transfer completed successfully", models.NewTransferResponse(transfer)), nil
}

func (s *TransferService) GetTransfer(ctx context.Context, transferID string) (commons.Response[models.TransferResponse], error) {
	transfer, err := s.transferRepo.FindByID(ctx, strings.TrimSpace(transferID))
	if err != nil {
		return commons.FailedResponse[models.TransferResponse](failureMessage(err), err), err
	}

	return commons.SuccessResponse("transfer fetched successfully", models.NewTransferResponse(transfer)), nil
}

func (s *TransferService) ListTransfers(ctx context.Context) (commons.Response[[]models.TransferResponse], error) {
	transfers, err := s.transferRepo.ListAll(ctx)
	if err != nil {
		logger.Error("transfer service list transfers failed", err, nil)
		return commons.FailedResponse[[]models.TransferResponse](failureMessage(err), err), err
	}

	response := make([]models.TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		response = append(response, models.NewTransferResponse(transfer))
	}

	return commons.ListResponse("transfers fetched successfully", response), nil
}

// ClearTransfers empties the transfer log. Administrative use only.
func (s *TransferService) ClearTransfers(ctx context.Context) (commons.Response[models.ClearResponse], error) {
	logger.Warn("transfer service clearing transfer log", nil)

	if err := s.transferRepo.Clear(ctx); err != nil {
		logger.Error("transfer service clear transfers failed", err, nil)
		return commons.FailedResponse[models.ClearResponse](failureMessage(err), err), err
	}

	return commons.SuccessResponse("transfers cleared successfully", models.NewClearResponse("transfers", time.Now().UTC())), nil
}

// transferCurrency parses the requested currency, falling back to the
// sender's currency when none was given.
func (s *TransferService) transferCurrency(ctx context.Context, senderID string, requested string) (domain.Currency, error) {
	if strings.TrimSpace(requested) != "" {
		return domain.ParseCurrency(requested)
	}

	sender, err := s.accountRepo.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", domain.ErrSenderNotFound, err)
		}
		return "", err
	}
	return sender.Currency(), nil
}
