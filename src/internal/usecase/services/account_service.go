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
	"github.com/google/uuid"
)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		err = fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err.Error())
		return commons.FailedResponse[models.AccountResponse](failureMessage(err), err), err
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return commons.FailedResponse[models.AccountResponse](failureMessage(err), err), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		accountID = uuid.NewString()
	}

	account := domain.NewAccount(
		accountID,
		domain.Owner{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
		},
		domain.NewMoney(req.Money.Decimal, currency),
		time.Now().UTC(),
	)

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.FailedResponse[models.AccountResponse](failureMessage(err), err), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId": created.ID,
		"currency":  created.Currency(),
	})

	return commons.SuccessResponse("account created successfully", models.NewAccountResponse(created)), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service delete account request", logger.Fields{
		"accountId": accountID,
	})

	deleted, err := s.accountRepo.Delete(ctx, strings.TrimSpace(accountID))
	if err != nil {
		logger.Error("account service delete account failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.FailedResponse[models.AccountResponse](failureMessage(err), err), err
	}

	return commons.SuccessResponse(fmt.Sprintf("account %s deleted successfully", deleted.ID), models.NewAccountResponse(deleted)), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	account, err := s.accountRepo.FindByID(ctx, strings.TrimSpace(accountID))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("account service get account failed", err, logger.Fields{
				"accountId": accountID,
			})
		}
		return commons.FailedResponse[models.AccountResponse](failureMessage(err), err), err
	}

	return commons.SuccessResponse("account fetched successfully", models.NewAccountResponse(account)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.FailedResponse[[]models.AccountResponse](failureMessage(err), err), err
	}

	response := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, models.NewAccountResponse(account))
	}

	return commons.ListResponse("accounts fetched successfully", response), nil
}

// ClearAccounts removes every account. Administrative use only; transfers in
// flight against removed accounts abandon with a not-found error.
func (s *AccountService) ClearAccounts(ctx context.Context) (commons.Response[models.ClearResponse], error) {
	logger.Warn("account service clearing accounts", nil)

	if err := s.accountRepo.Clear(ctx); err != nil {
		logger.Error("account service clear accounts failed", err, nil)
		return commons.FailedResponse[models.ClearResponse](failureMessage(err), err), err
	}

	return commons.SuccessResponse("accounts cleared successfully", models.NewClearResponse("accounts", time.Now().UTC())), nil
}
