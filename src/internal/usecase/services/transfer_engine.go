package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/api-sage/bankwire/src/internal/config"
	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/api-sage/bankwire/src/internal/logger"
	"github.com/api-sage/bankwire/src/internal/usecase/validation"
)

// TransferEngine moves funds between two accounts that other transfers may be
// touching at the same time.
//
// Both account locks are taken with TryLock, sender first. When the receiver
// lock is busy the sender lock is released before backing off, so two
// transfers running in opposite directions over the same pair can never wait
// on each other. The loop is bounded by wall-clock time only.
type TransferEngine struct {
	accountRepo   domain.AccountRepository
	transferRepo  domain.TransferRepository
	timeout       time.Duration
	backoffBase   time.Duration
	backoffJitter time.Duration
}

func NewTransferEngine(
	accountRepo domain.AccountRepository,
	transferRepo domain.TransferRepository,
	cfg config.TransferConfig,
) *TransferEngine {
	return &TransferEngine{
		accountRepo:   accountRepo,
		transferRepo:  transferRepo,
		timeout:       cfg.Timeout,
		backoffBase:   cfg.BackoffBase,
		backoffJitter: cfg.BackoffJitter,
	}
}

// Execute runs a pending transfer to a terminal state. On success the returned
// transfer is COMMITTED and already in the transfer log. Every error leaves it
// ABANDONED with no funds moved.
func (e *TransferEngine) Execute(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	if err := validation.ValidateTransferRequest(transfer.SenderID, transfer.ReceiverID); err != nil {
		return e.abandon(transfer, err, 0)
	}
	if err := validation.ValidateAmount(transfer.Amount); err != nil {
		return e.abandon(transfer, err, 0)
	}

	deadline := time.Now().Add(e.timeout)
	attempts := 0

	for transfer.IsPending() {
		attempts++

		committed, err := e.attempt(ctx, &transfer)
		if err != nil {
			return e.abandon(transfer, err, attempts)
		}
		if committed {
			break
		}

		if !time.Now().Before(deadline) {
			err := fmt.Errorf("transfer %s gave up after %d attempts: %w", transfer.ID, attempts, domain.ErrTimeout)
			return e.abandon(transfer, err, attempts)
		}

		if err := sleepWithContext(ctx, e.backoffDelay()); err != nil {
			return e.abandon(transfer, fmt.Errorf("%w: %w", domain.ErrInterrupted, err), attempts)
		}
	}

	logger.Info("transfer engine commit success", logger.Fields{
		"transferId": transfer.ID,
		"senderId":   transfer.SenderID,
		"receiverId": transfer.ReceiverID,
		"amount":     transfer.Amount.String(),
		"attempts":   attempts,
	})

	return transfer, nil
}

// attempt makes one pass of resolve, validate, lock and commit. It reports
// committed=false with a nil error when either lock was busy.
func (e *TransferEngine) attempt(ctx context.Context, transfer *domain.Transfer) (bool, error) {
	sender, receiver, err := e.resolve(ctx, *transfer)
	if err != nil {
		return false, err
	}

	if !sender.TryLock() {
		logger.Debug("transfer engine sender lock busy", logger.Fields{
			"transferId": transfer.ID,
			"accountId":  sender.ID,
		})
		return false, nil
	}
	defer sender.Unlock()

	if !receiver.TryLock() {
		logger.Debug("transfer engine receiver lock busy", logger.Fields{
			"transferId": transfer.ID,
			"accountId":  receiver.ID,
		})
		return false, nil
	}
	defer receiver.Unlock()

	return e.commit(ctx, transfer, sender, receiver)
}

// commit runs with both locks held.
func (e *TransferEngine) commit(ctx context.Context, transfer *domain.Transfer, lockedSender domain.Account, lockedReceiver domain.Account) (bool, error) {
	sender, receiver, err := e.resolve(ctx, *transfer)
	if err != nil {
		return false, err
	}

	// An id deleted and recreated since resolution points at a record whose
	// lock we do not hold.
	if !sender.SameAs(lockedSender) || !receiver.SameAs(lockedReceiver) {
		return false, nil
	}

	if _, err := e.accountRepo.Debit(ctx, sender.ID, transfer.Amount); err != nil {
		return false, classifyStoreError(err, domain.ErrSenderNotFound)
	}

	if _, err := e.accountRepo.Credit(ctx, receiver.ID, transfer.Amount); err != nil {
		e.reverseDebit(ctx, *transfer)
		return false, classifyStoreError(err, domain.ErrReceiverNotFound)
	}

	transfer.MarkCommitted(time.Now().UTC())
	if err := e.transferRepo.Append(ctx, *transfer); err != nil {
		e.reverseCredit(ctx, *transfer)
		e.reverseDebit(ctx, *transfer)
		transfer.Status = domain.TransferStatusPending
		transfer.CompletedAt = nil
		return false, fmt.Errorf("append transfer %s: %w", transfer.ID, err)
	}

	return true, nil
}

func (e *TransferEngine) resolve(ctx context.Context, transfer domain.Transfer) (domain.Account, domain.Account, error) {
	sender, senderFound, err := e.find(ctx, transfer.SenderID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}
	receiver, receiverFound, err := e.find(ctx, transfer.ReceiverID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	if err := validation.ValidateTransfer(sender, senderFound, receiver, receiverFound, transfer.Amount); err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return sender, receiver, nil
}

func (e *TransferEngine) find(ctx context.Context, id string) (domain.Account, bool, error) {
	account, err := e.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, fmt.Errorf("find account %s: %w", id, err)
	}
	return account, true, nil
}

func (e *TransferEngine) reverseDebit(ctx context.Context, transfer domain.Transfer) {
	if _, err := e.accountRepo.Credit(ctx, transfer.SenderID, transfer.Amount); err != nil {
		logger.Error("transfer engine reverse debit failed", err, logger.Fields{
			"transferId": transfer.ID,
			"accountId":  transfer.SenderID,
			"amount":     transfer.Amount.String(),
		})
	}
}

func (e *TransferEngine) reverseCredit(ctx context.Context, transfer domain.Transfer) {
	if _, err := e.accountRepo.Debit(ctx, transfer.ReceiverID, transfer.Amount); err != nil {
		logger.Error("transfer engine reverse credit failed", err, logger.Fields{
			"transferId": transfer.ID,
			"accountId":  transfer.ReceiverID,
			"amount":     transfer.Amount.String(),
		})
	}
}

func (e *TransferEngine) abandon(transfer domain.Transfer, err error, attempts int) (domain.Transfer, error) {
	transfer.MarkAbandoned(time.Now().UTC())

	logger.Warn("transfer engine abandoned transfer", logger.Fields{
		"transferId": transfer.ID,
		"senderId":   transfer.SenderID,
		"receiverId": transfer.ReceiverID,
		"amount":     transfer.Amount.String(),
		"attempts":   attempts,
		"reason":     err.Error(),
	})

	return transfer, err
}

func (e *TransferEngine) backoffDelay() time.Duration {
	delay := e.backoffBase
	if e.backoffJitter > 0 {
		delay += rand.N(e.backoffJitter)
	}
	return delay
}

func classifyStoreError(err error, missing error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %w", missing, err)
	}
	return err
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
