package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/bank-accounts/src/internal/commons"
	"github.com/api-sage/bank-accounts/src/internal/domain"
	"github.com/api-sage/bank-accounts/src/internal/logger"
	"github.com/api-sage/bank-accounts/src/internal/models"
	"github.com/google/uuid"
)

type TransferService struct {
	bank         *domain.Bank
	newReference func() string
}

func NewTransferService(bank *domain.Bank) *TransferService {
	return &TransferService{
		bank:         bank,
		newReference: uuid.NewString,
	}
}

func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	if err := ctx.Err(); err != nil {
		return commons.FailWith[models.TransferResponse]("request cancelled", err), err
	}

	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.Redact(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer validation failed", err, nil)
		return commons.FailWith[models.TransferResponse]("validation failed", err), err
	}

	sourceOwner := strings.TrimSpace(req.SourceOwner)
	destinationOwner := strings.TrimSpace(req.DestinationOwner)
	amount, err := req.ParsedAmount()
	if err != nil {
		return commons.FailWith[models.TransferResponse]("validation failed", err), err
	}

	source, ok := s.bank.AccountByOwner(sourceOwner)
	if !ok {
		err := fmt.Errorf("source %q: %w", sourceOwner, commons.ErrAccountNotFound)
		return commons.FailWith[models.TransferResponse]("Source account not found", err), err
	}
	destination, ok := s.bank.AccountByOwner(destinationOwner)
	if !ok {
		err := fmt.Errorf("destination %q: %w", destinationOwner, commons.ErrAccountNotFound)
		return commons.FailWith[models.TransferResponse]("Destination account not found", err), err
	}

	if err := s.bank.Transfer(source, destination, amount); err != nil {
		logger.Error("transfer service transfer failed", err, logger.Fields{
			"sourceOwner":      sourceOwner,
			"destinationOwner": destinationOwner,
			"amount":           domain.PlainString(amount),
			"sourceBalance":    source.BalanceString(),
		})
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.FailWith[models.TransferResponse]("Insufficient funds", err), err
		}
		return commons.Fail[models.TransferResponse]("transfer failed", "Unable to complete transfer"), err
	}

	response := models.TransferResponse{
		Reference:          s.newReference(),
		SourceOwner:        source.Owner(),
		DestinationOwner:   destination.Owner(),
		Amount:             domain.PlainString(amount),
		SourceBalance:      source.BalanceString(),
		DestinationBalance: destination.BalanceString(),
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"reference":          response.Reference,
		"sourceOwner":        response.SourceOwner,
		"destinationOwner":   response.DestinationOwner,
		"amount":             response.Amount,
		"sourceBalance":      response.SourceBalance,
		"destinationBalance": response.DestinationBalance,
	})

	return commons.OK("Transaction successful", response), nil
}
