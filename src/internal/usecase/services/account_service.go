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
	"github.com/shopspring/decimal"
)

type AccountService struct {
	bank *domain.Bank
}

func NewAccountService(bank *domain.Bank) *AccountService {
	return &AccountService{bank: bank}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	if err := ctx.Err(); err != nil {
		return commons.FailWith[models.AccountResponse]("request cancelled", err), err
	}

	logger.Info("account service open account request", logger.Fields{
		"payload": logger.Redact(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.FailWith[models.AccountResponse]("validation failed", err), err
	}

	owner := strings.TrimSpace(req.Owner)
	if s.bank.HasAccountFor(owner) {
		err := fmt.Errorf("%w: %s", commons.ErrDuplicateOwner, owner)
		logger.Info("account service open account duplicate owner", logger.Fields{
			"owner": owner,
		})
		return commons.FailWith[models.AccountResponse]("validation failed", err), err
	}

	balance, err := parseBalance(req.InitialBalance)
	if err != nil {
		logger.Error("account service open account parse balance failed", err, nil)
		return commons.FailWith[models.AccountResponse]("validation failed", err), err
	}

	account := domain.NewAccount(owner, balance)
	s.bank.AddAccount(account)

	response := toAccountResponse(account)

	logger.Info("account service open account success", logger.Fields{
		"owner":    response.Owner,
		"balance":  response.Balance,
		"bankName": response.BankName,
	})

	return commons.OK("account opened successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, owner string) (commons.Response[models.AccountResponse], error) {
	if err := ctx.Err(); err != nil {
		return commons.FailWith[models.AccountResponse]("request cancelled", err), err
	}

	logger.Info("account service get account request", logger.Fields{
		"owner": owner,
	})

	owner = strings.TrimSpace(owner)
	if owner == "" {
		return commons.Fail[models.AccountResponse]("validation failed", "owner is required"), errors.New("owner is required")
	}

	account, ok := s.bank.AccountByOwner(owner)
	if !ok {
		logger.Info("account service get account not found", logger.Fields{
			"owner": owner,
		})
		return commons.Fail[models.AccountResponse]("Account not found"), commons.ErrAccountNotFound
	}

	response := toAccountResponse(account)

	logger.Info("account service get account success", logger.Fields{
		"owner":   response.Owner,
		"balance": response.Balance,
	})

	return commons.OK("account fetched successfully", response), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	if err := ctx.Err(); err != nil {
		return commons.FailWith[[]models.AccountResponse]("request cancelled", err), err
	}

	accounts := s.bank.Accounts()

	response := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toAccountResponse(account))
	}

	logger.Info("account service list accounts success", logger.Fields{
		"bankName": s.bank.Name(),
		"count":    len(response),
	})

	return commons.OK("accounts fetched successfully", response), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[models.AmountResponse], error) {
	if err := ctx.Err(); err != nil {
		return commons.FailWith[models.AmountResponse]("request cancelled", err), err
	}

	logger.Info("account service deposit request", logger.Fields{
		"payload": logger.Redact(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit validation failed", err, nil)
		return commons.FailWith[models.AmountResponse]("validation failed", err), err
	}

	amount, err := req.ParsedAmount()
	if err != nil {
		return commons.FailWith[models.AmountResponse]("validation failed", err), err
	}

	owner := strings.TrimSpace(req.Owner)
	account, ok := s.bank.AccountByOwner(owner)
	if !ok {
		return commons.Fail[models.AmountResponse]("Account not found"), commons.ErrAccountNotFound
	}

	account.Credit(amount)

	response := models.AmountResponse{
		Owner:   account.Owner(),
		Amount:  domain.PlainString(amount),
		Balance: account.BalanceString(),
	}

	logger.Info("account service deposit success", logger.Fields{
		"owner":   response.Owner,
		"amount":  response.Amount,
		"balance": response.Balance,
	})

	return commons.OK("funds deposited successfully", response), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[models.AmountResponse], error) {
	if err := ctx.Err(); err != nil {
		return commons.FailWith[models.AmountResponse]("request cancelled", err), err
	}

	logger.Info("account service withdraw request", logger.Fields{
		"payload": logger.Redact(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return commons.FailWith[models.AmountResponse]("validation failed", err), err
	}

	amount, err := req.ParsedAmount()
	if err != nil {
		return commons.FailWith[models.AmountResponse]("validation failed", err), err
	}

	owner := strings.TrimSpace(req.Owner)
	account, ok := s.bank.AccountByOwner(owner)
	if !ok {
		return commons.Fail[models.AmountResponse]("Account not found"), commons.ErrAccountNotFound
	}

	if err := account.Debit(amount); err != nil {
		logger.Error("account service withdraw failed", err, logger.Fields{
			"owner":   owner,
			"amount":  domain.PlainString(amount),
			"balance": account.BalanceString(),
		})
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.FailWith[models.AmountResponse]("Insufficient funds", err), err
		}
		return commons.Fail[models.AmountResponse]("failed to withdraw funds"), err
	}

	response := models.AmountResponse{
		Owner:   account.Owner(),
		Amount:  domain.PlainString(amount),
		Balance: account.BalanceString(),
	}

	logger.Info("account service withdraw success", logger.Fields{
		"owner":   response.Owner,
		"amount":  response.Amount,
		"balance": response.Balance,
	})

	return commons.OK("funds withdrawn successfully", response), nil
}

func parseBalance(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("initialBalance must be numeric: %w", err)
	}
	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("initialBalance cannot be negative")
	}

	return balance, nil
}

func toAccountResponse(account *domain.Account) models.AccountResponse {
	response := models.AccountResponse{
		Owner:   account.Owner(),
		Balance: account.BalanceString(),
	}
	if bank := account.Bank(); bank != nil {
		response.BankName = bank.Name()
	}

	return response
}
