package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-accounts/src/internal/commons"
	"github.com/api-sage/bank-accounts/src/internal/models"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, owner string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[models.AmountResponse], error)
	Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[models.AmountResponse], error)
}
