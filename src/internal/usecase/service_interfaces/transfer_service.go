package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-accounts/src/internal/commons"
	"github.com/api-sage/bank-accounts/src/internal/models"
)

type TransferService interface {
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
}
