package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SourceOwner      string `json:"sourceOwner"`
	DestinationOwner string `json:"destinationOwner"`
	Amount           string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	source := strings.TrimSpace(r.SourceOwner)
	destination := strings.TrimSpace(r.DestinationOwner)

	if source == "" {
		errs = append(errs, "sourceOwner is required")
	}
	if destination == "" {
		errs = append(errs, "destinationOwner is required")
	}
	if source != "" && source == destination {
		errs = append(errs, "sourceOwner and destinationOwner cannot be the same")
	}
	errs = append(errs, validateAmount(r.Amount)...)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (r TransferRequest) ParsedAmount() (decimal.Decimal, error) {
	return parseAmount(r.Amount)
}

type TransferResponse struct {
	Reference          string `json:"reference"`
	SourceOwner        string `json:"sourceOwner"`
	DestinationOwner   string `json:"destinationOwner"`
	Amount             string `json:"amount"`
	SourceBalance      string `json:"sourceBalance"`
	DestinationBalance string `json:"destinationBalance"`
}
