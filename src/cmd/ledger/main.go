package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/api-sage/bank-accounts/src/internal/config"
	"github.com/api-sage/bank-accounts/src/internal/domain"
	"github.com/api-sage/bank-accounts/src/internal/logger"
	"github.com/api-sage/bank-accounts/src/internal/models"
	"github.com/api-sage/bank-accounts/src/internal/usecase/service_interfaces"
	"github.com/api-sage/bank-accounts/src/internal/usecase/services"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `usage: ledger [-pretty] <command> [args]

commands:
  accounts                                 list accounts
  account <owner>                          show one account
  debit <owner> <amount>                   withdraw amount
  credit <owner> <amount>                  deposit amount
  transfer <source> <destination> <amount> move amount between accounts
`

func main() {
	os.Exit(start())
}

func start() int {
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return exitFailure
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Printf("init logger: %v", err)
		return exitFailure
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Second)
	defer cancelTimeout()

	bank := domain.NewBank(cfg.BankName)
	accounts := services.NewAccountService(bank)
	transfers := services.NewTransferService(bank)

	if err := seed(ctx, accounts, cfg.Accounts); err != nil {
		logger.Error("ledger seed accounts failed", err, logger.Fields{"bankName": cfg.BankName})
		return exitFailure
	}

	return run(ctx, flag.Args(), accounts, transfers, os.Stdout, *pretty)
}

func seed(ctx context.Context, accounts service_interfaces.AccountService, seeds []config.SeedAccount) error {
	for _, s := range seeds {
		if _, err := accounts.OpenAccount(ctx, models.OpenAccountRequest{
			Owner:          s.Owner,
			InitialBalance: s.Balance,
		}); err != nil {
			return fmt.Errorf("seed account %q: %w", s.Owner, err)
		}
	}

	return nil
}

func run(
	ctx context.Context,
	args []string,
	accounts service_interfaces.AccountService,
	transfers service_interfaces.TransferService,
	out io.Writer,
	pretty bool,
) int {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return exitUsage
	}

	var (
		payload any
		err     error
	)

	switch cmd, rest := args[0], args[1:]; {
	case cmd == "accounts" && len(rest) == 0:
		payload, err = accounts.ListAccounts(ctx)
	case cmd == "account" && len(rest) == 1:
		payload, err = accounts.GetAccount(ctx, rest[0])
	case cmd == "debit" && len(rest) == 2:
		payload, err = accounts.Withdraw(ctx, models.AmountRequest{Owner: rest[0], Amount: rest[1]})
	case cmd == "credit" && len(rest) == 2:
		payload, err = accounts.Deposit(ctx, models.AmountRequest{Owner: rest[0], Amount: rest[1]})
	case cmd == "transfer" && len(rest) == 3:
		payload, err = transfers.Transfer(ctx, models.TransferRequest{
			SourceOwner:      rest[0],
			DestinationOwner: rest[1],
			Amount:           rest[2],
		})
	default:
		fmt.Fprint(out, usage)
		return exitUsage
	}

	if writeErr := writeJSON(out, payload, pretty); writeErr != nil {
		logger.Error("ledger write response failed", writeErr, nil)
		return exitFailure
	}
	if err != nil {
		return exitFailure
	}

	return exitOK
}

func writeJSON(w io.Writer, payload any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(payload)
}
