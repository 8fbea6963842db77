package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LEDGER"

const defaultBankName = "Banco del Estado"
const defaultAccounts = "Andres=1500.8989;Jhon Doe=2500"
const defaultLogLevel = "info"

// SeedAccount is an account opened when the bank is built. Balance is kept as
// text and parsed by the service that opens it.
type SeedAccount struct {
	Owner   string
	Balance string
}

type Config struct {
	BankName string
	Accounts []SeedAccount
	LogLevel string
}

// Load reads LEDGER_BANK_NAME, LEDGER_ACCOUNTS and LEDGER_LOG_LEVEL from the
// environment, falling back to defaults.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bank_name", defaultBankName)
	v.SetDefault("accounts", defaultAccounts)
	v.SetDefault("log_level", defaultLogLevel)

	bankName := strings.TrimSpace(v.GetString("bank_name"))
	if bankName == "" {
		bankName = defaultBankName
	}

	accounts, err := parseSeedAccounts(v.GetString("accounts"))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s_ACCOUNTS: %w", envPrefix, err)
	}

	logLevel := strings.ToLower(strings.TrimSpace(v.GetString("log_level")))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	return Config{
		BankName: bankName,
		Accounts: accounts,
		LogLevel: logLevel,
	}, nil
}

// parseSeedAccounts reads "owner=balance;owner=balance". Empty segments are
// skipped; a segment without '=' or with an empty owner is an error.
func parseSeedAccounts(raw string) ([]SeedAccount, error) {
	parts := strings.Split(raw, ";")
	out := make([]SeedAccount, 0, len(parts))

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("entry %q must be owner=balance", p)
		}

		owner := strings.TrimSpace(kv[0])
		if owner == "" {
			return nil, fmt.Errorf("entry %q has no owner", p)
		}

		out = append(out, SeedAccount{
			Owner:   owner,
			Balance: strings.TrimSpace(kv[1]),
		})
	}

	return out, nil
}
