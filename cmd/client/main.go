// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a command-line client of the wallet server.
//
//	client [-a address] [-token token] <command> [args]
//
// Commands:
//
//	version
//	sign-up <name> <email> <password>
//	sign-in <email> <password>                       prints the token
//	list
//	add <expense|income> <date> <value> <description>
//	update <id> <value> <description>
//	delete <id>
//
// The token can also be passed via WALLET_TOKEN and the address via
// WALLET_ADDRESS.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet/internal/adapter"
	"github.com/MKhiriev/go-wallet/internal/logger"
	"github.com/MKhiriev/go-wallet/models"
	"github.com/caarlos0/env/v11"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [-a address] [-token token] <version|sign-up|sign-in|list|add|update|delete> [args]")

type clientConfig struct {
	Address string        `env:"WALLET_ADDRESS" envDefault:"localhost:5000"`
	Token   string        `env:"WALLET_TOKEN"`
	Timeout time.Duration `env:"WALLET_TIMEOUT" envDefault:"15s"`
}

func main() {
	log := logger.NewLogger("wallet-client")

	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing environment")
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "wallet server address")
	flag.StringVar(&cfg.Token, "token", cfg.Token, "bearer token from sign-in")
	showVersion := flag.Bool("v", false, "print build information")
	flag.Parse()

	if *showVersion {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return
	}

	wallet, err := adapter.NewHTTPWalletAdapter(cfg.Address, cfg.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating wallet adapter")
	}
	wallet.SetToken(cfg.Token)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err = run(ctx, wallet, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, wallet adapter.WalletAdapter, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch {
	case command == "version" && len(args) == 0:
		version, err := wallet.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil

	case command == "sign-up" && len(args) == 3:
		return wallet.SignUp(ctx, models.SignUpRequest{
			Name: args[0], Email: args[1], Password: args[2], PasswordConfirmation: args[2],
		})

	case command == "sign-in" && len(args) == 2:
		resp, err := wallet.SignIn(ctx, models.SignInRequest{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Println(resp.Token)
		return nil

	case command == "list" && len(args) == 0:
		transactions, err := wallet.ListTransactions(ctx)
		if err != nil {
			return err
		}
		out := json.NewEncoder(os.Stdout)
		out.SetIndent("", "  ")
		return out.Encode(transactions)

	case command == "add" && len(args) >= 4:
		value, err := models.AmountFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[2], err)
		}
		return wallet.CreateTransaction(ctx, models.CreateTransactionRequest{
			Type:        models.TransactionType(args[0]),
			Date:        args[1],
			Value:       &value,
			Description: strings.Join(args[3:], " "),
		})

	case command == "update" && len(args) >= 3:
		value, err := models.AmountFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		return wallet.UpdateTransaction(ctx, models.UpdateTransactionRequest{
			ID:          args[0],
			Value:       &value,
			Description: strings.Join(args[2:], " "),
		})

	case command == "delete" && len(args) == 1:
		return wallet.DeleteTransaction(ctx, args[0])

	default:
		return errUsage
	}
}
