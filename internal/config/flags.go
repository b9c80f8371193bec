// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-name database name (MongoDB)
//	-db-connect-timeout startup connect timeout (e.g., "10s")
//	-c/-config json file path with configs
//	-password-min-length minimal password length
//	-password-hash-cost bcrypt cost
//	-log-level log level
//	-version application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origin Access-Control-Allow-Origin value
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseName string
	var connectTimeout time.Duration
	var jsonConfigPath string
	var passwordMinLength int
	var passwordHashCost int
	var logLevel string
	var version string
	var requestTimeout time.Duration
	var corsOrigin string

	fs := flag.NewFlagSet("wallet-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseName, "db-name", "", "Database name")
	fs.DurationVar(&connectTimeout, "db-connect-timeout", 0, "Database connect timeout (e.g., 10s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&passwordMinLength, "password-min-length", 0, "Minimal password length")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigin, "cors-origin", "", "Access-Control-Allow-Origin value")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordMinLength: passwordMinLength,
			PasswordHashCost:  passwordHashCost,
			LogLevel:          logLevel,
			Version:           version,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				Name:           databaseName,
				ConnectTimeout: connectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigin:     corsOrigin,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is empty
// or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
