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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-c/-config json file path with configs
//	-env-file dotenv file with backend credentials
//	-session-dsn session store DSN
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-backend-timeout backend request timeout
//	-max-retries number of retries after a failed catalog read
//	-log-level minimum log level
//	-warm-up build the backend client at startup
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var envFile string
	var sessionDSN string
	var requestTimeout time.Duration
	var backendTimeout time.Duration
	var maxRetries int
	var retriesSet bool
	var logLevel string
	var warmUp bool

	fs := flag.NewFlagSet("catalog-gateway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file with backend credentials")
	fs.StringVar(&sessionDSN, "session-dsn", "", "Session store DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Retries after a failed catalog read")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.BoolVar(&warmUp, "warm-up", false, "Build the backend client at startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-retries" {
			retriesSet = true
		}
	})
	var retries *int
	if retriesSet {
		retries = &maxRetries
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Backend: Backend{
			RequestTimeout: backendTimeout,
			MaxRetries:     retries,
			EnvFile:        envFile,
			WarmUp:         warmUp,
		},
		Storage: Storage{
			Session: Session{DSN: sessionDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
