// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-jwt-algo token signing algorithm
//	-jwt-expires-min token lifetime in minutes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-use-hf enable the remote summarization model
//	-hf-model remote model name
//	-queue-backend memory or redis
//	-redis-addr redis address for the redis queue backend
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenAlgorithm string
	var tokenExpiresMin int
	var requestTimeout time.Duration
	var useHF bool
	var hfModel string
	var queueBackend string
	var redisAddr string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "jwt-secret", "", "Token signing key")
	flag.StringVar(&tokenAlgorithm, "jwt-algo", "", "Token signing algorithm (HS256, HS384, HS512)")
	flag.IntVar(&tokenExpiresMin, "jwt-expires-min", 0, "Token lifetime in minutes")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&useHF, "use-hf", false, "Use the remote summarization model")
	flag.StringVar(&hfModel, "hf-model", "", "Remote summarization model name")
	flag.StringVar(&queueBackend, "queue-backend", "", "Note queue backend (memory, redis)")
	flag.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:    tokenSignKey,
			TokenAlgorithm:  tokenAlgorithm,
			TokenExpiresMin: tokenExpiresMin,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Summarizer: Summarizer{
			UseHF: useHF,
			Model: hfModel,
		},
		Workers: Workers{
			QueueBackend: queueBackend,
			RedisAddr:    redisAddr,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
