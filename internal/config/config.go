// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional .env file,
// and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// JWTSecret is the process-wide signing key for session tokens.
	// It is loaded from the environment and never logged.
	JWTSecret string

	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL time.Duration

	// BcryptCost is the cost factor used when hashing passwords.
	BcryptCost int

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:5000", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.DurationVar(&options.TokenTTL, "t", time.Hour, "session token lifetime")
	flag.IntVar(&options.BcryptCost, "b", 10, "bcrypt cost factor")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional .env file, and environment
// variables to set configuration values. It returns a pointer to the Options
// struct containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Populate the environment from a local .env file if one exists.
	_ = godotenv.Load()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if dsn := os.Getenv("DB_URL"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		options.JWTSecret = secret
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("error while parsing TOKEN_TTL: %v", err)
		}
		options.TokenTTL = d
	}

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		c, err := strconv.Atoi(cost)
		if err != nil {
			log.Fatalf("error while parsing BCRYPT_COST: %v", err)
		}
		options.BcryptCost = c
	}

	return options
}
