// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables, and
// an optional .env file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// EncryptionKey keys the secret-field cipher. Required.
	EncryptionKey string

	// JWTSecret signs issued session tokens. Required.
	JWTSecret string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, an optional .env file, and
// environment variables to set configuration values. The encryption key and
// token-signing secret have no defaults and no flags; a process without
// them cannot protect anything, so their absence is fatal.
func Parse() *Options {
	flag.Parse()

	// A .env file is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

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
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if key := os.Getenv("ENCRYPTION_KEY"); key != "" {
		options.EncryptionKey = key
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}

	if options.EncryptionKey == "" {
		log.Fatal("ENCRYPTION_KEY is required")
	}
	if options.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return options
}
