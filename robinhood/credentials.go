package robinhood

import (
	"os"

	"github.com/joho/godotenv"
)

// Credentials identifies one brokerage account. All three fields are required
// to open a session.
type Credentials struct {
	Username      string
	Password      string
	AccountNumber string
}

func (c Credentials) complete() bool {
	return c.Username != "" && c.Password != "" && c.AccountNumber != ""
}

// FillFrom returns the credentials with any empty field taken from the
// fallback. Config-file credentials take precedence over environment ones.
func (c Credentials) FillFrom(fallback Credentials) Credentials {
	if c.Username == "" {
		c.Username = fallback.Username
	}
	if c.Password == "" {
		c.Password = fallback.Password
	}
	if c.AccountNumber == "" {
		c.AccountNumber = fallback.AccountNumber
	}
	return c
}

// CredentialsFromEnv reads credentials from the environment, loading a .env
// file first when one is present. A missing .env file is not an error; the
// environment alone is used.
func CredentialsFromEnv() Credentials {
	_ = godotenv.Load()
	return Credentials{
		Username:      os.Getenv("USERNAME"),
		Password:      os.Getenv("PASSWORD"),
		AccountNumber: os.Getenv("ACCOUNT_NUMBER"),
	}
}
