package cmd

import (
	"errors"
	"flag"
	"os"
)

const (
	EnvPreqinUsername = "PREQIN_API_USERNAME"
	EnvPreqinKey      = "PREQIN_API_KEY"
)

// credentials are the Preqin API credentials of a command.
type credentials struct {
	username string
	key      string
}

func (c *credentials) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "preqin-username", "", "Preqin API username. Defaults to $"+EnvPreqinUsername)
	f.StringVar(&c.key, "preqin-key", "", "Preqin API key. Defaults to $"+EnvPreqinKey)
}

// resolve retrieves the credentials from the command-line flags or the environment variables.
// It prioritizes the flags over the environment variables.
func (c *credentials) resolve() (username, key string, err error) {
	if c.username == "" {
		c.username = os.Getenv(EnvPreqinUsername)
	}
	if c.key == "" {
		c.key = os.Getenv(EnvPreqinKey)
	}
	if c.username == "" || c.key == "" {
		return "", "", errors.New("Preqin API credentials are not set. Use -preqin-username and -preqin-key flags or " +
			EnvPreqinUsername + " and " + EnvPreqinKey + " environment variables")
	}
	return c.username, c.key, nil
}
