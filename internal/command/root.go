// Package command defines the csrfctl commands for creating secrets and
// creating or checking tokens from the shell.
package command

import (
	"github.com/urfave/cli/v2"
)

// Version is set via ldflags.
var Version = "dev"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "csrfctl",
		Usage:   "create CSRF secrets and tokens, and verify tokens",
		Version: Version,
		Commands: []*cli.Command{
			SecretCommand(),
			TokenCommand(),
			VerifyCommand(),
		},
	}
}

func saltLengthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "salt-length",
		Usage:   "salt size in bytes",
		EnvVars: []string{"CSRF_SALT_BYTE_LENGTH"},
		Value:   8,
	}
}

func secretFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "secret",
		Aliases:  []string{"s"},
		Usage:    "encoded secret, as stored in the secret cookie",
		EnvVars:  []string{"CSRF_SECRET"},
		Required: true,
	}
}
