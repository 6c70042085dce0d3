package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
)

// SecretCommand prints a new encoded secret.
func SecretCommand() *cli.Command {
	return &cli.Command{
		Name:  "secret",
		Usage: "generate a new secret",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "secret size in bytes",
				EnvVars: []string{"CSRF_SECRET_BYTE_LENGTH"},
				Value:   18,
			},
		},
		Action: func(c *cli.Context) error {
			secret, err := csrf.GenerateSecret(c.Int("length"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, csrf.Encode(secret))
			return err
		},
	}
}

// TokenCommand prints a token for the given secret.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "create a token for a secret",
		Flags: []cli.Flag{secretFlag(), saltLengthFlag()},
		Action: func(c *cli.Context) error {
			secret, err := decodeSecret(c.String("secret"))
			if err != nil {
				return err
			}
			token, err := csrf.CreateToken(secret, c.Int("salt-length"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, csrf.Encode(token))
			return err
		},
	}
}

// VerifyCommand checks a token against a secret and exits 1 when it does not match.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check a token against a secret",
		Flags: []cli.Flag{
			secretFlag(),
			&cli.StringFlag{
				Name:     "token",
				Aliases:  []string{"t"},
				Usage:    "encoded token, as submitted by a client",
				Required: true,
			},
			saltLengthFlag(),
		},
		Action: func(c *cli.Context) error {
			secret, err := decodeSecret(c.String("secret"))
			if err != nil {
				return err
			}
			engine, err := csrf.NewEngine(c.Int("salt-length"), nil)
			if err != nil {
				return err
			}
			if !engine.VerifyTokenString(c.String("token"), secret) {
				return cli.Exit("invalid", 1)
			}
			_, err = fmt.Fprintln(c.App.Writer, "valid")
			return err
		},
	}
}

func decodeSecret(s string) ([]byte, error) {
	secret, err := csrf.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret: %w", csrf.ErrInvalidLength)
	}
	return secret, nil
}
