package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bearodactyl/apiodactyl/cmd/app/commands"
	"github.com/bearodactyl/apiodactyl/internal/app"
	"github.com/bearodactyl/apiodactyl/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key",
			Usage: "Create a new API key credential",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Custom plaintext key (omit to generate a random one)",
				},
				&cli.BoolFlag{
					Name:    "admin",
					Aliases: []string{"a"},
					Value:   false,
					Usage:   "Grant the admin capability",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				apiKeyUseCase, err := container.APIKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateKey(
					ctx,
					apiKeyUseCase,
					container.KeyService(),
					container.Logger(),
					cmd.String("key"),
					cmd.Bool("admin"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "revoke-key",
			Usage: "Revoke an API key credential",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Plaintext key to revoke",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				apiKeyUseCase, err := container.APIKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunRevokeKey(
					ctx,
					apiKeyUseCase,
					container.Logger(),
					cmd.String("key"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "list-keys",
			Usage: "List API key credentials",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "admin-only",
					Aliases: []string{"a"},
					Value:   false,
					Usage:   "Only show credentials with the admin capability",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				apiKeyUseCase, err := container.APIKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunListKeys(
					ctx,
					apiKeyUseCase,
					container.Logger(),
					cmd.Bool("admin-only"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
