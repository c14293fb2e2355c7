package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "console",
		Usage: "serve the course administration console",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"COURSEADMIN_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			srv, err := server.NewServer(c.String("config"))
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Console stopped with an error")
		os.Exit(1)
	}
	logger.Info().Msg("Console finished gracefully.")
}
