package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/bootstrap"
	"github.com/yigit/courseadmin/internal/config"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

const coreKey = "core"

func main() {
	toasts := &toastPrinter{w: os.Stderr}
	if err := newApp(toasts).Run(os.Args); err != nil {
		reportError(os.Stderr, toasts, err)
		os.Exit(1)
	}
}

// reportError prints err unless a toast already told the operator.
func reportError(w io.Writer, toasts *toastPrinter, err error) {
	if toasts.failed() {
		return
	}
	fmt.Fprintln(w, "error:", apperrors.UserMessage(err, err.Error()))
}

func newApp(toasts *toastPrinter) *cli.App {
	return &cli.App{
		Name:  "admin",
		Usage: "administer courses, enrollments and the public site content",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"COURSEADMIN_CONFIG"},
			},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask before deleting"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log backend calls"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}

			logCfg := logger.ConfigFrom(cfg.Logging.Level, "pretty")
			logCfg.Output = c.App.ErrWriter
			if !c.Bool("verbose") {
				logCfg.Level = logger.WarnLevel
			}
			lgr := logger.Configure(logCfg)

			if toasts.w == nil {
				toasts.w = c.App.ErrWriter
			}
			core, err := bootstrap.BuildCore(cfg, toasts, lgr)
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{coreKey: core}
			return nil
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			dashboardCommand(),
			courseCommands(),
			instructorCommands(),
			accommodationCommands(),
			testimonialCommands(),
			galleryCommands(),
			enrollmentCommands(),
			enquiryCommands(),
		},
	}
}

func coreFrom(c *cli.Context) *bootstrap.Core {
	core, _ := c.App.Metadata[coreKey].(*bootstrap.Core)
	return core
}

// requireLogin fails fast with the same error the console returns.
func requireLogin(c *cli.Context) error {
	core := coreFrom(c)
	if core == nil {
		return errors.New("configuration not loaded")
	}
	return core.Services.Auth.RequireSession()
}
