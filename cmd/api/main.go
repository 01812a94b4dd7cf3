package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/jobsearch/internal/bootstrap"
	"github.com/yigit/jobsearch/internal/pkg/logger"
	"github.com/yigit/jobsearch/internal/server"
)

// @title Job Search API
// @version 1.0
// @description API for browsing, posting and searching job listings
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@jobsearch.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, sent as "Bearer <token>"

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description API token, sent as "Token <key>"

func main() {
	app := &cli.App{
		Name:  "jobsearch-api",
		Usage: "serve the job search HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   bootstrap.DefaultConfigPath,
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"JOBSEARCH_CONFIG"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			srv, err := server.NewServer(cCtx.String("config"))
			if err != nil {
				logger.Error().Err(err).Msg("Failed to initialize server")
				return err
			}
			if err := srv.Run(); err != nil {
				logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
				return err
			}
			logger.Info().Msg("Application finished gracefully.")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
