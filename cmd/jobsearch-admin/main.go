// Command jobsearch-admin runs maintenance tasks against the job search database and index.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/jobsearch/internal/bootstrap"
	"github.com/yigit/jobsearch/internal/config"
	"github.com/yigit/jobsearch/internal/db"
	"github.com/yigit/jobsearch/internal/pkg/logger"
	"github.com/yigit/jobsearch/internal/search"
)

// environment is what every command needs once configuration is loaded.
type environment struct {
	cfg      *config.Config
	database *db.PostgresDB
	deps     *bootstrap.Dependencies
}

func (e *environment) Close() {
	e.database.Close()
}

// open loads configuration and connects to the database. Search is
// connected only when withSearch is set.
func open(cCtx *cli.Context, withSearch bool) (*environment, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cCtx.String("config"))
	if err != nil {
		return nil, err
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr, false)
	if err != nil {
		return nil, err
	}

	env := &environment{cfg: cfg, database: database}

	var searchClient *search.Client
	if withSearch {
		if searchClient, err = bootstrap.SetupSearch(cCtx.Context, cfg, lgr); err != nil {
			env.Close()
			return nil, err
		}
	}

	env.deps, err = bootstrap.BuildDependencies(cfg, database, nil, searchClient, lgr)
	if err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending SQL migrations",
		Action: func(cCtx *cli.Context) error {
			env, err := open(cCtx, false)
			if err != nil {
				return err
			}
			defer env.Close()

			applied, err := bootstrap.RunMigrations(cCtx.Context, env.cfg, env.database, env.deps.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cCtx.App.Writer, "%d migration(s) applied\n", applied)
			return nil
		},
	}
}

func loadDataCommand() *cli.Command {
	return &cli.Command{
		Name:  "loaddata",
		Usage: "load degrees, spotlights and jobs from a JSON fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "fixture path, defaults to seed.fixture_path"},
		},
		Action: func(cCtx *cli.Context) error {
			env, err := open(cCtx, true)
			if err != nil {
				return err
			}
			defer env.Close()

			stats, err := bootstrap.LoadFixture(cCtx.Context, env.cfg, env.deps, cCtx.String("file"))
			fmt.Fprintf(cCtx.App.Writer, "created %d degree(s), %d spotlight(s), %d organization(s), %d job(s); %d job(s) already present\n",
				stats.Degrees, stats.Spotlights, stats.Organizations, stats.Jobs, stats.JobsExisting)
			return err
		},
	}
}

func createSuperuserCommand() *cli.Command {
	return &cli.Command{
		Name:  "createsuperuser",
		Usage: "create a staff account with full permissions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"JOBSEARCH_SUPERUSER_PASSWORD"}},
		},
		Action: func(cCtx *cli.Context) error {
			env, err := open(cCtx, false)
			if err != nil {
				return err
			}
			defer env.Close()

			user, err := env.deps.AuthService.CreateSuperuser(cCtx.Context, cCtx.String("email"), cCtx.String("password"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cCtx.App.Writer, "superuser %s created with id %d\n", user.Email, user.ID)
			return nil
		},
	}
}

func reindexCommand() *cli.Command {
	return &cli.Command{
		Name:  "reindex",
		Usage: "rebuild the search index from the database",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "batch-size", Value: 500, Usage: "jobs read per database query"},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.Int("batch-size") <= 0 {
				return fmt.Errorf("--batch-size must be positive, got %d", cCtx.Int("batch-size"))
			}
			env, err := open(cCtx, true)
			if err != nil {
				return err
			}
			defer env.Close()

			if env.deps.Search == nil {
				return errors.New("search is disabled in the configuration")
			}
			indexed, err := env.deps.Search.Reindex(cCtx.Context, env.deps.Repos.JobRepository, cCtx.Int("batch-size"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cCtx.App.Writer, "%d job(s) indexed into %s\n", indexed, env.deps.Search.Index())
			return nil
		},
	}
}

func cleanupTokensCommand() *cli.Command {
	return &cli.Command{
		Name:  "cleanup-tokens",
		Usage: "delete expired and revoked refresh tokens",
		Action: func(cCtx *cli.Context) error {
			env, err := open(cCtx, false)
			if err != nil {
				return err
			}
			defer env.Close()

			removed, err := env.deps.AuthService.CleanupExpiredTokens(cCtx.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(cCtx.App.Writer, "%d token(s) removed\n", removed)
			return nil
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "jobsearch-admin",
		Usage: "maintenance commands for the job search API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   bootstrap.DefaultConfigPath,
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"JOBSEARCH_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			loadDataCommand(),
			createSuperuserCommand(),
			reindexCommand(),
			cleanupTokensCommand(),
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
