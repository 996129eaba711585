package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/jamlist/catalog"
	"github.com/xeptore/jamlist/config"
	"github.com/xeptore/jamlist/constant"
	"github.com/xeptore/jamlist/log"
	"github.com/xeptore/jamlist/server"
)

const (
	flagConfigFilePath = "config"
	flagAddr           = "addr"
)

func main() {
	logger := log.NewPretty(os.Stdout).Level(zerolog.TraceLevel)
	if err := godotenv.Load(); nil != err {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Msg(".env file was not found")
		} else {
			logger.Fatal().Err(err).Msg("Failed to load .env file")
		}
	}

	//nolint:exhaustruct
	app := &cli.App{
		Name:     constant.Name,
		Version:  constant.Version,
		Compiled: constant.CompileTime,
		Suggest:  true,
		Usage:    "Genre song list proxy for the Jamendo catalog",
		Commands: []*cli.Command{
			//nolint:exhaustruct
			{
				Name:    "serve",
				Aliases: []string{"s"},
				Usage:   "Run the HTTP server",
				Action:  serve,
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:     flagConfigFilePath,
						Aliases:  []string{"c"},
						Usage:    "Config file path",
						Required: false,
					},
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:     flagAddr,
						Aliases:  []string{"a"},
						Usage:    "Listen address, overrides the config file",
						EnvVars:  []string{"ADDR"},
						Required: false,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Application was canceled")
			return
		}
		if flawErr := new(flaw.Flaw); errors.As(err, &flawErr) {
			logger.Fatal().Func(log.Flaw(flawErr)).Msg("Application exited with flaw")
			return
		}
		logger.Fatal().Err(err).Msg("Application exited with error")
	}
}

func loadConfig(cliCtx *cli.Context, logger zerolog.Logger) (*config.Config, error) {
	cfgFilePath := cliCtx.String(flagConfigFilePath)
	cfgEnv := os.Getenv("CONFIG")

	var cfg *config.Config
	switch {
	case cfgFilePath != "" && cfgEnv != "":
		return nil, errors.New("config file path and config environment variable are both set. specify only one")
	case cfgFilePath != "":
		logger.Debug().Str("config_file_path", cfgFilePath).Msg("Loading config from file")
		c, err := config.FromFile(cfgFilePath)
		if nil != err {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}
		cfg = c
	case cfgEnv != "":
		logger.Debug().Msg("Loading config from environment variable")
		c, err := config.FromString(cfgEnv)
		if nil != err {
			return nil, fmt.Errorf("failed to load config from environment variable: %v", err)
		}
		cfg = c
	default:
		logger.Debug().Msg("No config was specified, using defaults")
		c := config.Default()
		cfg = &c
	}

	if addr := cliCtx.String(flagAddr); addr != "" {
		cfg.Addr = addr
	}
	return cfg, nil
}

func serve(cliCtx *cli.Context) error {
	ctx, cancel := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cliCtx, log.NewPretty(os.Stdout))
	if nil != err {
		return err
	}

	logger, err := log.New(cfg.LogFormat, os.Stdout)
	if nil != err {
		return err
	}

	if os.Getenv(config.CatalogCredentialEnv) == "" {
		logger.Warn().Str("env", config.CatalogCredentialEnv).Msg("Catalog client ID is not set. Upstream requests will most likely be rejected")
	}

	gin.SetMode(gin.ReleaseMode)
	client := catalog.NewClient(
		cfg.Catalog.BaseURL,
		catalog.WithLimit(cfg.Catalog.Limit),
		catalog.WithAudioFormat(cfg.Catalog.AudioFormat),
	)
	srv := server.New(cfg, client, logger.With().Str("module", "server").Logger())

	if err := srv.Run(ctx); nil != err {
		return err
	}
	logger.Info().Msg("Server stopped")
	return nil
}
