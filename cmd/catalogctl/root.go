package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"industrial-catalog/internal/config"
	"industrial-catalog/internal/logging"
	"industrial-catalog/internal/store"
)

type globalOptions struct {
	source   string
	mongoURI string
	mongoDB  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	cfg := config.LoadConfig()
	opts := &globalOptions{
		source:   cfg.DataSource,
		mongoURI: cfg.MongoURI,
		mongoDB:  cfg.MongoDB,
		logLevel: "warn",
	}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Operate the industrial product catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.source, "source", opts.source, "data source: fixture or mongo")
	root.PersistentFlags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB connection string")
	root.PersistentFlags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level")

	root.AddCommand(
		newSeedCmd(opts),
		newListCmd(opts, cfg.PageSize),
		newExportCmd(opts),
	)
	return root
}

// config arma la configuración efectiva con los flags aplicados
func (o *globalOptions) config() (*config.Config, error) {
	cfg := config.LoadConfig()
	cfg.DataSource = o.source
	cfg.MongoURI = o.mongoURI
	cfg.MongoDB = o.mongoDB
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *globalOptions) logger() *zap.Logger {
	logger, err := logging.New(o.logLevel)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (o *globalOptions) openStore(ctx context.Context) (*store.Store, *zap.Logger, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, nil, err
	}
	logger := o.logger()
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return st, logger, nil
}
