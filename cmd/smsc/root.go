package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	smsc "github.com/brandshopru/smsc-go"
)

// gateway is the part of *smsc.Client the commands use.
type gateway interface {
	SendSMS(ctx context.Context, phones, message string, opts ...smsc.SendOption) (*smsc.Response, error)
	GetSMSCost(ctx context.Context, phones, message string, opts ...smsc.SendOption) (*smsc.Response, error)
	GetStatus(ctx context.Context, id, phone string, all int) (*smsc.Response, error)
	GetBalance(ctx context.Context) (*smsc.Response, error)
	GetHistory(ctx context.Context, q smsc.HistoryQuery) (*smsc.Response, error)
	GetStatistics(ctx context.Context, start, end time.Time) (*smsc.Response, error)
	SendSMSMail(ctx context.Context, phones, message string, opts ...smsc.SendOption) error
	WaitForStatus(ctx context.Context, id, phone string, opts ...smsc.WaitOption) (*smsc.StatusResult, error)
	Close() error
}

// clientFactory builds the gateway client from the loaded configuration.
type clientFactory func(cfg Config, logger smsc.Logger) (gateway, error)

func defaultClientFactory(cfg Config, logger smsc.Logger) (gateway, error) {
	opts := append(cfg.Options(), smsc.WithLogger(logger))
	client, err := smsc.New(cfg.Login, cfg.Password, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// app holds the state shared by all commands.
type app struct {
	configFile string
	envFile    string
	verbose    bool

	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
	logger    log.Interface

	client gateway
}

func newApp(stdout, stderr io.Writer, factory clientFactory) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		newClient: factory,
		logger:    log.Log,
	}
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smsc",
		Short:         "Send SMS and query the SMSC.RU gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.client != nil {
				return a.client.Close()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default ./smsc.yaml or ~/.config/smsc/smsc.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "file with SMSC_* variables")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every gateway attempt")

	cmd.AddCommand(
		a.sendCommand(),
		a.costCommand(),
		a.statusCommand(),
		a.waitCommand(),
		a.balanceCommand(),
		a.historyCommand(),
		a.statsCommand(),
		a.mailCommand(),
	)
	return cmd
}

func (a *app) setup() error {
	log.SetHandler(cli.New(a.stderr))
	if a.verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if err := loadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := readConfig(viper.New(), a.configFile)
	if err != nil {
		return err
	}
	a.logger.Debugf("smsc: using config %s", cfg)

	client, err := a.newClient(cfg, a.logger)
	if err != nil {
		return fmt.Errorf("unable to create client: %w", err)
	}
	a.client = client
	return nil
}

// printResponse writes the gateway answer as indented JSON, or returns the
// vendor error when the answer is not OK.
func (a *app) printResponse(resp *smsc.Response) error {
	if err := resp.Err(); err != nil {
		return err
	}
	return a.printJSON(resp.Content())
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
