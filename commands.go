package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"awslab/config"
	"awslab/driverset"
	"awslab/lab"
	"awslab/logging"

	"github.com/spf13/cobra"
)

// flag names
const (
	flagBootstrapConfig = "bootstrap-config"
	flagLogLevel        = "log-level"
)

// environment variable names
const (
	envBootstrapConfig = "AWSLAB_BOOTSTRAP_CONFIG"
	envLogLevel        = "AWSLAB_LOG_LEVEL"
)

type configLoadError struct {
	Path string
	Err  error
}

func (e *configLoadError) Error() string {
	return fmt.Sprintf("loading config file %s: %s", e.Path, e.Err)
}

func (e *configLoadError) Unwrap() error {
	return e.Err
}

type instanceAction func(ctx context.Context, l *lab.Lab, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error

type app struct {
	bootstrapPath string
	logLevel      string
	stdout        io.Writer
	logDest       io.Writer
}

func newRootCommand(stdout io.Writer, logDest io.Writer) *cobra.Command {
	a := &app{stdout: stdout, logDest: logDest}

	root := &cobra.Command{
		Use:   "awslab <command> [config_file]",
		Short: "Build and manage single-instance EC2 labs",
		Long: `awslab creates the security group and key pair a lab needs, launches or
restarts the instance described by a config file, and runs its bootstrap
commands over SSH the first time it comes up.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed(flagBootstrapConfig) {
				if envPath := os.Getenv(envBootstrapConfig); envPath != "" {
					a.bootstrapPath = envPath
				}
			}
			if !cmd.Flags().Changed(flagLogLevel) {
				if envLevel := os.Getenv(envLogLevel); envLevel != "" {
					a.logLevel = envLevel
				}
			}
			return logging.SetLevel(a.logLevel)
		},
		// unknown commands get the README
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(a.stdout, readme)
			return err
		},
	}

	root.PersistentFlags().StringVar(&a.bootstrapPath, flagBootstrapConfig, config.DefaultBootstrapPath, "Path to the bootstrap config file (env: "+envBootstrapConfig+")")
	root.PersistentFlags().StringVar(&a.logLevel, flagLogLevel, logging.DefaultLevel.String(), "Log level (env: "+envLogLevel+")")

	root.AddCommand(
		a.bootstrapCommand(),
		a.instanceCommand("start", "Create or start the instance and run its first-run commands", a.start),
		a.instanceCommand("stop", "Stop the instance", a.stop),
		a.instanceCommand("terminate", "Terminate the instance and reset its config", a.terminate),
		a.instanceCommand("status", "Print the instance status as YAML", a.status),
	)
	return root
}

func (a *app) bootstrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the security group and key pair",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, ds, err := a.setup()
			if err != nil {
				return err
			}
			return l.Bootstrap(cmd.Context(), ds)
		},
	}
}

func (a *app) instanceCommand(use string, short string, action instanceAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <config_file>",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return config.ErrMissingConfig
			}

			l, ds, err := a.setup()
			if err != nil {
				return err
			}

			instanceConfig, err := config.LoadInstance(args[0])
			if err != nil {
				return &configLoadError{Path: args[0], Err: err}
			}

			return action(cmd.Context(), l, ds, instanceConfig, config.FileStore{Path: args[0]})
		},
	}
}

func (a *app) setup() (*lab.Lab, driverset.RegionDriverSet, error) {
	bootstrap, err := config.LoadBootstrap(a.bootstrapPath)
	if err != nil {
		return nil, nil, &configLoadError{Path: a.bootstrapPath, Err: err}
	}

	ds, err := driverset.NewRegionDriverSet(a.logDest, bootstrap)
	if err != nil {
		return nil, nil, err
	}

	return lab.New(a.logDest, bootstrap), ds, nil
}

func (a *app) start(ctx context.Context, l *lab.Lab, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error {
	return l.Start(ctx, ds, instanceConfig, store)
}

func (a *app) stop(ctx context.Context, l *lab.Lab, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error {
	return l.Stop(ctx, ds, instanceConfig, store)
}

func (a *app) terminate(ctx context.Context, l *lab.Lab, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error {
	return l.Terminate(ctx, ds, instanceConfig, store)
}

func (a *app) status(ctx context.Context, l *lab.Lab, ds driverset.RegionDriverSet, instanceConfig *config.Instance, _ config.Store) error {
	return l.Status(ctx, ds, instanceConfig, a.stdout)
}
