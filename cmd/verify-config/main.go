package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"awslab/verifier"

	"github.com/spf13/cobra"
)

const usage = `
verify-config is used to ensure the required configuration data is present
in the specified configuration file. Specify a file_type of bootstrap or
instance, then specify the configuration file. If there are no errors with the
configuration file then there will be no output.

USAGE: verify-config file_type config_file

`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmd := &cobra.Command{
		Use:           "verify-config <bootstrap|instance> <config_file>",
		Short:         "Check a config file for missing required keys",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				_, err := fmt.Fprint(stdout, usage)
				return err
			}
			return verify(stdout, args[0], args[1])
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stdout, message(err)) //nolint:errcheck
		return 1
	}
	return 0
}

type loadError struct {
	err error
}

func (e loadError) Error() string {
	return fmt.Sprintf("loading config file: %s", e.err)
}

func (e loadError) Unwrap() error {
	return e.err
}

func message(err error) string {
	var kindErr kindError
	var loadErr loadError
	switch {
	case errors.As(err, &kindErr):
		return fmt.Sprintf("Invalid file type %s. Quitting.", kindErr.kind)
	case errors.As(err, &loadErr):
		return fmt.Sprintf("Error loading config file: %s.", loadErr.err)
	}
	return err.Error()
}

type kindError struct {
	kind string
}

func (e kindError) Error() string {
	return fmt.Sprintf("invalid file type %s", e.kind)
}

func (e kindError) Unwrap() error {
	return verifier.ErrUnknownKind
}

func verify(stdout io.Writer, kind string, path string) error {
	if !verifier.KnownKind(kind) {
		return kindError{kind: kind}
	}

	f, err := os.Open(path)
	if err != nil {
		return loadError{err: err}
	}
	defer f.Close()

	missing, err := verifier.Verify(kind, f)
	if err != nil {
		return loadError{err: err}
	}

	for _, key := range missing {
		fmt.Fprintln(stdout, verifier.MissingKeyMessage(kind, key)) //nolint:errcheck
	}
	return nil
}
