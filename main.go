package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"awslab/config"

	"github.com/joho/godotenv"
)

//go:embed README.md
var readme string

func main() {
	// a missing .env is fine, a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %s\n", err) //nolint:errcheck
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// restore default handling after the first signal so a second one kills the process
	context.AfterFunc(ctx, stop)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	sharedWriter := &logWriter{
		writer: stderr,
	}

	cmd := newRootCommand(stdout, sharedWriter)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, message(err)) //nolint:errcheck
		return 1
	}
	return 0
}

// message renders the errors users are expected to act on in the tool's own words.
func message(err error) string {
	var loadErr *configLoadError
	switch {
	case errors.Is(err, config.ErrMissingConfig):
		return "This command requires a configuration file."
	case errors.As(err, &loadErr):
		return fmt.Sprintf("Error loading config file: %s.", loadErr.Err)
	}
	return err.Error()
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
