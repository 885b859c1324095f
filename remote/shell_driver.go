package remote

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"awslab/logging"
	"awslab/resources"
	"awslab/waiter"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

const (
	probeCommand = "ls"

	statusReady       = "ready"
	statusUnreachable = "unreachable"
)

type probeStatus string

func (s probeStatus) Status() string {
	return string(s)
}

type SSHShellDriver struct {
	policy      waiter.Policy
	dialTimeout time.Duration
	logger      *logrus.Entry
}

func NewSSHShellDriver(logDest io.Writer, policy waiter.Policy) *SSHShellDriver {
	logger := logging.New(logDest, "ShellDriver")

	return &SSHShellDriver{policy: policy, dialTimeout: defaultDialTimeout, logger: logger}
}

// WaitReady polls the target until it accepts an SSH session and runs a
// trivial command. An unreadable key fails immediately.
func (d *SSHShellDriver) WaitReady(ctx context.Context, target resources.SSHTarget) error {
	signer, err := LoadSigner(target.KeyPath)
	if err != nil {
		return resources.NewError(resources.KindEnvironment, fmt.Sprintf("loading key %s", target.KeyPath), err)
	}

	d.logger.Infof("waiting for SSH on %s", target.ID())
	_, err = waiter.WaitForStatus(ctx, d.probe(signer, target), waiter.Config{
		Policy:        d.policy,
		Resource:      target,
		DesiredStatus: statusReady,
		Logger:        d.logger,
	})
	if err != nil {
		if _, ok := err.(waiter.TimeoutError); ok {
			return resources.NewError(resources.KindTimeout, fmt.Sprintf("waiting for SSH on %s", target.ID()), err)
		}
		return err
	}

	d.logger.Infof("SSH is ready on %s", target.ID())
	return nil
}

func (d *SSHShellDriver) probe(signer ssh.Signer, target resources.SSHTarget) waiter.StatusFetcher {
	return func(ctx context.Context, _ waiter.StatusResource) (waiter.StatusInfo, error) {
		ctx, cancel := context.WithTimeout(ctx, d.dialTimeout)
		defer cancel()

		client, err := Connect(ctx, target.Host, target.Port, target.User, signer, d.dialTimeout)
		if err != nil {
			d.logger.Debugf("SSH not ready on %s: %s", target.ID(), err)
			return probeStatus(statusUnreachable), nil
		}
		defer client.Close()

		if _, _, err := Exec(ctx, client, probeCommand); err != nil {
			d.logger.Debugf("probe command failed on %s: %s", target.ID(), err)
			return probeStatus(statusUnreachable), nil
		}
		return probeStatus(statusReady), nil
	}
}

// Run executes commands in order over one connection, stopping at the first
// failure.
func (d *SSHShellDriver) Run(ctx context.Context, target resources.SSHTarget, commands []string) error {
	if len(commands) == 0 {
		d.logger.Info("no commands to run")
		return nil
	}

	signer, err := LoadSigner(target.KeyPath)
	if err != nil {
		return resources.NewError(resources.KindEnvironment, fmt.Sprintf("loading key %s", target.KeyPath), err)
	}

	client, err := Connect(ctx, target.Host, target.Port, target.User, signer, d.dialTimeout)
	if err != nil {
		return resources.NewError(resources.KindRemote, fmt.Sprintf("connecting to %s", target.ID()), err)
	}
	defer client.Close()

	for i, command := range commands {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.logger.Infof("running command %d of %d: %s", i+1, len(commands), command)
		stdout, stderr, err := Exec(ctx, client, command)
		logOutput(d.logger, "stdout", stdout)
		logOutput(d.logger, "stderr", stderr)
		if err != nil {
			return resources.NewError(resources.KindRemote, fmt.Sprintf("running command %d (%q)", i+1, command), err)
		}
	}

	d.logger.Infof("ran %d commands on %s", len(commands), target.ID())
	return nil
}

func logOutput(logger *logrus.Entry, stream string, output string) {
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if line != "" {
			logger.WithField("stream", stream).Debug(line)
		}
	}
}
