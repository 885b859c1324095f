package resources

import (
	"context"
	"fmt"
)

type SSHTarget struct {
	User    string
	Host    string
	Port    int
	KeyPath string
}

func (t SSHTarget) ID() string {
	return fmt.Sprintf("%s@%s:%d", t.User, t.Host, t.Port)
}

//counterfeiter:generate . ShellDriver
type ShellDriver interface {
	WaitReady(ctx context.Context, target SSHTarget) error
	Run(ctx context.Context, target SSHTarget, commands []string) error
}
