package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
)

const defaultDialTimeout = 10 * time.Second

var (
	ErrReadKey       = fmt.Errorf("failed to read private key")
	ErrParseKey      = fmt.Errorf("failed to parse private key")
	ErrSSHFailedDial = fmt.Errorf("failed to establish SSH connection")
	ErrSessionInit   = fmt.Errorf("failed to begin SSH session")
	ErrCMDExec       = fmt.Errorf("failed to execute SSH command")
)

// LoadSigner reads a PEM encoded private key from path.
func LoadSigner(path string) (ssh.Signer, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadKey, err)
	}

	signer, err := ssh.ParsePrivateKey(pem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseKey, err)
	}
	return signer, nil
}

// Connect opens an SSH connection to host:port with public key
// authentication. Lab instances are freshly created, so any host key is
// accepted.
func Connect(ctx context.Context, host string, port int, user string, signer ssh.Signer, timeout time.Duration) (*ssh.Client, error) {
	if timeout == 0 {
		timeout = defaultDialTimeout
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSSHFailedDial, err)
	}

	// the handshake has no context of its own
	if deadline, ok := dialCtx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrSSHFailedDial, err)
	}
	_ = conn.SetDeadline(time.Time{})

	return ssh.NewClient(c, chans, reqs), nil
}

// Exec executes a single command, returning any standard out/err received.
// Cancelling ctx closes the client, so it cannot be reused afterwards.
func Exec(ctx context.Context, client *ssh.Client, cmd string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	done := make(chan error, 1)
	go func() {
		done <- run(client, cmd, stdout, stderr)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		// a command that never reports an exit status only returns once the connection is gone
		client.Close()
		<-done
		err = fmt.Errorf("%w: %w", ErrCMDExec, ctx.Err())
	}
	return stdout.String(), stderr.String(), err
}

func run(client *ssh.Client, cmd string, stdout io.Writer, stderr io.Writer) error {
	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionInit, err)
	}
	defer session.Close()

	session.Stdout = stdout
	session.Stderr = stderr

	if err = session.Run(cmd); err != nil {
		return fmt.Errorf("%w: %w", ErrCMDExec, err)
	}
	return nil
}
