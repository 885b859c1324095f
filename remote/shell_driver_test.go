package remote_test

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"time"

	"awslab/remote"
	"awslab/resources"
	"awslab/waiter"

	"golang.org/x/crypto/ssh"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SSHShellDriver", func() {
	var (
		ctx     context.Context
		server  *sshServer
		keyPath string
		target  resources.SSHTarget
		d       *remote.SSHShellDriver
	)

	BeforeEach(func() {
		ctx = context.Background()
		var publicKey ssh.PublicKey
		keyPath, publicKey = newUserKey(GinkgoT().TempDir())
		server = newSSHServer(publicKey)
		DeferCleanup(server.Close)

		target = resources.SSHTarget{User: "ubuntu", Host: "127.0.0.1", Port: server.Port(), KeyPath: keyPath}
		d = remote.NewSSHShellDriver(GinkgoWriter, waiter.Policy{
			PollInterval: 10 * time.Millisecond,
			PollTimeout:  5 * time.Second,
			MaxAttempts:  3,
		})
	})

	Describe("WaitReady", func() {
		It("returns once the probe command succeeds", func() {
			Expect(d.WaitReady(ctx, target)).To(Succeed())
			Expect(server.Commands()).To(Equal([]string{"ls"}))
		})

		It("keeps polling while the probe command fails", func() {
			server.FailCommand("ls", 2)

			err := d.WaitReady(ctx, target)
			Expect(resources.IsKind(err, resources.KindTimeout)).To(BeTrue())
			Expect(server.Commands()).To(Equal([]string{"ls", "ls", "ls"}))
		})

		It("times out when nothing is listening", func() {
			listener, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).ToNot(HaveOccurred())
			target.Port = listener.Addr().(*net.TCPAddr).Port
			listener.Close()

			err = d.WaitReady(ctx, target)
			Expect(err).To(HaveOccurred())
			Expect(resources.IsKind(err, resources.KindTimeout)).To(BeTrue())

			var timeoutErr waiter.TimeoutError
			Expect(errors.As(err, &timeoutErr)).To(BeTrue())
			Expect(timeoutErr.Attempts).To(Equal(3))
		})

		It("times out when the key is not authorized", func() {
			otherKeyPath, _ := newUserKey(GinkgoT().TempDir())
			target.KeyPath = otherKeyPath

			err := d.WaitReady(ctx, target)
			Expect(resources.IsKind(err, resources.KindTimeout)).To(BeTrue())
			Expect(server.Commands()).To(BeEmpty())
		})

		It("gives up on a probe command that never finishes once the poll timeout elapses", func() {
			server.HangCommand("ls")
			d = remote.NewSSHShellDriver(GinkgoWriter, waiter.Policy{
				PollInterval: 10 * time.Millisecond,
				PollTimeout:  300 * time.Millisecond,
			})

			start := time.Now()
			err := d.WaitReady(ctx, target)
			Expect(time.Since(start)).To(BeNumerically("<", 3*time.Second))
			Expect(resources.IsKind(err, resources.KindTimeout)).To(BeTrue())
			Expect(server.Commands()).To(ContainElement("ls"))
		})

		It("fails immediately when the key cannot be parsed", func() {
			badKey := filepath.Join(GinkgoT().TempDir(), "bad.pem")
			Expect(os.WriteFile(badKey, []byte("not a key"), 0600)).To(Succeed())
			target.KeyPath = badKey

			err := d.WaitReady(ctx, target)
			Expect(resources.IsKind(err, resources.KindEnvironment)).To(BeTrue())
			Expect(errors.Is(err, remote.ErrParseKey)).To(BeTrue())
		})

		It("fails immediately when the key file is missing", func() {
			target.KeyPath = filepath.Join(GinkgoT().TempDir(), "missing.pem")

			err := d.WaitReady(ctx, target)
			Expect(errors.Is(err, remote.ErrReadKey)).To(BeTrue())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})

	Describe("Run", func() {
		It("runs every command in order", func() {
			commands := []string{"sudo apt-get update", "echo done"}
			Expect(d.Run(ctx, target, commands)).To(Succeed())
			Expect(server.Commands()).To(Equal(commands))
		})

		It("stops at the first failing command", func() {
			server.FailCommand("false", 1)

			err := d.Run(ctx, target, []string{"echo one", "false", "echo three"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`running command 2 ("false")`))
			Expect(resources.IsKind(err, resources.KindRemote)).To(BeTrue())
			Expect(errors.Is(err, remote.ErrCMDExec)).To(BeTrue())

			var exitErr *ssh.ExitError
			Expect(errors.As(err, &exitErr)).To(BeTrue())
			Expect(exitErr.ExitStatus()).To(Equal(1))

			Expect(server.Commands()).To(Equal([]string{"echo one", "false"}))
		})

		It("abandons a hung command when the context is cancelled", func() {
			server.HangCommand("sleep infinity")
			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			time.AfterFunc(200*time.Millisecond, cancel)

			done := make(chan error, 1)
			go func() {
				done <- d.Run(runCtx, target, []string{"echo one", "sleep infinity", "echo three"})
			}()

			var err error
			Eventually(done, 3*time.Second).Should(Receive(&err))
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(resources.IsKind(err, resources.KindRemote)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`running command 2 ("sleep infinity")`))
			Expect(server.Commands()).To(Equal([]string{"echo one", "sleep infinity"}))
		})

		It("does nothing when there are no commands", func() {
			target.Port = 1
			Expect(d.Run(ctx, target, nil)).To(Succeed())
		})

		It("returns a remote error when the connection fails", func() {
			server.Close()

			err := d.Run(ctx, target, []string{"echo one"})
			Expect(resources.IsKind(err, resources.KindRemote)).To(BeTrue())
			Expect(errors.Is(err, remote.ErrSSHFailedDial)).To(BeTrue())
		})
	})
})
