package lab_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"awslab/config"
	"awslab/driverset/driversetfakes"
	"awslab/lab"
	"awslab/resources"
	"awslab/resources/resourcesfakes"
	"awslab/test_helpers"

	"github.com/onsi/gomega/gbytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type failingStore struct{}

func (failingStore) Save(*config.Instance) error {
	return errors.New("disk full")
}

var _ = Describe("Lab", func() {
	const instanceJSON = `{
  "ami": "ami-12345678",
  "type": "t2.micro",
  "ssh_user": "ubuntu",
  "description": "lab box",
  "rules": [["tcp", 80, 80, "0.0.0.0/0"], ["tcp", 443, 443, "0.0.0.0/0"]],
  "commands": ["sudo apt-get update", "echo done"],
  "owner": "infra"
}`

	var (
		ctx        context.Context
		logs       *gbytes.Buffer
		bootstrap  config.Bootstrap
		l          *lab.Lab
		configPath string
		store      config.FileStore

		fakeDs        *driversetfakes.FakeRegionDriverSet
		fakeGroups    *resourcesfakes.FakeSecurityGroupDriver
		fakeKeyPairs  *resourcesfakes.FakeKeyPairDriver
		fakeInstances *resourcesfakes.FakeInstanceDriver
		fakeShell     *resourcesfakes.FakeShellDriver

		group   resources.SecurityGroup
		keyPair resources.KeyPair
		running resources.Instance
	)

	loadConfig := func() *config.Instance {
		c, err := config.LoadInstance(configPath)
		Expect(err).ToNot(HaveOccurred())
		return c
	}

	writeConfig := func(body string) {
		Expect(os.WriteFile(configPath, []byte(body), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		logs = gbytes.NewBuffer()
		bootstrap = test_helpers.BootstrapConfig("/home/user/.ssh")
		l = lab.New(logs, bootstrap)

		configPath = filepath.Join(GinkgoT().TempDir(), "instance.cfg")
		store = config.FileStore{Path: configPath}
		writeConfig(instanceJSON)

		group = resources.SecurityGroup{ID: "sg-123", Name: "lab-group"}
		keyPair = resources.KeyPair{Name: "lab-key", PemPath: "/home/user/.ssh/lab-key.pem"}
		running = resources.Instance{InstanceID: "i-123", State: resources.InstanceRunning, PublicDNS: "ec2.example.com"}

		fakeGroups = &resourcesfakes.FakeSecurityGroupDriver{}
		fakeGroups.EnsureReturns(group, nil)
		fakeKeyPairs = &resourcesfakes.FakeKeyPairDriver{}
		fakeKeyPairs.EnsureReturns(keyPair, nil)
		fakeInstances = &resourcesfakes.FakeInstanceDriver{}
		fakeInstances.LocateReturns(running, nil)
		fakeShell = &resourcesfakes.FakeShellDriver{}

		fakeDs = &driversetfakes.FakeRegionDriverSet{}
		fakeDs.SecurityGroupDriverReturns(fakeGroups)
		fakeDs.KeyPairDriverReturns(fakeKeyPairs)
		fakeDs.InstanceDriverReturns(fakeInstances)
		fakeDs.ShellDriverReturns(fakeShell)
	})

	Describe("Bootstrap", func() {
		It("ensures the security group and key pair", func() {
			Expect(l.Bootstrap(ctx, fakeDs)).To(Succeed())

			Expect(fakeGroups.EnsureCallCount()).To(Equal(1))
			_, name := fakeGroups.EnsureArgsForCall(0)
			Expect(name).To(Equal("lab-group"))

			Expect(fakeKeyPairs.EnsureCallCount()).To(Equal(1))
			_, keyName, dir := fakeKeyPairs.EnsureArgsForCall(0)
			Expect(keyName).To(Equal("lab-key"))
			Expect(dir).To(Equal("/home/user/.ssh"))
		})

		It("returns the security group error without touching the key pair", func() {
			fakeGroups.EnsureReturns(resources.SecurityGroup{}, errors.New("denied"))

			err := l.Bootstrap(ctx, fakeDs)
			Expect(err).To(MatchError("ensuring security group: denied"))
			Expect(fakeKeyPairs.EnsureCallCount()).To(BeZero())
		})

		It("returns the key pair error", func() {
			fakeKeyPairs.EnsureReturns(resources.KeyPair{}, resources.NewError(resources.KindEnvironment, "checking ssh_path", errors.New("no such directory")))

			err := l.Bootstrap(ctx, fakeDs)
			Expect(err).To(MatchError("ensuring key pair: checking ssh_path: no such directory"))
			Expect(resources.IsKind(err, resources.KindEnvironment)).To(BeTrue())
		})
	})

	Describe("Start", func() {
		It("launches the instance, applies the rules and runs the commands once", func() {
			instanceConfig := loadConfig()
			Expect(l.Start(ctx, fakeDs, instanceConfig, store)).To(Succeed())

			_, driverConfig := fakeInstances.LocateArgsForCall(0)
			Expect(driverConfig).To(Equal(resources.InstanceDriverConfig{
				AMI:               "ami-12345678",
				InstanceType:      "t2.micro",
				KeyName:           "lab-key",
				SecurityGroupName: "lab-group",
				Description:       "lab box",
			}))
			Expect(fakeInstances.StartCallCount()).To(BeZero())

			Expect(fakeGroups.AddRulesCallCount()).To(Equal(1))
			_, ruleGroup, rules := fakeGroups.AddRulesArgsForCall(0)
			Expect(ruleGroup).To(Equal(group))
			Expect(rules).To(Equal([]resources.Rule{
				{Protocol: "tcp", FromPort: 80, ToPort: 80, CIDR: "0.0.0.0/0"},
				{Protocol: "tcp", FromPort: 443, ToPort: 443, CIDR: "0.0.0.0/0"},
			}))

			expectedTarget := resources.SSHTarget{User: "ubuntu", Host: "ec2.example.com", Port: 22, KeyPath: "/home/user/.ssh/lab-key.pem"}
			_, readyTarget := fakeShell.WaitReadyArgsForCall(0)
			Expect(readyTarget).To(Equal(expectedTarget))

			Expect(fakeShell.RunCallCount()).To(Equal(1))
			_, runTarget, commands := fakeShell.RunArgsForCall(0)
			Expect(runTarget).To(Equal(expectedTarget))
			Expect(commands).To(Equal([]string{"sudo apt-get update", "echo done"}))

			saved := loadConfig()
			Expect(saved.ID).To(Equal("i-123"))
			Expect(saved.PublicDNS).To(Equal("ec2.example.com"))
			Expect(saved.IsFirstRun()).To(BeFalse())
			Expect(saved.HasKey("owner")).To(BeTrue())

			By("starting again with the saved config")
			Expect(l.Start(ctx, fakeDs, saved, store)).To(Succeed())
			Expect(fakeShell.RunCallCount()).To(Equal(1))
			Expect(fakeShell.WaitReadyCallCount()).To(Equal(2))
			_, driverConfig = fakeInstances.LocateArgsForCall(1)
			Expect(driverConfig.InstanceID).To(Equal("i-123"))
			Expect(logs).To(gbytes.Say(`no commands executed`))
		})

		It("marks the first run as claimed before the commands run", func() {
			fakeShell.RunStub = func(context.Context, resources.SSHTarget, []string) error {
				Expect(loadConfig().IsFirstRun()).To(BeFalse())
				return errors.New("command failed")
			}

			err := l.Start(ctx, fakeDs, loadConfig(), store)
			Expect(err).To(MatchError("running bootstrap commands: command failed"))
			Expect(loadConfig().IsFirstRun()).To(BeFalse())
		})

		It("starts a stopped instance", func() {
			stopped := resources.Instance{InstanceID: "i-123", State: resources.InstanceStopped}
			fakeInstances.LocateReturns(stopped, nil)
			fakeInstances.StartReturns(running, nil)

			Expect(l.Start(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeInstances.StartCallCount()).To(Equal(1))
			_, started := fakeInstances.StartArgsForCall(0)
			Expect(started).To(Equal(stopped))
			Expect(loadConfig().PublicDNS).To(Equal("ec2.example.com"))
		})

		It("waits for a stopping instance to stop before starting it", func() {
			stopping := resources.Instance{InstanceID: "i-123", State: resources.InstanceStopping}
			stopped := resources.Instance{InstanceID: "i-123", State: resources.InstanceStopped}
			fakeInstances.LocateReturns(stopping, nil)
			fakeInstances.StopReturns(stopped, nil)
			fakeInstances.StartReturns(running, nil)

			Expect(l.Start(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeInstances.StopCallCount()).To(Equal(1))
			_, started := fakeInstances.StartArgsForCall(0)
			Expect(started).To(Equal(stopped))
		})

		It("carries on when some rules cannot be applied", func() {
			fakeGroups.AddRulesReturns(errors.New("rule limit exceeded"))

			Expect(l.Start(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeShell.RunCallCount()).To(Equal(1))
			Expect(logs).To(gbytes.Say("some security group rules were not applied"))
		})

		It("keeps the first run pending when SSH never becomes ready", func() {
			fakeShell.WaitReadyReturns(resources.NewError(resources.KindTimeout, "waiting for SSH on ubuntu@ec2.example.com:22", errors.New("gave up")))

			err := l.Start(ctx, fakeDs, loadConfig(), store)
			Expect(resources.IsKind(err, resources.KindTimeout)).To(BeTrue())
			Expect(fakeShell.RunCallCount()).To(BeZero())

			saved := loadConfig()
			Expect(saved.ID).To(Equal("i-123"))
			Expect(saved.IsFirstRun()).To(BeTrue())
		})

		It("returns a config error when the config cannot be saved", func() {
			err := l.Start(ctx, fakeDs, loadConfig(), failingStore{})
			Expect(err).To(MatchError("saving instance config: disk full"))
			Expect(resources.IsKind(err, resources.KindConfig)).To(BeTrue())
			Expect(fakeShell.WaitReadyCallCount()).To(BeZero())
		})

		It("returns the locate error", func() {
			fakeInstances.LocateReturns(resources.Instance{}, errors.New("insufficient capacity"))

			err := l.Start(ctx, fakeDs, loadConfig(), store)
			Expect(err).To(MatchError("locating instance: insufficient capacity"))
			Expect(loadConfig().ID).To(BeEmpty())
		})
	})

	Describe("Stop", func() {
		BeforeEach(func() {
			writeConfig(`{"ami": "ami-12345678", "id": "i-123", "public_dns": "ec2.example.com", "first_run": false}`)
			fakeInstances.StatusReturns(running, nil)
		})

		It("forgets the public DNS name and stops the instance", func() {
			Expect(l.Stop(ctx, fakeDs, loadConfig(), store)).To(Succeed())

			_, described := fakeInstances.StatusArgsForCall(0)
			Expect(described.InstanceID).To(Equal("i-123"))
			Expect(fakeInstances.StopCallCount()).To(Equal(1))
			_, stopped := fakeInstances.StopArgsForCall(0)
			Expect(stopped).To(Equal(running))
			Expect(fakeInstances.LocateCallCount()).To(BeZero())

			contents, err := os.ReadFile(configPath)
			Expect(err).ToNot(HaveOccurred())
			Expect(contents).To(MatchJSON(`{"ami": "ami-12345678", "id": "i-123", "first_run": false}`))
		})

		It("does not stop an instance that is already stopped", func() {
			fakeInstances.StatusReturns(resources.Instance{InstanceID: "i-123", State: resources.InstanceStopped}, nil)

			Expect(l.Stop(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeInstances.StopCallCount()).To(BeZero())
		})

		It("returns an error when the instance cannot be found", func() {
			fakeInstances.StatusReturns(resources.Instance{}, resources.NewError(resources.KindCloud, "describing instance i-123", resources.ErrInstanceNotFound))

			err := l.Stop(ctx, fakeDs, loadConfig(), store)
			Expect(errors.Is(err, resources.ErrInstanceNotFound)).To(BeTrue())
			Expect(loadConfig().PublicDNS).To(Equal("ec2.example.com"))
		})

		It("logs a critical error and does nothing without an id", func() {
			writeConfig(instanceJSON)

			Expect(l.Stop(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeDs.Invocations()).To(BeEmpty())
			Expect(logs).To(gbytes.Say(`severity=critical`))
		})
	})

	Describe("Terminate", func() {
		BeforeEach(func() {
			writeConfig(`{"id": "i-123", "public_dns": "ec2.example.com", "first_run": false, "owner": "infra"}`)
			fakeInstances.StatusReturns(running, nil)
		})

		It("resets the config and terminates the instance", func() {
			Expect(l.Terminate(ctx, fakeDs, loadConfig(), store)).To(Succeed())

			Expect(fakeInstances.TerminateCallCount()).To(Equal(1))
			_, terminated := fakeInstances.TerminateArgsForCall(0)
			Expect(terminated).To(Equal(running))

			contents, err := os.ReadFile(configPath)
			Expect(err).ToNot(HaveOccurred())
			Expect(contents).To(MatchJSON(`{"first_run": true, "owner": "infra"}`))
		})

		It("resets the config when the instance is already gone", func() {
			fakeInstances.StatusReturns(resources.Instance{}, resources.NewError(resources.KindCloud, "describing instance i-123", resources.ErrInstanceNotFound))

			Expect(l.Terminate(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeInstances.TerminateCallCount()).To(BeZero())
			Expect(loadConfig().ID).To(BeEmpty())
		})

		It("leaves the config alone when the instance cannot be described", func() {
			fakeInstances.StatusReturns(resources.Instance{}, errors.New("throttled"))

			err := l.Terminate(ctx, fakeDs, loadConfig(), store)
			Expect(err).To(MatchError("locating instance: throttled"))
			Expect(loadConfig().ID).To(Equal("i-123"))
		})

		It("returns the terminate error", func() {
			fakeInstances.TerminateReturns(errors.New("denied"))

			err := l.Terminate(ctx, fakeDs, loadConfig(), store)
			Expect(err).To(MatchError("terminating instance: denied"))
		})

		It("logs a critical error and does nothing without an id", func() {
			writeConfig(instanceJSON)

			Expect(l.Terminate(ctx, fakeDs, loadConfig(), store)).To(Succeed())
			Expect(fakeDs.Invocations()).To(BeEmpty())
			Expect(logs).To(gbytes.Say(`cannot terminate: invalid instance id`))
		})
	})

	Describe("Status", func() {
		It("writes the instance status as YAML", func() {
			writeConfig(`{"ami": "ami-12345678", "type": "t2.micro", "id": "i-123"}`)
			fakeInstances.StatusReturns(running, nil)

			out := &bytes.Buffer{}
			Expect(l.Status(ctx, fakeDs, loadConfig(), out)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("id: i-123"))
			Expect(out.String()).To(ContainSubstring("state: running"))
			Expect(out.String()).To(ContainSubstring("region: us-east-1"))
		})

		It("returns a missing id error without an id", func() {
			err := l.Status(ctx, fakeDs, loadConfig(), &bytes.Buffer{})
			Expect(resources.IsKind(err, resources.KindMissingID)).To(BeTrue())
			Expect(fakeDs.Invocations()).To(BeEmpty())
		})

		It("returns the describe error", func() {
			writeConfig(`{"id": "i-123"}`)
			fakeInstances.StatusReturns(resources.Instance{}, fmt.Errorf("throttled"))

			err := l.Status(ctx, fakeDs, loadConfig(), &bytes.Buffer{})
			Expect(err).To(MatchError("describing instance: throttled"))
		})
	})
})
