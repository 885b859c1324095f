package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "AWSLAB_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

func writeFile(dir string, name string, body string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(body), 0644)).To(Succeed())
	return path
}

var _ = Describe("awslab", func() {
	var workDir string

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
	})

	run := func(args ...string) *gexec.Session {
		command := exec.Command(awslabPath, args...)
		command.Dir = workDir
		command.Env = cleanEnv()

		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		return session.Wait(10 * time.Second)
	}

	It("prints the README when no command is given", func() {
		session := run()
		Expect(session.ExitCode()).To(BeZero())
		Expect(session.Out).To(gbytes.Say("# awslab"))
	})

	It("prints the README for an unknown command", func() {
		session := run("launch", "now")
		Expect(session.ExitCode()).To(BeZero())
		Expect(session.Out).To(gbytes.Say("Commands:"))
	})

	for _, verb := range []string{"start", "stop", "terminate", "status"} {
		It("requires a config file for "+verb, func() {
			session := run(verb)
			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("This command requires a configuration file."))
		})
	}

	It("fails when the bootstrap config cannot be read", func() {
		instancePath := writeFile(workDir, "web.cfg", `{"ami": "ami-1", "type": "t3.micro"}`)

		session := run("--bootstrap-config", filepath.Join(workDir, "missing.cfg"), "start", instancePath)
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("Error loading config file: "))
	})

	It("reads the bootstrap config path from the environment", func() {
		bootstrapPath := writeFile(workDir, "bootstrap.cfg", `{"security_group": "g", "key_pair": "k", "ssh_path": "/tmp"}`)

		command := exec.Command(awslabPath, "bootstrap")
		command.Dir = workDir
		command.Env = append(cleanEnv(), "AWSLAB_BOOTSTRAP_CONFIG="+bootstrapPath)

		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		Eventually(session, 10*time.Second).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("aws_region must be specified"))
	})

	It("reads settings from a .env file in the working directory", func() {
		writeFile(workDir, ".env", "AWSLAB_LOG_LEVEL=loud\n")

		session := run("bootstrap")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("parsing log level"))
	})

	It("fails on a malformed .env file", func() {
		writeFile(workDir, ".env", "AWSLAB_LOG_LEVEL=\"debug\n")

		session := run("bootstrap")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("loading .env"))
	})

	It("rejects an unknown log level", func() {
		session := run("--log-level", "loud", "bootstrap")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("parsing log level"))
	})
})

var _ = Describe("verify-config", func() {
	var workDir string

	BeforeEach(func() {
		workDir = GinkgoT().TempDir()
	})

	run := func(args ...string) *gexec.Session {
		command := exec.Command(verifyConfigPath, args...)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		return session.Wait(10 * time.Second)
	}

	It("prints usage without exactly two arguments", func() {
		session := run("bootstrap")
		Expect(session.ExitCode()).To(BeZero())
		Expect(session.Out).To(gbytes.Say("USAGE: verify-config file_type config_file"))
	})

	It("rejects an unknown file type", func() {
		session := run("server", filepath.Join(workDir, "missing.cfg"))
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Out).To(gbytes.Say("Invalid file type server. Quitting."))
	})

	It("fails when the file cannot be loaded", func() {
		path := writeFile(workDir, "broken.cfg", `{"ami": `)

		session := run("instance", path)
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Out).To(gbytes.Say("Error loading config file: "))
	})

	It("prints a line for each missing key", func() {
		path := writeFile(workDir, "web.cfg", `{"ami": "ami-1", "type": "t3.micro", "ssh_user": "ubuntu", "rules": []}`)

		session := run("INSTANCE", path)
		Expect(session.ExitCode()).To(BeZero())
		Expect(session.Out).To(gbytes.Say(`The "commands" key is not in the instance file.`))
		Expect(session.Out).To(gbytes.Say(`The "description" key is not in the instance file.`))
	})

	It("prints nothing for a complete file", func() {
		path := writeFile(workDir, "bootstrap.cfg", `{
  "aws_key": "", "aws_secret": "", "aws_region": "us-east-1",
  "security_group": "g", "ssh_path": "/tmp", "key_pair": "k"
}`)

		session := run("bootstrap", path)
		Expect(session.ExitCode()).To(BeZero())
		Expect(session.Out.Contents()).To(BeEmpty())
	})
})
