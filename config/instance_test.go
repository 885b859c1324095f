package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"awslab/config"
	"awslab/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Instance", func() {
	instanceJSON := `{
    "ami": "ami-12345678",
    "type": "t2.micro",
    "ssh_user": "ubuntu",
    "description": "lab box",
    "rules": [["tcp", 80, 80, "0.0.0.0/0"], ["udp", "60000", "61000", "10.0.0.0/8"]],
    "commands": ["sudo apt-get update", "echo done"],
    "owner": {"team": "infra"}
  }`

	Describe("NewInstanceFromReader", func() {
		It("parses the static keys and the rule tuples", func() {
			c, err := config.NewInstanceFromReader(strings.NewReader(instanceJSON))
			Expect(err).ToNot(HaveOccurred())
			Expect(c.AMI).To(Equal("ami-12345678"))
			Expect(c.Type).To(Equal("t2.micro"))
			Expect(c.SSHUser).To(Equal("ubuntu"))
			Expect(c.Description).To(Equal("lab box"))
			Expect(c.Commands).To(Equal([]string{"sudo apt-get update", "echo done"}))
			Expect(c.ResourceRules()).To(Equal([]resources.Rule{
				{Protocol: "tcp", FromPort: 80, ToPort: 80, CIDR: "0.0.0.0/0"},
				{Protocol: "udp", FromPort: 60000, ToPort: 61000, CIDR: "10.0.0.0/8"},
			}))
			Expect(c.ID).To(BeEmpty())
			Expect(c.HasKey("owner")).To(BeTrue())
		})

		It("treats an absent first_run as true", func() {
			c, err := config.NewInstanceFromReader(strings.NewReader(instanceJSON))
			Expect(err).ToNot(HaveOccurred())
			Expect(c.FirstRun).To(BeNil())
			Expect(c.IsFirstRun()).To(BeTrue())
		})

		It("rejects rules that are not 4-tuples", func() {
			_, err := config.NewInstanceFromReader(strings.NewReader(`{"rules": [["tcp", 80, 80]]}`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("must have 4 elements"))
		})

		It("rejects non-numeric ports", func() {
			_, err := config.NewInstanceFromReader(strings.NewReader(`{"rules": [["tcp", "http", 80, "0.0.0.0/0"]]}`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("rule from_port"))
		})
	})

	Describe("transitions", func() {
		var c *config.Instance

		BeforeEach(func() {
			var err error
			c, err = config.NewInstanceFromReader(strings.NewReader(instanceJSON))
			Expect(err).ToNot(HaveOccurred())
		})

		It("claims the first run exactly once", func() {
			Expect(c.ClaimFirstRun()).To(BeTrue())
			Expect(c.IsFirstRun()).To(BeFalse())
			Expect(c.ClaimFirstRun()).To(BeFalse())
		})

		It("forgets the public DNS on stop and keeps the id", func() {
			c.Launched("i-123", "ec2-1-2-3-4.compute.amazonaws.com")
			c.Stopped()
			Expect(c.ID).To(Equal("i-123"))
			Expect(c.PublicDNS).To(BeEmpty())
		})

		It("resets the first run marker and forgets the instance on terminate", func() {
			c.Launched("i-123", "ec2-1-2-3-4.compute.amazonaws.com")
			c.ClaimFirstRun()
			c.Terminated()
			Expect(c.ID).To(BeEmpty())
			Expect(c.PublicDNS).To(BeEmpty())
			Expect(c.IsFirstRun()).To(BeTrue())
		})
	})

	Describe("FileStore", func() {
		var (
			path  string
			store config.FileStore
		)

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "instance.cfg")
			store = config.FileStore{Path: path}
		})

		It("writes 2-space indented JSON with a trailing newline", func() {
			Expect(os.WriteFile(path, []byte(instanceJSON), 0600)).To(Succeed())
			c, err := config.LoadInstance(path)
			Expect(err).ToNot(HaveOccurred())

			c.Launched("i-123", "ec2.example.com")
			Expect(store.Save(c)).To(Succeed())

			contents, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(contents)).To(HaveSuffix("}\n"))
			Expect(string(contents)).To(ContainSubstring("\n  \"id\": \"i-123\",\n"))
			Expect(string(contents)).To(ContainSubstring("\n  \"owner\": {\n    \"team\": \"infra\"\n  },\n"))

			info, err := os.Stat(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0600)))
		})

		It("preserves unknown keys and the loaded form of static keys across a round trip", func() {
			Expect(os.WriteFile(path, []byte(instanceJSON), 0644)).To(Succeed())
			c, err := config.LoadInstance(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(store.Save(c)).To(Succeed())

			contents, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(contents).To(MatchJSON(instanceJSON))
		})

		It("resets the managed keys on terminate and leaves the rest alone", func() {
			Expect(os.WriteFile(path, []byte(`{"id": "i-123", "public_dns": "x", "first_run": false, "note": "keep me"}`), 0644)).To(Succeed())
			c, err := config.LoadInstance(path)
			Expect(err).ToNot(HaveOccurred())

			c.Terminated()
			Expect(store.Save(c)).To(Succeed())

			contents, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(contents).To(MatchJSON(`{"first_run": true, "note": "keep me"}`))
		})

		It("writes a config built in code", func() {
			c := &config.Instance{
				AMI:      "ami-1",
				Rules:    []config.Rule{{Protocol: "tcp", FromPort: 443, ToPort: 443, CIDR: "0.0.0.0/0"}},
				Commands: []string{},
			}
			Expect(store.Save(c)).To(Succeed())

			contents, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())

			decoded := map[string]interface{}{}
			Expect(json.Unmarshal(contents, &decoded)).To(Succeed())
			Expect(decoded).To(HaveKeyWithValue("ami", "ami-1"))
			Expect(decoded).To(HaveKeyWithValue("rules", []interface{}{[]interface{}{"tcp", float64(443), float64(443), "0.0.0.0/0"}}))
			Expect(decoded).To(HaveKeyWithValue("commands", []interface{}{}))
			Expect(decoded).ToNot(HaveKey("id"))
		})

		It("leaves no temporary files behind", func() {
			Expect(store.Save(&config.Instance{AMI: "ami-1"})).To(Succeed())
			entries, err := os.ReadDir(filepath.Dir(path))
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})
})
