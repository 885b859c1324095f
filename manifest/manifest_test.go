package manifest_test

import (
	"bytes"
	"strings"

	"awslab/config"
	"awslab/manifest"
	"awslab/resources"
	"awslab/test_helpers"

	"gopkg.in/yaml.v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manifest", func() {
	var (
		bootstrap      config.Bootstrap
		instanceConfig *config.Instance
		instance       resources.Instance
	)

	BeforeEach(func() {
		bootstrap = test_helpers.BootstrapConfig("/tmp")

		var err error
		instanceConfig, err = config.NewInstanceFromReader(strings.NewReader(`{
      "ami": "ami-12345678",
      "type": "t2.micro",
      "description": "lab box",
      "rules": [["tcp", 80, 80, "0.0.0.0/0"]],
      "commands": ["echo one", "echo two"],
      "first_run": false
    }`))
		Expect(err).ToNot(HaveOccurred())

		instance = resources.Instance{InstanceID: "i-123", State: "running", PublicDNS: "ec2.example.com"}
	})

	Describe("Write", func() {
		It("writes the instance status as YAML", func() {
			writer := &bytes.Buffer{}
			err := manifest.New(bootstrap, instanceConfig, instance).Write(writer)
			Expect(err).ToNot(HaveOccurred())

			result := &manifest.Manifest{}
			Expect(yaml.Unmarshal(writer.Bytes(), result)).To(Succeed())

			Expect(result.Region).To(Equal("us-east-1"))
			Expect(result.SecurityGroup).To(Equal("lab-group"))
			Expect(result.KeyPair).To(Equal("lab-key"))
			Expect(result.Instance.ID).To(Equal("i-123"))
			Expect(result.Instance.State).To(Equal("running"))
			Expect(result.Instance.PublicDNS).To(Equal("ec2.example.com"))
			Expect(result.Instance.AMI).To(Equal("ami-12345678"))
			Expect(result.Instance.Type).To(Equal("t2.micro"))
			Expect(result.Instance.Description).To(Equal("lab box"))
			Expect(result.FirstRun).To(BeFalse())
			Expect(result.Rules).To(Equal([]string{"tcp 80-80 from 0.0.0.0/0"}))
			Expect(result.Commands).To(Equal(2))
		})

		It("returns an error if no instance is set", func() {
			writer := &bytes.Buffer{}
			err := manifest.New(bootstrap, instanceConfig, resources.Instance{}).Write(writer)
			Expect(err).To(MatchError("no instance has been added to the manifest"))
		})
	})
})
