package manifest

import (
	"errors"
	"fmt"
	"io"

	"awslab/config"
	"awslab/resources"

	"gopkg.in/yaml.v2"
)

// Manifest is the status report printed by the status command.
type Manifest struct {
	Region        string       `yaml:"region"`
	SecurityGroup string       `yaml:"security_group"`
	KeyPair       string       `yaml:"key_pair"`
	Instance      InstanceInfo `yaml:"instance"`
	FirstRun      bool         `yaml:"first_run"`
	Rules         []string     `yaml:"rules,omitempty"`
	Commands      int          `yaml:"commands"`
}

type InstanceInfo struct {
	ID          string `yaml:"id"`
	State       string `yaml:"state"`
	PublicDNS   string `yaml:"public_dns,omitempty"`
	AMI         string `yaml:"ami"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

func New(bootstrap config.Bootstrap, instanceConfig *config.Instance, instance resources.Instance) *Manifest {
	m := &Manifest{
		Region:        bootstrap.Region,
		SecurityGroup: bootstrap.SecurityGroup,
		KeyPair:       bootstrap.KeyPair,
		Instance: InstanceInfo{
			ID:          instance.InstanceID,
			State:       instance.State,
			PublicDNS:   instance.PublicDNS,
			AMI:         instanceConfig.AMI,
			Type:        instanceConfig.Type,
			Description: instanceConfig.Description,
		},
		FirstRun: instanceConfig.IsFirstRun(),
		Commands: len(instanceConfig.Commands),
	}
	for _, rule := range instanceConfig.ResourceRules() {
		m.Rules = append(m.Rules, rule.String())
	}
	return m
}

// Write writes the YAML representation of this manifest to the io.Writer
func (m *Manifest) Write(writer io.Writer) error {
	if m.Instance.ID == "" {
		return errors.New("no instance has been added to the manifest")
	}

	output, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest to YAML: %s", err)
	}
	_, err = writer.Write(output)
	if err != nil {
		return fmt.Errorf("writing YAML: %s", err)
	}
	return nil
}
