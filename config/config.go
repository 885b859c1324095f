package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"awslab/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	DefaultBootstrapPath = "configs/bootstrap.cfg"
	DefaultSSHPort       = 22
)

// ErrMissingConfig is returned when a verb that needs an instance config is run without one.
var ErrMissingConfig = errors.New("this command requires a configuration file")

type Credentials struct {
	AccessKey string `json:"aws_key"`
	SecretKey string `json:"aws_secret"`
	RoleArn   string `json:"role_arn,omitempty"`
	Region    string `json:"aws_region"`
}

type Wait struct {
	Interval    Duration `json:"interval"`
	Timeout     Duration `json:"timeout"`
	MaxAttempts int      `json:"max_attempts"`

	// ErrorRetries is how many failed status lookups a wait tolerates.
	ErrorRetries int `json:"error_retries"`
}

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Bootstrap struct {
	Credentials
	SecurityGroup string `json:"security_group"`
	KeyPair       string `json:"key_pair"`
	SSHPath       string `json:"ssh_path"`

	SSHPort int  `json:"ssh_port"`
	Wait    Wait `json:"wait"`
}

func NewBootstrapFromReader(r io.Reader) (Bootstrap, error) {
	c := Bootstrap{}

	b, err := io.ReadAll(r)
	if err != nil {
		return Bootstrap{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Bootstrap{}, err
	}

	if c.SSHPort == 0 {
		c.SSHPort = DefaultSSHPort
	}

	if c.Wait.Interval == 0 {
		c.Wait.Interval = Duration(waiter.DefaultPollInterval)
	}

	if c.Wait.Timeout == 0 {
		c.Wait.Timeout = Duration(waiter.DefaultPollTimeout)
	}

	err = c.validate()
	if err != nil {
		return Bootstrap{}, err
	}

	c.SSHPath, err = expandHome(c.SSHPath)
	if err != nil {
		return Bootstrap{}, err
	}

	return c, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding ssh_path: %s", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func LoadBootstrap(path string) (Bootstrap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bootstrap{}, err
	}
	defer f.Close()

	return NewBootstrapFromReader(f)
}

func (c *Bootstrap) validate() error {
	if c.Region == "" {
		return errors.New("aws_region must be specified")
	}

	if c.SecurityGroup == "" {
		return errors.New("security_group must be specified")
	}

	if c.KeyPair == "" {
		return errors.New("key_pair must be specified")
	}

	if c.SSHPath == "" {
		return errors.New("ssh_path must be specified")
	}

	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("aws_key and aws_secret must be specified together")
	}

	if c.SSHPort < 1 || c.SSHPort > 65535 {
		return fmt.Errorf("ssh_port %d is out of range", c.SSHPort)
	}

	if c.Wait.Interval < 0 || c.Wait.Timeout < 0 || c.Wait.MaxAttempts < 0 || c.Wait.ErrorRetries < 0 {
		return errors.New("wait values must not be negative")
	}

	return nil
}

// WaitPolicy is the polling policy shared by every wait loop.
func (c Bootstrap) WaitPolicy() waiter.Policy {
	return waiter.Policy{
		PollInterval: time.Duration(c.Wait.Interval),
		PollTimeout:  time.Duration(c.Wait.Timeout),
		MaxAttempts:  c.Wait.MaxAttempts,
		ErrorRetries: c.Wait.ErrorRetries,
	}
}

func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvProvider{},
			&credentials.SharedCredentialsProvider{},
			&ec2rolecreds.EC2RoleProvider{
				Client: ec2metadata.New(session.Must(session.NewSession())),
			},
		})
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}
