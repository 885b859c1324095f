package test_helpers

import (
	"time"

	"awslab/config"
)

const (
	Region        = "us-east-1"
	SecurityGroup = "lab-group"
	KeyPair       = "lab-key"
)

// BootstrapConfig returns a valid bootstrap config using the instance role,
// with waits short enough for tests.
func BootstrapConfig(sshPath string) config.Bootstrap {
	return config.Bootstrap{
		Credentials:   config.Credentials{Region: Region},
		SecurityGroup: SecurityGroup,
		KeyPair:       KeyPair,
		SSHPath:       sshPath,
		SSHPort:       config.DefaultSSHPort,
		Wait: config.Wait{
			Interval: config.Duration(10 * time.Millisecond),
			Timeout:  config.Duration(time.Second),
		},
	}
}

func BootstrapConfigWithKeys(sshPath string, accessKey string, secretKey string) config.Bootstrap {
	c := BootstrapConfig(sshPath)
	c.AccessKey = accessKey
	c.SecretKey = secretKey
	return c
}
