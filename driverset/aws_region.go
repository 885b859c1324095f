package driverset

import (
	"io"

	"awslab/config"
	"awslab/driver"
	"awslab/remote"
	"awslab/resources"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . RegionDriverSet
type RegionDriverSet interface {
	SecurityGroupDriver() resources.SecurityGroupDriver
	KeyPairDriver() resources.KeyPairDriver
	InstanceDriver() resources.InstanceDriver
	ShellDriver() resources.ShellDriver
}

type regionDriverSet struct {
	securityGroupDriver *driver.SDKSecurityGroupDriver
	keyPairDriver       *driver.SDKKeyPairDriver
	instanceDriver      *driver.SDKInstanceDriver
	shellDriver         *remote.SSHShellDriver
}

// NewRegionDriverSet wires every driver against a single EC2 client for the
// configured region.
func NewRegionDriverSet(logDest io.Writer, c config.Bootstrap) (RegionDriverSet, error) {
	ec2Client, err := driver.NewEC2Client(logDest, c.Credentials)
	if err != nil {
		return nil, err
	}

	return NewRegionDriverSetWithClient(logDest, ec2Client, c), nil
}

func NewRegionDriverSetWithClient(logDest io.Writer, ec2Client driver.EC2Client, c config.Bootstrap) RegionDriverSet {
	policy := c.WaitPolicy()

	return &regionDriverSet{
		securityGroupDriver: driver.NewSecurityGroupDriver(logDest, ec2Client),
		keyPairDriver:       driver.NewKeyPairDriver(logDest, ec2Client),
		instanceDriver:      driver.NewInstanceDriver(logDest, ec2Client, policy),
		shellDriver:         remote.NewSSHShellDriver(logDest, policy),
	}
}

func (s *regionDriverSet) SecurityGroupDriver() resources.SecurityGroupDriver {
	return s.securityGroupDriver
}

func (s *regionDriverSet) KeyPairDriver() resources.KeyPairDriver {
	return s.keyPairDriver
}

func (s *regionDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *regionDriverSet) ShellDriver() resources.ShellDriver {
	return s.shellDriver
}
