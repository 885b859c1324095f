package driver

import (
	"errors"
	"fmt"
	"io"

	"awslab/config"
	"awslab/logging"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/sirupsen/logrus"
)

// EC2Client is the subset of the EC2 API used by the drivers.
type EC2Client interface {
	DescribeSecurityGroupsWithContext(aws.Context, *ec2.DescribeSecurityGroupsInput, ...request.Option) (*ec2.DescribeSecurityGroupsOutput, error)
	CreateSecurityGroupWithContext(aws.Context, *ec2.CreateSecurityGroupInput, ...request.Option) (*ec2.CreateSecurityGroupOutput, error)
	AuthorizeSecurityGroupIngressWithContext(aws.Context, *ec2.AuthorizeSecurityGroupIngressInput, ...request.Option) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	RevokeSecurityGroupIngressWithContext(aws.Context, *ec2.RevokeSecurityGroupIngressInput, ...request.Option) (*ec2.RevokeSecurityGroupIngressOutput, error)
	DeleteSecurityGroupWithContext(aws.Context, *ec2.DeleteSecurityGroupInput, ...request.Option) (*ec2.DeleteSecurityGroupOutput, error)

	DescribeKeyPairsWithContext(aws.Context, *ec2.DescribeKeyPairsInput, ...request.Option) (*ec2.DescribeKeyPairsOutput, error)
	CreateKeyPairWithContext(aws.Context, *ec2.CreateKeyPairInput, ...request.Option) (*ec2.CreateKeyPairOutput, error)
	DeleteKeyPairWithContext(aws.Context, *ec2.DeleteKeyPairInput, ...request.Option) (*ec2.DeleteKeyPairOutput, error)

	DescribeInstancesWithContext(aws.Context, *ec2.DescribeInstancesInput, ...request.Option) (*ec2.DescribeInstancesOutput, error)
	RunInstancesWithContext(aws.Context, *ec2.RunInstancesInput, ...request.Option) (*ec2.Reservation, error)
	StartInstancesWithContext(aws.Context, *ec2.StartInstancesInput, ...request.Option) (*ec2.StartInstancesOutput, error)
	StopInstancesWithContext(aws.Context, *ec2.StopInstancesInput, ...request.Option) (*ec2.StopInstancesOutput, error)
	TerminateInstancesWithContext(aws.Context, *ec2.TerminateInstancesInput, ...request.Option) (*ec2.TerminateInstancesOutput, error)
}

var _ EC2Client = (*ec2.EC2)(nil)

// NewEC2Client builds a client for the configured region. SDK request logs go
// to logDest at debug level.
func NewEC2Client(logDest io.Writer, creds config.Credentials) (*ec2.EC2, error) {
	logger := logging.New(logDest, "EC2Client")

	awsConfig := request.WithRetryer(
		creds.GetAwsConfig().WithLogger(newDriverLogger(logger)),
		NewEC2RetryerWithRetries(DefaultMaxRetries),
	)
	if logging.Level() >= logrus.DebugLevel {
		awsConfig = awsConfig.WithLogLevel(aws.LogDebugWithRequestErrors)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %s", err)
	}
	return ec2.New(sess), nil
}

func isAWSCode(err error, codes ...string) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	for _, code := range codes {
		if aerr.Code() == code {
			return true
		}
	}
	return false
}
