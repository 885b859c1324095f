package driver

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

const DefaultMaxRetries = 5

// eventually consistent lookups that fail right after the resource is created
var notYetVisibleCodes = []string{
	"InvalidGroup.NotFound",
	"InvalidInstanceID.NotFound",
	"InvalidKeyPair.NotFound",
}

func NewEC2RetryerWithRetries(numRetries int) EC2Retryer {
	return EC2Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// EC2Retryer retries mutating calls that reference a resource EC2 has not
// finished propagating, on top of the default throttling and 5xx handling.
type EC2Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to DefaultMaxRetries
func (r EC2Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return DefaultMaxRetries
	}
	return r.NumMaxRetries
}

// ShouldRetry leaves Describe* calls alone since a missing resource is an
// answer there, not a propagation delay.
func (r EC2Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil && !isDescribe(req) {
		if err, ok := req.Error.(awserr.Error); ok {
			for _, code := range notYetVisibleCodes {
				if err.Code() == code {
					return true
				}
			}
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}

func isDescribe(req *request.Request) bool {
	return req.Operation != nil && strings.HasPrefix(req.Operation.Name, "Describe")
}
