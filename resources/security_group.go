package resources

import (
	"context"
	"fmt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Rule is a single ingress permission.
type Rule struct {
	Protocol string
	FromPort int64
	ToPort   int64
	CIDR     string
}

// SSHRule is authorized on every managed security group.
var SSHRule = Rule{Protocol: "tcp", FromPort: 22, ToPort: 22, CIDR: "0.0.0.0/0"}

func (r Rule) String() string {
	return fmt.Sprintf("%s %d-%d from %s", r.Protocol, r.FromPort, r.ToPort, r.CIDR)
}

type SecurityGroup struct {
	ID   string
	Name string
}

//counterfeiter:generate . SecurityGroupDriver
type SecurityGroupDriver interface {
	Ensure(ctx context.Context, name string) (SecurityGroup, error)
	AddRule(ctx context.Context, group SecurityGroup, rule Rule) error
	RemoveRule(ctx context.Context, group SecurityGroup, rule Rule) error
	AddRules(ctx context.Context, group SecurityGroup, rules []Rule) error
	RemoveRules(ctx context.Context, group SecurityGroup, rules []Rule) error
	Delete(ctx context.Context, group SecurityGroup) error
}
