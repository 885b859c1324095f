package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"awslab/collection"
	"awslab/logging"
	"awslab/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/sirupsen/logrus"
)

const (
	errCodeGroupDuplicate      = "InvalidGroup.Duplicate"
	errCodePermissionDuplicate = "InvalidPermission.Duplicate"
	errCodePermissionNotFound  = "InvalidPermission.NotFound"
)

type SDKSecurityGroupDriver struct {
	ec2Client EC2Client
	logger    *logrus.Entry
}

func NewSecurityGroupDriver(logDest io.Writer, ec2Client EC2Client) *SDKSecurityGroupDriver {
	logger := logging.New(logDest, "SecurityGroupDriver")

	return &SDKSecurityGroupDriver{ec2Client: ec2Client, logger: logger}
}

// Ensure looks the group up by name, creating it when absent, and makes sure
// SSH is reachable.
func (d *SDKSecurityGroupDriver) Ensure(ctx context.Context, name string) (resources.SecurityGroup, error) {
	ensureStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed Ensure() in %f minutes", time.Since(startTime).Minutes())
	}(ensureStartTime)

	group, found, err := d.find(ctx, name)
	if err != nil {
		return resources.SecurityGroup{}, err
	}

	if !found {
		d.logger.Infof("creating security group %s", name)
		_, err = d.ec2Client.CreateSecurityGroupWithContext(ctx, &ec2.CreateSecurityGroupInput{
			GroupName:   aws.String(name),
			Description: aws.String(fmt.Sprintf("Auto-created security group for %s.", name)),
		})
		if err != nil && !isAWSCode(err, errCodeGroupDuplicate) {
			return resources.SecurityGroup{}, resources.NewError(resources.KindCloud, fmt.Sprintf("creating security group %s", name), err)
		}

		group, found, err = d.find(ctx, name)
		if err != nil {
			return resources.SecurityGroup{}, err
		}
		if !found {
			return resources.SecurityGroup{}, resources.NewError(resources.KindCloud, fmt.Sprintf("security group %s not found after creation", name), nil)
		}
	} else {
		d.logger.Infof("reusing existing security group %s (%s)", name, group.ID)
	}

	// AddRule already logs the failure; the group is still usable
	_ = d.AddRule(ctx, group, resources.SSHRule)

	return group, nil
}

func (d *SDKSecurityGroupDriver) find(ctx context.Context, name string) (resources.SecurityGroup, bool, error) {
	output, err := d.ec2Client.DescribeSecurityGroupsWithContext(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("group-name"), Values: []*string{aws.String(name)}},
		},
	})
	if err != nil {
		return resources.SecurityGroup{}, false, resources.NewError(resources.KindCloud, fmt.Sprintf("describing security group %s", name), err)
	}

	for _, group := range output.SecurityGroups {
		if aws.StringValue(group.GroupName) == name {
			return resources.SecurityGroup{ID: aws.StringValue(group.GroupId), Name: name}, true, nil
		}
	}
	return resources.SecurityGroup{}, false, nil
}

func (d *SDKSecurityGroupDriver) AddRule(ctx context.Context, group resources.SecurityGroup, rule resources.Rule) error {
	d.logger.Infof("authorizing %s on security group %s", rule, group.Name)
	_, err := d.ec2Client.AuthorizeSecurityGroupIngressWithContext(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(group.ID),
		IpPermissions: []*ec2.IpPermission{ipPermission(rule)},
	})
	if err != nil {
		if isAWSCode(err, errCodePermissionDuplicate) {
			d.logger.Infof("rule %s already exists on security group %s", rule, group.Name)
			return nil
		}
		d.logger.Warnf("failed to authorize %s on security group %s: %s", rule, group.Name, err)
		return resources.NewError(resources.KindCloud, fmt.Sprintf("authorizing %s", rule), err)
	}
	return nil
}

func (d *SDKSecurityGroupDriver) RemoveRule(ctx context.Context, group resources.SecurityGroup, rule resources.Rule) error {
	d.logger.Infof("revoking %s on security group %s", rule, group.Name)
	_, err := d.ec2Client.RevokeSecurityGroupIngressWithContext(ctx, &ec2.RevokeSecurityGroupIngressInput{
		GroupId:       aws.String(group.ID),
		IpPermissions: []*ec2.IpPermission{ipPermission(rule)},
	})
	if err != nil {
		if isAWSCode(err, errCodePermissionNotFound) {
			d.logger.Infof("rule %s is not present on security group %s", rule, group.Name)
			return nil
		}
		d.logger.Warnf("failed to revoke %s on security group %s: %s", rule, group.Name, err)
		return resources.NewError(resources.KindCloud, fmt.Sprintf("revoking %s", rule), err)
	}
	return nil
}

// AddRules attempts every rule and reports all failures together.
func (d *SDKSecurityGroupDriver) AddRules(ctx context.Context, group resources.SecurityGroup, rules []resources.Rule) error {
	errs := collection.Error{}
	for _, rule := range rules {
		errs.Add(d.AddRule(ctx, group, rule))
	}
	if errs.Len() > 0 {
		d.logger.Warnf("%d of %d rules could not be authorized on %s", errs.Len(), len(rules), group.Name)
	}
	return errs.Error()
}

// RemoveRules attempts every rule and reports all failures together.
func (d *SDKSecurityGroupDriver) RemoveRules(ctx context.Context, group resources.SecurityGroup, rules []resources.Rule) error {
	errs := collection.Error{}
	for _, rule := range rules {
		errs.Add(d.RemoveRule(ctx, group, rule))
	}
	return errs.Error()
}

func (d *SDKSecurityGroupDriver) Delete(ctx context.Context, group resources.SecurityGroup) error {
	d.logger.Infof("deleting security group %s (%s)", group.Name, group.ID)
	_, err := d.ec2Client.DeleteSecurityGroupWithContext(ctx, &ec2.DeleteSecurityGroupInput{
		GroupId: aws.String(group.ID),
	})
	if err != nil {
		d.logger.Errorf("failed to delete security group %s: %s", group.Name, err)
		return resources.NewError(resources.KindCloud, fmt.Sprintf("deleting security group %s", group.Name), err)
	}
	return nil
}

func ipPermission(rule resources.Rule) *ec2.IpPermission {
	return &ec2.IpPermission{
		IpProtocol: aws.String(rule.Protocol),
		FromPort:   aws.Int64(rule.FromPort),
		ToPort:     aws.Int64(rule.ToPort),
		IpRanges:   []*ec2.IpRange{{CidrIp: aws.String(rule.CIDR)}},
	}
}
