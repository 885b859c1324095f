package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"awslab/logging"
	"awslab/resources"
	"awslab/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const errCodeInstanceNotFound = "InvalidInstanceID.NotFound"

type SDKInstanceDriver struct {
	ec2Client EC2Client
	policy    waiter.Policy
	logger    *logrus.Entry
}

func NewInstanceDriver(logDest io.Writer, ec2Client EC2Client, policy waiter.Policy) *SDKInstanceDriver {
	logger := logging.New(logDest, "InstanceDriver")

	return &SDKInstanceDriver{ec2Client: ec2Client, policy: policy, logger: logger}
}

// Locate adopts the configured instance unless it is gone, terminated or
// shutting down, in which case a new one is launched. The returned instance is running or was
// found in whatever state it is in.
func (d *SDKInstanceDriver) Locate(ctx context.Context, driverConfig resources.InstanceDriverConfig) (resources.Instance, error) {
	if driverConfig.InstanceID != "" {
		instances, err := d.list(ctx)
		if err != nil {
			return resources.Instance{}, err
		}

		for _, instance := range instances {
			if instance.InstanceID == driverConfig.InstanceID && !isGone(instance.State) {
				d.logger.Infof("adopting instance %s in state %s", instance.InstanceID, instance.State)
				return instance, nil
			}
		}
		d.logger.Infof("instance %s no longer exists, launching a new one", driverConfig.InstanceID)
	}

	return d.create(ctx, driverConfig)
}

func isGone(state string) bool {
	return state == resources.InstanceTerminated || state == resources.InstanceShuttingDown
}

func (d *SDKInstanceDriver) create(ctx context.Context, driverConfig resources.InstanceDriverConfig) (resources.Instance, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Infof("launching %s instance from %s", driverConfig.InstanceType, driverConfig.AMI)
	reservation, err := d.ec2Client.RunInstancesWithContext(ctx, &ec2.RunInstancesInput{
		ImageId:                           aws.String(driverConfig.AMI),
		InstanceType:                      aws.String(driverConfig.InstanceType),
		KeyName:                           aws.String(driverConfig.KeyName),
		SecurityGroups:                    []*string{aws.String(driverConfig.SecurityGroupName)},
		MinCount:                          aws.Int64(1),
		MaxCount:                          aws.Int64(1),
		InstanceInitiatedShutdownBehavior: aws.String(ec2.ShutdownBehaviorStop),
		ClientToken:                       aws.String(uuid.NewV4().String()),
		TagSpecifications: []*ec2.TagSpecification{
			{
				ResourceType: aws.String(ec2.ResourceTypeInstance),
				Tags: []*ec2.Tag{
					{Key: aws.String("description"), Value: aws.String(driverConfig.Description)},
					{Key: aws.String("Name"), Value: aws.String(driverConfig.Description)},
				},
			},
		},
	})
	if err != nil {
		return resources.Instance{}, resources.NewError(resources.KindCloud, "launching instance", err)
	}

	if len(reservation.Instances) != 1 {
		return resources.Instance{}, resources.NewError(resources.KindCloud,
			fmt.Sprintf("launching instance: expected 1 instance, got %d", len(reservation.Instances)), nil)
	}

	instance := toInstance(reservation.Instances[0])
	d.logger.Infof("launched instance %s", instance.InstanceID)

	return d.waitFor(ctx, instance, resources.InstanceRunning)
}

func (d *SDKInstanceDriver) Status(ctx context.Context, instance resources.Instance) (resources.Instance, error) {
	return d.describe(ctx, instance.InstanceID)
}

func (d *SDKInstanceDriver) Start(ctx context.Context, instance resources.Instance) (resources.Instance, error) {
	d.logger.Infof("starting instance %s", instance.InstanceID)
	_, err := d.ec2Client.StartInstancesWithContext(ctx, &ec2.StartInstancesInput{
		InstanceIds: []*string{aws.String(instance.InstanceID)},
	})
	if err != nil {
		return resources.Instance{}, resources.NewError(resources.KindCloud, fmt.Sprintf("starting instance %s", instance.InstanceID), err)
	}

	return d.waitFor(ctx, instance, resources.InstanceRunning)
}

func (d *SDKInstanceDriver) Stop(ctx context.Context, instance resources.Instance) (resources.Instance, error) {
	d.logger.Infof("stopping instance %s", instance.InstanceID)
	_, err := d.ec2Client.StopInstancesWithContext(ctx, &ec2.StopInstancesInput{
		InstanceIds: []*string{aws.String(instance.InstanceID)},
	})
	if err != nil {
		return resources.Instance{}, resources.NewError(resources.KindCloud, fmt.Sprintf("stopping instance %s", instance.InstanceID), err)
	}

	return d.waitFor(ctx, instance, resources.InstanceStopped)
}

func (d *SDKInstanceDriver) Terminate(ctx context.Context, instance resources.Instance) error {
	d.logger.Infof("terminating instance %s", instance.InstanceID)
	_, err := d.ec2Client.TerminateInstancesWithContext(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(instance.InstanceID)},
	})
	if err != nil {
		return resources.NewError(resources.KindCloud, fmt.Sprintf("terminating instance %s", instance.InstanceID), err)
	}

	_, err = d.waitFor(ctx, instance, resources.InstanceTerminated)
	return err
}

func (d *SDKInstanceDriver) waitFor(ctx context.Context, instance resources.Instance, desired string) (resources.Instance, error) {
	info, err := waiter.WaitForStatus(ctx, d.fetchStatus, waiter.Config{
		Policy:        d.policy,
		Resource:      instance,
		DesiredStatus: desired,
		Logger:        d.logger,
	})
	if err != nil {
		var timeoutErr waiter.TimeoutError
		if errors.As(err, &timeoutErr) {
			return resources.Instance{}, resources.NewError(resources.KindTimeout, fmt.Sprintf("waiting for instance %s to be %s", instance.InstanceID, desired), err)
		}
		return resources.Instance{}, err
	}

	ready := info.(resources.Instance)
	d.logger.Infof("instance %s is %s", ready.InstanceID, ready.State)
	return ready, nil
}

// a freshly launched id can be briefly unknown to DescribeInstances
func (d *SDKInstanceDriver) fetchStatus(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
	instance, err := d.describe(ctx, resource.ID())
	if errors.Is(err, resources.ErrInstanceNotFound) {
		return resources.Instance{InstanceID: resource.ID(), State: resources.InstancePending}, nil
	}
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (d *SDKInstanceDriver) describe(ctx context.Context, id string) (resources.Instance, error) {
	output, err := d.ec2Client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(id)},
	})
	if err != nil {
		if isAWSCode(err, errCodeInstanceNotFound) {
			return resources.Instance{}, resources.NewError(resources.KindCloud, fmt.Sprintf("describing instance %s", id), resources.ErrInstanceNotFound)
		}
		return resources.Instance{}, resources.NewError(resources.KindCloud, fmt.Sprintf("describing instance %s", id), err)
	}

	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			if aws.StringValue(instance.InstanceId) == id {
				return toInstance(instance), nil
			}
		}
	}
	return resources.Instance{}, resources.NewError(resources.KindCloud, fmt.Sprintf("describing instance %s", id), resources.ErrInstanceNotFound)
}

func (d *SDKInstanceDriver) list(ctx context.Context) ([]resources.Instance, error) {
	var instances []resources.Instance
	input := &ec2.DescribeInstancesInput{}
	for {
		output, err := d.ec2Client.DescribeInstancesWithContext(ctx, input)
		if err != nil {
			return nil, resources.NewError(resources.KindCloud, "listing instances", err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toInstance(instance))
			}
		}

		if aws.StringValue(output.NextToken) == "" {
			return instances, nil
		}
		input = &ec2.DescribeInstancesInput{NextToken: output.NextToken}
	}
}

func toInstance(instance *ec2.Instance) resources.Instance {
	state := ""
	if instance.State != nil {
		state = aws.StringValue(instance.State.Name)
	}
	return resources.Instance{
		InstanceID: aws.StringValue(instance.InstanceId),
		State:      state,
		PublicDNS:  aws.StringValue(instance.PublicDnsName),
	}
}
