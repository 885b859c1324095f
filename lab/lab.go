package lab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"awslab/config"
	"awslab/driverset"
	"awslab/logging"
	"awslab/manifest"
	"awslab/resources"

	"github.com/sirupsen/logrus"
)

// Lab drives the lifecycle of one lab instance and the shared security group
// and key pair it depends on.
type Lab struct {
	bootstrap config.Bootstrap
	logger    *logrus.Entry
}

func New(logDest io.Writer, c config.Bootstrap) *Lab {
	return &Lab{
		bootstrap: c,
		logger:    logging.New(logDest, "Lab").WithField("region", c.Region),
	}
}

// Bootstrap makes sure the security group and key pair exist.
func (l *Lab) Bootstrap(ctx context.Context, ds driverset.RegionDriverSet) error {
	_, _, err := l.ensureShared(ctx, ds)
	return err
}

func (l *Lab) ensureShared(ctx context.Context, ds driverset.RegionDriverSet) (resources.SecurityGroup, resources.KeyPair, error) {
	group, err := ds.SecurityGroupDriver().Ensure(ctx, l.bootstrap.SecurityGroup)
	if err != nil {
		return resources.SecurityGroup{}, resources.KeyPair{}, fmt.Errorf("ensuring security group: %w", err)
	}
	l.logger.Infof("security group %s is ready", group.Name)

	keyPair, err := ds.KeyPairDriver().Ensure(ctx, l.bootstrap.KeyPair, l.bootstrap.SSHPath)
	if err != nil {
		return resources.SecurityGroup{}, resources.KeyPair{}, fmt.Errorf("ensuring key pair: %w", err)
	}
	l.logger.Infof("key pair %s is ready", keyPair.Name)

	return group, keyPair, nil
}

// Start brings the instance up, creating it if needed, applies the configured
// rules and runs the bootstrap commands the first time only.
func (l *Lab) Start(ctx context.Context, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error {
	startTime := time.Now()
	defer func(startTime time.Time) {
		l.logger.Debugf("completed Start() in %f minutes", time.Since(startTime).Minutes())
	}(startTime)

	if instanceConfig.ID == "" {
		l.logger.Info("creating a new instance")
	} else {
		l.logger.Infof("starting instance %s", instanceConfig.ID)
	}

	group, keyPair, err := l.ensureShared(ctx, ds)
	if err != nil {
		return err
	}

	instances := ds.InstanceDriver()
	instance, err := instances.Locate(ctx, resources.InstanceDriverConfig{
		InstanceID:        instanceConfig.ID,
		AMI:               instanceConfig.AMI,
		InstanceType:      instanceConfig.Type,
		KeyName:           keyPair.Name,
		SecurityGroupName: group.Name,
		Description:       instanceConfig.Description,
	})
	if err != nil {
		return fmt.Errorf("locating instance: %w", err)
	}

	if instance.State == resources.InstanceStopping {
		instance, err = instances.Stop(ctx, instance)
		if err != nil {
			return fmt.Errorf("waiting for instance to stop: %w", err)
		}
	}

	if instance.State != resources.InstanceRunning {
		instance, err = instances.Start(ctx, instance)
		if err != nil {
			return fmt.Errorf("starting instance: %w", err)
		}
	}
	l.logger.Infof("instance %s is running at %s", instance.InstanceID, instance.PublicDNS)

	instanceConfig.Launched(instance.InstanceID, instance.PublicDNS)
	if err := l.save(store, instanceConfig); err != nil {
		return err
	}

	rules := instanceConfig.ResourceRules()
	if len(rules) > 0 {
		l.logger.Infof("applying %d security group rules", len(rules))
		if err := ds.SecurityGroupDriver().AddRules(ctx, group, rules); err != nil {
			l.logger.Warnf("some security group rules were not applied: %s", err)
		}
	}

	target := resources.SSHTarget{
		User:    instanceConfig.SSHUser,
		Host:    instance.PublicDNS,
		Port:    l.bootstrap.SSHPort,
		KeyPath: keyPair.PemPath,
	}

	shell := ds.ShellDriver()
	l.logger.Info("waiting until the instance is ready to receive commands")
	if err := shell.WaitReady(ctx, target); err != nil {
		return fmt.Errorf("waiting for SSH: %w", err)
	}

	if !instanceConfig.ClaimFirstRun() {
		l.logger.Info(`the "first_run" key is set to false, no commands executed`)
		return nil
	}
	if err := l.save(store, instanceConfig); err != nil {
		return err
	}

	l.logger.Infof("running %d bootstrap commands", len(instanceConfig.Commands))
	if err := shell.Run(ctx, target, instanceConfig.Commands); err != nil {
		return fmt.Errorf("running bootstrap commands: %w", err)
	}
	return nil
}

// Stop stops the configured instance and forgets its public DNS name.
func (l *Lab) Stop(ctx context.Context, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error {
	if err := requireID("stop", instanceConfig); err != nil {
		l.critical(err)
		return nil
	}

	instances := ds.InstanceDriver()
	instance, err := instances.Status(ctx, resources.Instance{InstanceID: instanceConfig.ID})
	if err != nil {
		return fmt.Errorf("locating instance: %w", err)
	}

	instanceConfig.Stopped()
	if err := l.save(store, instanceConfig); err != nil {
		return err
	}

	if instance.State == resources.InstanceStopped {
		l.logger.Infof("instance %s is already stopped", instance.InstanceID)
		return nil
	}

	if _, err := instances.Stop(ctx, instance); err != nil {
		return fmt.Errorf("stopping instance: %w", err)
	}
	l.logger.Infof("instance %s is stopped", instance.InstanceID)
	return nil
}

// Terminate destroys the configured instance and resets the config so the
// next start creates a fresh instance and runs the commands again.
func (l *Lab) Terminate(ctx context.Context, ds driverset.RegionDriverSet, instanceConfig *config.Instance, store config.Store) error {
	if err := requireID("terminate", instanceConfig); err != nil {
		l.critical(err)
		return nil
	}

	instances := ds.InstanceDriver()
	instance, err := instances.Status(ctx, resources.Instance{InstanceID: instanceConfig.ID})
	notFound := errors.Is(err, resources.ErrInstanceNotFound)
	if err != nil && !notFound {
		return fmt.Errorf("locating instance: %w", err)
	}

	id := instanceConfig.ID
	instanceConfig.Terminated()
	if err := l.save(store, instanceConfig); err != nil {
		return err
	}

	if notFound || instance.State == resources.InstanceTerminated {
		l.logger.Warnf("instance %s no longer exists, config has been reset", id)
		return nil
	}

	if err := instances.Terminate(ctx, instance); err != nil {
		return fmt.Errorf("terminating instance: %w", err)
	}
	l.logger.Infof("instance %s is terminated", id)
	return nil
}

// Status writes the live state of the configured instance to out as YAML.
func (l *Lab) Status(ctx context.Context, ds driverset.RegionDriverSet, instanceConfig *config.Instance, out io.Writer) error {
	if err := requireID("report status", instanceConfig); err != nil {
		return err
	}

	instance, err := ds.InstanceDriver().Status(ctx, resources.Instance{InstanceID: instanceConfig.ID})
	if err != nil {
		return fmt.Errorf("describing instance: %w", err)
	}

	return manifest.New(l.bootstrap, instanceConfig, instance).Write(out)
}

func (l *Lab) save(store config.Store, instanceConfig *config.Instance) error {
	if err := store.Save(instanceConfig); err != nil {
		return resources.NewError(resources.KindConfig, "saving instance config", err)
	}
	return nil
}

func (l *Lab) critical(err error) {
	l.logger.WithField("severity", "critical").Error(err)
}

func requireID(verb string, instanceConfig *config.Instance) error {
	if instanceConfig.ID != "" {
		return nil
	}
	return resources.NewError(resources.KindMissingID, fmt.Sprintf("cannot %s: invalid instance id %q", verb, instanceConfig.ID), nil)
}
