package resources

import "context"

const (
	InstancePending      = "pending"
	InstanceRunning      = "running"
	InstanceShuttingDown = "shutting-down"
	InstanceTerminated   = "terminated"
	InstanceStopping     = "stopping"
	InstanceStopped      = "stopped"
)

type Instance struct {
	InstanceID string
	State      string
	PublicDNS  string
}

func (i Instance) ID() string {
	return i.InstanceID
}

func (i Instance) Status() string {
	return i.State
}

// InstanceDriverConfig describes the instance Locate adopts or launches.
type InstanceDriverConfig struct {
	InstanceID        string
	AMI               string
	InstanceType      string
	KeyName           string
	SecurityGroupName string
	Description       string
}

//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	Locate(ctx context.Context, driverConfig InstanceDriverConfig) (Instance, error)
	Status(ctx context.Context, instance Instance) (Instance, error)
	Start(ctx context.Context, instance Instance) (Instance, error)
	Stop(ctx context.Context, instance Instance) (Instance, error)
	Terminate(ctx context.Context, instance Instance) error
}
