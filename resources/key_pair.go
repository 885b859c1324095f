package resources

import "context"

// KeyPair names an EC2 key pair and the local file holding its private key.
type KeyPair struct {
	Name    string
	PemPath string
}

//counterfeiter:generate . KeyPairDriver
type KeyPairDriver interface {
	Ensure(ctx context.Context, name string, dir string) (KeyPair, error)
	Delete(ctx context.Context, keyPair KeyPair) error
}
