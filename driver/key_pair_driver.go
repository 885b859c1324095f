package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"awslab/logging"
	"awslab/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/sirupsen/logrus"
)

const errCodeKeyPairNotFound = "InvalidKeyPair.NotFound"

type SDKKeyPairDriver struct {
	ec2Client EC2Client
	logger    *logrus.Entry
}

func NewKeyPairDriver(logDest io.Writer, ec2Client EC2Client) *SDKKeyPairDriver {
	logger := logging.New(logDest, "KeyPairDriver")

	return &SDKKeyPairDriver{ec2Client: ec2Client, logger: logger}
}

// Ensure makes sure the key pair exists remotely. A newly created private key
// is written to dir/name.pem readable only by the owner.
func (d *SDKKeyPairDriver) Ensure(ctx context.Context, name string, dir string) (resources.KeyPair, error) {
	if err := verifyKeyDir(dir); err != nil {
		return resources.KeyPair{}, resources.NewError(resources.KindEnvironment, "checking ssh_path", err)
	}

	keyPair := resources.KeyPair{Name: name, PemPath: filepath.Join(dir, name+".pem")}

	exists, err := d.exists(ctx, name)
	if err != nil {
		return resources.KeyPair{}, err
	}

	if exists {
		d.logger.Infof("reusing existing key pair %s", name)
		if _, err := os.Stat(keyPair.PemPath); errors.Is(err, os.ErrNotExist) {
			d.logger.Warnf("key pair %s exists but %s is missing, SSH access will fail", name, keyPair.PemPath)
		}
		return keyPair, nil
	}

	d.logger.Infof("creating key pair %s", name)
	output, err := d.ec2Client.CreateKeyPairWithContext(ctx, &ec2.CreateKeyPairInput{
		KeyName: aws.String(name),
	})
	if err != nil {
		return resources.KeyPair{}, resources.NewError(resources.KindCloud, fmt.Sprintf("creating key pair %s", name), err)
	}

	if err := writePrivateKey(keyPair.PemPath, aws.StringValue(output.KeyMaterial)); err != nil {
		d.logger.Errorf("key pair %s was created but its private key could not be saved", name)
		return resources.KeyPair{}, resources.NewError(resources.KindEnvironment, fmt.Sprintf("saving private key for %s", name), err)
	}
	d.logger.Infof("saved private key to %s", keyPair.PemPath)

	return keyPair, nil
}

func (d *SDKKeyPairDriver) exists(ctx context.Context, name string) (bool, error) {
	output, err := d.ec2Client.DescribeKeyPairsWithContext(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []*string{aws.String(name)},
	})
	if err != nil {
		if isAWSCode(err, errCodeKeyPairNotFound) {
			return false, nil
		}
		return false, resources.NewError(resources.KindCloud, fmt.Sprintf("describing key pair %s", name), err)
	}

	for _, info := range output.KeyPairs {
		if aws.StringValue(info.KeyName) == name {
			return true, nil
		}
	}
	return false, nil
}

func (d *SDKKeyPairDriver) Delete(ctx context.Context, keyPair resources.KeyPair) error {
	d.logger.Infof("deleting key pair %s", keyPair.Name)
	_, err := d.ec2Client.DeleteKeyPairWithContext(ctx, &ec2.DeleteKeyPairInput{
		KeyName: aws.String(keyPair.Name),
	})
	if err != nil {
		return resources.NewError(resources.KindCloud, fmt.Sprintf("deleting key pair %s", keyPair.Name), err)
	}
	return nil
}

func verifyKeyDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// an existing file is never overwritten
func writePrivateKey(path string, material string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(material); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
