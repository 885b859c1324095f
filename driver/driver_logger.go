package driver

import "github.com/sirupsen/logrus"

// driverLogger routes aws-sdk-go request logging into logrus.
type driverLogger struct {
	logger logrus.FieldLogger
}

func newDriverLogger(l logrus.FieldLogger) driverLogger {
	return driverLogger{logger: l}
}

func (l driverLogger) Log(args ...interface{}) {
	l.logger.Debug(args...)
}
