package errors

import "github.com/pkg/errors"

func WrappedErrNewMonitorPlane(err error) error {
	return errors.WithMessage(err, "new monitor plane")
}

func WrappedErrStartMonitorPlane(err error) error {
	return errors.WithMessage(err, "start monitor plane")
}

func WrappedErrStopMonitorPlane(err error) error {
	return errors.WithMessage(err, "stop monitor plane")
}
