package host

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/pkg/errors"
	psHost "github.com/shirou/gopsutil/host"
)

func MachineId() (string, error) {
	machineId, err := machineid.ID()
	if err != nil {
		return "", errors.WithMessage(err, "get machine id")
	}
	return machineId, nil
}

// Identity describes the host the monitor runs on, logged once at startup.
type Identity struct {
	MachineId string
	Hostname  string
	OS        string
	Platform  string
}

func DescribeIdentity() (*Identity, error) {
	machineId, err := MachineId()
	if err != nil {
		return nil, err
	}

	hostInfo, err := psHost.Info()
	if err != nil {
		return nil, errors.WithMessage(err, "get host info")
	}

	return &Identity{
		MachineId: machineId,
		Hostname:  hostInfo.Hostname,
		OS:        hostInfo.OS,
		Platform:  hostInfo.Platform,
	}, nil
}
