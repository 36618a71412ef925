package control

import (
	"time"

	"github.com/pkg/errors"
)

const (
	minRefreshInterval = time.Second
	minPanelWidth      = 24
)

type PlaneConfig struct {
	RefreshInterval time.Duration
	PanelWidth      int
}

func (pc *PlaneConfig) Valid() (bool, error) {
	if pc.RefreshInterval <= 0 {
		return false, errors.New("uninitialized refresh interval")
	} else if pc.RefreshInterval < minRefreshInterval {
		return false, errors.Errorf("below minimum allowed refresh interval (min: '%s')",
			minRefreshInterval.String())
	}

	if pc.PanelWidth <= 0 {
		return false, errors.New("uninitialized panel width")
	} else if pc.PanelWidth < minPanelWidth {
		return false, errors.Errorf("below minimum allowed panel width (min: %d)", minPanelWidth)
	}

	return true, nil
}
