package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	pkgErrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ghostmon/agent/internal/collect"
	"github.com/ghostmon/agent/internal/control"
	wrappedErrors "github.com/ghostmon/agent/internal/errors"
	"github.com/ghostmon/agent/internal/host"
	"github.com/ghostmon/agent/internal/logging"
	"github.com/ghostmon/agent/internal/ui"
)

var options struct {
	RefreshInterval time.Duration `short:"i" long:"interval" description:"Dashboard refresh interval" default:"2s"`
	PanelWidth      int           `short:"w" long:"width" description:"Tab panel width" default:"40"`
	Debug           bool          `short:"d" long:"debug" description:"Debug mode"`
}

const (
	exitCodeErr = -1
)

var (
	logger       *zap.Logger
	monitorPlane *control.Plane
	screen       *ui.Screen
	signalsChan  = make(chan os.Signal, 1)
)

func main() {
	_, err := flags.Parse(&options)
	if err != nil {
		fmt.Printf("Failed to parse arguments: %v\n", err)
		os.Exit(exitCodeErr)
	}

	logger, err = logging.NewLogger("ghostmon", options.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(exitCodeErr)
	}

	setupSignalHandling()

	logHostIdentity()

	logger.Info("Start monitor")
	if err := startMonitor(); err != nil {
		logger.Fatal("Failed to start monitor", zap.Error(err))
	}
}

func setupSignalHandling() {
	signal.Notify(signalsChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalsChan
		logger.Info("Stop monitor")
		if err := stopMonitor(); err != nil {
			logger.Fatal("Failed to stop monitor", zap.Error(err))
		}
	}()
}

func logHostIdentity() {
	identity, err := host.DescribeIdentity()
	if err != nil {
		logger.Warn("Failed to describe host", zap.Error(err))
		return
	}

	logger.Info("Host identity", zap.String("MachineId", identity.MachineId),
		zap.String("Hostname", identity.Hostname), zap.String("OS", identity.OS),
		zap.String("Platform", identity.Platform))
}

func startMonitor() error {
	planeConfig := &control.PlaneConfig{
		RefreshInterval: options.RefreshInterval,
		PanelWidth:      options.PanelWidth,
	}

	screen = ui.NewScreen()

	var err error
	monitorPlane, err = control.NewPlane(context.Background(), logger, planeConfig,
		collect.NewPsTable(), collect.NewLsofCwdResolver(logger),
		ui.NewRenderer(options.PanelWidth), screen, control.NewSystemClock())
	if err != nil {
		return wrappedErrors.WrappedErrNewMonitorPlane(err)
	}

	screen.Enter()
	defer screen.Leave()

	if err := monitorPlane.Start(); err != nil {
		return wrappedErrors.WrappedErrStartMonitorPlane(err)
	}
	monitorPlane.WaitUntilCompletion()
	return nil
}

func stopMonitor() error {
	if monitorPlane == nil {
		return pkgErrors.New("uninitialized monitor plane")
	}

	if err := monitorPlane.Stop(); err != nil {
		return wrappedErrors.WrappedErrStopMonitorPlane(err)
	}

	return nil
}
