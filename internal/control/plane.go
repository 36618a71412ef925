package control

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/ghostmon/agent/internal/collect"
	"github.com/ghostmon/agent/internal/reports"
	"github.com/ghostmon/agent/internal/sessions"
	"github.com/ghostmon/agent/internal/snapshot"
	"github.com/ghostmon/agent/internal/state"
	"github.com/ghostmon/agent/internal/types"
)

// Renderer turns one tab report into a drawable frame. It performs no
// classification of its own.
type Renderer interface {
	Render(report *reports.TabReport) string
}

// FrameSink receives rendered frames, normally the terminal screen.
type FrameSink interface {
	Draw(frame string) error
}

// Plane drives the monitor: one synchronous snapshot→classify→aggregate→render
// cycle per tick, each cycle built entirely from scratch. A cycle whose
// external tools fail is abandoned and the previous frame stays on screen; the
// next attempt happens after the normal interval.
type Plane struct {
	logger    *zap.Logger
	config    *PlaneConfig
	context   context.Context
	cancel    context.CancelFunc
	waitGroup sync.WaitGroup
	running   *atomic.Bool
	clock     Clock

	processLister collect.ProcessLister
	cwdResolver   collect.WorkingDirResolver
	locator       *sessions.Locator
	renderer      Renderer
	sink          FrameSink
	state         *state.State
}

func NewPlane(ctx context.Context, rootLogger *zap.Logger, config *PlaneConfig,
	processLister collect.ProcessLister, cwdResolver collect.WorkingDirResolver,
	renderer Renderer, sink FrameSink, clock Clock) (*Plane, error) {
	if valid, err := config.Valid(); !valid {
		return nil, errors.WithMessage(err, "invalid plane config")
	}

	logger := rootLogger.Named("monitor-plane")
	ctx, cancel := context.WithCancel(ctx)

	return &Plane{
		logger:        logger,
		config:        config,
		context:       ctx,
		cancel:        cancel,
		running:       atomic.NewBool(false),
		clock:         clock,
		processLister: processLister,
		cwdResolver:   cwdResolver,
		locator:       sessions.NewLocator(rootLogger),
		renderer:      renderer,
		sink:          sink,
		state:         state.NewState(),
	}, nil
}

func (p *Plane) Start() error {
	if !p.running.CAS(false, true) {
		return errors.New("monitor plane already running")
	}

	p.waitGroup.Add(1)
	go p.loop()
	return nil
}

func (p *Plane) loop() {
	defer p.waitGroup.Done()

	for {
		p.runCycle()

		select {
		case <-p.context.Done():
			return
		case <-p.clock.After(p.config.RefreshInterval):
		}
	}
}

// runCycle performs one full poll cycle. Failures to obtain an external tool's
// output abandon the cycle; everything else degrades per tab or per row.
func (p *Plane) runCycle() {
	raw, err := p.processLister.Collect(p.context)
	if err != nil {
		p.logger.Warn("Failed to list processes, keeping previous frame", zap.Error(err),
			zap.String("Collector", p.processLister.Name()))
		return
	}

	records, parseErrs := snapshot.ParseTable(raw)
	if parseErrs != nil {
		p.logger.Debug("Skipped malformed process rows", zap.Error(parseErrs))
	}

	tree := snapshot.BuildTree(records)
	located := p.locator.Locate(tree)

	cwds, err := p.cwdResolver.Resolve(p.context, shellPids(located))
	if err != nil {
		p.logger.Warn("Failed to resolve working directories, keeping previous frame", zap.Error(err),
			zap.String("Resolver", p.cwdResolver.Name()))
		return
	}

	report := reports.BuildTabReport(located, tree, cwds, p.config.RefreshInterval)
	frame := p.renderer.Render(report)

	if err := p.sink.Draw(frame); err != nil {
		p.logger.Warn("Failed to draw frame", zap.Error(err))
		return
	}

	p.state.KeepFrame(frame, report)
}

func shellPids(located []sessions.Located) []types.Pid {
	pids := make([]types.Pid, 0, len(located))
	for _, tab := range located {
		pids = append(pids, tab.ShellPid)
	}
	return pids
}

func (p *Plane) Stop() error {
	p.cancel()
	return nil
}

func (p *Plane) WaitUntilCompletion() {
	p.waitGroup.Wait()
	p.running.Store(false)
}

func (p *Plane) Running() bool {
	return p.running.Load()
}

// State exposes the retained last frame, mainly for tests and debugging.
func (p *Plane) State() *state.State {
	return p.state
}
