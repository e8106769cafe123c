package solve

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/billx09/hpp-core/path"
)

// ResultExtractor is implemented by planners that can produce a final
// init-to-goal Path once the roadmap connects the two (birrtstar.Planner
// satisfies this via its ResultPath method). A PathPlanner that does not
// implement it simply never yields a result from FinishSolve.
type ResultExtractor interface {
	ResultPath() (path.Path, bool)
}

// PathExister is implemented by roadmaps that can report whether a
// solution currently exists (roadmap.Roadmap.PathExists).
type PathExister interface {
	PathExists() bool
}

// Driver orchestrates a single solve: startSolve, repeated oneStep, and
// finishSolve with result extraction. Its public entrypoint hands the step
// loop to a utils.PanicCapturingGo-wrapped goroutine and waits on a channel,
// so a panicking step surfaces as an error on the caller's goroutine instead
// of crashing the process.
type Driver struct {
	planner PathPlanner
	roadmap PathExister
	opts    *PlannerOptions
	logger  golog.Logger

	interrupted atomic.Bool
}

// NewDriver builds a Driver around planner (usually a *birrtstar.Planner)
// and the roadmap it plans over, used here only to observe PathExists
// between steps. opts defaults to NewBasicPlannerOptions if nil.
func NewDriver(planner PathPlanner, roadmap PathExister, opts *PlannerOptions, logger golog.Logger) *Driver {
	if opts == nil {
		opts = NewBasicPlannerOptions()
	}
	return &Driver{planner: planner, roadmap: roadmap, opts: opts, logger: logger}
}

// Interrupt sets the cooperative cancellation flag. The next Step call, or
// the step loop inside FinishSolve, observes it at the next oneStep
// boundary and returns ErrInterrupted without mutating roadmap state.
func (d *Driver) Interrupt() {
	d.interrupted.Store(true)
}

// Start runs startSolve, surfacing precondition failures to the caller.
func (d *Driver) Start() error {
	return d.planner.StartSolve()
}

// Step runs exactly one oneStep iteration, or returns ErrInterrupted
// without touching the planner if Interrupt was called first.
func (d *Driver) Step() error {
	if d.interrupted.Load() {
		return ErrInterrupted
	}
	return d.planner.OneStep()
}

// planReturn is what the background step loop hands back over the result
// channel.
type planReturn struct {
	waypoints []Waypoint
	err       error
}

// FinishSolve drives Step in a loop, bounded by opts.MaxSteps, until the
// roadmap connects init to a goal, the caller's context is cancelled, or
// Interrupt is observed; then extracts and (if PlannerOptions.Smooth)
// smooths the result path. The step loop itself runs on a
// utils.PanicCapturingGo-wrapped goroutine so a panicking OneStep surfaces
// as an error here rather than killing the calling goroutine.
func (d *Driver) FinishSolve(ctx context.Context, checkDirect checkPath) ([]Waypoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resultChan := make(chan planReturn, 1)
	utils.PanicCapturingGo(func() {
		defer func() {
			if r := recover(); r != nil {
				resultChan <- planReturn{err: fmt.Errorf("solve: step panicked: %v", r)}
			}
		}()
		resultChan <- d.runSteps()
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, result.err
		}
		if !d.opts.Smooth || checkDirect == nil {
			return result.waypoints, nil
		}
		return simpleSmooth(result.waypoints, checkDirect), nil
	}
}

func (d *Driver) runSteps() planReturn {
	extractor, _ := d.planner.(ResultExtractor)

	for step := 0; step < d.opts.MaxSteps; step++ {
		if err := d.Step(); err != nil {
			return planReturn{err: err}
		}

		if d.opts.LogInterval > 0 && step%d.opts.LogInterval == 0 {
			d.logger.Debugf("solve: step %d", step)
		}

		if !d.roadmap.PathExists() {
			continue
		}
		if extractor == nil {
			return planReturn{err: ErrNoPath}
		}
		result, ok := extractor.ResultPath()
		if !ok {
			continue
		}
		return planReturn{waypoints: flatten(result)}
	}
	return planReturn{err: ErrNoPath}
}

// flatten samples a Path's endpoints segment by segment into a waypoint
// list; birrtstar's extracted Composite already carries one waypoint per
// roadmap node along the solution, so this simply walks its breakpoints.
func flatten(p path.Path) []Waypoint {
	type segmented interface {
		Segments() []path.Path
	}
	if s, ok := p.(segmented); ok {
		segs := s.Segments()
		if len(segs) == 0 {
			return []Waypoint{p.Start()}
		}
		waypoints := make([]Waypoint, 0, len(segs)+1)
		waypoints = append(waypoints, segs[0].Start())
		for _, seg := range segs {
			waypoints = append(waypoints, seg.End())
		}
		return waypoints
	}
	return []Waypoint{p.Start(), p.End()}
}
