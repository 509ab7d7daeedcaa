// Package engine is the single evaluation entry point: it owns the stuck
// detector, the current topology snapshot and the live policy.
package engine

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/yourusername/edgejump/internal/relocate"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/stuck"
	"github.com/yourusername/edgejump/internal/types"
)

// Kind is the platform message kind attached to a sample.
type Kind string

const (
	KindMove   Kind = "move"
	KindButton Kind = "button"
	KindWheel  Kind = "wheel"
)

// Sample is one raw input notification.
type Sample struct {
	Kind   Kind
	Mouse  types.Point // Raw hardware mouse position
	Cursor types.Point // OS cursor position at the time of the sample
}

// ScreenSource enumerates the current physical screens.
type ScreenSource interface {
	Screens(ctx context.Context) ([]screen.Screen, error)
}

// CursorController queries and sets the OS cursor position.
type CursorController interface {
	CursorPos(ctx context.Context) (types.Point, error)
	SetCursorPos(ctx context.Context, p types.Point) error
}

// Stats is a point-in-time view of engine counters.
type Stats struct {
	Evaluations  uint64
	Jumps        uint64
	PassThrough  uint64
	Declined     uint64
	Screens      int
	Generation   string
	Reconfigures uint64
}

// Options configures a new Engine.
type Options struct {
	Policy       relocate.Policy
	ReferenceDPI int
	Logger       zerolog.Logger
}

// Engine evaluates samples against the current topology.
//
// Evaluate must be called from a single goroutine (the input path).
// Reconfigure and SetPolicy may be called from any goroutine.
type Engine struct {
	detector *stuck.Detector // owned by the input path

	topology      atomic.Pointer[screen.Topology]
	reconfiguring atomic.Bool
	policy        atomic.Pointer[relocate.Policy]

	referenceDPI int
	log          zerolog.Logger

	evaluations  atomic.Uint64
	jumps        atomic.Uint64
	passThrough  atomic.Uint64
	declined     atomic.Uint64
	reconfigures atomic.Uint64
}

// New creates an engine with no topology. Every sample passes through until
// the first Reconfigure.
func New(opts Options) *Engine {
	e := &Engine{
		detector:     stuck.NewDetector(types.Point{}),
		referenceDPI: opts.ReferenceDPI,
		log:          opts.Logger,
	}
	e.SetPolicy(opts.Policy)
	return e
}

// SetPolicy replaces the policy flags. The next evaluation sees the new value.
func (e *Engine) SetPolicy(p relocate.Policy) {
	e.policy.Store(&p)
}

// Policy returns the current policy flags.
func (e *Engine) Policy() relocate.Policy {
	return *e.policy.Load()
}

// Topology returns the current topology snapshot, or nil before the first
// Reconfigure.
func (e *Engine) Topology() *screen.Topology {
	return e.topology.Load()
}

// Seed sets the detector's previous sample, typically to the cursor position
// read at startup. Must be called from the input path.
func (e *Engine) Seed(p types.Point) {
	e.detector.Reset(p)
}

// Reconfigure replaces the topology. While the new topology is being built,
// Evaluate passes every sample through untouched.
func (e *Engine) Reconfigure(screens []screen.Screen) *screen.Topology {
	e.reconfiguring.Store(true)
	defer e.reconfiguring.Store(false)

	topo := screen.NewTopology(screens, e.referenceDPI)
	e.topology.Store(topo)
	e.reconfigures.Add(1)

	e.log.Info().
		Str("generation", topo.Generation()).
		Int("screens", topo.Len()).
		Str("bounds", topo.Bounds().String()).
		Msg("topology rebuilt")

	for _, s := range topo.Screens() {
		e.log.Debug().
			Int("id", s.ID).
			Str("name", s.Name).
			Str("bounds", s.Bounds.String()).
			Int("dpi", s.DPI).
			Bool("primary", s.Primary).
			Msg("screen")
	}

	return topo
}

// Evaluate runs one sample through the detector and relocator.
// Only move samples are considered; everything else passes through.
func (e *Engine) Evaluate(sample Sample) relocate.Decision {
	if sample.Kind != KindMove {
		e.passThrough.Add(1)
		return relocate.Decline(relocate.ActionNone, relocate.ReasonIgnored)
	}
	if e.reconfiguring.Load() {
		e.passThrough.Add(1)
		return relocate.Decline(relocate.ActionNone, relocate.ReasonReconfiguring)
	}
	topo := e.topology.Load()
	if topo == nil || topo.Len() == 0 {
		e.passThrough.Add(1)
		return relocate.Decline(relocate.ActionNone, relocate.ReasonNoTarget)
	}

	e.evaluations.Add(1)
	res := e.detector.Evaluate(topo, sample.Mouse, sample.Cursor)
	dec := relocate.Relocate(res, e.Policy(), topo)

	if !dec.Moved {
		if res.Stuck {
			e.declined.Add(1)
			e.log.Debug().
				Str("reason", string(dec.Reason)).
				Str("direction", res.Direction.String()).
				Str("mouse", sample.Mouse.String()).
				Str("cursor", sample.Cursor.String()).
				Msg("stuck, not moving")
		}
		return dec
	}

	e.detector.RecordJump()
	e.jumps.Store(e.detector.Jumps())

	ev := e.log.Debug().
		Str("action", string(dec.Action)).
		Str("direction", res.Direction.String()).
		Str("mouse", sample.Mouse.String()).
		Str("cursor", sample.Cursor.String()).
		Str("to", dec.Position.String()).
		Uint64("jumps", e.detector.Jumps())
	if res.CursorScreen != nil {
		ev = ev.Int("outside", res.CursorScreen.Bounds.OutsideDistance(sample.Mouse))
	}
	ev.Msg("cursor relocated")

	return dec
}

// Stats returns the current counters.
func (e *Engine) Stats() Stats {
	st := Stats{
		Evaluations:  e.evaluations.Load(),
		Jumps:        e.jumps.Load(),
		PassThrough:  e.passThrough.Load(),
		Declined:     e.declined.Load(),
		Reconfigures: e.reconfigures.Load(),
	}
	if topo := e.topology.Load(); topo != nil {
		st.Screens = topo.Len()
		st.Generation = topo.Generation()
	}
	return st
}

// Refresh enumerates screens from src and reconfigures.
func (e *Engine) Refresh(ctx context.Context, src ScreenSource) (*screen.Topology, error) {
	screens, err := src.Screens(ctx)
	if err != nil {
		return nil, err
	}
	return e.Reconfigure(screens), nil
}

// Apply evaluates a sample and, when the decision moves the cursor, sets it
// through cur. It is the in-process counterpart of the helper protocol's
// hook.resolve.
func (e *Engine) Apply(ctx context.Context, sample Sample, cur CursorController) (relocate.Decision, error) {
	dec := e.Evaluate(sample)
	if !dec.Moved {
		return dec, nil
	}
	if err := cur.SetCursorPos(ctx, dec.Position); err != nil {
		return dec, err
	}
	return dec, nil
}
