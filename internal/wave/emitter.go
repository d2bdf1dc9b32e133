// Package wave draws concentric rings that grow from an origin until they reach
// the farthest edge of their container, fading out on the way, in a staggered
// loop that repeats until stopped.
package wave

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/wavelayout/internal/layout"
)

// Host is the container the rings live in.
type Host interface {
	IsLaidOut() bool
	Size() (width, height float64)
	OnLaidOut(fn func()) (cancel func())
	AddAt(index int, el *layout.Element)
	Remove(el *layout.Element) bool
	FindByID(id string) (*layout.Element, bool)
}

type Option func(*Emitter)

func WithLogger(l *zap.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.log = l
		}
	}
}

// WithErrorHandler receives errors from a start that was deferred until layout.
func WithErrorHandler(fn func(error)) Option {
	return func(e *Emitter) { e.onError = fn }
}

// WithCycleHook is called every time a ring restarts its expansion.
func WithCycleHook(fn func(ring, cycle int)) Option {
	return func(e *Emitter) { e.onCycle = fn }
}

// Emitter owns the rings it adds to its host. All methods must be called from
// the host's frame goroutine.
type Emitter struct {
	host Host
	cfg  Config
	log  *zap.Logger

	onError func(error)
	onCycle func(ring, cycle int)

	rings   []*ring
	zoom    float64
	originX float64
	originY float64
	active  bool

	pending       bool
	cancelPending func()
}

func New(host Host, cfg Config, opts ...Option) (*Emitter, error) {
	if host == nil {
		return nil, errors.New("wave: nil host")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Emitter{host: host, cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.onError == nil {
		e.onError = func(err error) {
			e.log.Error("deferred wave start failed", zap.Error(err))
		}
	}
	return e, nil
}

func (e *Emitter) Config() Config { return e.cfg }

// Active reports whether rings are currently attached.
func (e *Emitter) Active() bool { return e.active }

// Pending reports whether Start is waiting for the host layout.
func (e *Emitter) Pending() bool { return e.pending }

// Zoom is the scale computed by the last launch.
func (e *Emitter) Zoom() float64 { return e.zoom }

// Origin is the ring centre computed by the last launch.
func (e *Emitter) Origin() (float64, float64) { return e.originX, e.originY }

// Start launches the rings, or defers the launch until the host is laid out.
// It is a no-op while rings are active or a launch is pending.
func (e *Emitter) Start() error {
	if e.active || e.pending {
		return nil
	}
	if !e.host.IsLaidOut() {
		e.pending = true
		e.cancelPending = e.host.OnLaidOut(func() {
			if !e.pending {
				return
			}
			e.pending = false
			e.cancelPending = nil
			if err := e.launch(); err != nil {
				e.onError(err)
			}
		})
		e.log.Debug("wave start deferred until layout")
		return nil
	}
	return e.launch()
}

func (e *Emitter) launch() error {
	cx, cy, err := e.resolveOrigin()
	if err != nil {
		return err
	}
	w, h := e.host.Size()
	e.originX, e.originY = cx, cy
	e.zoom = Zoom(cx, cy, w, h, e.cfg.BaseSize)

	delays := StaggerDelays(e.cfg.Count, e.cfg.Duration)
	e.rings = make([]*ring, 0, len(delays))
	for i, delay := range delays {
		r := newRing(i, delay, cx, cy, e.zoom, e.cfg, e.onCycle)
		e.host.AddAt(0, r.el)
		e.rings = append(e.rings, r)
		r.set.Start()
	}
	e.active = true

	e.log.Info("waves started",
		zap.Int("count", e.cfg.Count),
		zap.Float64("zoom", e.zoom),
		zap.Float64("origin_x", cx),
		zap.Float64("origin_y", cy),
		zap.Duration("duration", e.cfg.Duration),
	)
	return nil
}

func (e *Emitter) resolveOrigin() (float64, float64, error) {
	if e.cfg.Anchor != "" {
		el, ok := e.host.FindByID(e.cfg.Anchor)
		if !ok {
			return 0, 0, errors.Wrapf(ErrAnchorNotFound, "anchor %q", e.cfg.Anchor)
		}
		cx, cy := el.Center()
		return cx, cy, nil
	}
	w, h := e.host.Size()
	return e.cfg.OriginX.resolve(w), e.cfg.OriginY.resolve(h), nil
}

// Stop cancels every ring, detaches it from the host and drops any pending
// start. Calling it with nothing running does nothing.
func (e *Emitter) Stop() {
	if e.pending {
		if e.cancelPending != nil {
			e.cancelPending()
		}
		e.pending = false
		e.cancelPending = nil
	}
	if !e.active && len(e.rings) == 0 {
		return
	}
	for _, r := range e.rings {
		r.set.Cancel()
		e.host.Remove(r.el)
	}
	e.rings = nil
	e.active = false
	e.log.Info("waves stopped")
}

// Update advances every ring by dt.
func (e *Emitter) Update(dt time.Duration) {
	for _, r := range e.rings {
		if !e.active {
			return
		}
		r.set.Advance(dt)
	}
}

// Reconfigure swaps the configuration, restarting the rings if they were
// running or pending.
func (e *Emitter) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	restart := e.active || e.pending
	e.Stop()
	e.cfg = cfg
	if !restart {
		return nil
	}
	return e.Start()
}

// Rings returns a snapshot of the live rings in creation order.
func (e *Emitter) Rings() []RingState {
	out := make([]RingState, 0, len(e.rings))
	for _, r := range e.rings {
		out = append(out, r.state())
	}
	return out
}
