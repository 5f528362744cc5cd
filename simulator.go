package pydesim

import "io"

// ModelFactory builds a root model that participates in the hierarchy,
// given the simulator it will belong to. This is the Go shape of the
// root-model construction policy's first branch ("type descends from
// Model base -> instantiate T(sim)").
type ModelFactory func(sim *Simulator) Model

// DataFactory builds an arbitrary root value from the run's parameter
// bag, with no back-reference to the simulator. This covers both the
// "create factory" and the plain-constructor branches of the root-model
// construction policy: Go has no runtime notion of "a type exposing a
// static create method", so both collapse onto the same shape here.
type DataFactory func(params ParamBag) any

// Simulator is the facade assembled at construction time: it bundles
// the kernel, the parameter bag, the handler registry, the logger and
// the root user model ("data").
type Simulator struct {
	kernel   *Kernel
	params   ParamBag
	handlers *HandlerRegistry
	logger   Logger
	data     any
	runID    string
}

// Options configure a single simulation run, mirroring the embedding
// API's simulate(data, init?, fin?, handlers?, params?, stime_limit?,
// loglevel?) signature.
type Options struct {
	Init       func(sim *Simulator)
	Fin        func(sim *Simulator)
	Handlers   map[string]any
	Params     map[string]any
	StimeLimit float64
	LogLevel   Level
	LogWriter  io.Writer
	Observers  []Observer
}

// newSimulator assembles a Simulator and constructs its root model per
// the construction policy:
//  1. data is a ModelFactory -> invoked as T(sim).
//  2. data is a DataFactory -> invoked as T(params), no sim passed.
//  3. otherwise -> adopted as-is (an already-constructed value, Model or
//     not).
func newSimulator(data any, opts Options) *Simulator {
	logger := Logger(NewStdLogger(opts.LogLevel, opts.LogWriter))

	sim := &Simulator{
		kernel:   NewKernel(logger),
		params:   NewParamBag(opts.Params),
		handlers: NewHandlerRegistry(opts.Handlers),
		logger:   logger,
		runID:    generateEventID(),
	}
	for _, obs := range opts.Observers {
		_ = sim.kernel.RegisterObserver(obs)
	}

	switch t := data.(type) {
	case ModelFactory:
		sim.data = t(sim)
	case DataFactory:
		sim.data = t(sim.params)
	default:
		sim.data = data
	}

	sim.kernel.Setup(opts.StimeLimit)
	return sim
}

// Kernel returns the simulator's kernel, for components (like Connection)
// that need to schedule directly.
func (s *Simulator) Kernel() *Kernel { return s.kernel }

// Schedule is a pass-through to the kernel.
func (s *Simulator) Schedule(delay float64, handler Handler, args []any, kwargs map[string]any) (uint64, error) {
	return s.kernel.Schedule(delay, handler, args, kwargs)
}

// Cancel is a pass-through to the kernel.
func (s *Simulator) Cancel(id uint64) { s.kernel.Cancel(id) }

// STime is a pass-through to the kernel.
func (s *Simulator) STime() float64 { return s.kernel.STime() }

// NumEvents is a pass-through to the kernel.
func (s *Simulator) NumEvents() int { return s.kernel.NumEvents() }

// Params returns the run's parameter bag.
func (s *Simulator) Params() ParamBag { return s.params }

// Data returns the root user model.
func (s *Simulator) Data() any { return s.data }

// Handlers returns the run's handler registry.
func (s *Simulator) Handlers() *HandlerRegistry { return s.handlers }

// Logger returns the run's logger.
func (s *Simulator) Logger() Logger { return s.logger }

// RunID returns a unique identifier for this run, distinct across the
// runs of a parameter sweep. It has no bearing on event ids, which stay
// monotonic integers scoped to a single kernel.
func (s *Simulator) RunID() string { return s.runID }

// Simulate is the top-level orchestration entry point: it constructs a
// Simulator, runs its dispatch loop to completion, and returns the
// resulting context. If opts.Params describes a sweep (via
// SimulateSweep instead), each run is fully isolated: its own kernel,
// its own model graph, sharing nothing with any other run.
func Simulate(data any, opts Options) (*Simulator, error) {
	sim := newSimulator(data, opts)
	if err := sim.kernel.Run(sim, opts.Init, opts.Fin); err != nil {
		return sim, err
	}
	return sim, nil
}

// SimulateSweep runs one isolated simulation per entry in paramSets, in
// order, returning one Simulator per run. opts.Params is ignored; each
// element of paramSets supplies that run's parameter bag instead.
func SimulateSweep(data any, paramSets []map[string]any, opts Options) ([]*Simulator, error) {
	results := make([]*Simulator, 0, len(paramSets))
	for _, params := range paramSets {
		runOpts := opts
		runOpts.Params = params
		sim, err := Simulate(data, runOpts)
		results = append(results, sim)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
