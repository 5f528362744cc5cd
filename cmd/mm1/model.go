package main

import (
	"math/rand/v2"

	"github.com/larioandr/pydesim"
)

// exponential returns a variate from the exponential distribution with
// the given mean, mirroring numpy's mean-parameterized exponential().
// Random-variate generation is intentionally a caller concern, not the
// kernel's, which only ever sees non-negative delay scalars; this is
// demo glue, not a kernel dependency.
func exponential(mean float64) float64 {
	return mean * rand.ExpFloat64()
}

// QueueingSystem is the top-level model for the M/M/1 demonstration: a
// single queue fed by a Poisson source and drained by an exponential
// server, with a sink counting departures.
type QueueingSystem struct {
	*pydesim.BaseModel

	systemSizeTrace *Trace
}

func NewQueueingSystem(sim *pydesim.Simulator) pydesim.Model {
	arrivalMean, err := sim.Params().Float64("arrival_mean")
	if err != nil {
		panic(err)
	}
	serviceMean, err := sim.Params().Float64("service_mean")
	if err != nil {
		panic(err)
	}
	capacity := sim.Params().GetDefault("capacity", -1)

	qs := &QueueingSystem{systemSizeTrace: &Trace{}}
	qs.BaseModel = pydesim.NewBaseModel(sim, qs)
	qs.systemSizeTrace.Record(sim.STime(), 0)

	qs.Children().Set("queue", NewQueue(sim, qs, capacity.(int)))
	qs.Children().Set("source", NewSource(sim, qs, arrivalMean))
	qs.Children().Set("server", NewServer(sim, qs, serviceMean))
	qs.Children().Set("sink", NewSink(sim, qs))

	return qs
}

func (qs *QueueingSystem) queue() *Queue   { v, _ := qs.Children().Get("queue"); return v.(*Queue) }
func (qs *QueueingSystem) source() *Source { v, _ := qs.Children().Get("source"); return v.(*Source) }
func (qs *QueueingSystem) server() *Server { v, _ := qs.Children().Get("server"); return v.(*Server) }
func (qs *QueueingSystem) sink() *Sink     { v, _ := qs.Children().Get("sink"); return v.(*Sink) }

func (qs *QueueingSystem) systemSize() int {
	busy := 0
	if qs.server().busy {
		busy = 1
	}
	return qs.queue().size + busy
}

func (qs *QueueingSystem) updateSystemSize() {
	qs.systemSizeTrace.Record(qs.Sim().STime(), float64(qs.systemSize()))
}

// Queue holds the current queue size only; the head-of-line packet
// starts service immediately rather than ever sitting "in" the queue.
type Queue struct {
	*pydesim.BaseModel

	capacity  int
	size      int
	sizeTrace *Trace
}

func NewQueue(sim *pydesim.Simulator, qs *QueueingSystem, capacity int) *Queue {
	q := &Queue{capacity: capacity, sizeTrace: &Trace{}}
	q.BaseModel = pydesim.NewBaseModel(sim, q)
	q.sizeTrace.Record(sim.STime(), 0)
	return q
}

func (q *Queue) system() *QueueingSystem { return q.Parent().(*QueueingSystem) }
func (q *Queue) server() *Server         { return q.system().server() }

func (q *Queue) push() {
	switch {
	case q.size == 0 && !q.server().busy:
		q.server().startService()
	case q.capacity < 0 || q.size < q.capacity:
		q.size++
		q.sizeTrace.Record(q.Sim().STime(), float64(q.size))
	}
	q.system().updateSystemSize()
}

func (q *Queue) pop() {
	q.size--
	q.sizeTrace.Record(q.Sim().STime(), float64(q.size))
}

// Source generates exponential inter-arrival times and pushes each
// arrival onto the queue.
type Source struct {
	*pydesim.BaseModel

	arrivalMean float64
	intervals   *Intervals
}

func NewSource(sim *pydesim.Simulator, qs *QueueingSystem, arrivalMean float64) *Source {
	s := &Source{arrivalMean: arrivalMean, intervals: &Intervals{}}
	s.BaseModel = pydesim.NewBaseModel(sim, s)
	s.scheduleNextArrival()
	return s
}

func (s *Source) system() *QueueingSystem { return s.Parent().(*QueueingSystem) }

func (s *Source) onTimeout(args []any, kwargs map[string]any) {
	s.system().queue().push()
	s.scheduleNextArrival()
}

func (s *Source) scheduleNextArrival() {
	s.intervals.Record(s.Sim().STime())
	handler := pydesim.Bound(s, "Source.onTimeout", s.onTimeout)
	_, _ = s.Sim().Schedule(exponential(s.arrivalMean), handler, nil, nil)
}

// Server serves one packet at a time with an exponential service time.
type Server struct {
	*pydesim.BaseModel

	serviceMean float64
	busy        bool
	delays      *Statistic
	busyTrace   *Trace
}

func NewServer(sim *pydesim.Simulator, qs *QueueingSystem, serviceMean float64) *Server {
	srv := &Server{serviceMean: serviceMean, delays: &Statistic{}, busyTrace: &Trace{}}
	srv.BaseModel = pydesim.NewBaseModel(sim, srv)
	srv.busyTrace.Record(sim.STime(), 0)
	return srv
}

func (srv *Server) system() *QueueingSystem { return srv.Parent().(*QueueingSystem) }
func (srv *Server) queue() *Queue           { return srv.system().queue() }
func (srv *Server) sink() *Sink             { return srv.system().sink() }

func (srv *Server) onServiceEnd(args []any, kwargs map[string]any) {
	srv.busy = false
	srv.busyTrace.Record(srv.Sim().STime(), 0)
	if srv.queue().size > 0 {
		srv.queue().pop()
		srv.startService()
	}
	srv.sink().receivePacket()
	srv.system().updateSystemSize()
}

func (srv *Server) startService() {
	delay := exponential(srv.serviceMean)
	handler := pydesim.Bound(srv, "Server.onServiceEnd", srv.onServiceEnd)
	_, _ = srv.Sim().Schedule(delay, handler, nil, nil)
	srv.delays.Append(delay)
	srv.busy = true
	srv.busyTrace.Record(srv.Sim().STime(), 1)
}

// Sink counts departures by recording the timestamp of every packet
// that finishes service.
type Sink struct {
	*pydesim.BaseModel

	departures *Intervals
}

func NewSink(sim *pydesim.Simulator, qs *QueueingSystem) *Sink {
	sink := &Sink{departures: &Intervals{}}
	sink.BaseModel = pydesim.NewBaseModel(sim, sink)
	sink.departures.Record(sim.STime())
	return sink
}

func (sink *Sink) receivePacket() {
	sink.departures.Record(sink.Sim().STime())
}
