// Command mm1 runs the M/M/1 queueing demonstration model against the
// pydesim kernel and prints the usual steady-state estimates. It
// validates the kernel against a real model but is not itself part of
// it, and only imports the root package's public API.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/larioandr/pydesim"
)

func main() {
	arrivalMean := flag.Float64("arrival-mean", 2.0, "mean inter-arrival time")
	serviceMean := flag.Float64("service-mean", 1.0, "mean service time")
	stimeLimit := flag.Float64("stime-limit", 4000, "simulated time limit")
	flag.Parse()

	sim, err := pydesim.Simulate(pydesim.ModelFactory(NewQueueingSystem), pydesim.Options{
		Params: map[string]any{
			"arrival_mean": *arrivalMean,
			"service_mean": *serviceMean,
			"capacity":     -1,
		},
		StimeLimit: *stimeLimit,
		LogLevel:   pydesim.WARNING,
	})
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	qs := sim.Data().(*QueueingSystem)
	rho := *serviceMean / *arrivalMean

	fmt.Printf("events dispatched:      %d\n", sim.NumEvents())
	fmt.Printf("final stime:            %.3f\n", sim.STime())
	fmt.Printf("server busy rate:       %.4f (rho=%.4f)\n", qs.server().busyTrace.TimeAvg(), rho)
	fmt.Printf("mean system size:       %.4f\n", qs.systemSizeTrace.TimeAvg())
	fmt.Printf("estimated arrival mean: %.4f\n", qs.source().intervals.Statistic().Mean())
	fmt.Printf("estimated departure mean: %.4f\n", qs.sink().departures.Statistic().Mean())
	fmt.Printf("estimated service mean: %.4f\n", qs.server().delays.Mean())
}
