package gcc

import "github.com/go-logr/logr"

// logger is the package-wide diagnostic sink. It defaults to logr's
// no-op implementation so importing this package never requires callers
// to configure logging; SetLogger lets an embedding application route
// propagator diagnostics into its own logging pipeline.
var logger logr.Logger = logr.Discard()

// SetLogger installs l as the sink for diagnostic output from every
// propagator, including ones constructed earlier. Intended to be called once at
// startup, not concurrently with propagation.
func SetLogger(l logr.Logger) {
	logger = l.WithName("gcc")
}

func logHallPrune(kind string, lo, hi, demand, capacity int) {
	logger.V(1).Info("hall interval saturated", "kind", kind, "lo", lo, "hi", hi, "demand", demand, "capacity", capacity)
}

func logMatchRepair(variable, value int) {
	logger.V(1).Info("matching repaired", "variable", variable, "value", value)
}

func logSubsumed(propagator string) {
	logger.Info("propagator subsumed", "propagator", propagator)
}
