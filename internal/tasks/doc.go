// Package tasks executes a resolved job set against the target device.
//
// # Execution model
//
// Copies are strictly sequential; they are I/O-bound and parallelism buys
// nothing on a thumb drive. Conversions are order-independent with no shared
// mutable state between jobs, so they run on a bounded errgroup pool sized by
// configuration.
//
// # Resumability
//
// Every job writes its output into a private staging directory on the same
// filesystem as the target and is renamed into place only once the output is
// verified. An aborted or failed job therefore never leaves a partial file in
// the target tree, and a re-run recognises completed jobs simply because
// their destinations exist.
//
// # Progress Reporting
//
// The engine sends [ProgressUpdate] values over a channel using select with
// default, so reporting never blocks execution. Per-job failures are recorded
// in the [Result] and reported by name; they never abort the rest of the run.
package tasks
