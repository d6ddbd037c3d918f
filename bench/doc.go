// Package bench provides the core measurement engine for membench.
//
// # Reading Guide
//
// Start with these three files to understand the measurement kernel:
//   - kernel.go: the bandwidth (STREAM-style) kernel descriptors and transforms
//   - measure.go: the shared warmup/measure timing protocol
//   - run_stream.go: the per-sweep-point state machine (allocate → prefault →
//     warmup → measure → validate → aggregate → release)
//
// # Architecture
//
// The engine runs one kernel over a sweep of working-set sizes and reduces
// per-iteration timing samples to robust statistics:
//   - sweep.go: named working-set breakpoint tables and sweep generation
//   - buffer.go: role-buffer provisioning (natural or cache-line aligned)
//   - barrier.go: the observation-barrier contract that keeps the compiler
//     from eliding or hoisting measured work
//   - stats.go: percentile interpolation and population standard deviation
//   - validate.go: analytic checksums and tolerance comparison
//   - result.go: the per-size Point record and run accumulator
//
// Three kernel families share the same protocol: bandwidth kernels
// (kernel.go), compute kernels (compute.go) and the pointer-chase latency
// kernel (latency.go). Family entry points live in run_stream.go,
// run_compute.go and run_latency.go; they are invoked once per run by the
// cmd layer after configuration parsing.
//
// Execution is single-threaded and strictly sequential. Nothing inside a
// timed region performs I/O, locking or allocation; buffers are released
// immediately after each sweep point so cache state does not leak into the
// next one. The engine never terminates the process: allocation failure
// aborts the remainder of a sweep, validation mismatch is a logged warning,
// and control always returns to the caller with whatever points were
// produced.
package bench
