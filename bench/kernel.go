package bench

// StreamOp identifies one STREAM-style bandwidth kernel.
//
// The four operations stress the memory subsystem with simple per-element
// arithmetic over large arrays:
//
//	Copy : a[i] = b[i]
//	Scale: a[i] = s * b[i]
//	Add  : a[i] = b[i] + c[i]
//	Triad: a[i] = b[i] + s * c[i]
//
// Copy and Scale read one array and write one, so each element moves
// 2*sizeof(float64) bytes; Add and Triad read two and write one, moving 3x.
// That multiplier is what turns a median iteration time into an effective
// bandwidth figure.
type StreamOp int

const (
	StreamCopy StreamOp = iota
	StreamScale
	StreamAdd
	StreamTriad
)

// String returns the kernel name used in logs and result points.
func (op StreamOp) String() string {
	switch op {
	case StreamCopy:
		return "stream_copy"
	case StreamScale:
		return "stream_scale"
	case StreamAdd:
		return "stream_add"
	case StreamTriad:
		return "stream_triad"
	}
	return "unknown"
}

// BytesMultiplier reports how many arrays' worth of traffic one invocation
// moves per element: 2.0 for one-input kernels, 3.0 for two-input kernels.
func (op StreamOp) BytesMultiplier() float64 {
	switch op {
	case StreamCopy, StreamScale:
		return 2.0
	case StreamAdd, StreamTriad:
		return 3.0
	}
	return 0.0
}

// expectedElem is the analytic per-element output value given the
// deterministic fills (fillB, fillC) and scalar s. Validation multiplies it
// by the number of summed elements.
func (op StreamOp) expectedElem(s float64) float64 {
	switch op {
	case StreamCopy:
		return fillB
	case StreamScale:
		return s * fillB
	case StreamAdd:
		return fillB + fillC
	case StreamTriad:
		return fillB + s*fillC
	}
	return 0.0
}

// StreamKernelFn is the transform contract shared by all bandwidth kernels:
// write a[i] = f(b[i], c[i], s) for every i. c is ignored by one-input
// kernels. Transforms are pure over their declared inputs.
type StreamKernelFn func(a, b, c []float64, s float64)

// KernelDesc bundles a kernel transform with the metadata the runner needs
// for dispatch and throughput accounting. Immutable once constructed.
type KernelDesc struct {
	Op StreamOp
	Fn StreamKernelFn
}

// Name returns the kernel name for logging and result points.
func (kd KernelDesc) Name() string { return kd.Op.String() }

// BytesMult returns the traffic multiplier for bandwidth accounting.
func (kd KernelDesc) BytesMult() float64 { return kd.Op.BytesMultiplier() }

// MakeStreamDesc selects the transform for op. Adding a kernel means adding
// a StreamOp case here, not touching the measurement loop.
func MakeStreamDesc(op StreamOp) KernelDesc {
	switch op {
	case StreamCopy:
		return KernelDesc{op, kernelCopy}
	case StreamScale:
		return KernelDesc{op, kernelScale}
	case StreamAdd:
		return KernelDesc{op, kernelAdd}
	case StreamTriad:
		return KernelDesc{op, kernelTriad}
	}
	return KernelDesc{StreamCopy, kernelCopy}
}

// ParseStreamOp maps a CLI kernel name (short or prefixed form) to its op.
func ParseStreamOp(name string) (StreamOp, bool) {
	switch name {
	case "copy", "stream_copy":
		return StreamCopy, true
	case "scale", "stream_scale":
		return StreamScale, true
	case "add", "stream_add":
		return StreamAdd, true
	case "triad", "stream_triad":
		return StreamTriad, true
	}
	return StreamCopy, false
}

func kernelCopy(a, b, _ []float64, _ float64) {
	for i := range b {
		a[i] = b[i]
	}
}

func kernelScale(a, b, _ []float64, s float64) {
	for i := range b {
		a[i] = s * b[i]
	}
}

func kernelAdd(a, b, c []float64, _ float64) {
	for i := range b {
		a[i] = b[i] + c[i]
	}
}

func kernelTriad(a, b, c []float64, s float64) {
	for i := range b {
		a[i] = b[i] + s*c[i]
	}
}
