package bench

// SweepRange is one geometric segment of a working-set sweep: sizes from
// From to To inclusive, doubling each step.
type SweepRange struct {
	From uint64
	To   uint64
}

// SweepTable is an ordered list of geometric segments. Segments must not
// overlap and must be listed smallest-first so the generated size list is
// strictly increasing.
type SweepTable []SweepRange

const (
	kib = 1024
	mib = 1024 * kib
)

// BandwidthSweep spans L1-resident sizes up to DRAM-bound sizes for the
// bandwidth and compute families. Breakpoints are fixed constants, not
// derived from detected cache sizes, so runs on different machines produce
// directly comparable size axes.
var BandwidthSweep = SweepTable{
	{32 * kib, 256 * kib}, // L1/L2
	{512 * kib, 8 * mib},  // L2/L3/LLC
	{16 * mib, 512 * mib}, // DRAM
}

// LatencySweep starts smaller than the bandwidth sweep (4KB fits well inside
// L1) and caps at 256MB to bound allocation risk on small-memory machines.
var LatencySweep = SweepTable{
	{4 * kib, 256 * kib},
	{512 * kib, 8 * mib},
	{16 * mib, 256 * mib},
}

// Sizes expands the table into the ordered list of working-set sizes in
// bytes.
func (t SweepTable) Sizes() []uint64 {
	var sizes []uint64
	for _, r := range t {
		for s := r.From; s <= r.To; s *= 2 {
			sizes = append(sizes, s)
		}
	}
	return sizes
}
