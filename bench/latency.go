package bench

import (
	"fmt"
	"math/rand"
	"unsafe"
)

// node occupies exactly one cache line so every dependent load fetches
// exactly one line: the chase measures memory latency, not partial-line
// effects.
type node struct {
	next uint32
	_    [15]uint32 // pad to 64 bytes
}

const nodeBytes = 64 // sizeof(node), one cache line

// Bounds on dependent pointer-follow steps per measured iteration. Scaling
// as O(n) gets too slow for huge working sets; the clamp keeps sweeps
// tractable while every step remains a true dependent load.
const (
	minChaseSteps = 200_000
	maxChaseSteps = 5_000_000
)

// bytesToNodes converts a working-set byte size to a node count.
func bytesToNodes(bytes uint64) int {
	return int(bytes / nodeBytes)
}

// chaseSteps is the per-iteration step count for n nodes: n clamped to
// [minChaseSteps, maxChaseSteps].
func chaseSteps(n int) int {
	steps := n
	if steps < minChaseSteps {
		steps = minChaseSteps
	}
	if steps > maxChaseSteps {
		steps = maxChaseSteps
	}
	return steps
}

// deriveCycleSeed isolates each sweep point's permutation from the master
// seed so different sizes chase different cycles while the whole run stays
// reproducible from one --seed.
func deriveCycleSeed(seed int64, sizeBytes uint64) int64 {
	return seed ^ int64(sizeBytes)
}

// allocNodes provisions the node array. Aligned mode places node 0 on a
// 64-byte boundary by carving the array out of a padded byte slice; natural
// mode only guarantees the struct's own (4-byte) alignment.
func allocNodes(n int, aligned bool) (nodes []node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = fmt.Errorf("%w: %d nodes: %v", ErrAllocationFailure, n, r)
		}
	}()

	if n <= 0 {
		return nil, fmt.Errorf("%w: non-positive node count %d", ErrAllocationFailure, n)
	}
	if !aligned {
		return make([]node, n), nil
	}

	raw := make([]byte, n*nodeBytes+CacheLineBytes-1)
	off := 0
	for uintptr(unsafe.Pointer(&raw[off]))%CacheLineBytes != 0 {
		off++
	}
	return unsafe.Slice((*node)(unsafe.Pointer(&raw[off])), n), nil
}

// buildRandomCycle links the nodes into a single randomized Hamiltonian
// cycle: shuffle an identity permutation with the seeded generator, point
// each shuffled node at its successor and close the last back to the first.
// A full traversal visits every node exactly once, and the randomized order
// defeats sequential prefetch.
func buildRandomCycle(nodes []node, seed int64) {
	n := len(nodes)
	if n < 2 {
		return
	}

	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	for i := 0; i+1 < n; i++ {
		nodes[idx[i]].next = idx[i+1]
	}
	nodes[idx[n-1]].next = idx[0]
}

// chase follows the dependent-load chain for steps hops and returns the
// final cursor. Each load's address depends on the previous load's result,
// so hardware prefetch cannot hide the latency being measured.
func chase(nodes []node, start uint32, steps int) uint32 {
	cur := start
	for i := 0; i < steps; i++ {
		cur = nodes[cur].next
	}
	return cur
}

// prefaultNodes touches one node per memory page before timing begins.
func prefaultNodes(nodes []node) {
	const pageNodes = pageBytes / nodeBytes
	for i := 0; i < len(nodes); i += pageNodes {
		nodes[i].next = touchedU32(nodes[i].next)
	}
	if len(nodes) > 0 {
		ObserveU32(nodes[0].next)
	}
}

//go:noinline
func touchedU32(v uint32) uint32 { return v }
