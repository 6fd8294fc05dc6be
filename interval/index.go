package interval

import (
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/pkg/errors"
)

const (
	// branchingFactorPower is the power that 2 is raised to in order to get the
	// branching factor of the hierarchical index.
	//
	// i.e. 4 -> 2^4 = 16
	branchingFactorPower uint64 = 4

	// hierarchicalFanout is the number of child elements in a single
	// hierarchical node.
	hierarchicalFanout uint64 = 1 << branchingFactorPower

	// offsetMask is the mask used to extract the offset from a key.
	offsetMask uint64 = 1<<branchingFactorPower - 1

	// bucketMask is the mask used to extract the bucket from a key.
	bucketMask uint64 = ^offsetMask

	// maxLeafFanout is the maximum number of spans that a leaf node can
	// store before it is considered for splitting.
	maxLeafFanout = 16
)

// span is the closed range of keys [Start, End] that an interval occupies
// once its bounds have been mapped onto the key space.
type span struct {
	Start uint64
	End   uint64
}

// Index answers containment queries over a set of intervals.
//
// Interval bounds are mapped onto an order preserving uint64 key space and
// stored in a hierarchical bucket tree, so lookups only visit the buckets
// that a query overlaps.
type Index[Value any] struct {
	root   node
	values []Value
}

// NewIndex creates an empty index.
func NewIndex[Value any]() *Index[Value] {
	return &Index[Value]{
		root: newHierarchicalNode(),
	}
}

// Len returns the number of intervals in the index.
func (idx *Index[Value]) Len() int {
	return len(idx.values)
}

// Add inserts an interval into the index.
func (idx *Index[Value]) Add(iv Interval, value Value) {
	valuesIndex := len(idx.values)
	idx.values = append(idx.values, value)

	s := spanOf(iv)

	// An open interval between two adjacent floats holds no key at all.
	if s.Start > s.End {
		return
	}

	idx.root.Add(s, valuesIndex)
}

// Containing returns the values of all intervals that contain x, in
// insertion order.
func (idx *Index[Value]) Containing(x float64) ([]Value, bool, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, false, errors.Wrapf(ErrNotARealNumber, "got %v", x)
	}

	k := key(x)
	values, ok := idx.collect(idx.root.AllIntersections(k, k))

	return values, ok, nil
}

// Intersecting returns the values of all intervals that share at least one
// point with iv, in insertion order.
func (idx *Index[Value]) Intersecting(iv Interval) ([]Value, bool) {
	s := spanOf(iv)

	if s.Start > s.End {
		return nil, false
	}

	return idx.collect(idx.root.AllIntersections(s.Start, s.End))
}

func (idx *Index[Value]) collect(indices valueIndices) ([]Value, bool) {
	if len(indices) == 0 {
		return nil, false
	}

	values := make([]Value, 0, len(indices))

	for _, index := range indices.Sorted() {
		values = append(values, idx.values[index])
	}

	return values, true
}

// key maps a float64 onto a uint64 such that a < b implies key(a) < key(b).
//
// Positive values have their sign bit set; negative values have all bits
// flipped so that larger magnitudes sort first.
func key(v float64) uint64 {
	if v == 0 {
		v = 0
	}

	bits := math.Float64bits(v)

	if bits>>63 == 1 {
		return ^bits
	}

	return bits | 1<<63
}

// spanOf returns the closed key range covered by an interval. Exclusive
// endpoints step inwards by one key, i.e. to the adjacent representable
// float64.
func spanOf(iv Interval) span {
	s := span{
		Start: key(iv.lower.value),
		End:   key(iv.upper.value),
	}

	if !iv.lower.inclusive {
		s.Start++
	}

	if !iv.upper.inclusive {
		s.End--
	}

	return s
}

// valueIndices is a set of value indices.
type valueIndices map[int]struct{}

// Merge merges the other value indices into this set.
func (v *valueIndices) Merge(other valueIndices) {
	for index := range other {
		(*v)[index] = struct{}{}
	}
}

// All returns an iterator over the value indices.
func (v valueIndices) All() iter.Seq[int] {
	return maps.Keys(v)
}

// Sorted returns the value indices in sorted order.
func (v valueIndices) Sorted() []int {
	return slices.Sorted(v.All())
}

// node is the interface that all node types in the index implement.
type node interface {
	Add(s span, valuesIndex int) node
	AllIntersections(start, end uint64) valueIndices
}

// hierarchicalNode is a node that has several children nodes, bucketed by the
// leading bits of the key.
type hierarchicalNode struct {
	Children []node
}

// newHierarchicalNode creates a new hierarchical node.
func newHierarchicalNode() *hierarchicalNode {
	return &hierarchicalNode{
		Children: make([]node, hierarchicalFanout),
	}
}

var _ node = &hierarchicalNode{}

// leafNode is a node that stores the spans directly.
type leafNode struct {
	Indices []int
	Spans   []span
}

var _ node = &leafNode{}

// Add inserts a span into every bucket it overlaps.
func (h *hierarchicalNode) Add(s span, valuesIndex int) node {
	// Keys are split into two parts:
	//
	// MSB Bits:  0123    4567 ...
	//           Bucket  Offset...
	//
	// Shifting down by 64 - 4 leaves the bucket index.
	startBucketIndex := s.Start >> (64 - branchingFactorPower)
	endBucketIndex := s.End >> (64 - branchingFactorPower)

	child := span{
		Start: s.Start << branchingFactorPower,
		End:   math.MaxUint64,
	}

	for i := startBucketIndex; i <= endBucketIndex; i++ {
		if i > startBucketIndex {
			child.Start = 0
		}

		if i == endBucketIndex {
			child.End = s.End << branchingFactorPower
		}

		if h.Children[i] == nil {
			h.Children[i] = &leafNode{}
		}

		h.Children[i] = h.Children[i].Add(child, valuesIndex)
	}

	return h
}

// AllIntersections returns the indices of all spans intersecting
// [start, end].
func (h hierarchicalNode) AllIntersections(start uint64, end uint64) valueIndices {
	startBucketIndex := start >> (64 - branchingFactorPower)
	endBucketIndex := end >> (64 - branchingFactorPower)

	matchingIndices := make(valueIndices)

	// | Bucket 0 | Bucket 1 | Bucket 2 | ...
	//     ^--------------------^
	//   start                 end
	//
	// The start offset only applies to the first bucket; later buckets are
	// searched from their beginning.
	var (
		bucketOffsetStart uint64 = start << branchingFactorPower
		bucketOffsetEnd   uint64 = math.MaxUint64
	)

	for i := startBucketIndex; i <= endBucketIndex; i++ {
		if i > startBucketIndex {
			bucketOffsetStart = 0
		}

		if i == endBucketIndex {
			bucketOffsetEnd = end << branchingFactorPower
		}

		if h.Children[i] == nil {
			continue
		}

		intersections := h.Children[i].AllIntersections(bucketOffsetStart, bucketOffsetEnd)

		if len(intersections) > 0 {
			matchingIndices.Merge(intersections)
		}
	}

	return matchingIndices
}

// Add appends a span to the leaf, converting it into a hierarchical node once
// it is full and its spans spread over several buckets.
func (l *leafNode) Add(s span, valuesIndex int) node {
	// Only check on multiples of maxLeafFanout, so that the split check is
	// neither run on every insertion nor skipped forever.
	if len(l.Spans) > 0 &&
		len(l.Spans)%maxLeafFanout == 0 &&
		l.shouldSplit() {
		h := newHierarchicalNode()

		for i, existing := range l.Spans {
			h.Add(existing, l.Indices[i])
		}

		return h.Add(s, valuesIndex)
	}

	l.Spans = append(l.Spans, s)
	l.Indices = append(l.Indices, valuesIndex)

	return l
}

// shouldSplit reports whether splitting the leaf would separate its spans
// into different buckets.
func (l *leafNode) shouldSplit() bool {
	startBucketCount := make(map[uint64]int, len(l.Spans))
	endBucketCount := make(map[uint64]int, len(l.Spans))

	for _, s := range l.Spans {
		startBucketCount[s.Start&bucketMask]++
		endBucketCount[s.End&bucketMask]++
	}

	for _, count := range startBucketCount {
		if count != 0 && count != len(l.Spans) {
			return true
		}
	}

	for _, count := range endBucketCount {
		if count != 0 && count != len(l.Spans) {
			return true
		}
	}

	return false
}

// AllIntersections scans the leaf linearly.
func (l leafNode) AllIntersections(start uint64, end uint64) valueIndices {
	matchingIndices := make(valueIndices, len(l.Spans))

	// The whole bucket is requested.
	if start == 0 && end == math.MaxUint64 {
		for i := range l.Spans {
			matchingIndices[l.Indices[i]] = struct{}{}
		}

		return matchingIndices
	}

	for i, s := range l.Spans {
		if end < s.Start || start > s.End {
			continue
		}

		matchingIndices[l.Indices[i]] = struct{}{}
	}

	return matchingIndices
}
