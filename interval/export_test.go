package interval

const (
	// MaxLeafFanout is the maximum number of spans that a leaf node can
	// store. Re-exported [maxLeafFanout] for testing purposes.
	MaxLeafFanout = maxLeafFanout

	// BranchingFactorPower re-exports [branchingFactorPower].
	BranchingFactorPower = branchingFactorPower
)

// Span reexports the internal [span] type.
type Span = span

// LeafNode reexports the internal [leafNode] type.
type LeafNode = leafNode

// ShouldSplit reexports the internal [shouldSplit] method.
func (l *LeafNode) ShouldSplit() bool {
	return l.shouldSplit()
}

// Key reexports the internal [key] function.
func Key(v float64) uint64 {
	return key(v)
}

// SpanOf reexports the internal [spanOf] function.
func SpanOf(iv Interval) Span {
	return spanOf(iv)
}

// FormatValue reexports the internal [formatValue] function.
func FormatValue(v float64) string {
	return formatValue(v)
}
