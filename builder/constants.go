// Package builder defines shared constants used by graph builders.
package builder

// Method names used to prefix errors with the constructor name for context.
const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodLabeledBipartite is the canonical name for the LabeledBipartite constructor.
	MethodLabeledBipartite = "LabeledBipartite"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodSampleLabels is the canonical name for the SampleLabels helper.
	MethodSampleLabels = "SampleLabels"
)

// Vertex metadata written by the bipartite constructors.
const (
	// SideAttr is the core.Vertex Metadata key holding the partition side.
	SideAttr = "side"
	// SideLeft marks vertices of the left partition.
	SideLeft = "left"
	// SideRight marks vertices of the right partition.
	SideRight = "right"
)

// MinPartitionSize is the smallest allowed size of either partition.
const MinPartitionSize = 1
