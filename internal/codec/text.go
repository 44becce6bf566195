package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextCodec prints the human-readable report.
type TextCodec struct{}

// NewTextCodec creates a new text codec
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Format returns the codec format identifier
func (c *TextCodec) Format() string {
	return "text"
}

// Export writes
//
//	=== Matching N ===
//	u ↔ v (p=0.xx)
//
// for every run, followed by "Run N – Stage i" listings when stages are
// present.
func (c *TextCodec) Export(r *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Left:  %s\n", strings.Join(r.Left, ", "))
	fmt.Fprintf(bw, "Right: %s\n", strings.Join(r.Right, ", "))
	for _, run := range r.Runs {
		fmt.Fprintf(bw, "\n=== Matching %d ===\n", run.Index)
		for _, e := range run.Matching {
			fmt.Fprintln(bw, e.String())
		}
	}
	for _, run := range r.Runs {
		for _, st := range run.Stages {
			fmt.Fprintf(bw, "\nRun %d – Stage %d\n", run.Index, st.Step)
			if len(st.Edges) == 0 {
				fmt.Fprintln(bw, "(no edges)")
				continue
			}
			for _, e := range st.Edges {
				fmt.Fprintf(bw, "  %s\n", e.String())
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}
