// Package report aggregates per-target pipeline outcomes.
package report

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/reelscribe/internal/errs"
)

// Outcome records what happened to one submitted target.
type Outcome struct {
	JobID      string
	Target     string
	Success    bool
	Transcript string
	Code       errs.Code
	Error      string
}

// Batch holds outcomes in submission order.
type Batch struct {
	Outcomes []Outcome
}

func (b *Batch) Add(o Outcome) {
	b.Outcomes = append(b.Outcomes, o)
}

func (b *Batch) Total() int {
	return len(b.Outcomes)
}

func (b *Batch) Successes() int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Success {
			n++
		}
	}
	return n
}

const separator = "============================================================"

// Format renders the batch report for terminal output: a success-count
// summary followed by each target's transcript or failure marker, in
// submission order.
func (b *Batch) Format() string {
	var sb strings.Builder

	sb.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&sb, "BATCH RESULTS: %d/%d successful\n", b.Successes(), b.Total())
	sb.WriteString(separator + "\n\n")

	for i, o := range b.Outcomes {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, o.Target)
		if o.Success {
			sb.WriteString(o.Transcript + "\n")
		} else {
			fmt.Fprintf(&sb, "(FAILED: %s)\n", o.Code)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
