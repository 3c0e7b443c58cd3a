// Package classify turns captured parser output into a Pass/Fail verdict.
package classify

import (
	"strings"
)

// DefaultMarker is the substring the parser-under-test must emit on a
// line of its combined output if and only if it rejects the input.
const DefaultMarker = "Error: syntax error"

// Verdict is the two-valued outcome assigned to one fixture.
type Verdict int

const (
	// Pass means the marker was absent from the captured output.
	Pass Verdict = iota
	// Fail means the marker appeared on at least one line.
	Fail
)

// String returns the verdict name.
func (v Verdict) String() string {
	if v == Fail {
		return "fail"
	}
	return "pass"
}

// Classifier classifies captured output by scanning for a marker string.
type Classifier struct {
	// Marker is matched case-sensitively as a substring of each line.
	Marker string
}

// New creates a Classifier for the given marker. An empty marker falls
// back to DefaultMarker.
func New(marker string) Classifier {
	if marker == "" {
		marker = DefaultMarker
	}
	return Classifier{Marker: marker}
}

// Classify scans the captured output line by line and returns Fail on
// the first line containing the marker, Pass otherwise.
//
// This is a conservative heuristic: a parser that crashes, hangs short
// of output, or prints the wrong answer without the marker still
// passes. Only the marker signals failure. Scanning short-circuits at
// the first match.
func (c Classifier) Classify(output string) Verdict {
	for line := range strings.Lines(output) {
		if strings.Contains(line, c.Marker) {
			return Fail
		}
	}
	return Pass
}
