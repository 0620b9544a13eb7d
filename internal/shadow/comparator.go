package shadow

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// Default labels used in discrepancy messages.
const (
	DefaultReferenceLabel = "Ansible"
	DefaultCandidateLabel = "AnsiGo"
)

// Comparator checks a candidate transcript against a reference transcript.
type Comparator struct {
	ReferenceLabel string
	CandidateLabel string
}

// NewComparator returns a Comparator with the given labels. Empty labels fall
// back to the defaults.
func NewComparator(referenceLabel, candidateLabel string) *Comparator {
	if referenceLabel == "" {
		referenceLabel = DefaultReferenceLabel
	}
	if candidateLabel == "" {
		candidateLabel = DefaultCandidateLabel
	}
	return &Comparator{ReferenceLabel: referenceLabel, CandidateLabel: candidateLabel}
}

// Compare compares two transcripts with the default labels.
func Compare(reference, candidate TranscriptIndex) ([]string, bool) {
	return NewComparator("", "").Compare(reference, candidate)
}

// Compare walks the sorted union of hostnames and returns one discrepancy per
// issue, in host order. The second return value is true when there are none.
//
// A missing host or a status mismatch stops the checks for that host. Key
// fields are only checked when the reference payload carries them.
func (c *Comparator) Compare(reference, candidate TranscriptIndex) ([]string, bool) {
	var diffs []string
	for _, host := range unionHosts(reference, candidate) {
		ref, inRef := reference[host]
		cand, inCand := candidate[host]

		if !inRef {
			diffs = append(diffs, fmt.Sprintf("%s: Missing in %s output", host, c.ReferenceLabel))
			continue
		}
		if !inCand {
			diffs = append(diffs, fmt.Sprintf("%s: Missing in %s output", host, c.CandidateLabel))
			continue
		}

		if ref.Status != cand.Status {
			diffs = append(diffs, fmt.Sprintf("%s: Status mismatch (%s: %s, %s: %s)",
				host, c.ReferenceLabel, ref.Status, c.CandidateLabel, cand.Status))
			continue
		}

		for _, field := range keyFields {
			want, ok := ref.Data[field]
			if !ok {
				continue
			}
			got, ok := cand.Data[field]
			if !ok {
				diffs = append(diffs, fmt.Sprintf("%s: Missing field '%s' in %s", host, field, c.CandidateLabel))
				continue
			}
			if !cmp.Equal(want, got) {
				diffs = append(diffs, fmt.Sprintf("%s: Field '%s' mismatch (%s: %s, %s: %s)",
					host, field, c.ReferenceLabel, formatValue(want), c.CandidateLabel, formatValue(got)))
			}
		}
	}
	return diffs, len(diffs) == 0
}

// Evaluate compares the transcripts and wraps the outcome in a ComparisonResult.
func (c *Comparator) Evaluate(reference, candidate TranscriptIndex) *ComparisonResult {
	diffs, match := c.Compare(reference, candidate)
	if diffs == nil {
		diffs = []string{}
	}

	summary := "outputs match"
	if !match {
		summary = fmt.Sprintf("%d difference(s) between %s and %s", len(diffs), c.ReferenceLabel, c.CandidateLabel)
	}

	return &ComparisonResult{
		Discrepancies:  diffs,
		AllMatch:       match,
		Summary:        summary,
		ReferenceHosts: len(reference),
		CandidateHosts: len(candidate),
	}
}

func unionHosts(a, b TranscriptIndex) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for h := range a {
		seen[h] = struct{}{}
	}
	for h := range b {
		seen[h] = struct{}{}
	}
	hosts := make([]string, 0, len(seen))
	for h := range seen {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// formatValue renders a payload value as compact JSON.
func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
