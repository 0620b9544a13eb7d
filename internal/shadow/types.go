// Package shadow provides offline comparison of Ansible and AnsiGo ad-hoc outputs.
package shadow

// HostRecord is the normalized result of one host block.
type HostRecord struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`

	// ParseError is set when the payload was not valid JSON and Data holds
	// only the raw body. It is never compared.
	ParseError string `json:"parse_error,omitempty"`
}

// TranscriptIndex maps a hostname to its normalized record.
type TranscriptIndex map[string]HostRecord

// Hosts returns the number of hosts in the index.
func (ti TranscriptIndex) Hosts() int { return len(ti) }

// ParseFailures returns how many records fell back to raw body storage.
func (ti TranscriptIndex) ParseFailures() int {
	n := 0
	for _, r := range ti {
		if r.ParseError != "" {
			n++
		}
	}
	return n
}

// ComparisonResult is the top-level output of a transcript comparison.
type ComparisonResult struct {
	Discrepancies  []string `json:"discrepancies"`
	AllMatch       bool     `json:"all_match"`
	Summary        string   `json:"summary"`
	ReferenceHosts int      `json:"reference_hosts"`
	CandidateHosts int      `json:"candidate_hosts"`
}

// volatileFields vary between runs and are stripped from every payload.
var volatileFields = [...]string{
	"_ansible_parsed",
	"_ansible_no_log",
	"invocation",
	"delta",
	"start",
	"end",
	"stderr_lines",
	"stdout_lines",
}

// keyFields are compared explicitly, in this order.
var keyFields = [...]string{"changed", "failed", "ping", "rc", "msg"}

// VolatileFields returns a copy of the keys removed during normalization.
func VolatileFields() []string { return append([]string(nil), volatileFields[:]...) }

// KeyFields returns a copy of the payload keys compared between hosts.
func KeyFields() []string { return append([]string(nil), keyFields[:]...) }
