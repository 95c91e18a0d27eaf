package harness

// Case is one unit of work, derived from one input file. Names must be
// unique across the input directory; a collision silently overwrites one
// baseline with another's.
type Case struct {
	Name string `json:"name"` // File stem, used as the baseline key
	Ext  string `json:"ext"`  // Used only for filtering
	Path string `json:"path"` // Substituted into the command template
}

// Status is the terminal state of a case.
type Status string

const (
	StatusRecorded Status = "recorded" // Baseline written (record mode)
	StatusPass     Status = "pass"     // Output matched the baseline
	StatusFail     Status = "fail"     // Output differed from the baseline
	StatusMissing  Status = "missing"  // No baseline recorded for this case
)

// Outcome is the result of one case in one mode. Got and Expected hold the
// full untrimmed texts for diagnosis.
type Outcome struct {
	Case         Case   `json:"case"`
	Status       Status `json:"status"`
	Got          string `json:"got,omitempty"`
	Expected     string `json:"expected,omitempty"`
	BaselinePath string `json:"baselinePath,omitempty"`
}

// Summary accumulates per-case results for a whole run.
type Summary struct {
	Recorded []Outcome `json:"recorded,omitempty"`
	Tested   []Outcome `json:"tested,omitempty"`
}

// Passed counts tested cases that matched their baseline.
func (s Summary) Passed() int {
	n := 0
	for _, o := range s.Tested {
		if o.Status == StatusPass {
			n++
		}
	}
	return n
}

// Failed counts tested cases that mismatched or had no baseline.
func (s Summary) Failed() int {
	n := 0
	for _, o := range s.Tested {
		if o.Status == StatusFail || o.Status == StatusMissing {
			n++
		}
	}
	return n
}
