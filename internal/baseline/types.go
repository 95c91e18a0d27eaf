package baseline

import "time"

// Summary is a lightweight view for listing baselines.
type Summary struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}
