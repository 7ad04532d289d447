// internal/model/placement.go
package model

// CallPlacement is the outcome of one record's call placement: a dry-run
// marker, a provider-assigned call SID, or an error message. Exactly one of
// SID/DryRun/Error is meaningful per entry.
type CallPlacement struct {
	To       string `json:"to"`
	VoiceURL string `json:"voice_url,omitempty"`
	SID      string `json:"sid,omitempty"`
	DryRun   bool   `json:"dry_run,omitempty"`
	Error    string `json:"error,omitempty"`
}

// DispatchResult summarizes one upload batch.
type DispatchResult struct {
	BatchID string          `json:"batch_id"`
	Count   int             `json:"count"`
	Placed  []CallPlacement `json:"placed"`
}
