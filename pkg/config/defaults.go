package config

// Defaults holds system-wide pipeline defaults applied when a request omits
// the corresponding field.
type Defaults struct {
	// CandidateModels is the model set used when a request names none.
	CandidateModels []string `yaml:"candidate_models"`

	// PeerReviewFatal makes a total peer-review failure terminate a run
	// instead of degrading to stage-1 outputs.
	PeerReviewFatal bool `yaml:"peer_review_fatal"`

	// StreamBuffer is the per-subscriber event buffer size.
	StreamBuffer int `yaml:"stream_buffer"`
}
