package pipeline

import "sort"

// PriorityFunc returns the configured synthesis priority for a model id.
// Higher values win; unknown models rank lowest at 0.
type PriorityFunc func(modelID string) int

// Selector picks the model that produces the final synthesis. A model that
// did not take part in the peer-review stage is preferred: it has not seen
// the other models' answers, so its synthesis carries less self-bias.
type Selector struct {
	priority PriorityFunc
}

// NewSelector creates a selector over the given priority ordering. A nil
// priority function ranks every model equally (lexicographic tie-break).
func NewSelector(priority PriorityFunc) *Selector {
	if priority == nil {
		priority = func(string) int { return 0 }
	}
	return &Selector{priority: priority}
}

// Select chooses the synthesis model from candidates. participants is the
// set of models that produced a successful peer-review result. Returns the
// chosen model and whether it is a non-participant. Deterministic: ties
// break by priority, then lexicographically — never by arrival order.
//
// candidates must be non-empty (guaranteed by PipelineRequest.Validate).
func (s *Selector) Select(candidates, participants []string) (string, bool) {
	isParticipant := make(map[string]bool, len(participants))
	for _, p := range participants {
		isParticipant[p] = true
	}

	var fresh, seen []string
	for _, c := range candidates {
		if isParticipant[c] {
			seen = append(seen, c)
		} else {
			fresh = append(fresh, c)
		}
	}

	if len(fresh) > 0 {
		return s.best(fresh), true
	}
	return s.best(seen), false
}

// best returns the highest-priority id, breaking ties lexicographically.
func (s *Selector) best(ids []string) string {
	ranked := append([]string(nil), ids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := s.priority(ranked[i]), s.priority(ranked[j])
		if pi != pj {
			return pi > pj
		}
		return ranked[i] < ranked[j]
	})
	return ranked[0]
}
