package ai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
)

// rawDecomposition mirrors the loosely-typed model reply before validation.
type rawDecomposition struct {
	Subtasks               []rawSuggestion `json:"subtasks"`
	TotalEstimatedDuration int             `json:"total_estimated_duration"`
	CompletionStrategy     string          `json:"completion_strategy"`
	Confidence             float64         `json:"confidence"`
}

type rawSuggestion struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimated_duration"`
	Priority          int      `json:"priority"`
	Order             int      `json:"order"`
	Dependencies      []string `json:"dependencies"`
}

// NormalizeDecomposition converts the model's reply into the strict result
// shape. Non-conforming payloads are rejected rather than propagated:
// empty suggestion lists, blank titles, negative durations and dependency
// cycles all fail. Priorities are clamped to [1,5], suggestion order is
// re-sequenced to a unique ascending range, the duration total is recomputed
// over all suggestions, and every suggestion arrives selected.
func NormalizeDecomposition(output string, req *dto.TaskDecompositionRequest) (*dto.TaskDecompositionResult, error) {
	var raw rawDecomposition
	if err := json.Unmarshal([]byte(stripCodeFence(output)), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if len(raw.Subtasks) == 0 {
		return nil, fmt.Errorf("no subtasks in response")
	}

	sort.SliceStable(raw.Subtasks, func(i, j int) bool {
		return raw.Subtasks[i].Order < raw.Subtasks[j].Order
	})

	suggestions := make([]dto.SubtaskSuggestion, 0, len(raw.Subtasks))
	total := 0
	for i, s := range raw.Subtasks {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			return nil, fmt.Errorf("subtask %d has an empty title", i)
		}
		if s.EstimatedDuration < 0 {
			return nil, fmt.Errorf("subtask %q has a negative duration", title)
		}
		total += s.EstimatedDuration
		suggestions = append(suggestions, dto.SubtaskSuggestion{
			Title:             title,
			Description:       strings.TrimSpace(s.Description),
			EstimatedDuration: s.EstimatedDuration,
			Priority:          clamp(s.Priority, 1, 5),
			Order:             i,
			Dependencies:      normalizeRefs(s.Dependencies),
			Selected:          true,
		})
	}

	if err := checkDependencyCycles(suggestions); err != nil {
		return nil, err
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &dto.TaskDecompositionResult{
		MainTask:               req.MainTask,
		Description:            req.Description,
		Category:               req.Category,
		SuggestedSubtasks:      suggestions,
		TotalEstimatedDuration: total,
		CompletionStrategy:     strings.TrimSpace(raw.CompletionStrategy),
		AIConfidence:           confidence,
	}, nil
}

func normalizeRefs(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// checkDependencyCycles rejects results whose dependency references form a
// cycle among the suggestions. References to unknown titles are not edges;
// they get dropped later at materialization.
func checkDependencyCycles(suggestions []dto.SubtaskSuggestion) error {
	index := make(map[string]int, len(suggestions))
	for i, s := range suggestions {
		index[s.Title] = i
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make([]int, len(suggestions))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return fmt.Errorf("dependency cycle involving %q", suggestions[i].Title)
		case done:
			return nil
		}
		state[i] = visiting
		for _, ref := range suggestions[i].Dependencies {
			if j, ok := index[ref]; ok {
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		state[i] = done
		return nil
	}

	for i := range suggestions {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code fence if the model
// wrapped its JSON in one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
