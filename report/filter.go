package report

import "go.yaml.in/yaml/v3"

type FilterResult struct {
	Report  *Report
	Kept    int
	Dropped int
}

// Filter returns a copy of r whose resource_statuses only hold resources
// that changed: at least one event, or a correlated catalog log. Entry order
// is preserved and every other field is passed through. r is not modified.
func Filter(r *Report) FilterResult {
	filtered := r.Clone()
	result := FilterResult{Report: filtered}

	mapping := filtered.statusesNode()
	if mapping == nil {
		return result
	}

	sources := LogSources(filtered.Logs())
	kept := make([]*yaml.Node, 0, len(mapping.Content))
	for idx := 0; idx+1 < len(mapping.Content); idx += 2 {
		status := newResourceStatus(mapping.Content[idx], mapping.Content[idx+1])
		if !status.Retained(sources) {
			result.Dropped++
			continue
		}
		kept = append(kept, mapping.Content[idx], mapping.Content[idx+1])
		result.Kept++
	}
	mapping.Content = kept

	return result
}
