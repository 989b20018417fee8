// Package chart turns sessions into aligned numeric series for chart binding.
package chart

import (
	"sort"

	"github.com/alexanderramin/juju/internal/domain"
)

// Bucket is one aggregation slot (a day, week or month) with hours per project.
type Bucket struct {
	Key             string
	PerProjectHours map[string]float64
}

func projectKey(s *domain.Session) string {
	if s.ProjectID == "" {
		return domain.UnassignedProject
	}
	return s.ProjectID
}

func hours(s *domain.Session) float64 {
	return float64(s.DurationMinutes()) / 60
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bucketsFromSeries zips keys with the per-project value at the same index.
func bucketsFromSeries(keys []string, perProject map[string][]float64) []Bucket {
	out := make([]Bucket, len(keys))
	for i, k := range keys {
		b := Bucket{Key: k, PerProjectHours: make(map[string]float64, len(perProject))}
		for p, values := range perProject {
			b.PerProjectHours[p] = values[i]
		}
		out[i] = b
	}
	return out
}

// PieSeries is the share of hours per project, labels sorted alphabetically.
type PieSeries struct {
	Labels []string
	Hours  []float64
}

// ProjectShare totals hours per project for a pie chart.
func ProjectShare(sessions []*domain.Session) PieSeries {
	minutes := make(map[string]int)
	for _, s := range sessions {
		minutes[projectKey(s)] += s.DurationMinutes()
	}
	labels := sortedKeys(minutes)
	out := PieSeries{Labels: labels, Hours: make([]float64, len(labels))}
	for i, l := range labels {
		out.Hours[i] = float64(minutes[l]) / 60
	}
	return out
}
