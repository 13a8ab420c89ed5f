package planner

import "sort"

// CanonicalSort orders candidates by the deterministic canonical rules:
// 1. Composite score: higher first
// 2. Due date: earliest first (nil last)
// 3. Estimated duration: shorter first
// 4. Original collection order (stable)
func CanonicalSort(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		dueA, dueB := a.Task.DueDate, b.Task.DueDate
		if (dueA == nil) != (dueB == nil) {
			return dueA != nil // non-nil before nil
		}
		if dueA != nil && dueB != nil && !dueA.Equal(*dueB) {
			return dueA.Before(*dueB)
		}

		if a.EstimateMin != b.EstimateMin {
			return a.EstimateMin < b.EstimateMin
		}

		return a.Index < b.Index
	})
}
