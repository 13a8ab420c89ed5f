// Package parser turns one free-text capture line into a draft task and
// hydrates drafts into persistable tasks. The grammar is deterministic:
// each rule targets a disjoint lexical pattern, consumes its matched span,
// and leaves the residual text to become the task name. Parsing never
// fails on recognizable content; the only error is blank input.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/morgansel/taskpilot/internal/domain"
)

var (
	reCritical = regexp.MustCompile(`(?i)\b(?:urgent|critical)\b`)
	reHigh     = regexp.MustCompile(`(?i)\bhigh[ -]priority\b|\bimportant\b`)
	reLow      = regexp.MustCompile(`(?i)\blow[ -]priority\b`)

	reHours   = regexp.MustCompile(`(?i)\b(\d+)\s*(?:hours?|hrs?)\b`)
	reMinutes = regexp.MustCompile(`(?i)\b(\d+)\s*(?:minutes?|mins?)\b`)

	reThen       = regexp.MustCompile(`(?i)\s+then\s+`)
	reTrailing   = regexp.MustCompile(`^[\s,.;:-]+|[\s,.;:-]+$`)
	categoryWord = buildCategoryPatterns()
)

func buildCategoryPatterns() map[domain.Category]*regexp.Regexp {
	words := map[domain.Category]string{
		domain.CategoryWork:     `work`,
		domain.CategoryPersonal: `personal`,
		domain.CategoryStudy:    `study`,
		domain.CategoryHealth:   `health`,
		domain.CategoryFinance:  `finance`,
		domain.CategoryErrands:  `errands?`,
		domain.CategoryCreative: `creative`,
		domain.CategoryLearning: `learning`,
		domain.CategoryPlanning: `planning`,
	}
	patterns := make(map[domain.Category]*regexp.Regexp, len(words))
	for cat, w := range words {
		patterns[cat] = regexp.MustCompile(`(?i)\b` + w + `\b`)
	}
	return patterns
}

// Parse extracts structured attributes from a free-text task line. Date
// expressions resolve relative to now. Returns ErrEmptyInput for blank
// input; every other input yields a draft with at least a name.
func Parse(text string, now time.Time) (*domain.DraftTask, error) {
	original := strings.TrimSpace(text)
	if original == "" {
		return nil, ErrEmptyInput
	}

	working, subtasks := splitSubtasks(original)

	draft := &domain.DraftTask{
		Priority: domain.PriorityMedium,
		Category: domain.CategoryGeneral,
		Subtasks: subtasks,
	}

	working, draft.Priority = extractPriority(working)
	working, draft.Category = extractCategory(working)
	// Duration keywords are stripped before date parsing so "30 minutes"
	// can never be misread as part of a date expression.
	working, draft.EstimatedMinutes = extractDuration(working)
	working, draft.DueDate = extractDueDate(working, now)

	name := cleanResidual(working)
	if name == "" {
		name = original
	}
	draft.Name = name
	return draft, nil
}

// extractPriority scans for priority keywords. Critical keywords win over
// High, which wins over Low; all recognized keywords are consumed either way.
func extractPriority(text string) (string, domain.Priority) {
	priority := domain.PriorityMedium
	switch {
	case reCritical.MatchString(text):
		priority = domain.PriorityCritical
	case reHigh.MatchString(text):
		priority = domain.PriorityHigh
	case reLow.MatchString(text):
		priority = domain.PriorityLow
	}
	text = reCritical.ReplaceAllString(text, " ")
	text = reHigh.ReplaceAllString(text, " ")
	text = reLow.ReplaceAllString(text, " ")
	return text, priority
}

// extractCategory matches the fixed category vocabulary in display order;
// the first category found wins and its keyword is consumed.
func extractCategory(text string) (string, domain.Category) {
	for _, cat := range domain.Categories {
		re, ok := categoryWord[cat]
		if !ok {
			continue
		}
		if loc := re.FindStringIndex(text); loc != nil {
			return cut(text, loc), cat
		}
	}
	return text, domain.CategoryGeneral
}

// extractDuration recognizes "<N> min(utes)" and "<N> hour(s)" estimates,
// summing both when present ("1 hour 30 min" is 90 minutes).
func extractDuration(text string) (string, *int) {
	total := 0
	if m := reHours.FindStringSubmatchIndex(text); m != nil {
		n, _ := strconv.Atoi(text[m[2]:m[3]])
		total += n * 60
		text = cut(text, m[:2])
	}
	if m := reMinutes.FindStringSubmatchIndex(text); m != nil {
		n, _ := strconv.Atoi(text[m[2]:m[3]])
		total += n
		text = cut(text, m[:2])
	}
	if total <= 0 {
		return text, nil
	}
	return text, &total
}

// splitSubtasks recognizes an enumerated list: segments after a pipe, or
// after "then" sequencing, become subtask titles; the first segment stays
// as the working text.
func splitSubtasks(text string) (string, []string) {
	var parts []string
	switch {
	case strings.Contains(text, "|"):
		parts = strings.Split(text, "|")
	case reThen.MatchString(text):
		parts = reThen.Split(text, -1)
	default:
		return text, nil
	}

	head := strings.TrimSpace(parts[0])
	var subtasks []string
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			subtasks = append(subtasks, p)
		}
	}
	return head, subtasks
}

// cleanResidual collapses runs of whitespace and strips stray punctuation
// left behind by consumed spans.
func cleanResidual(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return reTrailing.ReplaceAllString(text, "")
}
