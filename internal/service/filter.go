package service

import (
	"strings"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// ApplyFilter evaluates a declarative filter against an in-memory record
// collection. The repository expresses the same semantics in SQL; this
// path serves the fallback sample set and any client-side re-filtering.
//
// Active dimensions are ANDed; within the search term the candidate text
// fields are ORed. Output preserves the relative order of the input and
// never duplicates or synthesizes records. An all-unset (or all-"all")
// filter returns the input unchanged.
func ApplyFilter(records []models.Feedback, filter models.Filter) []models.Feedback {
	if filter.IsZero() {
		return records
	}

	out := make([]models.Feedback, 0, len(records))
	for _, f := range records {
		if matches(f, filter) {
			out = append(out, f)
		}
	}
	return out
}

func matches(f models.Feedback, filter models.Filter) bool {
	if !matchDimension(f.Sentiment, filter.Sentiment) {
		return false
	}
	if !matchDimension(f.Topic, filter.Topic) {
		return false
	}
	if !matchDimension(f.Category, filter.Category) {
		return false
	}
	if !matchDimension(f.Status, filter.Status) {
		return false
	}
	if filter.DateFrom != "" && f.Date < filter.DateFrom {
		return false
	}
	if filter.DateTo != "" && f.Date > filter.DateTo {
		return false
	}
	if filter.Search != "" && !matchSearch(f, filter.Search) {
		return false
	}
	return true
}

// matchDimension is a case-insensitive exact match; empty or "all" means
// the dimension is unconstrained.
func matchDimension(value, want string) bool {
	if want == "" || want == "all" {
		return true
	}
	return strings.EqualFold(value, want)
}

func matchSearch(f models.Feedback, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{f.PostCopy, f.AccountID, f.Product, f.Reply, f.Details} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
