package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rakhadjo/feedsight/internal/repository/models"
)

// The store has carried two naming generations for the same logical
// columns: snake_case rows and a legacy export with capitalized headers.
// normalizeKeys is the single mapping table between them; the first
// spelling listed is the canonical one.
var normalizeKeys = map[string][]string{
	"id":             {"id", "ID"},
	"link":           {"link", "Link"},
	"post_copy":      {"post_copy", "Post Copy"},
	"date":           {"date", "Date"},
	"time":           {"time", "Time"},
	"date_responses": {"date_responses", "Date responses"},
	"account_id":     {"account_id", "Account ID"},
	"customer_id":    {"customer_id", "Customer ID"},
	"category":       {"category", "Category"},
	"type_of_post":   {"type_of_post", "Type of post"},
	"topic":          {"topic", "Topic"},
	"product":        {"product", "Product"},
	"sentiment":      {"sentiment", "Sentiment"},
	"source":         {"source", "Source"},
	"reply":          {"reply", "Reply"},
	"status":         {"status", "Status"},
	"details":        {"details", "Details"},
}

// Defaults applied when a field is absent from the source row.
const (
	defaultCategory   = models.CategoryGeneral
	defaultTypeOfPost = models.TypeOthers
	defaultTopic      = "Product Info"
	defaultSource     = models.SourceDMFacebook
)

func pick(row map[string]any, field string) string {
	for _, key := range normalizeKeys[field] {
		v, ok := row[key]
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			return s
		case float64:
			return strings.TrimSuffix(fmt.Sprintf("%v", s), ".0")
		case int:
			return fmt.Sprintf("%d", s)
		}
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// NormalizeRow converts a raw persistence row into one canonical Feedback.
// Every field comes out populated (defaults substituted for missing ones),
// unknown keys are ignored and nothing here can fail. Feeding an
// already-normalized record back in is a no-op.
func NormalizeRow(row map[string]any) models.Feedback {
	return models.Feedback{
		ID:            pick(row, "id"),
		Link:          pick(row, "link"),
		PostCopy:      pick(row, "post_copy"),
		Date:          NormalizeDate(pick(row, "date")),
		Time:          NormalizeTime(pick(row, "time")),
		DateResponses: NormalizeDate(pick(row, "date_responses")),
		AccountID:     pick(row, "account_id"),
		CustomerID:    pick(row, "customer_id"),
		Category:      orDefault(pick(row, "category"), defaultCategory),
		TypeOfPost:    orDefault(pick(row, "type_of_post"), defaultTypeOfPost),
		Topic:         orDefault(pick(row, "topic"), defaultTopic),
		Product:       pick(row, "product"),
		Sentiment:     orDefault(pick(row, "sentiment"), models.SentimentNeutral),
		Source:        orDefault(pick(row, "source"), defaultSource),
		Reply:         pick(row, "reply"),
		Status:        orDefault(pick(row, "status"), models.StatusPending),
		Details:       pick(row, "details"),
	}
}

var legacyDateLayouts = []string{
	"2-Jan-2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"01/02/2006",
}

// NormalizeDate canonicalizes the date spellings seen in the store into
// ISO 2006-01-02. Unrecognized input passes through untouched so the
// aggregation layer can decide to discard it.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// NormalizeTime fixes the legacy semicolon separator ("12;59") and pads
// to HH:MM. Unparseable input passes through.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, ";", ":"))
	if s == "" {
		return ""
	}
	for _, layout := range []string{"15:04:05", "15:04", "3:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return s
}
