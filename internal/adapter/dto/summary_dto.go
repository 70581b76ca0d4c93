package dto

import (
	"time"

	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
	"github.com/kimdohyun-dev/actionlog/internal/usecase/summary"
)

// SummarizeResponse is the three-field result of one summarize run
type SummarizeResponse struct {
	Summary     string `json:"summary"`
	Decisions   string `json:"decisions"`
	ActionItems string `json:"actionItems"`
}

// NewSummarizeResponse maps the usecase result to the response contract
func NewSummarizeResponse(r *summary.Result) *SummarizeResponse {
	return &SummarizeResponse{
		Summary:     r.Summary,
		Decisions:   r.Decisions,
		ActionItems: r.ActionItems,
	}
}

// HistoryItem is one entry in the user's summary history
type HistoryItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Decisions   string    `json:"decisions"`
	ActionItems string    `json:"actionItems"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewHistoryItems maps persisted summaries to the history contract
func NewHistoryItems(summaries []*entities.Summary) []HistoryItem {
	items := make([]HistoryItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, HistoryItem{
			ID:          s.ID,
			Title:       s.Title,
			Summary:     s.Summary,
			Decisions:   s.Decisions,
			ActionItems: s.ActionItems,
			CreatedAt:   s.CreatedAt,
		})
	}
	return items
}
