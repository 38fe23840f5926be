package response

import (
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"
)

type ConflictingEntityResponse struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func FromConflict(e *availability.ConflictError) *ConflictingEntityResponse {
	if e == nil {
		return nil
	}
	return &ConflictingEntityResponse{
		Kind:      string(e.Kind),
		ID:        e.ID.String(),
		StartDate: formatDate(e.Range.Start),
		EndDate:   formatDate(e.Range.End),
	}
}

type AvailabilityResponse struct {
	Available         bool                       `json:"available"`
	ConflictingEntity *ConflictingEntityResponse `json:"conflictingEntity,omitempty"`
}

func FromAvailability(r *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:         r.Available,
		ConflictingEntity: FromConflict(r.Conflict),
	}
}

type BlackoutResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBlackout(b *availability.BlackoutPeriod) *BlackoutResponse {
	return &BlackoutResponse{
		ID:          b.ID().String(),
		PropertyID:  b.PropertyID().String(),
		StartDate:   formatDate(b.Period().Start),
		EndDate:     formatDate(b.Period().End),
		Title:       b.Title(),
		Description: b.Description(),
		CreatedBy:   b.CreatedBy().String(),
		CreatedAt:   b.CreatedAt(),
	}
}

type SkippedEventResponse struct {
	UID       string `json:"uid,omitempty"`
	Summary   string `json:"summary,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Reason    string `json:"reason"`
}

type CalendarImportResponse struct {
	Imported []*BlackoutResponse    `json:"imported"`
	Skipped  []SkippedEventResponse `json:"skipped"`
}

func FromImportResult(r *commands.ImportResult) *CalendarImportResponse {
	res := &CalendarImportResponse{
		Imported: make([]*BlackoutResponse, len(r.Imported)),
		Skipped:  make([]SkippedEventResponse, len(r.Skipped)),
	}
	for i, b := range r.Imported {
		res.Imported[i] = FromBlackout(b)
	}
	for i, s := range r.Skipped {
		res.Skipped[i] = SkippedEventResponse{
			UID:       s.UID,
			Summary:   s.Summary,
			StartDate: formatOptionalDate(s.StartDate),
			EndDate:   formatOptionalDate(s.EndDate),
			Reason:    s.Reason,
		}
	}
	return res
}

func formatOptionalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return formatDate(t)
}
