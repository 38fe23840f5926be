package promotion

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// FindOverlapping returns the active promotions of propertyID whose period shares a day with candidate.
func FindOverlapping(propertyID uuid.UUID, candidate Period, existing []*Promotion) []*Promotion {
	var out []*Promotion
	for _, p := range existing {
		if p.propertyID != propertyID || !p.active {
			continue
		}
		if p.period.Overlaps(candidate) {
			out = append(out, p)
		}
	}
	return out
}

// OverlapError lists promotions that must be confirmed before the new one can activate.
type OverlapError struct {
	Overlapping []*Promotion
}

func (e *OverlapError) Error() string {
	ids := make([]string, 0, len(e.Overlapping))
	for _, p := range e.Overlapping {
		ids = append(ids, p.id.String())
	}
	return fmt.Sprintf("promotion overlaps active promotions: %s", strings.Join(ids, ", "))
}

// RequireConfirmation fails with an *OverlapError naming every overlapping promotion absent from confirmed.
func RequireConfirmation(overlapping []*Promotion, confirmed []uuid.UUID) error {
	var missing []*Promotion
	for _, p := range overlapping {
		if !slices.Contains(confirmed, p.id) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &OverlapError{Overlapping: missing}
	}
	return nil
}
