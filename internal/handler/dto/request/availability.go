package request

import (
	"hosteed/internal/usecase/commands"

	"github.com/google/uuid"
)

type AvailabilityCheckRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	StartDate  string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string    `json:"endDate" binding:"required,datetime=2006-01-02"`
}

type CreateBlackoutRequest struct {
	StartDate   string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" binding:"required,datetime=2006-01-02"`
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

func (r *CreateBlackoutRequest) ToInput(propertyID uuid.UUID) (commands.CreateBlackoutInput, error) {
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreateBlackoutInput{}, err
	}
	return commands.CreateBlackoutInput{
		PropertyID:  propertyID,
		StartDate:   start,
		EndDate:     end,
		Title:       r.Title,
		Description: r.Description,
	}, nil
}
