package pgq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Property struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	PropertyTypeID    pgtype.UUID
	Title             string
	BasePrice         pgtype.Numeric
	Currency          string
	Latitude          float64
	Longitude         float64
	PromotionPriority string
	CreatedAt         pgtype.Timestamptz
}

type SpecialPrice struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	PricePerNight pgtype.Numeric
	StartDate     pgtype.Date
	EndDate       pgtype.Date
	Active        bool
}

type Reservation struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	GuestID    uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type BlackoutPeriod struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Title       string
	Description pgtype.Text
	CreatedBy   uuid.UUID
	CreatedAt   pgtype.Timestamptz
}

type Extra struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	PriceEur    pgtype.Numeric
	PriceMga    pgtype.Numeric
	PricingType string
	OwnerID     pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type CommissionRule struct {
	ID                    uuid.UUID
	Title                 string
	HostCommissionRate    pgtype.Numeric
	HostCommissionFixed   pgtype.Numeric
	ClientCommissionRate  pgtype.Numeric
	ClientCommissionFixed pgtype.Numeric
	PropertyTypeID        pgtype.UUID
	Active                bool
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

type Promotion struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	DiscountPercentage pgtype.Numeric
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	Active             bool
	CreatedBy          uuid.UUID
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type OutboxEvent struct {
	ID            uuid.UUID
	Topic         string
	Key           string
	Payload       []byte
	CreatedAt     pgtype.Timestamptz
	PublishedAt   pgtype.Timestamptz
	Attempts      int32
	LastError     pgtype.Text
	NextAttemptAt pgtype.Timestamptz
}
