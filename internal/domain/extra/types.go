package extra

type PricingType string

const (
	PricingPerDay       PricingType = "PER_DAY"
	PricingPerPerson    PricingType = "PER_PERSON"
	PricingPerDayPerson PricingType = "PER_DAY_PERSON"
	PricingPerBooking   PricingType = "PER_BOOKING"
)

func (p PricingType) String() string {
	return string(p)
}

func (p PricingType) IsValid() bool {
	switch p {
	case PricingPerDay, PricingPerPerson, PricingPerDayPerson, PricingPerBooking:
		return true
	default:
		return false
	}
}

// Multiplier is the number of unit prices charged for a stay.
func (p PricingType) Multiplier(nights, guests int) int {
	switch p {
	case PricingPerDay:
		return nights
	case PricingPerPerson:
		return guests
	case PricingPerDayPerson:
		return nights * guests
	default:
		return 1
	}
}

func NewPricingType(s string) (PricingType, error) {
	p := PricingType(s)
	if !p.IsValid() {
		return "", ErrInvalidPricingType
	}
	return p, nil
}
