package property

import "errors"

var ErrInvalidPromotionPriority = errors.New("invalid promotion priority")

// PromotionPriority is the host's policy for combining special prices and promotions.
type PromotionPriority string

const (
	PriorityPromotionFirst    PromotionPriority = "PROMOTION_FIRST"
	PrioritySpecialPriceFirst PromotionPriority = "SPECIAL_PRICE_FIRST"
	PriorityMostAdvantageous  PromotionPriority = "MOST_ADVANTAGEOUS"
	PriorityStackDiscounts    PromotionPriority = "STACK_DISCOUNTS"
)

const DefaultPromotionPriority = PriorityPromotionFirst

func (p PromotionPriority) String() string {
	return string(p)
}

func (p PromotionPriority) IsValid() bool {
	switch p {
	case PriorityPromotionFirst, PrioritySpecialPriceFirst, PriorityMostAdvantageous, PriorityStackDiscounts:
		return true
	default:
		return false
	}
}

func NewPromotionPriority(s string) (PromotionPriority, error) {
	if s == "" {
		return DefaultPromotionPriority, nil
	}
	p := PromotionPriority(s)
	if !p.IsValid() {
		return "", ErrInvalidPromotionPriority
	}
	return p, nil
}
