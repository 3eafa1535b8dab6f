package request

// ValidateDiscountRequest validates one coupon code against an order.
type ValidateDiscountRequest struct {
	Code  string       `json:"code" binding:"required,min=3,max=50"`
	Order OrderContext `json:"order" binding:"required"`
}

// ValidateStackedRequest validates a chain of codes in the given order; the
// order matters because each discount reduces the amount seen by the next.
type ValidateStackedRequest struct {
	Codes []string     `json:"codes" binding:"required,min=1,max=10,dive,min=3,max=50"`
	Order OrderContext `json:"order" binding:"required"`
}

// AutomaticDiscountsRequest asks for every automatic discount the order
// qualifies for.
type AutomaticDiscountsRequest struct {
	Order OrderContext `json:"order" binding:"required"`
}
