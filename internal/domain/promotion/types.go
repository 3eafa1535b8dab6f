package promotion

// Type is the campaign-level classification of a promotion.
type Type string

const (
	TypePercentage   Type = "Percentage"
	TypeFixedAmount  Type = "FixedAmount"
	TypeBuyXGetY     Type = "BuyXGetY"
	TypeFreeShipping Type = "FreeShipping"
	TypeBundle       Type = "Bundle"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixedAmount, TypeBuyXGetY, TypeFreeShipping, TypeBundle:
		return true
	}
	return false
}

// Status is the administrative lifecycle state. Only Active promotions are
// ever applied; Paused and Draft promotions exist but never match.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusActive    Status = "Active"
	StatusPaused    Status = "Paused"
	StatusExpired   Status = "Expired"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// RuleType classifies a promotion line rule.
type RuleType string

const (
	RuleMinimumPurchase  RuleType = "MinimumPurchase"
	RuleProductQuantity  RuleType = "ProductQuantity"
	RuleCategoryDiscount RuleType = "CategoryDiscount"
	RuleBuyXGetY         RuleType = "BuyXGetY"
	RuleFreeProduct      RuleType = "FreeProduct"
)

func (r RuleType) IsValid() bool {
	switch r {
	case RuleMinimumPurchase, RuleProductQuantity, RuleCategoryDiscount, RuleBuyXGetY, RuleFreeProduct:
		return true
	}
	return false
}

// GrantsFreeProduct reports whether the rule type awards items rather than a
// plain amount reduction.
func (r RuleType) GrantsFreeProduct() bool {
	return r == RuleFreeProduct || r == RuleBuyXGetY
}
