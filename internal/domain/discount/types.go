package discount

// Kind separates discounts applied automatically during checkout from those
// redeemed with a customer-supplied coupon code.
type Kind string

const (
	KindAutomatic Kind = "Automatic"
	KindCoupon    Kind = "Coupon"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindAutomatic, KindCoupon:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ValueType is the closed set of calculation modes. Adding a mode means
// extending every switch over this type; the calculator rejects unknown
// values instead of guessing.
type ValueType string

const (
	ValuePercentage  ValueType = "Percentage"
	ValueFixedAmount ValueType = "FixedAmount"
	ValueFixedPrice  ValueType = "FixedPrice"
)

func (v ValueType) IsValid() bool {
	switch v {
	case ValuePercentage, ValueFixedAmount, ValueFixedPrice:
		return true
	}
	return false
}

func (v ValueType) String() string {
	return string(v)
}
