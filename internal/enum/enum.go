package enum

// Discount modes accepted by the pricing calculator. The strings are stored
// verbatim in persisted receipts, so they are part of the storage contract.
const (
	DiscountModePercentage = "percentage"
	DiscountModeFlat       = "flat"
)

// ValidDiscountMode reports whether s is a known discount mode.
func ValidDiscountMode(s string) bool {
	switch s {
	case DiscountModePercentage, DiscountModeFlat:
		return true
	}
	return false
}
