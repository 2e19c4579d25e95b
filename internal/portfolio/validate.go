package portfolio

import (
	"math"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

// Validation bounds. Age must fall strictly between MinAge and MaxAge.
const (
	MinAge              = 0
	MaxAge              = 65
	MinInvestmentAmount = 5000
)

const (
	ageViolationMessage = "You should be at least 1 and below 65 years old. " +
		"Please provide a different age."
	amountViolationMessage = "The amount to convert should be at least $5000. " +
		"Please provide an amount of at least $5000."
)

// Validator checks the numeric slots of a RecommendPortfolio event.
//
// With Strict unset, a value that does not parse becomes NaN and therefore
// passes its range check. With Strict set, such a value is reported as a
// violation of its slot.
type Validator struct {
	Strict bool
}

// Validate returns the first violation found. Age is checked before the
// investment amount; a nil value means the slot has not been collected and
// is skipped. req is accepted for parity with the platform's slot-validation
// hook and is not inspected.
func (v Validator) Validate(age, investmentAmount *string, req *domain.IntentRequest) domain.ValidationResult {
	if age != nil {
		n := ParseInt(*age)
		if n <= MinAge || n >= MaxAge || (v.Strict && math.IsNaN(n)) {
			return invalid(domain.SlotAge, ageViolationMessage)
		}
	}

	if investmentAmount != nil {
		f := ParseFloat(*investmentAmount)
		if f < MinInvestmentAmount || (v.Strict && math.IsNaN(f)) {
			return invalid(domain.SlotInvestmentAmount, amountViolationMessage)
		}
	}

	return domain.ValidationResult{IsValid: true}
}

// Validate runs the default, non-strict Validator.
func Validate(age, investmentAmount *string, req *domain.IntentRequest) domain.ValidationResult {
	return Validator{}.Validate(age, investmentAmount, req)
}

func invalid(slot, message string) domain.ValidationResult {
	return domain.ValidationResult{
		IsValid:      false,
		ViolatedSlot: slot,
		Message:      domain.PlainText(message),
	}
}
