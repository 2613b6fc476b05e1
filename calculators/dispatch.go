package calculators

import (
	"encoding/json"
	"fmt"
)

// ErrUnknownType is returned by Compute for an unrecognized calculator type.
var ErrUnknownType = fmt.Errorf("unknown calculator type")

// Types lists the supported calculator type identifiers.
func Types() []string {
	return []string{
		TypeGestationalAge,
		TypeBMI,
		TypeBishop,
		TypeFetalWeight,
		TypeAmnioticFluid,
	}
}

// Compute dispatches a raw JSON payload to the calculator named by
// calculatorType and returns its result.
func Compute(calculatorType string, payload json.RawMessage) (any, error) {
	switch calculatorType {
	case TypeGestationalAge:
		var input GestationalAgeInput
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, fmt.Errorf("invalid gestational age input: %w", err)
		}
		return GestationalAge(input)
	case TypeBMI:
		var input BMIInput
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, fmt.Errorf("invalid bmi input: %w", err)
		}
		return BMI(input)
	case TypeBishop:
		var input BishopInput
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, fmt.Errorf("invalid bishop input: %w", err)
		}
		return Bishop(input)
	case TypeFetalWeight:
		var input FetalWeightInput
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, fmt.Errorf("invalid fetal weight input: %w", err)
		}
		return FetalWeight(input)
	case TypeAmnioticFluid:
		var input AmnioticFluidInput
		if err := json.Unmarshal(payload, &input); err != nil {
			return nil, fmt.Errorf("invalid amniotic fluid input: %w", err)
		}
		return AmnioticFluid(input)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, calculatorType)
	}
}
