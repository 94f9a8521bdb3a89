package health

import "errors"

var ErrInvalidMeasurement = errors.New("weight and height must be positive values")

// BMICategory is the WHO classification bucket for a BMI value.
// Values are constructed through CategoryFromBMI only, so an invalid
// category cannot enter the system.
type BMICategory string

const (
	CategoryUnderweight BMICategory = "underweight"
	CategoryNormal      BMICategory = "normal"
	CategoryOverweight  BMICategory = "overweight"
	CategoryObese       BMICategory = "obese"
)

// CategoryFromBMI classifies a BMI value. Boundaries are half-open on
// the lower bound, i.e. a boundary value belongs to the higher category:
// 18.5 is normal, 25 is overweight, 30 is obese.
func CategoryFromBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func (c BMICategory) String() string {
	return string(c)
}

func (c BMICategory) IsValid() bool {
	switch c {
	case CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObese:
		return true
	default:
		return false
	}
}

func (c BMICategory) DisplayName() string {
	switch c {
	case CategoryUnderweight:
		return "Underweight"
	case CategoryNormal:
		return "Normal"
	case CategoryOverweight:
		return "Overweight"
	case CategoryObese:
		return "Obese"
	default:
		return "Unknown"
	}
}

func (c BMICategory) Range() string {
	switch c {
	case CategoryUnderweight:
		return "BMI < 18.5"
	case CategoryNormal:
		return "BMI 18.5 - 24.9"
	case CategoryOverweight:
		return "BMI 25 - 29.9"
	case CategoryObese:
		return "BMI >= 30"
	default:
		return ""
	}
}

// NeedsAlert reports whether a measurement in this category should
// produce a health alert. Everything except normal does.
func (c BMICategory) NeedsAlert() bool {
	return c != CategoryNormal
}

func (c BMICategory) Advice() string {
	switch c {
	case CategoryUnderweight:
		return "Consider increasing calorie intake with nutrient-rich foods. " +
			"Consult a healthcare provider for personalized advice."
	case CategoryNormal:
		return "Maintain your healthy lifestyle with balanced diet and regular exercise."
	case CategoryOverweight:
		return "Consider increasing physical activity and monitoring calorie intake. " +
			"Small lifestyle changes can make a big difference."
	case CategoryObese:
		return "It's recommended to consult a healthcare provider for a personalized " +
			"weight management plan. Focus on gradual, sustainable changes."
	default:
		return "Consult a healthcare provider for personalized advice."
	}
}

// ComputeBMI calculates the body mass index from weight in kilograms
// and height in centimeters. The result is not rounded, display
// formatting is up to the caller.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// IdealWeightRange returns the weight range in kilograms that maps to
// a normal BMI for the given height.
func IdealWeightRange(heightCm float64) (minKg, maxKg float64, err error) {
	if heightCm <= 0 {
		return 0, 0, ErrInvalidMeasurement
	}
	heightM := heightCm / 100
	return 18.5 * heightM * heightM, 24.9 * heightM * heightM, nil
}

// TargetWeightFor returns the weight in kilograms that would produce
// the given target BMI at the given height.
func TargetWeightFor(heightCm, targetBMI float64) (float64, error) {
	if heightCm <= 0 || targetBMI <= 0 {
		return 0, ErrInvalidMeasurement
	}
	heightM := heightCm / 100
	return targetBMI * heightM * heightM, nil
}
