package health

import "time"

// Measurement is a single weight/height record for a subject.
// BMI and Category are always derived from the weight/height pair,
// never set directly; history is append-only and the latest record
// by date is the authoritative current state.
type Measurement struct {
	ID         int         `json:"id"`
	SubjectID  int         `json:"subjectId"`
	WeightKg   float64     `json:"weightKg"`
	HeightCm   float64     `json:"heightCm"`
	BMI        float64     `json:"bmi"`
	Category   BMICategory `json:"category"`
	MeasuredOn time.Time   `json:"measuredOn"`
}

func NewMeasurement(subjectID int, weightKg, heightCm float64, measuredOn time.Time) (Measurement, error) {
	bmi, err := ComputeBMI(weightKg, heightCm)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		SubjectID:  subjectID,
		WeightKg:   weightKg,
		HeightCm:   heightCm,
		BMI:        bmi,
		Category:   CategoryFromBMI(bmi),
		MeasuredOn: measuredOn,
	}, nil
}

// WithWeight returns a copy with the weight replaced and BMI/category recomputed.
func (m Measurement) WithWeight(weightKg float64) (Measurement, error) {
	return recompute(m, weightKg, m.HeightCm)
}

// WithHeight returns a copy with the height replaced and BMI/category recomputed.
func (m Measurement) WithHeight(heightCm float64) (Measurement, error) {
	return recompute(m, m.WeightKg, heightCm)
}

func recompute(m Measurement, weightKg, heightCm float64) (Measurement, error) {
	bmi, err := ComputeBMI(weightKg, heightCm)
	if err != nil {
		return Measurement{}, err
	}
	m.WeightKg = weightKg
	m.HeightCm = heightCm
	m.BMI = bmi
	m.Category = CategoryFromBMI(bmi)
	return m, nil
}
