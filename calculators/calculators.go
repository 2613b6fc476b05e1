// Package calculators implements the closed-form obstetric calculators:
// gestational age, body mass index with gestational weight-gain bands,
// Bishop score, estimated fetal weight and amniotic fluid index. All
// functions are pure; formula constants are taken from the published
// references and not re-derived here.
package calculators

import (
	"fmt"
	"math"
	"time"
)

// Calculator type identifiers used by the dispatch endpoint and the
// history store.
const (
	TypeGestationalAge = "gestational-age"
	TypeBMI            = "bmi"
	TypeBishop         = "bishop"
	TypeFetalWeight    = "fetal-weight"
	TypeAmnioticFluid  = "amniotic-fluid"
)

const lmpDateLayout = "2006-01-02"

// gestationDays is the Naegele term: 280 days from last menstrual period.
const gestationDays = 280

// GestationalAgeInput describes a gestational age calculation request.
type GestationalAgeInput struct {
	// LastPeriodDate is the first day of the last menstrual period,
	// formatted as YYYY-MM-DD.
	LastPeriodDate string `json:"lastPeriodDate"`

	// ReferenceDate optionally overrides "today" for the calculation,
	// formatted as YYYY-MM-DD.
	ReferenceDate string `json:"referenceDate,omitempty"`
}

// GestationalAgeResult is the gestational age and Naegele due date.
type GestationalAgeResult struct {
	Weeks   int    `json:"weeks"`
	Days    int    `json:"days"`
	DueDate string `json:"dueDate"`
	Method  string `json:"method"`
}

// GestationalAge computes weeks+days of gestation from the last menstrual
// period and the estimated due date by Naegele's rule.
func GestationalAge(input GestationalAgeInput) (GestationalAgeResult, error) {
	lmp, err := time.Parse(lmpDateLayout, input.LastPeriodDate)
	if err != nil {
		return GestationalAgeResult{}, fmt.Errorf("invalid lastPeriodDate: %w", err)
	}

	reference := time.Now()
	if input.ReferenceDate != "" {
		reference, err = time.Parse(lmpDateLayout, input.ReferenceDate)
		if err != nil {
			return GestationalAgeResult{}, fmt.Errorf("invalid referenceDate: %w", err)
		}
	}

	if reference.Before(lmp) {
		return GestationalAgeResult{}, fmt.Errorf("lastPeriodDate cannot be in the future")
	}

	diffDays := int(reference.Sub(lmp).Hours() / 24)
	if diffDays > 2*gestationDays {
		return GestationalAgeResult{}, fmt.Errorf("lastPeriodDate is too far in the past")
	}

	return GestationalAgeResult{
		Weeks:   diffDays / 7,
		Days:    diffDays % 7,
		DueDate: lmp.AddDate(0, 0, gestationDays).Format(lmpDateLayout),
		Method:  "FUR",
	}, nil
}

// BMIInput describes a pregnancy BMI calculation request. Weight is the
// pre-pregnancy weight in kilograms, height in meters.
type BMIInput struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// WeightGainRange is a recommended total gestational weight gain in kg.
type WeightGainRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BMIResult carries the BMI, its classification and the recommended total
// gestational weight gain for that classification (IOM bands).
type BMIResult struct {
	BMI             float64         `json:"bmi"`
	Classification  string          `json:"classification"`
	RecommendedGain WeightGainRange `json:"recommendedGain"`
}

// BMI computes the body mass index and the matching gestational
// weight-gain recommendation.
func BMI(input BMIInput) (BMIResult, error) {
	if input.Weight <= 0 || input.Weight > 400 {
		return BMIResult{}, fmt.Errorf("weight must be between 0 and 400 kg")
	}
	if input.Height <= 0 || input.Height > 2.5 {
		return BMIResult{}, fmt.Errorf("height must be between 0 and 2.5 m")
	}

	bmi := input.Weight / (input.Height * input.Height)
	bmi = math.Round(bmi*10) / 10

	result := BMIResult{BMI: bmi}
	switch {
	case bmi < 18.5:
		result.Classification = "Bajo peso"
		result.RecommendedGain = WeightGainRange{Min: 12.5, Max: 18}
	case bmi < 25:
		result.Classification = "Peso normal"
		result.RecommendedGain = WeightGainRange{Min: 11.5, Max: 16}
	case bmi < 30:
		result.Classification = "Sobrepeso"
		result.RecommendedGain = WeightGainRange{Min: 7, Max: 11.5}
	default:
		result.Classification = "Obesidad"
		result.RecommendedGain = WeightGainRange{Min: 5, Max: 9}
	}
	return result, nil
}

// BishopInput holds the five cervical exam components. Dilation,
// effacement, consistency, position and station are the already-assigned
// component scores, not raw measurements.
type BishopInput struct {
	Dilation    int `json:"dilation"`
	Effacement  int `json:"effacement"`
	Consistency int `json:"consistency"`
	Position    int `json:"position"`
	Station     int `json:"station"`
}

// BishopResult is the total Bishop score with its interpretation.
type BishopResult struct {
	Score          int    `json:"score"`
	Favorability   string `json:"favorability"`
	Recommendation string `json:"recommendation"`
}

// Bishop sums the component scores and interprets induction favorability.
func Bishop(input BishopInput) (BishopResult, error) {
	components := []struct {
		name  string
		value int
		max   int
	}{
		{"dilation", input.Dilation, 3},
		{"effacement", input.Effacement, 3},
		{"consistency", input.Consistency, 2},
		{"position", input.Position, 2},
		{"station", input.Station, 3},
	}
	for _, c := range components {
		if c.value < 0 || c.value > c.max {
			return BishopResult{}, fmt.Errorf("%s score must be between 0 and %d", c.name, c.max)
		}
	}

	score := input.Dilation + input.Effacement + input.Consistency + input.Position + input.Station

	result := BishopResult{Score: score}
	switch {
	case score < 5:
		result.Favorability = "Desfavorable"
		result.Recommendation = "Considerar maduración cervical antes de la inducción"
	case score <= 8:
		result.Favorability = "Intermedio"
		result.Recommendation = "Inducción posible, monitorizar progreso cuidadosamente"
	default:
		result.Favorability = "Favorable"
		result.Recommendation = "Condiciones favorables para inducción"
	}
	return result, nil
}

// FetalWeightInput holds the four ultrasound biometry measurements in
// millimeters plus the gestational age in whole weeks for the
// percentile band.
type FetalWeightInput struct {
	BiparietalDiameter     float64 `json:"bpd"`
	HeadCircumference      float64 `json:"hc"`
	AbdominalCircumference float64 `json:"ac"`
	FemurLength            float64 `json:"fl"`
	GestationalWeeks       int     `json:"gestationalWeeks"`
}

// FetalWeightResult is the Hadlock weight estimate in grams with its
// percentile band for the gestational week.
type FetalWeightResult struct {
	WeightGrams    int    `json:"weightGrams"`
	Percentile     string `json:"percentile"`
	Classification string `json:"classification"`
}

// fetalWeightBands maps gestational week to reference weights in grams.
// Keys p3 through p97 follow the standard growth-curve percentiles.
var fetalWeightBands = map[int]struct{ p3, p10, p90, p97 int }{
	20: {249, 275, 378, 402},
	21: {280, 312, 447, 478},
	22: {330, 370, 544, 583},
	23: {385, 435, 661, 710},
	24: {450, 515, 812, 875},
	25: {525, 610, 998, 1080},
	26: {628, 728, 1241, 1350},
	27: {728, 858, 1498, 1634},
	28: {852, 1012, 1815, 1990},
	29: {1000, 1190, 2156, 2375},
	30: {1153, 1380, 2498, 2760},
	31: {1338, 1595, 2912, 3220},
	32: {1518, 1810, 3326, 3680},
	33: {1713, 2038, 3740, 4140},
	34: {1910, 2270, 4154, 4600},
	35: {2110, 2500, 4568, 5060},
	36: {2313, 2730, 4982, 5520},
	37: {2518, 2960, 5396, 5980},
	38: {2723, 3190, 5810, 6440},
	39: {2928, 3420, 6224, 6900},
	40: {3133, 3650, 6638, 7360},
	41: {3338, 3880, 7052, 7820},
	42: {3543, 4110, 7466, 8280},
}

// FetalWeight estimates fetal weight by the four-parameter Hadlock
// regression and classifies it against the weekly reference bands.
func FetalWeight(input FetalWeightInput) (FetalWeightResult, error) {
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"bpd", input.BiparietalDiameter},
		{"hc", input.HeadCircumference},
		{"ac", input.AbdominalCircumference},
		{"fl", input.FemurLength},
	} {
		if m.value <= 0 || m.value > 500 {
			return FetalWeightResult{}, fmt.Errorf("%s must be between 0 and 500 mm", m.name)
		}
	}

	// Hadlock regression works in centimeters
	bpd := input.BiparietalDiameter / 10
	hc := input.HeadCircumference / 10
	ac := input.AbdominalCircumference / 10
	fl := input.FemurLength / 10

	logWeight := 1.3596 -
		0.00386*ac*fl +
		0.0064*hc +
		0.00061*bpd*ac +
		0.0424*ac +
		0.174*fl
	grams := int(math.Round(math.Pow(10, logWeight)))

	result := FetalWeightResult{WeightGrams: grams}

	bands, ok := fetalWeightBands[input.GestationalWeeks]
	if !ok {
		return FetalWeightResult{}, fmt.Errorf("gestationalWeeks must be between 20 and 42")
	}

	switch {
	case grams < bands.p3:
		result.Percentile = "<3"
		result.Classification = "Muy pequeño para la edad gestacional"
	case grams < bands.p10:
		result.Percentile = "3-10"
		result.Classification = "Pequeño para la edad gestacional"
	case grams <= bands.p90:
		result.Percentile = "10-90"
		result.Classification = "Adecuado para la edad gestacional"
	case grams <= bands.p97:
		result.Percentile = "90-97"
		result.Classification = "Grande para la edad gestacional"
	default:
		result.Percentile = ">97"
		result.Classification = "Muy grande para la edad gestacional"
	}
	return result, nil
}

// AmnioticFluidInput holds the four quadrant pocket depths in centimeters.
type AmnioticFluidInput struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
	Q4 float64 `json:"q4"`
}

// AmnioticFluidResult is the amniotic fluid index with its category.
type AmnioticFluidResult struct {
	Index    float64 `json:"index"`
	Category string  `json:"category"`
}

// AmnioticFluid sums the quadrant pockets into the amniotic fluid index
// and classifies it.
func AmnioticFluid(input AmnioticFluidInput) (AmnioticFluidResult, error) {
	for _, q := range []float64{input.Q1, input.Q2, input.Q3, input.Q4} {
		if q < 0 || q > 30 {
			return AmnioticFluidResult{}, fmt.Errorf("quadrant depths must be between 0 and 30 cm")
		}
	}

	index := input.Q1 + input.Q2 + input.Q3 + input.Q4
	index = math.Round(index*10) / 10

	result := AmnioticFluidResult{Index: index}
	switch {
	case index < 5:
		result.Category = "Oligohidramnios severo"
	case index < 8:
		result.Category = "Oligohidramnios"
	case index <= 18:
		result.Category = "Normal"
	case index <= 24:
		result.Category = "Polihidramnios leve"
	default:
		result.Category = "Polihidramnios severo"
	}
	return result, nil
}
