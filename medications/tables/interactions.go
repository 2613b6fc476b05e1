package tables

import (
	"strings"

	"github.com/matergo/obstetric-api/medications/entities"
)

// Known pregnancy-relevant interaction pairs. The list is small and curated;
// matching against it is substring based and bidirectional.
var drugInteractions = []entities.Interaction{
	{
		Drug1:                 "warfarina",
		Drug2:                 "aspirina",
		Severity:              entities.SeverityMajor,
		Mechanism:             "Sinergismo anticoagulante y antiagregante",
		ClinicalEffect:        "Riesgo significativamente aumentado de hemorragia",
		PregnancySpecificRisk: "Hemorragia materna y fetal. Ambos medicamentos tienen riesgos en embarazo.",
		Management:            "Evitar combinación. Cambiar warfarina por heparina.",
		Alternatives:          []string{"heparina", "enoxaparina"},
		MonitoringParameters:  []string{"INR", "TP", "signos de sangrado"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocExcellent,
	},
	{
		Drug1:                 "enalapril",
		Drug2:                 "losartan",
		Severity:              entities.SeverityContraindicated,
		Mechanism:             "Doble bloqueo del sistema renina-angiotensina",
		ClinicalEffect:        "Hipotensión severa, insuficiencia renal",
		PregnancySpecificRisk: "Oligohidramnios severo, muerte fetal",
		Management:            "Contraindicado absoluto. Usar metildopa.",
		Alternatives:          []string{"metildopa", "nifedipino"},
		MonitoringParameters:  []string{"presión arterial", "función renal", "líquido amniótico"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocExcellent,
	},
	{
		Drug1:                 "fluoxetina",
		Drug2:                 "sertralina",
		Severity:              entities.SeverityMajor,
		Mechanism:             "Duplicación efecto serotoninérgico",
		ClinicalEffect:        "Síndrome serotoninérgico",
		PregnancySpecificRisk: "Toxicidad materna y posibles efectos neonatales",
		Management:            "Evitar combinación. Usar un solo ISRS.",
		Alternatives:          []string{"monoterapia con sertralina"},
		MonitoringParameters:  []string{"síntomas serotoninérgicos", "temperatura"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocExcellent,
	},
	{
		Drug1:                 "clonazepam",
		Drug2:                 "diazepam",
		Severity:              entities.SeverityMajor,
		Mechanism:             "Efecto aditivo sobre depresión SNC",
		ClinicalEffect:        "Sedación excesiva, depresión respiratoria",
		PregnancySpecificRisk: "Mayor riesgo de malformaciones y síndrome de abstinencia neonatal",
		Management:            "Evitar combinación. Reducir gradualmente ambos.",
		Alternatives:          []string{"psicoterapia", "técnicas de relajación"},
		MonitoringParameters:  []string{"nivel de conciencia", "función respiratoria"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocExcellent,
	},
	{
		Drug1:                 "metformina",
		Drug2:                 "prednisona",
		Severity:              entities.SeverityModerate,
		Mechanism:             "Antagonismo en control glucémico",
		ClinicalEffect:        "Hiperglucemia, pérdida de control diabético",
		PregnancySpecificRisk: "Diabetes gestacional descontrolada",
		Management:            "Monitoreo frecuente de glucosa. Ajustar dosis.",
		Alternatives:          []string{"insulina si es necesario"},
		MonitoringParameters:  []string{"glucosa capilar", "HbA1c"},
		Onset:                 entities.OnsetDelayed,
		Documentation:         entities.DocGood,
	},
	{
		Drug1:                 "levotiroxina",
		Drug2:                 "omeprazol",
		Severity:              entities.SeverityModerate,
		Mechanism:             "Reducción absorción de levotiroxina",
		ClinicalEffect:        "Hipotiroidismo, pérdida de control tiroideo",
		PregnancySpecificRisk: "Hipotiroidismo maternal afecta desarrollo fetal",
		Management:            "Separar administración por 4 horas.",
		Alternatives:          []string{"esomeprazol con separación temporal"},
		MonitoringParameters:  []string{"TSH", "T4 libre"},
		Onset:                 entities.OnsetDelayed,
		Documentation:         entities.DocGood,
	},
	{
		Drug1:                 "azitromicina",
		Drug2:                 "ondansetron",
		Severity:              entities.SeverityModerate,
		Mechanism:             "Prolongación intervalo QT",
		ClinicalEffect:        "Arritmias cardíacas",
		PregnancySpecificRisk: "Arritmias maternas, compromiso fetal",
		Management:            "Monitoreo EKG. Considerar alternativas.",
		Alternatives:          []string{"amoxicilina", "metoclopramida"},
		MonitoringParameters:  []string{"EKG", "intervalo QT"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocGood,
	},
	{
		Drug1:                 "atenolol",
		Drug2:                 "insulina",
		Severity:              entities.SeverityModerate,
		Mechanism:             "Enmascaramiento síntomas hipoglucemia",
		ClinicalEffect:        "Hipoglucemia no reconocida",
		PregnancySpecificRisk: "Hipoglucemia materna severa",
		Management:            "Monitoreo frecuente de glucosa.",
		Alternatives:          []string{"metildopa", "monitoreo continuo glucosa"},
		MonitoringParameters:  []string{"glucosa capilar frecuente"},
		Onset:                 entities.OnsetVariable,
		Documentation:         entities.DocGood,
	},
	{
		Drug1:                 "paracetamol",
		Drug2:                 "warfarina",
		Severity:              entities.SeverityModerate,
		Mechanism:             "Potenciación efecto anticoagulante",
		ClinicalEffect:        "Aumento leve del riesgo de sangrado",
		PregnancySpecificRisk: "Warfarina ya contraindicada en embarazo",
		Management:            "Cambiar warfarina por heparina.",
		Alternatives:          []string{"heparina", "acetaminofén seguro con heparina"},
		MonitoringParameters:  []string{"INR", "signos de sangrado"},
		Onset:                 entities.OnsetDelayed,
		Documentation:         entities.DocGood,
	},
	{
		Drug1:                 "amoxicilina",
		Drug2:                 "metformina",
		Severity:              entities.SeverityMinor,
		Mechanism:             "Alteración flora intestinal afecta absorción",
		ClinicalEffect:        "Posible alteración leve en control glucémico",
		PregnancySpecificRisk: "Mínimo, ambos medicamentos seguros",
		Management:            "Monitoreo rutinario de glucosa.",
		Alternatives:          []string{"continuar ambos con monitoreo"},
		MonitoringParameters:  []string{"glucosa capilar"},
		Onset:                 entities.OnsetDelayed,
		Documentation:         entities.DocFair,
	},
	{
		Drug1:                 "cefalexina",
		Drug2:                 "heparina",
		Severity:              entities.SeverityMinor,
		Mechanism:             "Posible potenciación anticoagulante leve",
		ClinicalEffect:        "Riesgo mínimamente aumentado de sangrado",
		PregnancySpecificRisk: "Ambos seguros en embarazo",
		Management:            "Monitoreo estándar.",
		Alternatives:          []string{"continuar con precaución"},
		MonitoringParameters:  []string{"PTT", "signos de sangrado"},
		Onset:                 entities.OnsetDelayed,
		Documentation:         entities.DocFair,
	},
	{
		Drug1:                 "ibuprofeno",
		Drug2:                 "enalapril",
		Severity:              entities.SeverityMajor,
		Mechanism:             "Reducción efecto antihipertensivo y nefrotoxicidad",
		ClinicalEffect:        "Hipertensión, insuficiencia renal",
		PregnancySpecificRisk: "Ambos medicamentos problemáticos en embarazo",
		Management:            "Evitar ambos. Usar paracetamol y metildopa.",
		Alternatives:          []string{"paracetamol", "metildopa"},
		MonitoringParameters:  []string{"presión arterial", "función renal"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocExcellent,
	},
	{
		Drug1:                 "fluconazol",
		Drug2:                 "warfarina",
		Severity:              entities.SeverityMajor,
		Mechanism:             "Inhibición CYP2C9, aumento concentración warfarina",
		ClinicalEffect:        "Hemorragia severa",
		PregnancySpecificRisk: "Ambos contraindicados o problemáticos",
		Management:            "Evitar combinación. Usar nistatina y heparina.",
		Alternatives:          []string{"nistatina", "heparina"},
		MonitoringParameters:  []string{"INR", "signos de sangrado"},
		Onset:                 entities.OnsetRapid,
		Documentation:         entities.DocExcellent,
	},
}

// AllInteractions returns the curated interaction list. Callers must not
// mutate the returned slice.
func AllInteractions() []entities.Interaction {
	return drugInteractions
}

// InteractionsFor returns every interaction involving the given medication,
// matched by bidirectional substring.
func InteractionsFor(medication string) []entities.Interaction {
	medLower := strings.ToLower(medication)
	var matches []entities.Interaction
	for _, in := range drugInteractions {
		d1 := strings.ToLower(in.Drug1)
		d2 := strings.ToLower(in.Drug2)
		if strings.Contains(d1, medLower) || strings.Contains(d2, medLower) ||
			strings.Contains(medLower, d1) || strings.Contains(medLower, d2) {
			matches = append(matches, in)
		}
	}
	return matches
}
