package tables

// Legacy curated list. Kept for cross-coverage with the newer tables and for
// its english-name aliases and trimester breakdowns.

var legacyKeys = []string{
	"azitromicina", "amoxicilina", "cefalexina", "ciprofloxacina",
	"paracetamol", "ibuprofeno", "aspirina",
	"clonazepam", "diazepam",
	"fluoxetina", "sertralina",
	"atenolol", "enalapril", "metildopa",
	"warfarina", "heparina",
	"atorvastatina", "simvastatina",
	"prednisona",
	"levotiroxina",
	"metformina", "insulina",
	"esomeprazol", "lansoprazol", "pantoprazol",
	"loratadina", "cetirizina", "difenhidramina",
	"ondansetron", "metoclopramida",
	"salbutamol",
	"fluconazol", "nistatina",
}

var legacyMedications = map[string]MedicationData{
	// Antibióticos
	"azitromicina": {
		Name:            "Azitromicina",
		EnglishNames:    []string{"azithromycin", "Zithromax", "Z-Pak"},
		Category:        "B",
		Description:     "Antibiótico macrólido seguro durante el embarazo",
		Risks:           "Riesgo bajo. Puede causar náuseas o malestar estomacal.",
		Recommendations: "Seguro para uso durante el embarazo bajo supervisión médica.",
		CommonUses:      []string{"Infecciones respiratorias", "Infecciones de piel", "Clamidia"},
		TrimesterSpecific: &TrimesterNotes{
			First:  "Seguro si es necesario",
			Second: "Uso preferido",
			Third:  "Seguro, monitorear efectos gastrointestinales",
		},
	},
	"amoxicilina": {
		Name:            "Amoxicilina",
		EnglishNames:    []string{"amoxicillin", "Amoxil", "Trimox"},
		Category:        "B",
		Description:     "Antibiótico penicilina ampliamente usado y seguro",
		Risks:           "Riesgo muy bajo. Posibles reacciones alérgicas en personas sensibles.",
		Recommendations: "Antibiótico de primera línea durante el embarazo.",
		CommonUses:      []string{"Infecciones del tracto urinario", "Infecciones respiratorias", "Infecciones dentales"},
	},
	"cefalexina": {
		Name:            "Cefalexina",
		EnglishNames:    []string{"cephalexin", "Keflex"},
		Category:        "B",
		Description:     "Antibiótico cefalosporina seguro para uso en embarazo",
		Risks:           "Riesgo bajo. Puede causar diarrea o candidiasis vaginal.",
		Recommendations: "Alternativa segura a penicilinas.",
		CommonUses:      []string{"Infecciones de piel", "Infecciones del tracto urinario"},
	},
	"ciprofloxacina": {
		Name:            "Ciprofloxacina",
		EnglishNames:    []string{"ciprofloxacin", "Cipro"},
		Category:        "C",
		Description:     "Antibiótico fluoroquinolona con uso limitado en embarazo",
		Risks:           "Riesgo moderado. Posibles efectos en el desarrollo del cartílago fetal.",
		Recommendations: "Usar solo si otros antibióticos no son efectivos.",
		CommonUses:      []string{"Infecciones del tracto urinario", "Infecciones gastrointestinales"},
	},

	// Analgésicos
	"paracetamol": {
		Name:            "Paracetamol (Acetaminofén)",
		EnglishNames:    []string{"acetaminophen", "Tylenol"},
		Category:        "B",
		Description:     "Analgésico y antipirético seguro durante todo el embarazo",
		Risks:           "Riesgo muy bajo cuando se usa según indicaciones.",
		Recommendations: "Analgésico de primera elección durante el embarazo.",
		CommonUses:      []string{"Dolor", "Fiebre", "Dolor de cabeza"},
		TrimesterSpecific: &TrimesterNotes{
			First:  "Seguro en dosis normales",
			Second: "Seguro en dosis normales",
			Third:  "Seguro, evitar uso prolongado en dosis altas",
		},
	},
	"ibuprofeno": {
		Name:            "Ibuprofeno",
		EnglishNames:    []string{"ibuprofen", "Advil", "Motrin"},
		Category:        "C",
		Description:     "AINE con restricciones en el tercer trimestre",
		Risks:           "Riesgo de cierre prematuro del ductus arteriosus en tercer trimestre.",
		Recommendations: "Evitar después de la semana 30. Usar paracetamol como alternativa.",
		CommonUses:      []string{"Dolor", "Inflamación", "Fiebre"},
		TrimesterSpecific: &TrimesterNotes{
			First:  "Usar con precaución",
			Second: "Usar con precaución",
			Third:  "Evitar - riesgo cardiovascular fetal",
		},
	},
	"aspirina": {
		Name:            "Aspirina (Ácido acetilsalicílico)",
		EnglishNames:    []string{"aspirin", "acetylsalicylic acid"},
		Category:        "D",
		Description:     "AINE con riesgos significativos en embarazo",
		Risks:           "Riesgo de sangrado y complicaciones cardiovasculares fetales.",
		Recommendations: "Solo usar en dosis bajas para prevención de preeclampsia bajo supervisión.",
		CommonUses:      []string{"Prevención cardiovascular", "Dolor", "Fiebre"},
	},

	// Benzodiacepinas
	"clonazepam": {
		Name:            "Clonazepam",
		EnglishNames:    []string{"clonazepam", "Klonopin", "Rivotril"},
		Category:        "D",
		Description:     "Benzodiacepina con riesgo de malformaciones y síndrome de abstinencia",
		Risks:           "Riesgo de labio leporino, síndrome de abstinencia neonatal.",
		Recommendations: "Reducir gradualmente o cambiar a alternativas más seguras.",
		CommonUses:      []string{"Ansiedad", "Convulsiones", "Trastorno de pánico"},
		TrimesterSpecific: &TrimesterNotes{
			First:  "Alto riesgo de malformaciones",
			Second: "Riesgo moderado",
			Third:  "Riesgo de síndrome de abstinencia neonatal",
		},
	},
	"diazepam": {
		Name:            "Diazepam",
		EnglishNames:    []string{"diazepam", "Valium"},
		Category:        "D",
		Description:     "Benzodiacepina con riesgos conocidos durante el embarazo",
		Risks:           "Malformaciones congénitas, síndrome de abstinencia neonatal.",
		Recommendations: "Evitar o reducir gradualmente bajo supervisión médica.",
		CommonUses:      []string{"Ansiedad", "Espasmos musculares", "Convulsiones"},
	},

	// Antidepresivos
	"fluoxetina": {
		Name:            "Fluoxetina",
		EnglishNames:    []string{"fluoxetine", "Prozac"},
		Category:        "C",
		Description:     "ISRS con uso cauteloso durante el embarazo",
		Risks:           "Posible hipertensión pulmonar persistente en recién nacidos.",
		Recommendations: "Evaluar beneficio-riesgo. Monitoreo estrecho.",
		CommonUses:      []string{"Depresión", "Ansiedad", "Trastorno obsesivo-compulsivo"},
	},
	"sertralina": {
		Name:            "Sertralina",
		EnglishNames:    []string{"sertraline", "Zoloft"},
		Category:        "C",
		Description:     "ISRS preferido durante el embarazo cuando es necesario",
		Risks:           "Riesgo bajo de complicaciones neonatales.",
		Recommendations: "ISRS de elección durante el embarazo si es necesario.",
		CommonUses:      []string{"Depresión", "Ansiedad", "Trastorno de pánico"},
	},

	// Antihipertensivos
	"atenolol": {
		Name:            "Atenolol",
		EnglishNames:    []string{"atenolol", "Tenormin"},
		Category:        "D",
		Description:     "Beta-bloqueador con riesgos fetales",
		Risks:           "Retardo del crecimiento intrauterino, bradicardia fetal.",
		Recommendations: "Cambiar a alternativas más seguras como metildopa.",
		CommonUses:      []string{"Hipertensión", "Arritmias", "Migraña"},
	},
	"enalapril": {
		Name:            "Enalapril",
		EnglishNames:    []string{"enalapril", "Vasotec"},
		Category:        "D",
		Description:     "IECA contraindicado durante el embarazo",
		Risks:           "Oligohidramnios, insuficiencia renal fetal, muerte fetal.",
		Recommendations: "Discontinuar inmediatamente. Cambiar a metildopa.",
		CommonUses:      []string{"Hipertensión", "Insuficiencia cardíaca"},
	},
	"metildopa": {
		Name:            "Metildopa",
		EnglishNames:    []string{"methyldopa", "Aldomet"},
		Category:        "B",
		Description:     "Antihipertensivo de primera línea en embarazo",
		Risks:           "Riesgo bajo. Posible somnolencia o depresión.",
		Recommendations: "Antihipertensivo preferido durante el embarazo.",
		CommonUses:      []string{"Hipertensión en embarazo"},
	},

	// Anticoagulantes
	"warfarina": {
		Name:            "Warfarina",
		EnglishNames:    []string{"warfarin", "Coumadin"},
		Category:        "X",
		Description:     "Anticoagulante contraindicado en embarazo",
		Risks:           "Embriopatía por warfarina, hemorragias fetales.",
		Recommendations: "Cambiar a heparina inmediatamente.",
		CommonUses:      []string{"Anticoagulación", "Fibrilación auricular"},
	},
	"heparina": {
		Name:            "Heparina",
		EnglishNames:    []string{"heparin"},
		Category:        "B",
		Description:     "Anticoagulante seguro durante el embarazo",
		Risks:           "Riesgo bajo. No cruza la placenta.",
		Recommendations: "Anticoagulante de elección durante el embarazo.",
		CommonUses:      []string{"Anticoagulación", "Tromboembolismo"},
	},

	// Estatinas
	"atorvastatina": {
		Name:            "Atorvastatina",
		EnglishNames:    []string{"atorvastatin", "Lipitor"},
		Category:        "X",
		Description:     "Estatina contraindicada durante el embarazo",
		Risks:           "Defectos congénitos, malformaciones del SNC.",
		Recommendations: "Discontinuar inmediatamente al confirmar embarazo.",
		CommonUses:      []string{"Hipercolesterolemia", "Prevención cardiovascular"},
	},
	"simvastatina": {
		Name:            "Simvastatina",
		EnglishNames:    []string{"simvastatin", "Zocor"},
		Category:        "X",
		Description:     "Estatina contraindicada durante el embarazo",
		Risks:           "Malformaciones congénitas, defectos del tubo neural.",
		Recommendations: "Suspender antes de la concepción.",
		CommonUses:      []string{"Hipercolesterolemia"},
	},

	// Corticosteroides
	"prednisona": {
		Name:            "Prednisona",
		EnglishNames:    []string{"prednisone"},
		Category:        "C",
		Description:     "Corticosteroide con uso cauteloso en embarazo",
		Risks:           "Posible paladar hendido en primer trimestre, diabetes gestacional.",
		Recommendations: "Usar la dosis mínima efectiva por el menor tiempo posible.",
		CommonUses:      []string{"Asma", "Artritis", "Enfermedades autoinmunes"},
	},

	// Hormonas tiroideas
	"levotiroxina": {
		Name:            "Levotiroxina",
		EnglishNames:    []string{"levothyroxine", "Synthroid", "Eutirox"},
		Category:        "A",
		Description:     "Hormona tiroidea esencial durante el embarazo",
		Risks:           "Sin riesgos conocidos. Esencial para desarrollo fetal.",
		Recommendations: "Continuar y ajustar dosis según necesidad.",
		CommonUses:      []string{"Hipotiroidismo"},
		TrimesterSpecific: &TrimesterNotes{
			First:  "Esencial - aumentar dosis si es necesario",
			Second: "Monitorear TSH regularmente",
			Third:  "Mantener niveles óptimos",
		},
	},

	// Antidiabéticos
	"metformina": {
		Name:            "Metformina",
		EnglishNames:    []string{"metformin", "Glucophage"},
		Category:        "B",
		Description:     "Antidiabético seguro durante el embarazo",
		Risks:           "Riesgo bajo. Puede reducir absorción de vitamina B12.",
		Recommendations: "Puede continuarse durante el embarazo.",
		CommonUses:      []string{"Diabetes tipo 2", "Síndrome de ovario poliquístico"},
	},
	"insulina": {
		Name:            "Insulina",
		EnglishNames:    []string{"insulin"},
		Category:        "B",
		Description:     "Tratamiento de primera línea para diabetes en embarazo",
		Risks:           "Sin riesgos fetales. No cruza la placenta.",
		Recommendations: "Tratamiento preferido para diabetes gestacional.",
		CommonUses:      []string{"Diabetes tipo 1", "Diabetes gestacional"},
	},

	// Inhibidores de bomba de protones
	"esomeprazol": {
		Name:            "Esomeprazol",
		EnglishNames:    []string{"esomeprazole", "Nexium"},
		Category:        "B",
		Description:     "Inhibidor de bomba de protones seguro durante el embarazo",
		Risks:           "Riesgo bajo. Puede causar dolor de cabeza o náuseas.",
		Recommendations: "Seguro para uso durante el embarazo bajo supervisión médica.",
		CommonUses:      []string{"Reflujo gastroesofágico", "Úlceras pépticas", "Síndrome de Zollinger-Ellison"},
	},
	"lansoprazol": {
		Name:            "Lansoprazol",
		EnglishNames:    []string{"lansoprazole", "Prevacid"},
		Category:        "B",
		Description:     "Inhibidor de bomba de protones con perfil de seguridad favorable",
		Risks:           "Riesgo bajo durante el embarazo.",
		Recommendations: "Alternativa segura para el tratamiento de acidez.",
		CommonUses:      []string{"Reflujo gastroesofágico", "Úlceras duodenales"},
	},
	"pantoprazol": {
		Name:            "Pantoprazol",
		EnglishNames:    []string{"pantoprazole", "Protonix"},
		Category:        "B",
		Description:     "Inhibidor de bomba de protones con uso seguro en embarazo",
		Risks:           "Perfil de seguridad favorable durante el embarazo.",
		Recommendations: "Puede usarse cuando sea necesario.",
		CommonUses:      []string{"Esofagitis erosiva", "Úlceras gástricas"},
	},

	// Antihistamínicos
	"loratadina": {
		Name:            "Loratadina",
		EnglishNames:    []string{"loratadine", "Claritin"},
		Category:        "B",
		Description:     "Antihistamínico no sedante seguro durante el embarazo",
		Risks:           "Riesgo bajo. Antihistamínico preferido.",
		Recommendations: "Antihistamínico de primera elección durante el embarazo.",
		CommonUses:      []string{"Alergias", "Rinitis alérgica", "Urticaria"},
	},
	"cetirizina": {
		Name:            "Cetirizina",
		EnglishNames:    []string{"cetirizine", "Zyrtec"},
		Category:        "B",
		Description:     "Antihistamínico con perfil de seguridad establecido",
		Risks:           "Riesgo bajo durante el embarazo.",
		Recommendations: "Seguro para uso en embarazo.",
		CommonUses:      []string{"Alergias estacionales", "Dermatitis atópica"},
	},
	"difenhidramina": {
		Name:            "Difenhidramina",
		EnglishNames:    []string{"diphenhydramine", "Benadryl"},
		Category:        "B",
		Description:     "Antihistamínico clásico con uso seguro en embarazo",
		Risks:           "Puede causar somnolencia. Seguro en dosis apropiadas.",
		Recommendations: "Seguro para uso ocasional.",
		CommonUses:      []string{"Alergias", "Insomnio ocasional", "Náuseas"},
	},

	// Antieméticos
	"ondansetron": {
		Name:            "Ondansetrón",
		EnglishNames:    []string{"ondansetron", "Zofran"},
		Category:        "B",
		Description:     "Antiemético usado para náuseas severas del embarazo",
		Risks:           "Riesgo bajo. Posible pequeño aumento de riesgo de fisura palatina.",
		Recommendations: "Usar para náuseas severas cuando otros tratamientos fallan.",
		CommonUses:      []string{"Náuseas del embarazo", "Vómitos por quimioterapia"},
	},
	"metoclopramida": {
		Name:            "Metoclopramida",
		EnglishNames:    []string{"metoclopramide", "Reglan"},
		Category:        "B",
		Description:     "Antiemético y procinético seguro en embarazo",
		Risks:           "Riesgo bajo. Evitar uso prolongado.",
		Recommendations: "Seguro para uso a corto plazo.",
		CommonUses:      []string{"Náuseas", "Gastroparesia", "Reflujo"},
	},

	// Broncodilatadores
	"salbutamol": {
		Name:            "Salbutamol",
		EnglishNames:    []string{"salbutamol", "albuterol", "Ventolin"},
		Category:        "C",
		Description:     "Broncodilatador de acción rápida para asma",
		Risks:           "Riesgo bajo cuando se usa según indicaciones.",
		Recommendations: "Continuar uso para control del asma durante el embarazo.",
		CommonUses:      []string{"Asma", "Broncoespasmo", "EPOC"},
		TrimesterSpecific: &TrimesterNotes{
			First:  "Continuar si es necesario para control del asma",
			Second: "Uso seguro para exacerbaciones",
			Third:  "Seguro, monitorear frecuencia cardíaca fetal",
		},
	},

	// Antifúngicos
	"fluconazol": {
		Name:            "Fluconazol",
		EnglishNames:    []string{"fluconazole", "Diflucan"},
		Category:        "C",
		Description:     "Antifúngico con uso cauteloso en embarazo",
		Risks:           "Riesgo de malformaciones con dosis altas o uso prolongado.",
		Recommendations: "Evitar en primer trimestre. Usar solo si es esencial.",
		CommonUses:      []string{"Candidiasis vaginal", "Infecciones fúngicas sistémicas"},
	},
	"nistatina": {
		Name:            "Nistatina",
		EnglishNames:    []string{"nystatin", "Mycostatin"},
		Category:        "B",
		Description:     "Antifúngico tópico seguro durante el embarazo",
		Risks:           "Riesgo muy bajo. Absorción sistémica mínima.",
		Recommendations: "Antifúngico de primera elección para candidiasis.",
		CommonUses:      []string{"Candidiasis oral", "Candidiasis vaginal"},
	},
}
