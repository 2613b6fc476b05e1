package tables

// Comprehensive classified list. Entries carry full pharmacological context;
// the Category field mixes FDA letters with therapeutic-class labels, a
// data-quality quirk inherited from the curation process and resolved at
// normalization time by reading the letter out of PregnancyRisks.

var comprehensiveKeys = []string{
	"metamizol",
	"clotrimazol", "miconazol", "nistatina", "terbinafina", "ketoconazol",
	"ampicilina", "eritromicina", "sulfametoxazol",
	"ranitidina", "famotidina", "hidróxido de aluminio",
	"ácido fólico", "sulfato ferroso", "calcio",
	"diclofenaco tópico",
	"levotiroxina",
	"acetaminofén", "amoxicilina", "azitromicina", "cefalexina",
	"metformina", "insulina", "heparina", "metildopa", "esomeprazol",
	"omeprazol", "ibuprofeno", "prednisona", "fluoxetina", "sertralina",
	"ciprofloxacina", "salbutamol",
	"clonazepam", "diazepam", "atenolol", "enalapril", "losartan",
	"warfarina", "atorvastatina", "simvastatina", "isotretinoína", "metotrexato",
}

var comprehensiveDrugs = map[string]DrugClassification{
	// Analgésicos y antiinflamatorios
	"metamizol": {
		Name:            "Metamizol (Dipirona)",
		Aliases:         []string{"dipirona", "novalgina", "metamizole", "dipyrone"},
		Category:        "Analgésico antipirético",
		Class:           "Pirazolona",
		Mechanism:       "Inhibición de la ciclooxigenasa y bloqueo de canales de sodio",
		PregnancyRisks:  "Categoría C - Evitar en tercer trimestre por riesgo de cierre prematuro del ductus arterioso",
		Recommendations: "Usar con precaución. Evitar en tercer trimestre. Considerar alternativas como paracetamol.",
		Monitoring:      "Función renal, presión arterial, signos de sangrado",
		Alternatives:    []string{"paracetamol", "acetaminofén"},
	},

	// Antifúngicos tópicos y sistémicos
	"clotrimazol": {
		Name:            "Clotrimazol",
		Aliases:         []string{"canesten", "lotrimin", "mycelex"},
		Category:        "Antifúngico tópico",
		Class:           "Derivado imidazólico",
		Mechanism:       "Inhibición de la síntesis de ergosterol en la membrana fúngica",
		PregnancyRisks:  "Categoría B - Seguro para uso tópico durante el embarazo",
		Recommendations: "Antifúngico de primera línea para candidiasis vaginal durante el embarazo. Preferir aplicación tópica.",
		Monitoring:      "Irritación local, respuesta clínica",
		Alternatives:    []string{"nistatina tópica", "miconazol tópico"},
	},
	"miconazol": {
		Name:            "Miconazol",
		Aliases:         []string{"monistat", "daktarin", "micatin"},
		Category:        "Antifúngico tópico",
		Class:           "Derivado imidazólico",
		Mechanism:       "Inhibición de la síntesis de ergosterol",
		PregnancyRisks:  "Categoría C - Usar solo si es necesario. Seguro en aplicación tópica.",
		Recommendations: "Seguro para uso tópico. Evitar uso sistémico durante embarazo.",
		Monitoring:      "Irritación local, absorción sistémica mínima",
		Alternatives:    []string{"clotrimazol", "nistatina"},
	},
	"nistatina": {
		Name:            "Nistatina",
		Aliases:         []string{"nystatin", "mycostatin"},
		Category:        "Antifúngico tópico",
		Class:           "Antibiótico poliénico",
		Mechanism:       "Unión al ergosterol y formación de poros en membrana fúngica",
		PregnancyRisks:  "Categoría B - Seguro durante todo el embarazo",
		Recommendations: "Antifúngico más seguro durante embarazo. Mínima absorción sistémica.",
		Monitoring:      "Irritación local mínima",
		Alternatives:    []string{"clotrimazol"},
	},
	"terbinafina": {
		Name:            "Terbinafina",
		Aliases:         []string{"lamisil", "terbisil"},
		Category:        "Antifúngico sistémico",
		Class:           "Alilamina",
		Mechanism:       "Inhibición de la escualeno epoxidasa",
		PregnancyRisks:  "Categoría B - Datos limitados, usar solo si es esencial",
		Recommendations: "Evitar durante embarazo salvo infecciones graves. Preferir tratamiento tópico.",
		Monitoring:      "Función hepática, efectos sistémicos",
		Alternatives:    []string{"antifúngicos tópicos", "diferir tratamiento"},
	},
	"ketoconazol": {
		Name:            "Ketoconazol",
		Aliases:         []string{"nizoral", "extina"},
		Category:        "Antifúngico sistémico",
		Class:           "Derivado imidazólico",
		Mechanism:       "Inhibición de la síntesis de ergosterol",
		PregnancyRisks:  "Categoría C - Evitar uso sistémico. Tópico con precaución.",
		Recommendations: "Contraindicado vía oral. Uso tópico solo si es necesario.",
		Monitoring:      "Función hepática, interacciones medicamentosas",
		Alternatives:    []string{"fluconazol en dosis bajas", "antifúngicos tópicos"},
	},

	// Antibióticos básicos
	"ampicilina": {
		Name:            "Ampicilina",
		Aliases:         []string{"ampicillin", "principen"},
		Category:        "Antibiótico betalactámico",
		Class:           "Penicilina de amplio espectro",
		Mechanism:       "Inhibición de la síntesis de pared celular bacteriana",
		PregnancyRisks:  "Categoría B - Seguro durante el embarazo",
		Recommendations: "Antibiótico de primera línea durante embarazo. Seguro en todos los trimestres.",
		Monitoring:      "Reacciones alérgicas, función renal",
		Alternatives:    []string{"amoxicilina", "cefalexina"},
	},
	"eritromicina": {
		Name:            "Eritromicina",
		Aliases:         []string{"erythromycin", "e-mycin"},
		Category:        "Antibiótico macrólido",
		Class:           "Macrólido",
		Mechanism:       "Inhibición de la síntesis proteica bacteriana",
		PregnancyRisks:  "Categoría B - Seguro durante el embarazo",
		Recommendations: "Alternativa segura para pacientes alérgicas a penicilinas.",
		Monitoring:      "Síntomas gastrointestinales, función hepática",
		Alternatives:    []string{"azitromicina", "amoxicilina"},
	},
	"sulfametoxazol": {
		Name:            "Sulfametoxazol + Trimetoprima",
		Aliases:         []string{"bactrim", "septra", "cotrimoxazol"},
		Category:        "Antibiótico",
		Class:           "Sulfonamida + Inhibidor de folato",
		Mechanism:       "Inhibición secuencial de la síntesis de folato",
		PregnancyRisks:  "Categoría C - Evitar en primer y tercer trimestre",
		Recommendations: "Evitar en primer trimestre (defectos del tubo neural) y tercer trimestre (kernicterus).",
		Monitoring:      "Función renal, niveles de folato",
		Alternatives:    []string{"amoxicilina", "cefalexina", "eritromicina"},
	},

	// Antiácidos y protectores gástricos
	"ranitidina": {
		Name:            "Ranitidina",
		Aliases:         []string{"zantac", "ranitidine"},
		Category:        "Antagonista H2",
		Class:           "Bloqueador H2",
		Mechanism:       "Inhibición de receptores H2 en células parietales",
		PregnancyRisks:  "Categoría B - Generalmente seguro",
		Recommendations: "Seguro para acidez durante embarazo. Retirado del mercado por impurezas NDMA.",
		Monitoring:      "Función renal, síntomas gastrointestinales",
		Alternatives:    []string{"omeprazol", "famotidina"},
	},
	"famotidina": {
		Name:            "Famotidina",
		Aliases:         []string{"pepcid", "famotidine"},
		Category:        "Antagonista H2",
		Class:           "Bloqueador H2",
		Mechanism:       "Inhibición selectiva de receptores H2",
		PregnancyRisks:  "Categoría B - Seguro durante el embarazo",
		Recommendations: "Alternativa segura a ranitidina para acidez durante embarazo.",
		Monitoring:      "Función renal, respuesta clínica",
		Alternatives:    []string{"omeprazol", "antiácidos"},
	},
	"hidróxido de aluminio": {
		Name:            "Hidróxido de Aluminio",
		Aliases:         []string{"maalox", "mylanta", "antiácido"},
		Category:        "Antiácido",
		Class:           "Antiácido no sistémico",
		Mechanism:       "Neutralización directa del ácido gástrico",
		PregnancyRisks:  "Categoría A - Seguro en dosis normales",
		Recommendations: "Antiácido seguro durante embarazo. Evitar uso excesivo prolongado.",
		Monitoring:      "Estreñimiento, absorción de otros medicamentos",
		Alternatives:    []string{"carbonato de calcio", "famotidina"},
	},

	// Vitaminas y suplementos
	"ácido fólico": {
		Name:            "Ácido Fólico",
		Aliases:         []string{"folate", "folacin", "vitamina b9"},
		Category:        "Vitamina hidrosoluble",
		Class:           "Vitamina B",
		Mechanism:       "Cofactor en síntesis de ADN y metabolismo",
		PregnancyRisks:  "Categoría A - Esencial durante el embarazo",
		Recommendations: "Suplemento obligatorio antes y durante embarazo. Previene defectos del tubo neural.",
		Monitoring:      "Niveles séricos, desarrollo fetal",
		Alternatives:    []string{"multivitamínicos prenatales"},
	},
	"sulfato ferroso": {
		Name:            "Sulfato Ferroso",
		Aliases:         []string{"hierro", "iron sulfate", "fer-in-sol"},
		Category:        "Suplemento mineral",
		Class:           "Sales de hierro",
		Mechanism:       "Suplementación de hierro para síntesis de hemoglobina",
		PregnancyRisks:  "Categoría A - Seguro y necesario",
		Recommendations: "Suplemento esencial para prevenir anemia durante embarazo.",
		Monitoring:      "Hemoglobina, hematocrito, síntomas gastrointestinales",
		Alternatives:    []string{"fumarato ferroso", "hierro polimaltosado"},
	},
	"calcio": {
		Name:            "Carbonato de Calcio",
		Aliases:         []string{"calcium carbonate", "tums", "caltrate"},
		Category:        "Suplemento mineral",
		Class:           "Sales de calcio",
		Mechanism:       "Suplementación de calcio para desarrollo óseo",
		PregnancyRisks:  "Categoría A - Seguro y beneficioso",
		Recommendations: "Importante para desarrollo óseo fetal y prevención de preeclampsia.",
		Monitoring:      "Niveles séricos de calcio, función renal",
		Alternatives:    []string{"citrato de calcio", "lácteos fortificados"},
	},

	// Analgésicos tópicos
	"diclofenaco tópico": {
		Name:            "Diclofenaco Tópico",
		Aliases:         []string{"voltaren gel", "diclofenac gel"},
		Category:        "AINE tópico",
		Class:           "Derivado del ácido acético",
		Mechanism:       "Inhibición local de ciclooxigenasa",
		PregnancyRisks:  "Categoría C - Uso tópico con precaución",
		Recommendations: "Minimizar absorción sistémica. Evitar en tercer trimestre.",
		Monitoring:      "Irritación local, absorción sistémica",
		Alternatives:    []string{"paracetamol", "compresas frías"},
	},

	// Categoría A - seguros
	"levotiroxina": {
		Name:            "Levotiroxina",
		Aliases:         []string{"levothyroxine", "synthroid", "eutirox", "euthyrox"},
		Category:        "A",
		Class:           "Hormona tiroidea",
		Mechanism:       "Reemplazo hormonal tiroideo",
		PregnancyRisks:  "Sin riesgos conocidos. Esencial para desarrollo fetal.",
		Recommendations: "Continuar tratamiento. Ajustar dosis según TSH.",
		Monitoring:      "TSH cada 4-6 semanas",
	},

	// Categoría B - probablemente seguros
	"acetaminofén": {
		Name:            "Acetaminofén (Paracetamol)",
		Aliases:         []string{"acetaminophen", "paracetamol", "tylenol", "tempra"},
		Category:        "B",
		Class:           "Analgésico antipirético",
		Mechanism:       "Inhibición de síntesis de prostaglandinas en SNC",
		PregnancyRisks:  "Riesgo muy bajo. Analgésico preferido.",
		Recommendations: "Primera línea para dolor y fiebre.",
		Monitoring:      "Dosis máxima 3g/día",
	},
	"amoxicilina": {
		Name:            "Amoxicilina",
		Aliases:         []string{"amoxicillin", "amoxil", "trimox"},
		Category:        "B",
		Class:           "Antibiótico betalactámico",
		Mechanism:       "Inhibición síntesis pared celular bacteriana",
		PregnancyRisks:  "Riesgo bajo. Antibiótico de primera línea.",
		Recommendations: "Seguro durante todo el embarazo.",
		Monitoring:      "Función renal si uso prolongado",
	},
	"azitromicina": {
		Name:            "Azitromicina",
		Aliases:         []string{"azithromycin", "zithromax", "z-pak"},
		Category:        "B",
		Class:           "Antibiótico macrólido",
		Mechanism:       "Inhibición síntesis proteica bacteriana",
		PregnancyRisks:  "Riesgo bajo. Alternativa a eritromicina.",
		Recommendations: "Seguro para infecciones respiratorias.",
		Monitoring:      "Función hepática si uso prolongado",
	},
	"cefalexina": {
		Name:            "Cefalexina",
		Aliases:         []string{"cephalexin", "keflex"},
		Category:        "B",
		Class:           "Antibiótico cefalosporina",
		Mechanism:       "Inhibición síntesis pared celular",
		PregnancyRisks:  "Riesgo bajo. Alternativa a penicilinas.",
		Recommendations: "Seguro para ITU y infecciones de piel.",
		Monitoring:      "Función renal",
	},
	"metformina": {
		Name:            "Metformina",
		Aliases:         []string{"metformin", "glucophage"},
		Category:        "B",
		Class:           "Antidiabético biguanida",
		Mechanism:       "Reducción gluconeogénesis hepática",
		PregnancyRisks:  "Riesgo bajo. Reduce resistencia insulina.",
		Recommendations: "Continuar en diabetes gestacional.",
		Monitoring:      "Glucosa, función renal",
	},
	"insulina": {
		Name:            "Insulina",
		Aliases:         []string{"insulin", "humalog", "novolog", "lantus"},
		Category:        "B",
		Class:           "Hormona hipoglucemiante",
		Mechanism:       "Facilita captación celular de glucosa",
		PregnancyRisks:  "Sin riesgos. No cruza placenta.",
		Recommendations: "Tratamiento preferido diabetes gestacional.",
		Monitoring:      "Glucosa capilar frecuente",
	},
	"heparina": {
		Name:            "Heparina",
		Aliases:         []string{"heparin", "lovenox", "enoxaparin"},
		Category:        "B",
		Class:           "Anticoagulante",
		Mechanism:       "Activación antitrombina III",
		PregnancyRisks:  "Sin riesgos. No cruza placenta.",
		Recommendations: "Anticoagulante de elección.",
		Monitoring:      "PTT, plaquetas",
	},
	"metildopa": {
		Name:            "Metildopa",
		Aliases:         []string{"methyldopa", "aldomet"},
		Category:        "B",
		Class:           "Antihipertensivo central",
		Mechanism:       "Agonista alfa-2 central",
		PregnancyRisks:  "Riesgo bajo. Antihipertensivo preferido.",
		Recommendations: "Primera línea para hipertensión gestacional.",
		Monitoring:      "Presión arterial, función hepática",
	},
	"esomeprazol": {
		Name:            "Esomeprazol",
		Aliases:         []string{"esomeprazole", "nexium"},
		Category:        "B",
		Class:           "Inhibidor bomba protones",
		Mechanism:       "Inhibición H+/K+-ATPase gástrica",
		PregnancyRisks:  "Riesgo bajo para reflujo severo.",
		Recommendations: "Seguro para ERGE sintomática.",
		Monitoring:      "Síntomas, magnesio sérico",
	},

	// Categoría C - usar con precaución
	"omeprazol": {
		Name:            "Omeprazol",
		Aliases:         []string{"omeprazole", "prilosec"},
		Category:        "C",
		Class:           "Inhibidor bomba protones",
		Mechanism:       "Inhibición H+/K+-ATPase",
		PregnancyRisks:  "Riesgo moderado. Usar si beneficio supera riesgo.",
		Recommendations: "Esomeprazol preferido.",
		Monitoring:      "Función renal, magnesio",
	},
	"ibuprofeno": {
		Name:            "Ibuprofeno",
		Aliases:         []string{"ibuprofen", "advil", "motrin"},
		Category:        "C",
		Class:           "AINE",
		Mechanism:       "Inhibición COX no selectiva",
		PregnancyRisks:  "Riesgo cierre ductus arteriosus >30 sem.",
		Recommendations: "Evitar tercer trimestre.",
		Monitoring:      "Función renal fetal",
		Alternatives:    []string{"acetaminofén"},
	},
	"prednisona": {
		Name:            "Prednisona",
		Aliases:         []string{"prednisone", "deltasone"},
		Category:        "C",
		Class:           "Corticosteroide",
		Mechanism:       "Agonista receptor glucocorticoide",
		PregnancyRisks:  "Riesgo paladar hendido primer trimestre.",
		Recommendations: "Dosis mínima efectiva.",
		Monitoring:      "Glucosa, presión arterial",
	},
	"fluoxetina": {
		Name:            "Fluoxetina",
		Aliases:         []string{"fluoxetine", "prozac"},
		Category:        "C",
		Class:           "ISRS",
		Mechanism:       "Inhibición recaptación serotonina",
		PregnancyRisks:  "Riesgo hipertensión pulmonar persistente.",
		Recommendations: "Evaluar beneficio-riesgo.",
		Monitoring:      "Estado mental, síntomas neonatales",
	},
	"sertralina": {
		Name:            "Sertralina",
		Aliases:         []string{"sertraline", "zoloft"},
		Category:        "C",
		Class:           "ISRS",
		Mechanism:       "Inhibición selectiva recaptación serotonina",
		PregnancyRisks:  "ISRS con menor riesgo.",
		Recommendations: "ISRS preferido si es necesario.",
		Monitoring:      "Síntomas depresivos, ansiedad",
	},
	"ciprofloxacina": {
		Name:            "Ciprofloxacina",
		Aliases:         []string{"ciprofloxacin", "cipro"},
		Category:        "C",
		Class:           "Fluoroquinolona",
		Mechanism:       "Inhibición DNA girasa bacteriana",
		PregnancyRisks:  "Posibles efectos en cartílago fetal.",
		Recommendations: "Solo si otros antibióticos inefectivos.",
		Monitoring:      "Función renal",
	},
	"salbutamol": {
		Name:            "Salbutamol",
		Aliases:         []string{"albuterol", "ventolin", "proair"},
		Category:        "C",
		Class:           "Beta-2 agonista",
		Mechanism:       "Agonismo receptor beta-2 adrenérgico",
		PregnancyRisks:  "Riesgo bajo para control asma.",
		Recommendations: "Continuar para control asma.",
		Monitoring:      "Función pulmonar, frecuencia cardíaca",
	},

	// Categoría D - riesgo documentado
	"clonazepam": {
		Name:            "Clonazepam",
		Aliases:         []string{"clonazepam", "klonopin", "rivotril"},
		Category:        "D",
		Class:           "Benzodiacepina",
		Mechanism:       "Modulación positiva GABA-A",
		PregnancyRisks:  "Riesgo labio leporino, síndrome abstinencia.",
		Recommendations: "Reducir gradualmente o sustituir.",
		Monitoring:      "Síntomas abstinencia neonatal",
		Alternatives:    []string{"psicoterapia", "antidepresivos seguros"},
	},
	"diazepam": {
		Name:            "Diazepam",
		Aliases:         []string{"diazepam", "valium"},
		Category:        "D",
		Class:           "Benzodiacepina",
		Mechanism:       "Modulación GABA-A",
		PregnancyRisks:  "Malformaciones, síndrome abstinencia neonatal.",
		Recommendations: "Evitar o reducir gradualmente.",
		Monitoring:      "Síntomas abstinencia",
		Alternatives:    []string{"técnicas relajación"},
	},
	"atenolol": {
		Name:            "Atenolol",
		Aliases:         []string{"atenolol", "tenormin"},
		Category:        "D",
		Class:           "Beta-bloqueador cardioselectivo",
		Mechanism:       "Antagonismo receptor beta-1",
		PregnancyRisks:  "RCIU, bradicardia fetal.",
		Recommendations: "Cambiar a metildopa.",
		Monitoring:      "Crecimiento fetal, FCF",
		Alternatives:    []string{"metildopa", "nifedipino"},
	},
	"enalapril": {
		Name:            "Enalapril",
		Aliases:         []string{"enalapril", "vasotec"},
		Category:        "D",
		Class:           "IECA",
		Mechanism:       "Inhibición enzima convertidora angiotensina",
		PregnancyRisks:  "Oligohidramnios, IR fetal, muerte fetal.",
		Recommendations: "Discontinuar inmediatamente.",
		Monitoring:      "Líquido amniótico, función renal fetal",
		Alternatives:    []string{"metildopa", "nifedipino"},
	},
	"losartan": {
		Name:            "Losartán",
		Aliases:         []string{"losartan", "cozaar"},
		Category:        "D",
		Class:           "ARA II",
		Mechanism:       "Antagonismo receptor angiotensina II",
		PregnancyRisks:  "Oligohidramnios, IR fetal.",
		Recommendations: "Discontinuar inmediatamente.",
		Monitoring:      "Función renal fetal",
		Alternatives:    []string{"metildopa"},
	},

	// Categoría X - contraindicados
	"warfarina": {
		Name:            "Warfarina",
		Aliases:         []string{"warfarin", "coumadin"},
		Category:        "X",
		Class:           "Anticoagulante cumarínico",
		Mechanism:       "Inhibición síntesis factores coagulación",
		PregnancyRisks:  "Embriopatía, hemorragias fetales.",
		Recommendations: "Cambiar a heparina inmediatamente.",
		Monitoring:      "INR hasta cambio",
		Alternatives:    []string{"heparina", "enoxaparina"},
	},
	"atorvastatina": {
		Name:            "Atorvastatina",
		Aliases:         []string{"atorvastatin", "lipitor"},
		Category:        "X",
		Class:           "Estatina",
		Mechanism:       "Inhibición HMG-CoA reductasa",
		PregnancyRisks:  "Defectos congénitos, malformaciones SNC.",
		Recommendations: "Discontinuar antes concepción.",
		Monitoring:      "Suspender hasta postparto",
		Alternatives:    []string{"dieta", "ejercicio"},
	},
	"simvastatina": {
		Name:            "Simvastatina",
		Aliases:         []string{"simvastatin", "zocor"},
		Category:        "X",
		Class:           "Estatina",
		Mechanism:       "Inhibición HMG-CoA reductasa",
		PregnancyRisks:  "Malformaciones congénitas.",
		Recommendations: "Suspender inmediatamente.",
		Monitoring:      "Perfil lipídico postparto",
		Alternatives:    []string{"modificación estilo vida"},
	},
	"isotretinoína": {
		Name:            "Isotretinoína",
		Aliases:         []string{"isotretinoin", "accutane", "roaccutan"},
		Category:        "X",
		Class:           "Retinoide sistémico",
		Mechanism:       "Modulación diferenciación celular",
		PregnancyRisks:  "Teratógeno mayor. Malformaciones múltiples.",
		Recommendations: "Contraindicado absoluto.",
		Monitoring:      "Test embarazo antes/durante tratamiento",
		Alternatives:    []string{"tratamientos tópicos"},
	},
	"metotrexato": {
		Name:            "Metotrexato",
		Aliases:         []string{"methotrexate", "rheumatrex"},
		Category:        "X",
		Class:           "Antimetabolito",
		Mechanism:       "Inhibición dihidrofolato reductasa",
		PregnancyRisks:  "Aborto, malformaciones múltiples.",
		Recommendations: "Discontinuar 3 meses antes concepción.",
		Monitoring:      "Test embarazo",
		Alternatives:    []string{"sulfasalazina", "biologicos seguros"},
	},
}
