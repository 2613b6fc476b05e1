package tables

// Essential short list: the medications most commonly asked about during
// pregnancy, curated by hand. Key order matters for first-match resolution.

var essentialKeys = []string{
	"clotrimazol", "miconazol", "nistatina", "fluconazol",
	"amoxicilina", "ampicilina", "cefalexina", "azitromicina", "eritromicina", "clindamicina",
	"paracetamol", "acetaminofén", "ibuprofeno", "aspirina", "naproxeno", "diclofenaco",
	"ácido fólico", "hierro", "calcio", "vitamina d",
	"omeprazol", "ranitidina", "famotidina", "antiácido",
	"loratadina", "cetirizina", "difenhidramina",
	"ciclobenzaprina", "ciclobenzaprida",
	"alopurinol", "aciclovir",
	"metildopa", "nifedipino", "fluoxetina", "gentamicina",
}

var essentialMedications = map[string]EssentialMedication{
	// Antifúngicos
	"clotrimazol": {
		Name:            "Clotrimazol",
		Categoria:       "Categoría B",
		Descripcion:     "Antifúngico tópico seguro para candidiasis vaginal durante el embarazo",
		Riesgos:         "Mínimos cuando se usa tópicamente. Sin absorción sistémica significativa.",
		Recomendaciones: "Antifúngico de primera línea para candidiasis vaginal. Aplicar según indicaciones médicas.",
	},
	"miconazol": {
		Name:            "Miconazol",
		Categoria:       "Categoría C",
		Descripcion:     "Antifúngico imidazólico para uso tópico",
		Riesgos:         "Seguro en aplicación tópica. Evitar uso sistémico durante embarazo.",
		Recomendaciones: "Preferir uso tópico. Alternativa segura para infecciones fúngicas locales.",
	},
	"nistatina": {
		Name:            "Nistatina",
		Categoria:       "Categoría B",
		Descripcion:     "Antifúngico poliénico, el más seguro durante embarazo",
		Riesgos:         "Prácticamente nulos. Mínima absorción sistémica.",
		Recomendaciones: "Antifúngico más seguro durante embarazo. Primera opción para candidiasis oral.",
	},
	"fluconazol": {
		Name:            "Fluconazol",
		Categoria:       "Categoría C",
		Descripcion:     "Antifúngico sistémico con uso cauteloso en embarazo",
		Riesgos:         "Riesgo de malformaciones con dosis altas o uso prolongado.",
		Recomendaciones: "Evitar en primer trimestre. Usar solo si es esencial.",
	},

	// Antibióticos básicos
	"amoxicilina": {
		Name:            "Amoxicilina",
		Categoria:       "Categoría B",
		Descripcion:     "Antibiótico betalactámico seguro durante todo el embarazo",
		Riesgos:         "Muy bajos. Antibiótico de primera línea en embarazo.",
		Recomendaciones: "Antibiótico preferido durante embarazo. Seguro en todos los trimestres.",
	},
	"ampicilina": {
		Name:            "Ampicilina",
		Categoria:       "Categoría B",
		Descripcion:     "Penicilina de amplio espectro segura en embarazo",
		Riesgos:         "Mínimos. Perfil de seguridad excelente.",
		Recomendaciones: "Alternativa segura a amoxicilina. Usar según cultivos de sensibilidad.",
	},
	"cefalexina": {
		Name:            "Cefalexina",
		Categoria:       "Categoría B",
		Descripcion:     "Cefalosporina de primera generación segura",
		Riesgos:         "Bajos. Alternativa segura para alérgicas a penicilinas.",
		Recomendaciones: "Cefalosporina de elección durante embarazo.",
	},
	"azitromicina": {
		Name:            "Azitromicina",
		Categoria:       "Categoría B",
		Descripcion:     "Macrólido seguro para infecciones respiratorias",
		Riesgos:         "Mínimos. Buena penetración tisular.",
		Recomendaciones: "Alternativa segura para pacientes alérgicas a betalactámicos.",
	},
	"eritromicina": {
		Name:            "Eritromicina",
		Categoria:       "Categoría B",
		Descripcion:     "Macrólido clásico seguro durante embarazo",
		Riesgos:         "Bajos. Puede causar molestias gastrointestinales.",
		Recomendaciones: "Alternativa histórica segura. Preferir azitromicina por mejor tolerancia.",
	},
	"clindamicina": {
		Name:      "Clindamicina",
		Categoria: "Categoría B",
		Descripcion: "Antibiótico lincosamida con excelente actividad contra bacterias anaerobias gram-positivas " +
			"y muchas bacterias aerobias gram-positivas. Inhibe la síntesis proteica bacteriana uniéndose a la " +
			"subunidad 50S del ribosoma. Tiene excelente penetración tisular, especialmente en hueso, articulaciones y abscesos.",
		Riesgos: "Estudios en animales no han mostrado efectos teratogénicos. Riesgo de colitis pseudomembranosa " +
			"(Clostridium difficile) en la madre. Cruza la placenta pero no se han reportado efectos adversos fetales. " +
			"Compatible con lactancia materna.",
		Recomendaciones: "Antibiótico seguro durante embarazo para infecciones por anaerobios. Útil en vaginosis " +
			"bacteriana, infecciones dentales, osteomielitis y infecciones de tejidos blandos. Monitorear síntomas " +
			"gastrointestinales. Preferir vía oral cuando sea posible.",
	},

	// Analgésicos y antiinflamatorios
	"paracetamol": {
		Name:            "Paracetamol",
		Categoria:       "Categoría B",
		Descripcion:     "Analgésico y antipirético de primera línea en embarazo",
		Riesgos:         "Muy bajos cuando se usa según indicaciones.",
		Recomendaciones: "Analgésico de elección durante todo el embarazo.",
	},
	"acetaminofén": {
		Name:            "Acetaminofén",
		Categoria:       "Categoría B",
		Descripcion:     "Sinónimo de paracetamol, seguro durante embarazo",
		Riesgos:         "Mínimos en dosis terapéuticas normales.",
		Recomendaciones: "Analgésico preferido durante embarazo.",
	},
	"ibuprofeno": {
		Name:            "Ibuprofeno",
		Categoria:       "Categoría C/D",
		Descripcion:     "AINE con restricciones durante embarazo",
		Riesgos:         "Cierre prematuro ductus arterioso en tercer trimestre.",
		Recomendaciones: "Evitar en tercer trimestre. Usar paracetamol como alternativa.",
	},
	"aspirina": {
		Name:            "Aspirina",
		Categoria:       "Categoría C/D",
		Descripcion:     "Salicilato con dosis-dependiente durante embarazo",
		Riesgos:         "Sangrado, cierre ductus arterioso en dosis altas.",
		Recomendaciones: "Solo dosis bajas (81mg) si está indicado médicamente.",
	},
	"naproxeno": {
		Name:            "Naproxeno",
		Categoria:       "Categoría C/D",
		Descripcion:     "AINE de larga duración con restricciones",
		Riesgos:         "Similares a ibuprofeno, mayor duración de acción.",
		Recomendaciones: "Evitar durante embarazo. Usar paracetamol.",
	},
	"diclofenaco": {
		Name:            "Diclofenaco",
		Categoria:       "Categoría C/D",
		Descripcion:     "AINE tópico y sistémico con precauciones",
		Riesgos:         "Efectos similares a otros AINEs.",
		Recomendaciones: "Evitar sistémico. Tópico con precaución.",
	},

	// Vitaminas y suplementos
	"ácido fólico": {
		Name:            "Ácido Fólico",
		Categoria:       "Categoría A",
		Descripcion:     "Vitamina B9 esencial para prevenir defectos del tubo neural",
		Riesgos:         "Ninguno. Esencial durante embarazo.",
		Recomendaciones: "Suplemento obligatorio 400-800 mcg diarios antes y durante embarazo.",
	},
	"hierro": {
		Name:            "Sulfato Ferroso",
		Categoria:       "Categoría A",
		Descripcion:     "Suplemento de hierro para prevenir anemia",
		Riesgos:         "Molestias gastrointestinales leves.",
		Recomendaciones: "Suplemento esencial, especialmente en segundo y tercer trimestre.",
	},
	"calcio": {
		Name:            "Carbonato de Calcio",
		Categoria:       "Categoría A",
		Descripcion:     "Suplemento mineral para desarrollo óseo fetal",
		Riesgos:         "Mínimos. Puede causar estreñimiento.",
		Recomendaciones: "1000-1300 mg diarios. Importante para prevenir preeclampsia.",
	},
	"vitamina d": {
		Name:            "Vitamina D",
		Categoria:       "Categoría A",
		Descripcion:     "Vitamina liposoluble esencial para absorción de calcio",
		Riesgos:         "Bajos en dosis fisiológicas.",
		Recomendaciones: "600-800 UI diarias. Importante para desarrollo óseo fetal.",
	},

	// Antiácidos y digestivos
	"omeprazol": {
		Name:            "Omeprazol",
		Categoria:       "Categoría C",
		Descripcion:     "Inhibidor de bomba de protones para acidez",
		Riesgos:         "Datos limitados pero generalmente seguro.",
		Recomendaciones: "Segunda línea después de antiácidos y modificaciones dietéticas.",
	},
	"ranitidina": {
		Name:            "Ranitidina",
		Categoria:       "Categoría B",
		Descripcion:     "Antagonista H2 (retirado del mercado por impurezas)",
		Riesgos:         "Anteriormente seguro, retirado por contaminación NDMA.",
		Recomendaciones: "Usar famotidina como alternativa segura.",
	},
	"famotidina": {
		Name:            "Famotidina",
		Categoria:       "Categoría B",
		Descripcion:     "Antagonista H2 seguro para acidez",
		Riesgos:         "Muy bajos. Alternativa segura a ranitidina.",
		Recomendaciones: "Antiácido de segunda línea seguro durante embarazo.",
	},
	"antiácido": {
		Name:            "Hidróxido de Aluminio/Magnesio",
		Categoria:       "Categoría A",
		Descripcion:     "Antiácidos de primera línea para acidez",
		Riesgos:         "Mínimos. Pueden afectar absorción de otros medicamentos.",
		Recomendaciones: "Primera línea para acidez. Tomar separado de otros medicamentos.",
	},

	// Antialérgicos
	"loratadina": {
		Name:            "Loratadina",
		Categoria:       "Categoría B",
		Descripcion:     "Antihistamínico de segunda generación",
		Riesgos:         "Bajos. Mínima sedación.",
		Recomendaciones: "Antihistamínico preferido durante embarazo.",
	},
	"cetirizina": {
		Name:            "Cetirizina",
		Categoria:       "Categoría B",
		Descripcion:     "Antihistamínico seguro con mínima sedación",
		Riesgos:         "Muy bajos. Alternativa segura a loratadina.",
		Recomendaciones: "Antihistamínico de elección para alergias durante embarazo.",
	},
	"difenhidramina": {
		Name:            "Difenhidramina",
		Categoria:       "Categoría B",
		Descripcion:     "Antihistamínico de primera generación",
		Riesgos:         "Sedación. Seguro en dosis ocasionales.",
		Recomendaciones: "Útil para insomnio ocasional además de alergias.",
	},

	// Relajantes musculares
	"ciclobenzaprina": {
		Name:            "Ciclobenzaprina",
		Categoria:       "Categoría B",
		Descripcion:     "Relajante muscular de acción central",
		Riesgos:         "Datos limitados en embarazo. Sedación posible.",
		Recomendaciones: "Usar solo si es esencial. Preferir fisioterapia y medidas no farmacológicas.",
	},
	"ciclobenzaprida": {
		Name:            "Ciclobenzaprina",
		Categoria:       "Categoría B",
		Descripcion:     "Relajante muscular de acción central (nombre alternativo)",
		Riesgos:         "Datos limitados en embarazo. Sedación posible.",
		Recomendaciones: "Usar solo si es esencial. Preferir fisioterapia y medidas no farmacológicas.",
	},

	// Medicamentos para gota
	"alopurinol": {
		Name:            "Alopurinol",
		Categoria:       "Categoría C",
		Descripcion:     "Inhibidor de xantina oxidasa para el tratamiento de la gota",
		Riesgos:         "Datos limitados en embarazo. Posibles efectos teratogénicos.",
		Recomendaciones: "Evitar durante embarazo salvo casos graves. Considerar medidas dietéticas.",
	},

	// Antivirales
	"aciclovir": {
		Name:            "Aciclovir",
		Categoria:       "Categoría B",
		Descripcion:     "Antiviral para herpes simple y varicela zoster",
		Riesgos:         "Seguro durante embarazo. Datos extensos disponibles.",
		Recomendaciones: "Antiviral de elección para infecciones herpéticas durante embarazo.",
	},

	// Antihipertensivos seguros
	"metildopa": {
		Name:            "Metildopa",
		Categoria:       "Categoría B",
		Descripcion:     "Antihipertensivo de primera línea en embarazo",
		Riesgos:         "Muy seguros. Amplia experiencia en embarazo.",
		Recomendaciones: "Antihipertensivo preferido durante embarazo.",
	},
	"nifedipino": {
		Name:            "Nifedipino",
		Categoria:       "Categoría C",
		Descripcion:     "Bloqueador de canales de calcio para hipertensión",
		Riesgos:         "Generalmente seguro. Monitoreo de presión arterial necesario.",
		Recomendaciones: "Alternativa a metildopa. Útil también para amenaza de parto prematuro.",
	},
	"fluoxetina": {
		Name:      "Fluoxetina",
		Categoria: "Categoría B",
		Descripcion: "Inhibidor selectivo de la recaptación de serotonina (ISRS). Antidepresivo considerado " +
			"relativamente seguro durante el embarazo según estudios epidemiológicos.",
		Riesgos: "Riesgo bajo de malformaciones congénitas. Posible síndrome de abstinencia neonatal " +
			"transitorio si se usa cerca del parto.",
		Recomendaciones: "ISRS de elección durante embarazo si se requiere tratamiento antidepresivo. " +
			"Los beneficios generalmente superan los riesgos cuando la depresión materna es significativa.",
	},
	"gentamicina": {
		Name:      "Gentamicina",
		Categoria: "Categoría C",
		Descripcion: "Antibiótico aminoglucósido de uso parenteral para infecciones graves. Actúa inhibiendo " +
			"la síntesis proteica bacteriana uniéndose a la subunidad 30S del ribosoma.",
		Riesgos: "Riesgo de ototoxicidad y nefrotoxicidad materna. Cruza la placenta pero riesgo fetal bajo " +
			"con uso corto. Evitar uso prolongado.",
		Recomendaciones: "Reservar para infecciones graves cuando beneficios superen riesgos. Monitoreo de " +
			"función renal y auditiva. Preferir cursos cortos.",
	},
}

// Trade-name and spelling synonyms for the essential table. Matched exactly,
// before any substring fallback.
var essentialSynonymOrder = []string{
	"acetaminofen", "tylenol", "advil", "motrin", "aleve", "voltaren",
	"prilosec", "zantac", "pepcid", "maalox", "mylanta", "tums",
	"claritin", "zyrtec", "benadryl", "canesten", "monistat", "diflucan",
	"augmentin", "keflex", "zithromax", "folato", "vitamina b9",
	"sulfato ferroso", "carbonato de calcio",
}

var essentialSynonyms = map[string]string{
	"acetaminofen":        "paracetamol",
	"tylenol":             "paracetamol",
	"advil":               "ibuprofeno",
	"motrin":              "ibuprofeno",
	"aleve":               "naproxeno",
	"voltaren":            "diclofenaco",
	"prilosec":            "omeprazol",
	"zantac":              "ranitidina",
	"pepcid":              "famotidina",
	"maalox":              "antiácido",
	"mylanta":             "antiácido",
	"tums":                "calcio",
	"claritin":            "loratadina",
	"zyrtec":              "cetirizina",
	"benadryl":            "difenhidramina",
	"canesten":            "clotrimazol",
	"monistat":            "miconazol",
	"diflucan":            "fluconazol",
	"augmentin":           "amoxicilina",
	"keflex":              "cefalexina",
	"zithromax":           "azitromicina",
	"folato":              "ácido fólico",
	"vitamina b9":         "ácido fólico",
	"sulfato ferroso":     "hierro",
	"carbonato de calcio": "calcio",
}
