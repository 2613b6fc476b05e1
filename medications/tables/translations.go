package tables

import "strings"

// Spanish to english medication name mapping, used to build label-API search
// variants for terms entered in spanish.
var medicationTranslations = map[string][]string{
	// AINEs
	"naproxeno":    {"naproxen", "naprosyn", "aleve"},
	"ibuprofeno":   {"ibuprofen", "advil", "motrin"},
	"diclofenaco":  {"diclofenac", "voltaren"},
	"celecoxib":    {"celecoxib", "celebrex"},
	"indometacina": {"indomethacin", "indocin"},

	// Cardiovasculares
	"losartan":           {"losartan", "cozaar"},
	"enalapril":          {"enalapril", "vasotec"},
	"lisinopril":         {"lisinopril", "prinivil", "zestril"},
	"amlodipino":         {"amlodipine", "norvasc"},
	"metoprolol":         {"metoprolol", "lopressor", "toprol"},
	"atenolol":           {"atenolol", "tenormin"},
	"propranolol":        {"propranolol", "inderal"},
	"nifedipino":         {"nifedipine", "adalat", "procardia"},
	"hidroclorotiazida":  {"hydrochlorothiazide", "microzide"},
	"furosemida":         {"furosemide", "lasix"},

	// Antidepresivos
	"fluoxetina":    {"fluoxetine", "prozac"},
	"sertralina":    {"sertraline", "zoloft"},
	"paroxetina":    {"paroxetine", "paxil"},
	"escitalopram":  {"escitalopram", "lexapro"},
	"venlafaxina":   {"venlafaxine", "effexor"},
	"bupropion":     {"bupropion", "wellbutrin"},
	"amitriptilina": {"amitriptyline", "elavil"},

	// Antibióticos
	"amoxicilina":    {"amoxicillin", "amoxil"},
	"azitromicina":   {"azithromycin", "zithromax"},
	"claritromicina": {"clarithromycin", "biaxin"},
	"cefalexina":     {"cephalexin", "keflex"},
	"clindamicina":   {"clindamycin", "cleocin"},
	"eritromicina":   {"erythromycin", "ery-tab"},
	"gentamicina":    {"gentamicin", "garamycin"},
	"penicilina":     {"penicillin", "pen-vk"},
	"ciprofloxacino": {"ciprofloxacin", "cipro"},
	"levofloxacino":  {"levofloxacin", "levaquin"},

	// Diabetes
	"metformina":    {"metformin", "glucophage"},
	"glibenclamida": {"glyburide", "diabeta"},
	"glimepirida":   {"glimepiride", "amaryl"},
	"insulina":      {"insulin", "humulin", "novolin"},
	"sitagliptina":  {"sitagliptin", "januvia"},

	// Antihistamínicos
	"loratadina":     {"loratadine", "claritin"},
	"cetirizina":     {"cetirizine", "zyrtec"},
	"difenhidramina": {"diphenhydramine", "benadryl"},
	"clorfenamina":   {"chlorpheniramine", "chlor-trimeton"},

	// Analgésicos
	"paracetamol":  {"acetaminophen", "tylenol"},
	"acetaminofen": {"acetaminophen", "tylenol"},
	"tramadol":     {"tramadol", "ultram"},
	"codeina":      {"codeine"},
	"morfina":      {"morphine"},

	// Corticosteroides
	"prednisona":    {"prednisone", "deltasone"},
	"prednisolona":  {"prednisolone", "prelone"},
	"betametasona":  {"betamethasone", "celestone"},
	"dexametasona":  {"dexamethasone", "decadron"},
	"hidrocortisona": {"hydrocortisone", "cortef"},

	// Gastrointestinales
	"omeprazol":      {"omeprazole", "prilosec"},
	"lansoprazol":    {"lansoprazole", "prevacid"},
	"ranitidina":     {"ranitidine", "zantac"},
	"metoclopramida": {"metoclopramide", "reglan"},
	"loperamida":     {"loperamide", "imodium"},
	"simeticona":     {"simethicone", "gas-x"},

	// Antiepilépticos
	"fenitoina":     {"phenytoin", "dilantin"},
	"carbamazepina": {"carbamazepine", "tegretol"},
	"valproato":     {"valproic acid", "depakote"},
	"lamotrigina":   {"lamotrigine", "lamictal"},

	// Vitaminas
	"acido folico": {"folic acid", "folate"},
	"vitamina d":   {"vitamin d", "cholecalciferol"},
	"vitamina b12": {"vitamin b12", "cyanocobalamin"},
	"hierro":       {"iron", "ferrous sulfate"},
	"calcio":       {"calcium", "calcium carbonate"},

	// Hormonales
	"levotiroxina": {"levothyroxine", "synthroid"},
	"metimazol":    {"methimazole", "tapazole"},
	"estradiol":    {"estradiol"},
	"progesterona": {"progesterone"},

	// Anticoagulantes
	"warfarina":   {"warfarin", "coumadin"},
	"heparina":    {"heparin"},
	"enoxaparina": {"enoxaparin", "lovenox"},

	// Otros comunes
	"albuterol":  {"albuterol", "proventil"},
	"salbutamol": {"albuterol", "proventil"},
	"digoxina":   {"digoxin", "lanoxin"},
	"clonazepam": {"clonazepam", "klonopin"},
	"lorazepam":  {"lorazepam", "ativan"},
	"alprazolam": {"alprazolam", "xanax"},
}

// EnglishNames returns the english equivalents for a spanish medication name.
// Unknown terms fall back to the normalized term itself so callers always
// have at least one candidate to query.
func EnglishNames(term string) []string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if names, ok := medicationTranslations[normalized]; ok {
		return names
	}
	return []string{normalized}
}

// SearchVariants returns the term plus its english equivalents, deduplicated,
// preserving the order the caller should try them against the label API.
func SearchVariants(term string) []string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	variants := []string{normalized}
	seen := map[string]bool{normalized: true}
	for _, name := range EnglishNames(normalized) {
		lower := strings.ToLower(name)
		if !seen[lower] {
			variants = append(variants, lower)
			seen[lower] = true
		}
	}
	return variants
}
