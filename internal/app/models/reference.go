package models

// MajorField is one bucket of the degree-mix taxonomy used by the
// academics records, with a display name for API consumers.
type MajorField struct {
	FieldCode string `json:"field_code"`
	FieldName string `json:"field_name"`
}

// MajorFields is the full major taxonomy as shipped by the dataset. The
// codes match the keys of academics.program_percentage.
var MajorFields = []MajorField{
	{"agriculture", "Agriculture"},
	{"resources", "Natural Resources"},
	{"architecture", "Architecture"},
	{"ethnic_cultural_gender", "Ethnic, Cultural & Gender Studies"},
	{"communication", "Communication"},
	{"communications_technology", "Communications Technology"},
	{"computer", "Computer Science"},
	{"personal_culinary", "Personal & Culinary Services"},
	{"education", "Education"},
	{"engineering", "Engineering"},
	{"engineering_technology", "Engineering Technology"},
	{"language", "Foreign Languages"},
	{"family_consumer_science", "Family & Consumer Sciences"},
	{"legal", "Legal Studies"},
	{"english", "English"},
	{"humanities", "Liberal Arts & Humanities"},
	{"library", "Library Science"},
	{"biological", "Biological Sciences"},
	{"mathematics", "Mathematics"},
	{"military", "Military Science"},
	{"multidiscipline", "Multidisciplinary Studies"},
	{"parks_recreation_fitness", "Parks, Recreation & Fitness"},
	{"philosophy_religious", "Philosophy & Religious Studies"},
	{"theology_religious_vocation", "Theology & Religious Vocations"},
	{"physical_science", "Physical Sciences"},
	{"science_technology", "Science Technology"},
	{"psychology", "Psychology"},
	{"security_law_enforcement", "Security & Law Enforcement"},
	{"public_administration_social_service", "Public Administration"},
	{"social_science", "Social Sciences"},
	{"construction", "Construction Trades"},
	{"mechanic_repair_technology", "Mechanic & Repair Technology"},
	{"precision_production", "Precision Production"},
	{"transportation", "Transportation"},
	{"visual_performing", "Visual & Performing Arts"},
	{"health", "Health Professions"},
	{"business_marketing", "Business & Marketing"},
	{"history", "History"},
}

// ValidMajorField reports whether code is a known taxonomy bucket.
func ValidMajorField(code string) bool {
	for _, m := range MajorFields {
		if m.FieldCode == code {
			return true
		}
	}
	return false
}

// CipCode is a reference entry for a standardized program code.
type CipCode struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Family string `json:"family"`
}

// CommonCipCodes is the static reference list served by the cip-codes
// endpoint.
var CommonCipCodes = []CipCode{
	{"1102", "Computer and Information Sciences", "11"},
	{"1401", "Engineering, General", "14"},
	{"1407", "Chemical Engineering", "14"},
	{"1408", "Civil Engineering", "14"},
	{"1409", "Computer Engineering", "14"},
	{"1410", "Electrical Engineering", "14"},
	{"1419", "Mechanical Engineering", "14"},
	{"2601", "Biology/Biological Sciences", "26"},
	{"2701", "Mathematics", "27"},
	{"4005", "Physical Sciences", "40"},
	{"4201", "Psychology", "42"},
	{"4501", "Social Sciences", "45"},
	{"5001", "Visual and Performing Arts", "50"},
	{"5102", "Health Professions", "51"},
	{"5201", "Business Administration", "52"},
	{"5401", "History", "54"},
}
