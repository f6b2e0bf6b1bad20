package mapping

// Marathi form headers of the student sponsorship sheet, in lookup order
var defaultHeaderEntries = []Entry{
	{"तारीख", "date"},
	{"विद्यार्थ्यांचे नाव", "student_name"},
	{"विद्यार्थ्यांचे वय", "age"},
	{"इयत्ता", "class"},
	{"गावाचे नाव", "village"},
	{"शाळेचे / महाविद्यालयाचे नाव", "school_college_name"},
	{"सध्या घेत असलेले इतर शिक्षण", "other_current_education"},
	{"मुलगा दिव्यांग आहे का", "is_disabled"},
	{"पालकांचे नाव (वडिलांचे नाव , आईचे नाव )", "parent_names"},
	{"पालकांचे वय", "parent_ages"},
	{"पालकांचे शिक्षण", "parent_education"},
	{"घरातील एकूण सदस्य संख्या", "family_members"},
	{"घरातील कमावणारे सदस्य संख्या", "earning_members"},
	{"कुटुंबाचा एकूण वार्षिक उत्पन्न", "family_annual_income"},
	{"संपर्क फोन क्रमांक", "phone_number"},
	{"पत्रव्यवहाराचा पत्ता", "address"},
}

// yes/no answers translated without a remote call
var defaultValueEntries = []Entry{
	{"हो", "Yes"},
	{"होय", "Yes"},
	{"नाही", "No"},
	{"नाहीत", "No"},
	{"Yes", "Yes"},
	{"No", "No"},
}

// DefaultHeaderEntries returns a copy of the built-in header entries
func DefaultHeaderEntries() []Entry {
	return append([]Entry(nil), defaultHeaderEntries...)
}

// DefaultValueEntries returns a copy of the built-in value entries
func DefaultValueEntries() []Entry {
	return append([]Entry(nil), defaultValueEntries...)
}

// Default returns the built-in mapping set
func Default() *Set {
	return &Set{
		Headers: NewHeaderMapping(defaultHeaderEntries),
		Values:  NewValueMapping(defaultValueEntries),
	}
}
