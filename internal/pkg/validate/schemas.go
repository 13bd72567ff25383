package validate

import (
	"fmt"
	"regexp"
)

// Indian mobile number: 10 digits starting 6-9.
var phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// Looser 10-digit rule used by profile edits and help requests.
var tenDigitRe = regexp.MustCompile(`^[0-9]{10}$`)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignUp validates the registration payload. The password strength policy is
// checked separately (auth package), before hashing.
func SignUp(doc map[string]interface{}) error { return signUpSchema.Validate(doc) }

var signUpSchema = Schema{
	Fields: []Field{
		{Name: "fullName", Required: true, Missing: "fullName is required",
			Checks: []Check{StringLen(3, 50, "Full name must be 3–50 characters long")}},
		{Name: "phoneNumber", Required: true, Missing: "phoneNumber is required",
			Checks: []Check{Match(phoneRe, "Invalid phone number format")}},
		{Name: "emailId", Required: true, Missing: "emailId is required",
			Checks: []Check{Match(emailRe, "Invalid email format")}},
		{Name: "state", Required: true, Missing: "state is required",
			Checks: []Check{StringLen(2, 0, "State name must be at least 2 characters long")}},
		{Name: "district", Required: true, Missing: "district is required",
			Checks: []Check{StringLen(2, 0, "District name must be at least 2 characters long")}},
		{Name: "crops", Required: true, Missing: "crops is required",
			Checks: []Check{StringList(2, "At least one crop must be provided", "Each crop must be a valid string (min 2 chars)")}},
		{Name: "age", Required: true, Missing: "age is required",
			Checks: []Check{NumberBetween(18, 100, "Age must be between 18 and 100")}},
	},
}

// ProfileEdit validates a partial profile update: only fields from the allowed
// set, at least one of them, each re-checked with the signup rules.
func ProfileEdit(doc map[string]interface{}) error { return profileEditSchema.Validate(doc) }

var profileEditSchema = Schema{
	Strict:     true,
	UnknownFmt: "Invalid field: %s",
	RequireAny: true,
	EmptyMsg:   "At least one field is required",
	Fields: []Field{
		{Name: "fullName", Checks: []Check{StringLen(3, 50, "Full name must be 3–50 characters long")}},
		{Name: "phoneNumber", Checks: []Check{Match(tenDigitRe, "Phone number must be a valid 10-digit number")}},
		{Name: "state", Checks: []Check{StringLen(2, 0, "State name must be at least 2 characters")}},
		{Name: "district", Checks: []Check{StringLen(2, 0, "District name must be at least 2 characters")}},
		{Name: "crops", Checks: []Check{StringList(2, "At least one crop must be provided", "Each crop must be a valid string (min 2 chars)")}},
		{Name: "age", Checks: []Check{NumberBetween(18, 100, "Age must be between 18 and 100")}},
	},
}

// HelpRequest validates a help ticket submission.
func HelpRequest(doc map[string]interface{}) error { return helpSchema.Validate(doc) }

var helpSchema = Schema{
	Fields: []Field{
		{Name: "name", Required: true, Missing: "Please provide a valid name (min 3 characters).",
			Checks: []Check{StringLen(3, 0, "Please provide a valid name (min 3 characters).")}},
		{Name: "state", Required: true, Missing: "Please provide a valid state name.",
			Checks: []Check{StringLen(2, 0, "Please provide a valid state name.")}},
		{Name: "district", Required: true, Missing: "Please provide a valid district name.",
			Checks: []Check{StringLen(2, 0, "Please provide a valid district name.")}},
		{Name: "phoneNo", Required: true, Missing: "Phone number must be a valid 10-digit number.",
			Checks: []Check{Match(tenDigitRe, "Phone number must be a valid 10-digit number.")}},
		{Name: "email", Required: true, Missing: "Please provide a valid email address.",
			Checks: []Check{Match(emailRe, "Please provide a valid email address.")}},
		{Name: "help", Required: true, Missing: "Help description must be at least 10 characters long.",
			Checks: []Check{StringLen(10, 1000, "Help description must be at least 10 characters long.")}},
	},
}

// Crop validates one crop reference record. Messages are Hindi, matching the
// farmer-facing upload tooling.
func Crop(doc map[string]interface{}) error { return cropSchema.Validate(doc) }

var cropSchema = Schema{
	Fields: []Field{
		{Name: "name", Required: true, Missing: "कृपया सही फसल का नाम दर्ज करें (कम से कम 2 अक्षर)।",
			Checks: []Check{StringLen(2, 0, "कृपया सही फसल का नाम दर्ज करें (कम से कम 2 अक्षर)।")}},
		{Name: "npk", Required: true, Missing: "कृपया N, P, K की सही मात्रा (न्यूनतम और अधिकतम) दर्ज करें।",
			Checks: []Check{npkCheck()}},
		{Name: "temperature_c", Required: true, Missing: "तापमान की सीमा दो संख्याओं में दर्ज करें (न्यूनतम और अधिकतम)।",
			Checks: []Check{rangeCheck(-10, 60, "तापमान", "°C")}},
		{Name: "humidity_percent", Required: true, Missing: "नमी की सीमा दो संख्याओं में दर्ज करें (न्यूनतम और अधिकतम)।",
			Checks: []Check{rangeCheck(0, 100, "नमी", "%")}},
		{Name: "soil_moisture_percent", Required: true, Missing: "मिट्टी की नमी की सीमा दो संख्याओं में दर्ज करें (न्यूनतम और अधिकतम)।",
			Checks: []Check{rangeCheck(0, 100, "मिट्टी की नमी", "%")}},
		{Name: "ph", Required: true, Missing: "pH की सीमा दो संख्याओं में दर्ज करें (न्यूनतम और अधिकतम)।",
			Checks: []Check{rangeCheck(0, 14, "pH", "")}},
		{Name: "ec_ds_m", Required: true, Missing: "EC (लवणता) की सीमा दो संख्याओं में दर्ज करें (न्यूनतम और अधिकतम)।",
			Checks: []Check{rangeCheck(0, 20, "EC (लवणता)", " dS/m")}},
	},
}

func rangeCheck(lo, hi float64, label, unit string) Check {
	shape := fmt.Sprintf("%s की सीमा दो संख्याओं में दर्ज करें (न्यूनतम और अधिकतम)।", label)
	bound := fmt.Sprintf("%s %g%s से %g%s के बीच होना चाहिए।", label, lo, unit, hi, unit)
	return NumberPair(lo, hi, shape, bound)
}

// npkCheck requires npk.N, npk.P and npk.K, each a two-number [min, max] pair.
func npkCheck() Check {
	general := "कृपया N, P, K की सही मात्रा (न्यूनतम और अधिकतम) दर्ज करें।"
	return func(v interface{}) string {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return general
		}
		for _, key := range []string{"N", "P", "K"} {
			if _, isList := obj[key].([]interface{}); !isList {
				return general
			}
		}
		for _, key := range []string{"N", "P", "K"} {
			if _, ok := asNumberPair(obj[key]); !ok {
				return fmt.Sprintf("कृपया %s की मात्रा दो संख्याओं में दर्ज करें (उदाहरण: [80,160])।", key)
			}
		}
		return ""
	}
}

// Cultivation validates one cultivation guide document.
func Cultivation(doc map[string]interface{}) error { return cultivationSchema.Validate(doc) }

var cultivationSchema = Schema{
	Fields: []Field{
		{Name: "name_hi", Required: true, Missing: "❌ फसल का हिंदी नाम आवश्यक है | Hindi name is required",
			Checks: []Check{StringLen(1, 0, "❌ फसल का हिंदी नाम आवश्यक है | Hindi name is required")}},
		{Name: "name_en", Required: true, Missing: "❌ Crop English name must be at least 2 characters long",
			Checks: []Check{StringLen(2, 0, "❌ Crop English name must be at least 2 characters long")}},
		{Name: "season", Required: true, Missing: "❌ Season information is required"},
		{Name: "sowing_window", Required: true, Missing: "❌ Sowing window is required"},
		{Name: "soil", Required: true, Missing: "❌ Soil details are required"},
		{Name: "seed_nursery", Required: true, Missing: "❌ seed_nursery object is required",
			Checks: []Check{RequiredKeys(
				[]string{"seed_rate_nursery", "nursery_preparation", "seed_rate_field", "spacing"},
				"❌ seed_nursery object is required",
				"❌ %s is required inside seed_nursery")}},
		{Name: "fertilizer_NPK_kg_per_ha", Checks: []Check{fertilizerCheck()}},
		{Name: "irrigation_schedule", Required: true, Missing: "❌ irrigation_schedule is required and must be a string",
			Checks: []Check{StringLen(1, 0, "❌ irrigation_schedule is required and must be a string")}},
		{Name: "weed_control", Required: true, Missing: "❌ weed_control is required and must be a string",
			Checks: []Check{StringLen(1, 0, "❌ weed_control is required and must be a string")}},
		{Name: "pest_disease_management", Required: true, Missing: "❌ pest_disease_management is required and must be a string",
			Checks: []Check{StringLen(1, 0, "❌ pest_disease_management is required and must be a string")}},
		{Name: "harvest_and_postharvest", Required: true, Missing: "❌ harvest_and_postharvest is required and must be a string",
			Checks: []Check{StringLen(1, 0, "❌ harvest_and_postharvest is required and must be a string")}},
		{Name: "timeline_months", Required: true, Missing: "❌ timeline_months object is required",
			Checks: []Check{RequiredKeys(
				[]string{"nursery", "transplant_or_sowing", "harvest"},
				"❌ timeline_months object is required",
				"❌ timeline_months.%s is required")}},
		{Name: "detailed_steps_en", Required: true, Missing: "❌ detailed_steps_en must be a non-empty array of strings",
			Checks: []Check{StringList(1, "❌ detailed_steps_en must be a non-empty array of strings", "❌ detailed_steps_en must be a non-empty array of strings")}},
		{Name: "detailed_steps_hi", Required: true, Missing: "❌ detailed_steps_hi must be a non-empty array of strings",
			Checks: []Check{StringList(1, "❌ detailed_steps_hi must be a non-empty array of strings", "❌ detailed_steps_hi must be a non-empty array of strings")}},
		{Name: "sources", Required: true, Missing: "❌ sources must be a non-empty array of strings",
			Checks: []Check{StringList(1, "❌ sources must be a non-empty array of strings", "❌ sources must be a non-empty array of strings")}},
	},
}

// fertilizerCheck validates the optional recommended_range: N, P2O5 and K2O
// each as a [min, max] number pair when present.
func fertilizerCheck() Check {
	return func(v interface{}) string {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return ""
		}
		rr, ok := obj["recommended_range"].(map[string]interface{})
		if !ok {
			return ""
		}
		for _, key := range []string{"N", "P2O5", "K2O"} {
			list, isList := rr[key].([]interface{})
			if !isList || len(list) != 2 {
				return fmt.Sprintf("❌ %s range must be an array of [min, max]", key)
			}
			if _, ok := asNumberPair(rr[key]); !ok {
				return fmt.Sprintf("❌ %s values must be numbers", key)
			}
		}
		return ""
	}
}
