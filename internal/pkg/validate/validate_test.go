package validate

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Failed to decode test payload: %v", err)
	}
	return doc
}

func validSignUp() map[string]interface{} {
	return map[string]interface{}{
		"fullName":    "Ramesh Kumar",
		"phoneNumber": "9876543210",
		"emailId":     "ramesh@example.com",
		"state":       "Haryana",
		"district":    "Karnal",
		"crops":       []interface{}{"wheat", "rice"},
		"age":         float64(35),
	}
}

func TestSignUp_Valid(t *testing.T) {
	if err := SignUp(validSignUp()); err != nil {
		t.Errorf("Valid signup should pass: %v", err)
	}
}

func TestSignUp_MissingField(t *testing.T) {
	doc := validSignUp()
	delete(doc, "phoneNumber")
	err := SignUp(doc)
	if err == nil {
		t.Fatal("Missing phoneNumber should fail")
	}
	fe := err.(*FieldError)
	if fe.Field != "phoneNumber" {
		t.Errorf("Error should name phoneNumber, got %q", fe.Field)
	}
	if fe.Message != "phoneNumber is required" {
		t.Errorf("Unexpected message %q", fe.Message)
	}
}

func TestSignUp_FieldRules(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value interface{}
		want  string
	}{
		{"short name", "fullName", "Ra", "Full name must be 3–50 characters long"},
		{"name wrong type", "fullName", float64(42), "Full name must be 3–50 characters long"},
		{"phone not indian mobile", "phoneNumber", "1234567890", "Invalid phone number format"},
		{"phone too short", "phoneNumber", "98765", "Invalid phone number format"},
		{"bad email", "emailId", "not-an-email", "Invalid email format"},
		{"short state", "state", "H", "State name must be at least 2 characters long"},
		{"short district", "district", "K", "District name must be at least 2 characters long"},
		{"empty crops", "crops", []interface{}{}, "At least one crop must be provided"},
		{"short crop", "crops", []interface{}{"w"}, "Each crop must be a valid string (min 2 chars)"},
		{"crop wrong type", "crops", []interface{}{float64(1)}, "Each crop must be a valid string (min 2 chars)"},
		{"age too young", "age", float64(17), "Age must be between 18 and 100"},
		{"age too old", "age", float64(101), "Age must be between 18 and 100"},
		{"age wrong type", "age", "35", "Age must be between 18 and 100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validSignUp()
			doc[tc.field] = tc.value
			err := SignUp(doc)
			if err == nil {
				t.Fatalf("Expected failure for %s=%v", tc.field, tc.value)
			}
			fe := err.(*FieldError)
			if fe.Field != tc.field {
				t.Errorf("Expected field %q, got %q", tc.field, fe.Field)
			}
			if fe.Message != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, fe.Message)
			}
		})
	}
}

func TestSignUp_AgeBoundariesInclusive(t *testing.T) {
	for _, age := range []float64{18, 100} {
		doc := validSignUp()
		doc["age"] = age
		if err := SignUp(doc); err != nil {
			t.Errorf("Age %v should be accepted: %v", age, err)
		}
	}
}

func TestProfileEdit(t *testing.T) {
	if err := ProfileEdit(map[string]interface{}{"state": "Punjab"}); err != nil {
		t.Errorf("Single valid field should pass: %v", err)
	}

	err := ProfileEdit(map[string]interface{}{})
	if err == nil || err.Error() != "At least one field is required" {
		t.Errorf("Empty edit should fail, got %v", err)
	}

	err = ProfileEdit(map[string]interface{}{"emailId": "x@y.com"})
	if err == nil {
		t.Fatal("Disallowed field should fail")
	}
	fe := err.(*FieldError)
	if fe.Field != "emailId" || fe.Message != "Invalid field: emailId" {
		t.Errorf("Unknown-field error should name emailId, got %+v", fe)
	}

	err = ProfileEdit(map[string]interface{}{"phoneNumber": "98765"})
	if err == nil || err.Error() != "Phone number must be a valid 10-digit number" {
		t.Errorf("Bad phone should fail, got %v", err)
	}

	// Profile edits accept any 10-digit number, unlike signup.
	if err := ProfileEdit(map[string]interface{}{"phoneNumber": "1234567890"}); err != nil {
		t.Errorf("10-digit phone should pass on edit: %v", err)
	}

	err = ProfileEdit(map[string]interface{}{"age": float64(17)})
	if err == nil || err.Error() != "Age must be between 18 and 100" {
		t.Errorf("Underage edit should fail, got %v", err)
	}
	if err := ProfileEdit(map[string]interface{}{"age": float64(18)}); err != nil {
		t.Errorf("Age 18 should pass: %v", err)
	}
}

// An explicit falsy value on an optional field is a constraint violation,
// not an omission: {"fullName": ""} must not be allowed to blank the name.
func TestProfileEdit_FalsyValuesRejected(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]interface{}
		want string
	}{
		{"empty fullName", map[string]interface{}{"fullName": ""}, "Full name must be 3–50 characters long"},
		{"zero age", map[string]interface{}{"age": float64(0)}, "Age must be between 18 and 100"},
		{"false crops", map[string]interface{}{"crops": false}, "At least one crop must be provided"},
		{"null state", map[string]interface{}{"state": nil}, "State name must be at least 2 characters"},
		{"empty district", map[string]interface{}{"district": ""}, "District name must be at least 2 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ProfileEdit(tc.doc)
			if err == nil {
				t.Fatalf("Falsy %s should fail validation", tc.name)
			}
			if err.Error() != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestHelpRequest(t *testing.T) {
	valid := decode(t, `{
		"name": "Ramesh Kumar",
		"state": "Haryana",
		"district": "Karnal",
		"phoneNo": "9876543210",
		"email": "ramesh@example.com",
		"help": "My wheat crop is showing yellow leaf tips."
	}`)
	if err := HelpRequest(valid); err != nil {
		t.Errorf("Valid help request should pass: %v", err)
	}

	cases := []struct {
		field string
		value interface{}
		want  string
	}{
		{"name", "Ra", "Please provide a valid name (min 3 characters)."},
		{"phoneNo", "98765", "Phone number must be a valid 10-digit number."},
		{"email", "bad", "Please provide a valid email address."},
		{"help", "too short", "Help description must be at least 10 characters long."},
	}
	for _, tc := range cases {
		doc := decode(t, `{
			"name": "Ramesh Kumar",
			"state": "Haryana",
			"district": "Karnal",
			"phoneNo": "9876543210",
			"email": "ramesh@example.com",
			"help": "My wheat crop is showing yellow leaf tips."
		}`)
		doc[tc.field] = tc.value
		err := HelpRequest(doc)
		if err == nil || err.Error() != tc.want {
			t.Errorf("%s=%v: expected %q, got %v", tc.field, tc.value, tc.want, err)
		}
	}
}

func TestCrop(t *testing.T) {
	valid := decode(t, `{
		"name": "Wheat",
		"npk": {"N": [80, 160], "P": [40, 60], "K": [20, 40]},
		"temperature_c": [10, 25],
		"humidity_percent": [40, 70],
		"soil_moisture_percent": [30, 60],
		"ph": [6, 7.5],
		"ec_ds_m": [0, 4]
	}`)
	if err := Crop(valid); err != nil {
		t.Errorf("Valid crop should pass: %v", err)
	}

	doc := decode(t, `{"name": "W"}`)
	if err := Crop(doc); err == nil || err.Error() != "कृपया सही फसल का नाम दर्ज करें (कम से कम 2 अक्षर)।" {
		t.Errorf("Short name should fail with Hindi message, got %v", err)
	}

	doc = decode(t, `{"name": "Wheat", "npk": {"N": [80, 160], "P": [40, 60]}}`)
	if err := Crop(doc); err == nil || err.Error() != "कृपया N, P, K की सही मात्रा (न्यूनतम और अधिकतम) दर्ज करें।" {
		t.Errorf("Missing K should fail, got %v", err)
	}

	doc = decode(t, `{"name": "Wheat", "npk": {"N": [80], "P": [40, 60], "K": [20, 40]}}`)
	if err := Crop(doc); err == nil || err.Error() != "कृपया N की मात्रा दो संख्याओं में दर्ज करें (उदाहरण: [80,160])।" {
		t.Errorf("One-element N should fail naming N, got %v", err)
	}

	doc = decode(t, `{
		"name": "Wheat",
		"npk": {"N": [80, 160], "P": [40, 60], "K": [20, 40]},
		"temperature_c": [-30, 25],
		"humidity_percent": [40, 70],
		"soil_moisture_percent": [30, 60],
		"ph": [6, 7.5],
		"ec_ds_m": [0, 4]
	}`)
	if err := Crop(doc); err == nil || err.Error() != "तापमान -10°C से 60°C के बीच होना चाहिए।" {
		t.Errorf("Out-of-bound temperature should fail, got %v", err)
	}
}

func TestCultivation(t *testing.T) {
	raw := `{
		"name_hi": "गेहूं",
		"name_en": "Wheat",
		"season": "Rabi",
		"sowing_window": "Oct-Nov",
		"soil": "Loamy, well drained",
		"seed_nursery": {
			"seed_rate_nursery": "n/a",
			"nursery_preparation": "n/a",
			"seed_rate_field": "100 kg/ha",
			"spacing": "20 cm rows"
		},
		"fertilizer_NPK_kg_per_ha": {"recommended_range": {"N": [100, 120], "P2O5": [50, 60], "K2O": [30, 40]}},
		"irrigation_schedule": "CRI, tillering, flowering, grain filling",
		"weed_control": "Pre-emergence herbicide, one hand weeding",
		"pest_disease_management": "Rust-resistant varieties, seed treatment",
		"harvest_and_postharvest": "Harvest at full maturity, dry to 12% moisture",
		"timeline_months": {"nursery": null, "transplant_or_sowing": "Oct", "harvest": "Apr"},
		"detailed_steps_en": ["Prepare field", "Sow seed"],
		"detailed_steps_hi": ["खेत तैयार करें", "बीज बोएं"],
		"sources": ["ICAR"]
	}`
	if err := Cultivation(decode(t, raw)); err != nil {
		t.Errorf("Valid cultivation should pass: %v", err)
	}

	doc := decode(t, raw)
	delete(doc, "name_hi")
	if err := Cultivation(doc); err == nil || err.Error() != "❌ फसल का हिंदी नाम आवश्यक है | Hindi name is required" {
		t.Errorf("Missing Hindi name should fail, got %v", err)
	}

	doc = decode(t, raw)
	sn := doc["seed_nursery"].(map[string]interface{})
	delete(sn, "spacing")
	if err := Cultivation(doc); err == nil || err.Error() != "❌ spacing is required inside seed_nursery" {
		t.Errorf("Missing spacing should fail, got %v", err)
	}

	doc = decode(t, raw)
	fert := doc["fertilizer_NPK_kg_per_ha"].(map[string]interface{})
	fert["recommended_range"].(map[string]interface{})["P2O5"] = []interface{}{float64(50)}
	if err := Cultivation(doc); err == nil || err.Error() != "❌ P2O5 range must be an array of [min, max]" {
		t.Errorf("Bad fertilizer range should fail, got %v", err)
	}

	doc = decode(t, raw)
	tm := doc["timeline_months"].(map[string]interface{})
	delete(tm, "harvest")
	if err := Cultivation(doc); err == nil || err.Error() != "❌ timeline_months.harvest is required" {
		t.Errorf("Missing timeline key should fail, got %v", err)
	}

	doc = decode(t, raw)
	doc["sources"] = []interface{}{}
	if err := Cultivation(doc); err == nil || err.Error() != "❌ sources must be a non-empty array of strings" {
		t.Errorf("Empty sources should fail, got %v", err)
	}
}
