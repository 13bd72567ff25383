package rest

import (
	"net/http"
	"testing"
)

func TestProfileViewAndEdit(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, http.MethodPost, "/signup", signupBody("edit@example.com"), nil)
	cookie := sessionCookie(t, rec)

	editRec := doJSON(t, router, http.MethodPatch, "/profile/edit", map[string]interface{}{
		"district": "Ambala",
		"age":      40,
	}, []*http.Cookie{cookie})
	if editRec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", editRec.Code, editRec.Body.String())
	}

	viewRec := doJSON(t, router, http.MethodGet, "/profile/view", nil, []*http.Cookie{cookie})
	if viewRec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", viewRec.Code)
	}
	user, _ := decodeBody(t, viewRec)["user"].(map[string]interface{})
	if user["district"] != "Ambala" || user["age"] != float64(40) {
		t.Errorf("Edit did not persist: %v", user)
	}
	if user["fullName"] != "Ramesh Kumar" {
		t.Errorf("Untouched field changed: %v", user["fullName"])
	}
}

func TestProfileEdit_UnknownFieldRejected(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, http.MethodPost, "/signup", signupBody("strict@example.com"), nil)
	cookie := sessionCookie(t, rec)

	editRec := doJSON(t, router, http.MethodPatch, "/profile/edit", map[string]interface{}{
		"emailId": "new@example.com",
	}, []*http.Cookie{cookie})
	if editRec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", editRec.Code)
	}
	if decodeBody(t, editRec)["message"] != "Invalid field: emailId" {
		t.Errorf("Unexpected message: %v", decodeBody(t, editRec)["message"])
	}
}

// A falsy value must fail its field's constraint, never erase the stored
// value as if the field were absent.
func TestProfileEdit_FalsyValueCannotWipeField(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, http.MethodPost, "/signup", signupBody("wipe@example.com"), nil)
	cookie := sessionCookie(t, rec)

	cases := []struct {
		name string
		body map[string]interface{}
		want string
	}{
		{"empty fullName", map[string]interface{}{"fullName": ""}, "Full name must be 3–50 characters long"},
		{"zero age", map[string]interface{}{"age": 0}, "Age must be between 18 and 100"},
		{"empty crops", map[string]interface{}{"crops": []string{}}, "At least one crop must be provided"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			editRec := doJSON(t, router, http.MethodPatch, "/profile/edit", tc.body, []*http.Cookie{cookie})
			if editRec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d: %s", editRec.Code, editRec.Body.String())
			}
			if decodeBody(t, editRec)["message"] != tc.want {
				t.Errorf("Expected %q, got %v", tc.want, decodeBody(t, editRec)["message"])
			}
		})
	}

	// Nothing was wiped.
	viewRec := doJSON(t, router, http.MethodGet, "/profile/view", nil, []*http.Cookie{cookie})
	user, _ := decodeBody(t, viewRec)["user"].(map[string]interface{})
	if user["fullName"] != "Ramesh Kumar" || user["age"] != float64(35) {
		t.Errorf("Rejected edits must not change the record: %v", user)
	}
}

func TestProfileDelete(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, http.MethodPost, "/signup", signupBody("gone@example.com"), nil)
	cookie := sessionCookie(t, rec)

	delRec := doJSON(t, router, http.MethodDelete, "/profile/delete", nil, []*http.Cookie{cookie})
	if delRec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", delRec.Code)
	}

	// The old session token is dead with the account.
	if rec := doJSON(t, router, http.MethodGet, "/profile/view", nil, []*http.Cookie{cookie}); rec.Code != http.StatusUnauthorized {
		t.Errorf("Deleted account's token should get 401, got %d", rec.Code)
	}

	loginRec := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"emailId": "gone@example.com", "password": "Str0ng!Pass",
	}, nil)
	if loginRec.Code != http.StatusUnauthorized {
		t.Errorf("Deleted account should not log in, got %d", loginRec.Code)
	}
}
