package rest

import (
	"net/http"
	"testing"
)

func TestSensorIngestAndLatest(t *testing.T) {
	router, _ := newTestServer(t)

	// The station has no session; ingest must work without one.
	first := map[string]interface{}{
		"soilTemp": 24.5, "soilMoist": 41.0, "soilPH": 6.8,
		"nitrogen": 88.0, "phosphorus": 45.0, "potassium": 52.0,
		"bmpTemp": 29.1, "pressure": 1009.2, "altitude": 212.0,
		"ds18b20Temp": 25.0, "rain": 0.0, "ldr": 512.0,
		"button": 0, "voltage": 3.9,
	}
	if rec := doJSON(t, router, http.MethodPost, "/sensor", first, nil); rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	second := first
	second["soilMoist"] = 38.5
	if rec := doJSON(t, router, http.MethodPost, "/sensor", second, nil); rec.Code != http.StatusCreated {
		t.Fatalf("Second ingest failed: %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/sensor/latest", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("Expected success=true: %v", body)
	}
	data, _ := body["data"].(map[string]interface{})
	if data["soilMoist"] != 38.5 {
		t.Errorf("Latest should be the most recent reading, got %v", data["soilMoist"])
	}
}

// An empty table is "no data yet" for the dashboard, not an error.
func TestSensorLatest_Empty(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/sensor/latest", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["message"] != "No data found" {
		t.Errorf("Unexpected empty response: %v", body)
	}
}
