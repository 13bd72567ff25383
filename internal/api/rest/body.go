package rest

import (
	"encoding/json"
	"net/http"
	"strings"
)

// decodeDoc reads the request body as a loose JSON object so the declarative
// validators can inspect exactly what the client sent, unknown keys included.
func decodeDoc(r *http.Request) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}

// decodeInto reads the request body into a typed struct.
func decodeInto(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func docString(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return strings.TrimSpace(s)
}

func docInt(doc map[string]interface{}, key string) int {
	f, _ := doc[key].(float64)
	return int(f)
}

func docStringSlice(doc map[string]interface{}, key string) []string {
	raw, _ := doc[key].([]interface{})
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// structToDoc flattens a typed value into a loose JSON object.
func structToDoc(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string]interface{}{}
	}
	return doc
}

// overlayDoc merges src's JSON fields into dst, src winning on conflicts.
func overlayDoc(dst map[string]interface{}, src interface{}) {
	for k, v := range structToDoc(src) {
		dst[k] = v
	}
}

// remapDoc unmarshals a loose document into a typed struct after validation.
func remapDoc(doc map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
