// Package validate checks inbound JSON documents against declarative field
// rule tables. Each schema is a list of {field, checks}; the first violated
// constraint is reported as a FieldError naming the offending field. The
// engine never touches persistence or identity.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FieldError names the offending field and the violated constraint.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Check inspects one decoded JSON value and returns the violation message, or
// "" when the value passes.
type Check func(value interface{}) string

// Field is one row of a schema table.
type Field struct {
	Name     string
	Required bool
	Missing  string // message when Required and the value is absent or empty
	Checks   []Check
}

// Schema is a declarative rule table for one document shape.
type Schema struct {
	Fields []Field
	// Strict rejects fields outside the table (profile edit).
	Strict     bool
	UnknownFmt string // fmt string for the rejected field name
	// RequireAny fails an empty document (profile edit).
	RequireAny bool
	EmptyMsg   string
}

// Validate evaluates doc against the table in declaration order and returns
// the first violation as a *FieldError, or nil. It is total over its input:
// any JSON value shape yields a verdict, never a panic.
func (s *Schema) Validate(doc map[string]interface{}) error {
	if s.RequireAny && len(doc) == 0 {
		return &FieldError{Field: "", Message: s.EmptyMsg}
	}
	if s.Strict {
		allowed := make(map[string]bool, len(s.Fields))
		for _, f := range s.Fields {
			allowed[f.Name] = true
		}
		// Deterministic order for the unknown-field report.
		for _, f := range sortedKeys(doc) {
			if !allowed[f] {
				return &FieldError{Field: f, Message: fmt.Sprintf(s.UnknownFmt, f)}
			}
		}
	}
	for _, f := range s.Fields {
		value, present := doc[f.Name]
		if f.Required && (!present || isEmpty(value)) {
			return &FieldError{Field: f.Name, Message: f.Missing}
		}
		// Optional fields are checked whenever the key is present: an
		// explicit "" or 0 must fail its constraint, not slip through
		// as absent.
		if !present {
			continue
		}
		for _, check := range f.Checks {
			if msg := check(value); msg != "" {
				return &FieldError{Field: f.Name, Message: msg}
			}
		}
	}
	return nil
}

// isEmpty mirrors JS falsiness for the required-field test only: nil, "",
// 0 and false all count as missing.
func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

func sortedKeys(doc map[string]interface{}) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StringLen requires a string whose trimmed length is within [min, max].
// max <= 0 means unbounded.
func StringLen(min, max int, msg string) Check {
	return func(v interface{}) string {
		s, ok := v.(string)
		if !ok {
			return msg
		}
		n := len([]rune(strings.TrimSpace(s)))
		if n < min || (max > 0 && n > max) {
			return msg
		}
		return ""
	}
}

// Match requires a string matching re.
func Match(re *regexp.Regexp, msg string) Check {
	return func(v interface{}) string {
		s, ok := v.(string)
		if !ok || !re.MatchString(s) {
			return msg
		}
		return ""
	}
}

// NumberBetween requires a JSON number in [min, max].
func NumberBetween(min, max float64, msg string) Check {
	return func(v interface{}) string {
		n, ok := v.(float64)
		if !ok || n < min || n > max {
			return msg
		}
		return ""
	}
}

// StringList requires a non-empty array whose elements are strings of at
// least elemMin trimmed characters.
func StringList(elemMin int, emptyMsg, elemMsg string) Check {
	return func(v interface{}) string {
		list, ok := v.([]interface{})
		if !ok || len(list) == 0 {
			return emptyMsg
		}
		for _, e := range list {
			s, ok := e.(string)
			if !ok || len([]rune(strings.TrimSpace(s))) < elemMin {
				return elemMsg
			}
		}
		return ""
	}
}

// NumberPair requires a [min, max] two-number array. shapeMsg reports a
// malformed pair; boundMsg reports a pair outside [lo, hi].
func NumberPair(lo, hi float64, shapeMsg, boundMsg string) Check {
	return func(v interface{}) string {
		pair, ok := asNumberPair(v)
		if !ok {
			return shapeMsg
		}
		if pair[0] < lo || pair[1] > hi {
			return boundMsg
		}
		return ""
	}
}

// RequiredKeys requires an object containing every listed key. msgFmt receives
// the missing key.
func RequiredKeys(keys []string, typeMsg, msgFmt string) Check {
	return func(v interface{}) string {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return typeMsg
		}
		for _, k := range keys {
			if _, present := obj[k]; !present {
				return fmt.Sprintf(msgFmt, k)
			}
		}
		return ""
	}
}

func asNumberPair(v interface{}) ([2]float64, bool) {
	list, ok := v.([]interface{})
	if !ok || len(list) != 2 {
		return [2]float64{}, false
	}
	var pair [2]float64
	for i, e := range list {
		n, ok := e.(float64)
		if !ok {
			return [2]float64{}, false
		}
		pair[i] = n
	}
	return pair, true
}
