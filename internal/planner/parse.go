package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ParsedPlan holds a validated provider reply. Raw is the reply's JSON object exactly as
// the provider wrote it (compacted) and is what the API returns; Plan is its decoded form.
type ParsedPlan struct {
	Raw  json.RawMessage
	Plan TravelPlan
}

var errNoJSONObject = errors.New("no balanced JSON object found")

// ParsePlan turns a raw provider reply into a plan. It strips code fences, parses the
// remaining text as a JSON object and requires the "itinerary" and "locations" keys.
// It performs no I/O.
func ParsePlan(raw string) (*ParsedPlan, error) {
	cleaned := cleanJSONString(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty reply after cleanup")
	}
	if !strings.HasPrefix(cleaned, "{") {
		// Some replies wrap the object in a sentence; fall back to the first balanced object.
		if obj, err := extractJSONObject(cleaned); err == nil {
			cleaned = obj
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("invalid JSON in reply: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("reply is not a JSON object")
	}
	for _, key := range []string{"itinerary", "locations"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("reply is missing the %q key", key)
		}
	}

	var plan TravelPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("reply does not match the plan schema: %w", err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(cleaned)); err != nil {
		return nil, fmt.Errorf("invalid JSON in reply: %w", err)
	}
	return &ParsedPlan{Raw: compact.Bytes(), Plan: plan}, nil
}

// cleanJSONString removes markdown code fences if present (e.g. ```json ... ```).
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "```") {
		input = strings.TrimPrefix(input, "```")
		// Drop the language tag on the opening fence line, if any.
		if nl := strings.IndexByte(input, '\n'); nl >= 0 && !strings.ContainsAny(input[:nl], "{[") {
			input = input[nl+1:]
		} else {
			input = strings.TrimPrefix(strings.TrimPrefix(input, "json"), "JSON")
		}
	}
	input = strings.TrimSpace(input)
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// extractJSONObject returns the first balanced {...} span in s. Braces inside JSON
// strings are skipped.
func extractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], nil
				}
			}
		}
	}
	return "", errNoJSONObject
}
