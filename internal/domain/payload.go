package domain

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// EventPayload is a validated submit request.
type EventPayload struct {
	Fullname    string
	Description string
	Organiser   string
	EventDate   json.Number
}

// ParseEventPayload checks a raw submit body and returns the payload it carries.
// fullname, description and organiser must be JSON strings (empty strings are accepted);
// event_date must be a JSON number; its text is kept verbatim, so fractions, exponents
// and integers past 2^53 are preserved. Every problem found is reported in a single
// *ValidationError. Other keys are ignored.
func ParseEventPayload(body []byte) (EventPayload, error) {
	if !gjson.ValidBytes(body) {
		return EventPayload{}, NewValidationError("request body must be valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return EventPayload{}, NewValidationError("request body must be a JSON object")
	}

	var (
		p        EventPayload
		problems []string
	)
	stringField := func(name string) string {
		r := root.Get(name)
		switch {
		case !r.Exists():
			problems = append(problems, name+" is required")
		case r.Type != gjson.String:
			problems = append(problems, name+" must be a string")
		}
		return r.Str
	}
	p.Fullname = stringField("fullname")
	p.Description = stringField("description")
	p.Organiser = stringField("organiser")

	date := root.Get("event_date")
	switch {
	case !date.Exists():
		problems = append(problems, "event_date is required")
	case date.Type != gjson.Number:
		problems = append(problems, "event_date must be a number")
	default:
		p.EventDate = json.Number(date.Raw)
	}

	if len(problems) > 0 {
		return EventPayload{}, NewValidationError(problems...)
	}
	return p, nil
}
