package incidents

import "strings"

// Error keys used in the validation response, keyed the way the API reports
// them to clients.
const (
	FieldType        = "type"
	FieldStartDate   = "incidentStartDate"
	FieldDescription = "description"
	FieldDateOrder   = "date"
)

// Validation messages.
const (
	msgTypeRequired        = "Incident type is required"
	msgStartDateRequired   = "Start date is required"
	msgDescriptionRequired = "Description is required"
	msgEndBeforeStart      = "End date cannot be before start date"
)

// Violations maps a field key to its validation message. All violations for a
// request accumulate into a single map; the request is rejected with the
// complete set, not just the first.
type Violations map[string]string

// ValidateCreate checks a create request. All required fields must be
// present, and if both dates are given the end date must not precede the
// start date.
func ValidateCreate(in CreateIncidentInput) Violations {
	v := Violations{}

	if strings.TrimSpace(in.Type) == "" {
		v[FieldType] = msgTypeRequired
	}
	if in.IncidentStartDate == nil {
		v[FieldStartDate] = msgStartDateRequired
	}
	if strings.TrimSpace(in.Description) == "" {
		v[FieldDescription] = msgDescriptionRequired
	}
	if in.IncidentStartDate != nil && in.IncidentEndDate != nil &&
		in.IncidentEndDate.Before(in.IncidentStartDate.Time) {
		v[FieldDateOrder] = msgEndBeforeStart
	}

	return v
}

// ValidateUpdate checks an update request. Only fields present in the request
// are validated: a field that is absent stays untouched on the record, but a
// field that is present must pass the same checks as on create. The date
// ordering check applies when the request carries both dates.
func ValidateUpdate(in UpdateIncidentInput) Violations {
	v := Violations{}

	if in.Type != nil && strings.TrimSpace(*in.Type) == "" {
		v[FieldType] = msgTypeRequired
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		v[FieldDescription] = msgDescriptionRequired
	}
	if in.IncidentStartDate != nil && in.IncidentEndDate != nil &&
		in.IncidentEndDate.Before(in.IncidentStartDate.Time) {
		v[FieldDateOrder] = msgEndBeforeStart
	}

	return v
}
