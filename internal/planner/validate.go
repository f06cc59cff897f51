package planner

import (
	"fmt"
	"strconv"
	"strings"

	"quicktask/internal/model"
)

// Validate checks one raw task record and returns it normalized. The first broken
// rule is reported as a *ValidationError; no partially filled draft is returned.
func Validate(raw map[string]any) (model.TaskDraft, error) {
	return validateAt(0, raw)
}

// ValidateBatch validates every record and fails as a whole when any record is invalid.
func ValidateBatch(raws []any) ([]model.TaskDraft, error) {
	var (
		drafts = make([]model.TaskDraft, 0, len(raws))
		errs   []*ValidationError
	)

	for i, r := range raws {
		m, ok := r.(map[string]any)
		if !ok {
			errs = append(errs, &ValidationError{Index: i, Field: FieldRecord})
			continue
		}
		draft, err := validateAt(i, m)
		if err != nil {
			errs = append(errs, err.(*ValidationError))
			continue
		}
		drafts = append(drafts, draft)
	}

	if len(errs) > 0 {
		return nil, &BatchValidationError{Errors: errs}
	}
	return drafts, nil
}

// ValidateDraft applies the same name, priority and status rules to a typed draft.
func ValidateDraft(d model.TaskDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: FieldName}
	}
	if !d.Priority.IsValid() {
		return &ValidationError{Task: d.Name, Field: FieldPriority}
	}
	if !d.Status.IsValid() {
		return &ValidationError{Task: d.Name, Field: FieldStatus}
	}
	return nil
}

func validateAt(index int, raw map[string]any) (model.TaskDraft, error) {
	rawName, ok := raw["name"].(string)
	name := strings.TrimSpace(rawName)
	if !ok || name == "" {
		return model.TaskDraft{}, &ValidationError{Index: index, Field: FieldName}
	}

	priority, _ := raw["priority"].(string)
	if !model.Priority(priority).IsValid() {
		return model.TaskDraft{}, &ValidationError{Index: index, Task: rawName, Field: FieldPriority}
	}

	status, _ := raw["status"].(string)
	if !model.Status(status).IsValid() {
		return model.TaskDraft{}, &ValidationError{Index: index, Task: rawName, Field: FieldStatus}
	}

	return model.TaskDraft{
		Name:          name,
		Description:   stringField(raw, "description"),
		Priority:      model.Priority(priority),
		Status:        model.Status(status),
		DueDate:       stringField(raw, "due_date"),
		EstimatedTime: numberField(raw, "estimated_time"),
		Category:      stringField(raw, "category"),
	}, nil
}

// stringField stringifies a truthy value. Empty strings, zero, false and nil are omitted.
func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func numberField(raw map[string]any, key string) *float64 {
	var f float64
	switch v := raw[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	return &f
}
