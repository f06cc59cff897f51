package model

import (
	"strings"
	"time"
)

// Priority is the casing used by the planning pipeline.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IsValid reports whether p is one of High, Medium, Low.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DBPriority is the casing stored in the tasks table.
type DBPriority string

const (
	DBPriorityHigh   DBPriority = "high"
	DBPriorityMedium DBPriority = "medium"
	DBPriorityLow    DBPriority = "low"
)

// ToDBPriority maps a pipeline priority to its stored form. Unknown values map to medium.
func ToDBPriority(p Priority) DBPriority {
	switch p {
	case PriorityHigh:
		return DBPriorityHigh
	case PriorityLow:
		return DBPriorityLow
	default:
		return DBPriorityMedium
	}
}

// ParseDBPriority accepts a priority in either casing and returns its stored form.
func ParseDBPriority(s string) (DBPriority, bool) {
	switch p := DBPriority(strings.ToLower(strings.TrimSpace(s))); p {
	case DBPriorityHigh, DBPriorityMedium, DBPriorityLow:
		return p, true
	}
	return "", false
}

// Priority returns the pipeline casing of a stored priority.
func (p DBPriority) Priority() Priority {
	switch p {
	case DBPriorityHigh:
		return PriorityHigh
	case DBPriorityLow:
		return PriorityLow
	case DBPriorityMedium:
		return PriorityMedium
	}
	return ""
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in progress"
	StatusCompleted  Status = "completed"
)

// IsValid reports whether s is one of pending, in progress, completed.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskDraft is an AI-proposed or user-edited task that has not been saved yet.
type TaskDraft struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Priority      Priority `json:"priority" yaml:"priority"`
	Status        Status   `json:"status" yaml:"status"`
	DueDate       string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	EstimatedTime *float64 `json:"estimated_time,omitempty" yaml:"estimated_time,omitempty"`
	Category      string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// Task is a persisted row of the tasks table.
type Task struct {
	ID             string
	UserID         string
	Name           string
	Description    string
	Priority       DBPriority
	Status         Status
	DueDate        string
	EstimatedTime  *float64
	Category       string
	Source         string
	Prompt         string
	RegenerationID string
	CreatedAt      time.Time
}
