package application

import "tasksync/internal/domain"

// Re-export entity types for use by adapters
type (
	EntityKind = domain.EntityKind
	Entity     = domain.Entity
	TaskType   = domain.TaskType
)

const (
	EntityTask    = domain.EntityTask
	EntityProject = domain.EntityProject
	EntityArea    = domain.EntityArea
)

// ParseEntityKind parses an entity kind name
func ParseEntityKind(s string) (EntityKind, error) {
	return domain.ParseEntityKind(s)
}
