package domain

// BuiltinTemplate returns the default markdown content for a new entity.
// Template files in the vault take precedence; this is the fallback and
// the content installed by the templates command. The {{title}} and
// {{date}} placeholders are substituted at creation time.
func BuiltinTemplate(kind EntityKind) string {
	switch kind {
	case EntityProject:
		return `---
Title: {{title}}
Type: Project
Areas: []
Done: false
Status:
tags:
  - project
---

## Goal

## Tasks
`
	case EntityArea:
		return `---
Title: {{title}}
Type: Area
tags:
  - area
---

## Notes
`
	default:
		return `---
Title: {{title}}
Type: Task
Category:
Priority:
Areas: []
Project:
Done: false
Status:
Parent task:
Sub-tasks: []
tags:
  - task
---

## Notes
`
	}
}

// ParentTaskTemplate is the built-in template for tasks that group
// sub-tasks. Identical to the task template except for the pre-seeded
// Sub-tasks section.
func ParentTaskTemplate() string {
	return `---
Title: {{title}}
Type: Task
Category:
Priority:
Areas: []
Project:
Done: false
Status:
Parent task:
Sub-tasks: []
tags:
  - task
---

## Sub-tasks

- [ ]
`
}
