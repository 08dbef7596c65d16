package models

// Priority is the closed set of issue priorities. The values are a contract
// with the UI and are not derived here.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank maps a priority to its sortable weight. Higher means more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// CategoryType is the workflow stage a category represents.
type CategoryType string

const (
	CategoryTodo       CategoryType = "TODO"
	CategoryInProgress CategoryType = "IN_PROGRESS"
	CategoryDone       CategoryType = "DONE"
)

func (c CategoryType) Valid() bool {
	switch c {
	case CategoryTodo, CategoryInProgress, CategoryDone:
		return true
	}
	return false
}

// Sort selects the primary key for issue ordering within a category.
type Sort string

const (
	SortByDate     Sort = "date"
	SortByPriority Sort = "priority"
)

func (s Sort) Valid() bool {
	return s == SortByDate || s == SortByPriority
}
