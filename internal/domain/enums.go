package domain

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Weight returns the numeric planning weight for a priority (Critical=4 .. Low=1).
func (p Priority) Weight() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 2
}

// Important reports whether the priority counts as "important" on the
// Eisenhower matrix.
func (p Priority) Important() bool {
	return p == PriorityCritical || p == PriorityHigh
}

type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryStudy    Category = "Study"
	CategoryHealth   Category = "Health"
	CategoryFinance  Category = "Finance"
	CategoryErrands  Category = "Errands"
	CategoryCreative Category = "Creative"
	CategoryLearning Category = "Learning"
	CategoryPlanning Category = "Planning"
	CategoryGeneral  Category = "General"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth,
	CategoryFinance, CategoryErrands, CategoryCreative, CategoryLearning,
	CategoryPlanning, CategoryGeneral,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"Work": true, "Personal": true, "Study": true, "Health": true,
	"Finance": true, "Errands": true, "Creative": true, "Learning": true,
	"Planning": true, "General": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"Critical": true, "High": true, "Medium": true, "Low": true,
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

type MatrixQuadrant string

const (
	QuadrantUrgentImportant    MatrixQuadrant = "Urgent & Important"
	QuadrantImportantNotUrgent MatrixQuadrant = "Important, Not Urgent"
	QuadrantUrgentNotImportant MatrixQuadrant = "Urgent, Not Important"
	QuadrantNeither            MatrixQuadrant = "Neither"
)

// Quadrants lists the four matrix quadrants in display order.
var Quadrants = []MatrixQuadrant{
	QuadrantUrgentImportant,
	QuadrantImportantNotUrgent,
	QuadrantUrgentNotImportant,
	QuadrantNeither,
}

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "Low"
	EnergyMedium EnergyLevel = "Medium"
	EnergyHigh   EnergyLevel = "High"
)

// ValidEnergyLevels is the canonical set of accepted energy level strings.
var ValidEnergyLevels = map[string]bool{
	"Low": true, "Medium": true, "High": true,
}
