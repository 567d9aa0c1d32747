package models

// SmellType identifies the kind of code smell detected.
type SmellType string

const (
	SmellLongLine    SmellType = "long_line"
	SmellTodo        SmellType = "todo"
	SmellDeepNesting SmellType = "deep_nesting"
	SmellDebug       SmellType = "debug"
	SmellMagicNumber SmellType = "magic_number"
	SmellEmptyCatch  SmellType = "empty_catch"
)

// Severity represents the severity level of a code smell.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// CodeSmell represents a single maintainability finding.
type CodeSmell struct {
	Type     SmellType `json:"type"`
	Line     int       `json:"line"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}
