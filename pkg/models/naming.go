package models

// NamingKind identifies what kind of identifier violated the convention.
type NamingKind string

const (
	NamingFunction NamingKind = "function"
	NamingMethod   NamingKind = "method"
	NamingVariable NamingKind = "variable"
)

// NamingIssue represents an identifier that does not follow the
// language's expected convention.
type NamingIssue struct {
	Kind     NamingKind `json:"kind"`
	Name     string     `json:"name"`
	Expected string     `json:"expected"`
	Line     int        `json:"line"`
}
