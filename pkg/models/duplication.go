package models

// DuplicateFragment is a repeated 3-line window of significant code.
type DuplicateFragment struct {
	// Preview holds the first 60 characters of the fragment's first line.
	Preview string `json:"preview"`
	// Count is the total number of occurrences, original included.
	Count int `json:"count"`
}

// DuplicationReport summarizes repeated fragments within a single file.
type DuplicationReport struct {
	// Percentage is the estimated share of significant lines that are
	// duplicated, clamped to [0, 100].
	Percentage float64 `json:"percentage"`
	// Fragments is the number of distinct duplicated fragments.
	Fragments int `json:"fragments"`
	// Samples holds up to 5 fragments in first-discovery order.
	Samples []DuplicateFragment `json:"samples"`
}
