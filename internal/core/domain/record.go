package domain

// UnitRecord is one build unit's declared references, as produced by the
// scanner collaborator. Identifiers carry the unit's declared logical name
// when present, else a fallback derived from the file name.
type UnitRecord struct {
	Identifier  string
	ProjectRefs []string
	PackageRefs []string
}
