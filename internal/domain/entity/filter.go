package entity

// FilterKind enumerates the filter expression variants.
type FilterKind int

const (
	FilterRegion FilterKind = iota + 1
	FilterExcludeRecordTypes
	FilterIncludeRecordTypes
	FilterAnd
)

// Filter is a typed Cost Explorer filter expression:
// Region(set) | ExcludeRecordTypes(set) | IncludeRecordTypes(set) | And(list).
type Filter struct {
	Kind    FilterKind
	Values  []string
	Clauses []Filter
}

// BuildFilter combines the optional clauses in a fixed order (region, exclude, include).
// It returns nil when no clause is present and the bare clause when only one is.
func BuildFilter(regions, excludeTypes, includeTypes []string) *Filter {
	var clauses []Filter
	if len(regions) > 0 {
		clauses = append(clauses, Filter{Kind: FilterRegion, Values: regions})
	}
	if len(excludeTypes) > 0 {
		clauses = append(clauses, Filter{Kind: FilterExcludeRecordTypes, Values: excludeTypes})
	}
	if len(includeTypes) > 0 {
		clauses = append(clauses, Filter{Kind: FilterIncludeRecordTypes, Values: includeTypes})
	}

	switch len(clauses) {
	case 0:
		return nil
	case 1:
		return &clauses[0]
	default:
		return &Filter{Kind: FilterAnd, Clauses: clauses}
	}
}
