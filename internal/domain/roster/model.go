package roster

// EmployeeID is an opaque, case-sensitive employee identifier.
// Two IDs are the same employee iff they are byte-equal.
type EmployeeID string

// Roster is the ordered list of known employees. Its order defines
// iteration order for every report.
type Roster []EmployeeID

// Contains reports whether id is a roster member.
func (r Roster) Contains(id EmployeeID) bool {
	for _, e := range r {
		if e == id {
			return true
		}
	}
	return false
}
