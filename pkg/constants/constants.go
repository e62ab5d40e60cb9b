// Package constants provides shared constants used throughout the gradeport
// codebase. This includes file permissions, parser limits, and the fixed
// header names of the import schema.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxFileSize is the largest input file the reader will accept, in bytes.
	// Both exports are per-section tables; anything larger is a wrong file.
	MaxFileSize = 32 << 20

	// MaxReportViolations caps how many violations a single validation
	// report prints before summarizing the remainder.
	MaxReportViolations = 100
)

// Import schema header names. The identity prefix of every output row uses
// these four columns in this order.
const (
	HeaderEmail        = "Email"
	HeaderFirstName    = "First Name"
	HeaderLastName     = "Last Name"
	HeaderUniqueUserID = "Unique User ID"
)

// Roster header names as exported by the LMS.
const (
	RosterHeaderEmail        = "Student Email"
	RosterHeaderFirstName    = "First Name"
	RosterHeaderLastName     = "Last Name"
	RosterHeaderUniqueUserID = "Unique User ID"
)

// Fixed roster column positions. The email and unique id columns must sit
// at these indices; the name columns may appear anywhere.
const (
	RosterEmailColumn        = 0
	RosterUniqueUserIDColumn = 3

	// RosterMinColumns is the minimum width of a well-formed roster row.
	RosterMinColumns = 4
)
