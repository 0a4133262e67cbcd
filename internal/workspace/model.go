package workspace

import "time"

// Workspace is the tenant boundary. Every other entity belongs to
// exactly one workspace and all queries are filtered by workspace id.
type Workspace struct {
	ID             string
	Name           string
	JobNumberFloor int
	CreatedAt      time.Time
}

// DefaultJobNumberFloor is the starting offset for job numbers in a
// new workspace: the first order gets floor+1.
const DefaultJobNumberFloor = 1000
