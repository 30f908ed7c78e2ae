package entities

// DefaultBranchSentinel is returned when the remote HEAD cannot be resolved.
const DefaultBranchSentinel = "No Default Branch"

// Workspace is an ephemeral checkout of one repository, owned by a single dependency.
// Only one revision is materialized at a time.
type Workspace struct {
	Dir string
	URL string
}
