package entities

// Dependency is a third-party package found in the dependency inventory.
type Dependency struct {
	Name string // Bare package name, without version pin or extras
}

// VCSKind classifies the host a repository link points to.
type VCSKind string

const (
	VCSGit         VCSKind = "git"
	VCSUnsupported VCSKind = "unsupported"
)

// RepositoryRef is a dependency's resolved upstream repository.
type RepositoryRef struct {
	Dependency string
	URL        string
	VCS        VCSKind
	Failure    string // Resolution sentinel when the link could not be resolved
}

// Resolvable returns true when the reference can be handed to the checkout manager.
func (r RepositoryRef) Resolvable() bool {
	return r.Failure == "" && r.VCS == VCSGit
}
