package gitcli

// SplitLines exports splitLines for testing.
var SplitLines = splitLines //nolint:gochecknoglobals // test export

// NewGitCLIRepositoryWithBinary creates a backend running the given binary.
func NewGitCLIRepositoryWithBinary(binary string) *GitCLIRepository {
	return &GitCLIRepository{binary: binary}
}
