package repositories

import "github.com/rios0rios0/upgradescout/internal/domain/entities"

// MetadataRepository reads the packaging metadata present in a checkout directory.
// Missing or malformed files are reported as absent, never as errors.
type MetadataRepository interface {
	Read(dir string) entities.PackageMetadata
}
