package gogit

// HighestVersion exports highestVersion for testing.
var HighestVersion = highestVersion //nolint:gochecknoglobals // test export
