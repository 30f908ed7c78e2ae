package commands

// ClassifySkip exports classifySkip for testing.
var ClassifySkip = classifySkip //nolint:gochecknoglobals // test export
