package inventory

// ParseInventory exports parseInventory for testing.
var ParseInventory = parseInventory //nolint:gochecknoglobals // test export

// ParseListLiteral exports parseListLiteral for testing.
var ParseListLiteral = parseListLiteral //nolint:gochecknoglobals // test export

// PackageName exports packageName for testing.
var PackageName = packageName //nolint:gochecknoglobals // test export
