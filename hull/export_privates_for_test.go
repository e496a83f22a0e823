package hull

// Test-only aliases for private helpers, so the _test package can cover
// parsing without shelling out to a real qconvex binary.

// ParseIndexOutputForTest exposes parseIndexOutput to hull_test.
var ParseIndexOutputForTest = parseIndexOutput
