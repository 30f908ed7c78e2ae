package entities

import "strings"

// PackageMetadata is the packaging metadata found at one revision of a checkout.
type PackageMetadata struct {
	SetupPy   *string           // Raw setup.py, nil when absent
	SetupCfg  *string           // Raw setup.cfg, nil when absent
	Pyproject *PyprojectProject // [project] table of pyproject.toml, nil when absent or malformed
}

// PyprojectProject holds the fields of the pyproject.toml [project] table that declare support.
type PyprojectProject struct {
	Classifiers  []string
	Dependencies []string
}

// LegacyDeclares returns true if setup.py or setup.cfg contains marker.
func (m PackageMetadata) LegacyDeclares(marker string) bool {
	for _, content := range []*string{m.SetupPy, m.SetupCfg} {
		if content != nil && strings.Contains(*content, marker) {
			return true
		}
	}
	return false
}

// PyprojectDeclares returns true if a pyproject.toml classifier contains marker or,
// when pin is set, a dependency contains pin.
func (m PackageMetadata) PyprojectDeclares(marker, pin string) bool {
	if m.Pyproject == nil {
		return false
	}
	if containsAny(m.Pyproject.Classifiers, marker) {
		return true
	}
	return pin != "" && containsAny(m.Pyproject.Dependencies, pin)
}

func containsAny(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
