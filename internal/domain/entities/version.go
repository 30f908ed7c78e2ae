package entities

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/mod/semver"
)

// SortVersions sorts tag names ascending by version. An optional "v" prefix is ignored, so
// "v2.0" and "2.1rc1" share one timeline.
func SortVersions(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		return CompareVersions(tags[i], tags[j]) < 0
	})
}

// CompareVersions returns -1, 0 or 1 comparing two tag names by version. Names are split into
// numeric and non-numeric chunks and compared chunk by chunk, numeric chunks by value. After the
// first chunk, a pre-release chunk such as "rc1" or "-beta" sorts before the end of the name, so
// "2.1rc1" < "2.1" < "2.1.1". Spellings of the same version are ordered by semver validity, then
// by name, which makes the order total.
func CompareVersions(a, b string) int {
	if c := compareChunks(splitChunks(stripPrefix(a)), splitChunks(stripPrefix(b))); c != 0 {
		return c
	}
	if c := semver.Compare(canonicalVersion(a), canonicalVersion(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// stripPrefix drops a "v" or "V" directly followed by a digit.
func stripPrefix(tag string) string {
	if len(tag) > 1 && (tag[0] == 'v' || tag[0] == 'V') && isDigit(tag[1]) {
		return tag[1:]
	}
	return tag
}

func canonicalVersion(tag string) string {
	return "v" + stripPrefix(tag)
}

func compareChunks(ca, cb []string) int {
	for i := 0; ; i++ {
		endA, endB := i >= len(ca), i >= len(cb)
		switch {
		case endA && endB:
			return 0
		case endA:
			return -compareEnd(cb[i], i)
		case endB:
			return compareEnd(ca[i], i)
		}
		if c := compareChunk(ca[i], cb[i], i); c != 0 {
			return c
		}
	}
}

// compareEnd compares chunk with the end of a shorter name at the same position.
func compareEnd(chunk string, pos int) int {
	if pos > 0 && isPreRelease(chunk) {
		return -1
	}
	return 1
}

// compareChunk orders pre-release chunks first after the leading position, then numeric chunks
// by value, then everything else by byte order. Numeric and non-numeric chunks only meet at the
// leading position, where the first byte decides between them.
func compareChunk(a, b string, pos int) int {
	if pos > 0 {
		preA, preB := isPreRelease(a), isPreRelease(b)
		switch {
		case preA && !preB:
			return -1
		case !preA && preB:
			return 1
		}
	}
	if isDigit(a[0]) && isDigit(b[0]) {
		return compareNumeric(a, b)
	}
	return strings.Compare(a, b)
}

// compareNumeric compares digit strings by value without overflowing.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// isPreRelease reports chunks like "rc", "a", ".dev", or "-beta." that mark a version before
// its release. "post" releases come after.
func isPreRelease(chunk string) bool {
	if isDigit(chunk[0]) {
		return false
	}
	if strings.ContainsRune("-_~", rune(chunk[0])) {
		return !strings.HasPrefix(strings.ToLower(strings.TrimLeft(chunk, "-_~.")), "post")
	}
	word := strings.ToLower(strings.TrimLeft(chunk, "."))
	return word != "" && unicode.IsLetter(rune(word[0])) && !strings.HasPrefix(word, "post")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// splitChunks splits "1.10rc2" into ["1", ".", "10", "rc", "2"].
func splitChunks(s string) []string {
	var chunks []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[i-1]) {
			chunks = append(chunks, s[start:i])
			start = i
		}
	}
	return chunks
}
