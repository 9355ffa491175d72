package grid

import (
	"path/filepath"
	"regexp"
	"strings"
)

// regionPattern matches an RTO region code: two letters followed by exactly
// two digits, e.g. MH31. Matching runs over the upper-cased file stem so
// "mh31_oct.xlsx" and "Report-MH31.xlsx" both resolve to MH31.
var regionPattern = regexp.MustCompile(`[A-Z]{2}[0-9]{2}`)

// ExtractRegion derives the region code from a report file name. The first
// match in the upper-cased stem wins. ok is false when the name carries no
// region token; callers skip such files and report them as unparsed rather
// than failing the load.
func ExtractRegion(fileName string) (region string, ok bool) {
	stem := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	m := regionPattern.FindString(strings.ToUpper(stem))
	if m == "" {
		return "", false
	}
	return m, true
}
