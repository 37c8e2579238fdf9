package grouping

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// stripRule removes an episode or season marker and everything after it. When the pattern has a capture
// group the cut is made where the group starts, so a separator matched before it stays in the prefix.
type stripRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// fileNameRules are tried in order against a raw file name; first match wins.
var fileNameRules = []stripRule{
	{Name: "season episode code", Pattern: regexp.MustCompile(`(?i)S\d{1,2}E\d{1,2}.*$`)},
	{Name: "localized episode numeral", Pattern: regexp.MustCompile(`第\s*\d+\s*[集季].*$`)},
	{Name: "season x episode", Pattern: regexp.MustCompile(`(?i)\d{1,2}x\d{1,2}.*$`)},
	{Name: "episode number", Pattern: regexp.MustCompile(`(?i)(?:^|[^\p{L}\d])(EP?\d+.*)$`)},
}

// displayNameRules match generated names like "Show - S01E02" where a separator precedes the marker
var displayNameRules = []stripRule{
	{Name: "season episode code", Pattern: regexp.MustCompile(`(?i)\s*-?\s*S\d{1,2}E\d{1,2}.*$`)},
	{Name: "localized episode numeral", Pattern: regexp.MustCompile(`\s*-?\s*第\s*\d+\s*[集季].*$`)},
	{Name: "season x episode", Pattern: regexp.MustCompile(`(?i)\s*-?\s*\d{1,2}x\d{1,2}.*$`)},
	{Name: "episode number", Pattern: regexp.MustCompile(`(?i)(?:^|[^\p{L}\d])(EP?\d+.*)$`)},
}

var mediaExtensions = []string{
	".mp4", ".avi", ".mkv", ".m4v", ".iso", ".ts", ".m2ts", ".mov", ".wmv", ".flv", ".webm", ".rmvb",
	".srt", ".ass", ".ssa", ".sub", ".nfo",
}

const nameSeparators = "._-–—"

// SeriesFromFileName guesses a series title from a file name by removing the first episode marker it finds
func SeriesFromFileName(name string) string {
	return stripFirstMarker(name, fileNameRules)
}

// SeriesFromDisplayName is SeriesFromFileName for generated names such as "Show - S01E02.mkv"
func SeriesFromDisplayName(name string) string {
	return stripFirstMarker(name, displayNameRules)
}

func stripFirstMarker(name string, rules []stripRule) string {
	base := trimMediaExtension(name)
	for _, rule := range rules {
		loc := rule.Pattern.FindStringSubmatchIndex(base)
		if loc == nil {
			continue
		}
		cut := loc[0]
		if len(loc) > 2 && loc[2] >= 0 {
			cut = loc[2]
		}
		base = base[:cut]
		break
	}

	cleaned := cleanSeriesName(base)
	if cleaned == "" {
		return UnknownSeries
	}

	return cleaned
}

// trimMediaExtension only drops known extensions so dotted release names keep their tokens
func trimMediaExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || !slices.Contains(mediaExtensions, strings.ToLower(ext)) {
		return name
	}

	return strings.TrimSuffix(name, ext)
}

func cleanSeriesName(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(nameSeparators, r)
	})

	// an opening bracket left dangling by the marker, as in "Show [1x05]"
	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(nameSeparators+"[(", r)
	})
}
