package library

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var videoExtensions = []string{".mp4", ".avi", ".mkv", ".m4v", ".iso", ".ts", ".m2ts", ".mov", ".wmv", ".webm", ".rmvb"}

// seasonDirRule recognizes a season folder name. Number returns the season for a match.
type seasonDirRule struct {
	Name    string
	Pattern *regexp.Regexp
	Number  func(matches []string) int
}

var seasonDirRules = []seasonDirRule{
	{Name: "standard", Pattern: regexp.MustCompile(`(?i)^season[\s._-]*(\d+)$`), Number: firstGroup},
	{Name: "short", Pattern: regexp.MustCompile(`(?i)^s(\d+)$`), Number: firstGroup},
	{Name: "chinese", Pattern: regexp.MustCompile(`^第\s*(\d+|[一二三四五六七八九十]+)\s*季$`), Number: func(m []string) int { return parseChineseNumber(m[1]) }},
	{Name: "specials", Pattern: regexp.MustCompile(`(?i)^specials?$`), Number: func([]string) int { return 0 }},
}

// episodeRules are tried in order; the first capture group is the episode number
var episodeRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)s\d{1,2}[\s._-]?e(\d{1,3})`),
	regexp.MustCompile(`(?i)(?:^|[^[:alnum:]])\d{1,2}x(\d{1,3})(?:[^[:alnum:]]|$)`),
	regexp.MustCompile(`(?i)(?:^|[^[:alnum:]])ep(?:isode)?[\s._-]*(\d{1,3})(?:[^[:alnum:]]|$)`),
	regexp.MustCompile(`(?i)(?:^|[^[:alnum:]])e(\d{1,3})(?:[^[:alnum:]]|$)`),
	regexp.MustCompile(`第\s*(\d+)\s*集`),
	regexp.MustCompile(`(?:^|\s|[._])-\s*(\d{1,3})\s*-`),
}

// seasonRules pull a season out of a file name when the directory doesn't say
var seasonRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)s(\d{1,2})[\s._-]?e\d{1,3}`),
	regexp.MustCompile(`(?i)(?:^|[^[:alnum:]])(\d{1,2})x\d{1,3}(?:[^[:alnum:]]|$)`),
	regexp.MustCompile(`第\s*(\d+)\s*季`),
}

var (
	yearInParens  = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)`)
	yearInRelease = regexp.MustCompile(`^(.+?)[\s._]+((?:19|20)\d{2})(?:[\s._]|$)`)
)

func isVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range videoExtensions {
		if ext == e {
			return true
		}
	}

	return false
}

// parseSeasonDirectory returns the season number for folders like "Season 01", "S2", "第三季" or "Specials"
func parseSeasonDirectory(name string) (int, bool) {
	trimmed := strings.TrimSpace(name)
	for _, rule := range seasonDirRules {
		m := rule.Pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		return rule.Number(m), true
	}

	return 0, false
}

// extractEpisodeNumber returns 0 when the name has no usable episode number
func extractEpisodeNumber(name string) int {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, re := range episodeRules {
		m := re.FindStringSubmatch(base)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		return n
	}

	return 0
}

func extractSeasonNumber(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, re := range seasonRules {
		m := re.FindStringSubmatch(base)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n, true
	}

	return 0, false
}

// splitTitleYear splits "Dune (2021)" or "Dune.2021.1080p" into title and year
func splitTitleYear(name string) (string, int) {
	name = strings.TrimSpace(name)
	for _, re := range []*regexp.Regexp{yearInParens, yearInRelease} {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[2])
		return cleanTitle(m[1]), year
	}

	return cleanTitle(name), 0
}

func cleanTitle(s string) string {
	if !strings.Contains(s, " ") {
		s = strings.NewReplacer(".", " ", "_", " ").Replace(s)
	}
	return strings.TrimSpace(strings.Trim(sanitizeName(s), "-"))
}

func sanitizeName(name string) string {
	return strings.Trim(strings.TrimSpace(name), "'")
}

var chineseDigits = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// parseChineseNumber handles arabic digits and chinese numerals up to 99
func parseChineseNumber(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	runes := []rune(s)
	for i, r := range runes {
		if r != '十' {
			continue
		}
		tens := 1
		if i > 0 {
			tens = chineseDigits[runes[i-1]]
		}
		ones := 0
		if i+1 < len(runes) {
			ones = chineseDigits[runes[i+1]]
		}
		return tens*10 + ones
	}

	if len(runes) == 1 {
		return chineseDigits[runes[0]]
	}

	return 0
}

func firstGroup(m []string) int {
	n, _ := strconv.Atoi(m[1])
	return n
}
