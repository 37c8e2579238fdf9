package grouping

import (
	"fmt"
	"strconv"
	"strings"
)

const unknownYear = "unknown"

// ResolveSeriesName returns the identity an item is grouped under.
// Confirmed catalog data wins over parsed fields, which win over file name heuristics.
func ResolveSeriesName(item Item) string {
	var name string
	switch item.Origin {
	case OriginPreview:
		name = strings.TrimSpace(item.SeriesNameHint)
		if name == "" {
			name = SeriesFromDisplayName(item.RawName)
		}
	default:
		name = resolveScanName(item)
	}

	if strings.TrimSpace(name) == "" {
		return UnknownSeries
	}

	return name
}

func resolveScanName(item Item) string {
	if item.Catalog != nil {
		switch item.Kind {
		case MediaKindTVShow:
			if name := firstNonBlank(item.Catalog.Name, item.Catalog.Title, item.ParsedTitle); name != "" {
				return name
			}
		case MediaKindMovie:
			if title := firstNonBlank(item.Catalog.Title, item.Catalog.Name, item.ParsedTitle); title != "" {
				return movieIdentity(title, catalogYear(item.Catalog.ReleaseDate, item.ParsedYear))
			}
		}
	}

	title := strings.TrimSpace(item.ParsedTitle)
	if title != "" {
		switch item.Kind {
		case MediaKindTVShow:
			return title
		case MediaKindMovie:
			return movieIdentity(title, yearString(item.ParsedYear))
		}
	}

	return SeriesFromFileName(item.RawName)
}

// movieIdentity keeps remakes apart, e.g. "Dune (1984)" and "Dune (2021)"
func movieIdentity(title, year string) string {
	return fmt.Sprintf("%s (%s)", title, year)
}

// catalogYear takes the year from a release date like 2021-09-15, else the parsed year
func catalogYear(releaseDate string, parsedYear int) string {
	releaseDate = strings.TrimSpace(releaseDate)
	if len(releaseDate) >= 4 && isDigits(releaseDate[:4]) {
		return releaseDate[:4]
	}

	return yearString(parsedYear)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func yearString(year int) string {
	if year <= 0 {
		return unknownYear
	}
	return strconv.Itoa(year)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
