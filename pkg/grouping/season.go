package grouping

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	specialsSeason = 0

	specialsDisplayName      = "Specials"
	unknownSeasonDisplayName = "Other / Unknown Season"
)

type seasonBucket struct {
	number  int
	items   []Item
	matched map[int]struct{}
	total   int
}

// buildSeasons splits the sorted items of a tv series into seasons
func buildSeasons(seriesName string, items []Item) []SeasonGroup {
	buckets := newOrderedMap[int, seasonBucket]()
	for _, item := range items {
		number := seasonKey(item.Season)
		b, _ := buckets.getOrInsert(number, func() seasonBucket {
			return seasonBucket{number: number, matched: make(map[int]struct{})}
		})

		b.items = append(b.items, item)
		if item.Episode != NoEpisode {
			b.matched[item.Episode] = struct{}{}
		}
		if b.total == 0 && item.SeasonTotalEpisodes > 0 {
			b.total = item.SeasonTotalEpisodes
		}
	}

	ordered := buckets.valuesInOrder()
	slices.SortFunc(ordered, func(a, b seasonBucket) int {
		return compareSeasons(a.number, b.number)
	})

	seasons := make([]SeasonGroup, 0, len(ordered))
	for _, b := range ordered {
		matched := len(b.matched)
		missing := 0
		if b.total > 0 {
			missing = max(b.total-matched, 0)
		}

		seasons = append(seasons, SeasonGroup{
			SeasonNumber:  b.number,
			DisplayName:   SeasonDisplayName(b.number),
			Entries:       insertPlaceholders(seriesName, b.number, b.items, b.total),
			TotalEpisodes: b.total,
			MatchedCount:  matched,
			MissingCount:  missing,
			IsComplete:    b.total > 0 && missing == 0,
		})
	}

	return seasons
}

// compareSeasons puts specials first and the unknown season last
func compareSeasons(a, b int) int {
	switch {
	case a == b:
		return 0
	case a == NoSeason:
		return 1
	case b == NoSeason:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}

func seasonKey(season int) int {
	if season < 0 {
		return NoSeason
	}
	return season
}

// SeasonDisplayName is the heading shown for a season
func SeasonDisplayName(season int) string {
	switch {
	case season == specialsSeason:
		return specialsDisplayName
	case season < 0:
		return unknownSeasonDisplayName
	default:
		return fmt.Sprintf("Season %d", season)
	}
}
