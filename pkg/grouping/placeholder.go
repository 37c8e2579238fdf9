package grouping

import (
	"fmt"

	"github.com/google/uuid"
)

var missingEpisodeNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("mediagroup.missing-episode"))

// insertPlaceholders interleaves missing episode entries with the season's items, which must already be
// sorted by episode. Items without an episode number pass through and never move the expected episode.
// When total is known, episodes after the last one found up to total are reported as missing too.
func insertPlaceholders(seriesName string, season int, items []Item, total int) []Entry {
	entries := make([]Entry, 0, len(items)+1)

	expected := 1
	last := 0
	for _, item := range items {
		if item.Episode == NoEpisode {
			entries = append(entries, fileEntry(item))
			continue
		}

		if item.Episode > expected {
			entries = append(entries, missingEntry(newMissingEpisode(seriesName, season, expected, item.Episode-1)))
		}

		entries = append(entries, fileEntry(item))
		expected = item.Episode + 1
		last = max(last, item.Episode)
	}

	// with no numbered episodes last stays 0 and the whole season is reported
	if total > 0 && last < total {
		entries = append(entries, missingEntry(newMissingEpisode(seriesName, season, last+1, total)))
	}

	return entries
}

func newMissingEpisode(seriesName string, season, start, end int) MissingEpisode {
	count := end - start + 1

	return MissingEpisode{
		SyntheticID:       missingEpisodeID(season, start, end),
		SeasonNumber:      season,
		StartEpisode:      start,
		EndEpisode:        end,
		Count:             count,
		SeriesName:        seriesName,
		EpisodeRangeLabel: episodeRangeLabel(start, end, count),
		TheoreticalName:   fmt.Sprintf("%s - S%02dE%02d", seriesName, season, start),
	}
}

func episodeRangeLabel(start, end, count int) string {
	if count == 1 {
		return fmt.Sprintf("Episode %d", start)
	}
	return fmt.Sprintf("Episodes %d-%d (%d episodes)", start, end, count)
}

// missingEpisodeID is stable for a given range so callers can diff lists between refreshes
func missingEpisodeID(season, start, end int) string {
	name := fmt.Sprintf("missing-%d-%d-%d", season, start, end)
	return uuid.NewSHA1(missingEpisodeNamespace, []byte(name)).String()
}
