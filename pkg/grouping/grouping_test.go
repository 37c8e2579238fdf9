package grouping

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func intPtr(i int) *int {
	return &i
}

func tvFile(title string, season, ep int) FileRecord {
	return FileRecord{
		ID:            title + episodeCode(season, ep),
		FilePath:      "/tv/" + title + "/" + title + " " + episodeCode(season, ep) + ".mkv",
		FileName:      title + " " + episodeCode(season, ep) + ".mkv",
		MediaType:     MediaKindTVShow,
		ParsedTitle:   title,
		ParsedSeason:  intPtr(season),
		ParsedEpisode: intPtr(ep),
	}
}

func episodeCode(season, ep int) string {
	return fmt.Sprintf("S%02dE%02d", season, ep)
}

func movieFile(title string, year int) FileRecord {
	return FileRecord{
		ID:          title,
		FilePath:    "/movies/" + title + ".mkv",
		FileName:    title + ".mkv",
		MediaType:   MediaKindMovie,
		ParsedTitle: title,
		ParsedYear:  intPtr(year),
	}
}

func seriesNames(groups []SeriesGroup) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.SeriesName
	}
	return names
}

func fileItems(seasons []SeasonGroup) []Item {
	var items []Item
	for _, s := range seasons {
		for _, e := range s.Entries {
			if e.Kind == EntryKindFile {
				items = append(items, *e.Item)
			}
		}
	}
	return items
}

func TestGrouper_Group(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input", func(t *testing.T) {
		groups := New().GroupFiles(ctx, nil)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)

		groups = New().GroupPreviews(ctx, []RenamePreview{})
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})

	t.Run("movies with the same title and different years", func(t *testing.T) {
		groups := New().GroupFiles(ctx, []FileRecord{movieFile("Dune", 2021), movieFile("Dune", 1984)})

		require.Len(t, groups, 2)
		assert.Equal(t, []string{"Dune (1984)", "Dune (2021)"}, seriesNames(groups))
		for _, g := range groups {
			assert.False(t, g.IsTVShow)
			assert.Nil(t, g.Seasons)
			assert.Len(t, g.Items, 1)
		}
	})

	t.Run("series names are unique and collated", func(t *testing.T) {
		files := []FileRecord{
			tvFile("gamma", 1, 1),
			tvFile("Beta", 1, 1),
			tvFile("alpha", 1, 2),
			tvFile("alpha", 1, 1),
			tvFile("Beta", 1, 2),
		}

		groups := New().GroupFiles(ctx, files)

		assert.Equal(t, []string{"alpha", "Beta", "gamma"}, seriesNames(groups))
		assert.Len(t, groups[0].Items, 2)
		assert.Len(t, groups[1].Items, 2)
		assert.Len(t, groups[2].Items, 1)
	})

	t.Run("items are ordered by season, episode and name", func(t *testing.T) {
		noSeason := FileRecord{FileName: "Show extra b.mkv", MediaType: MediaKindTVShow, ParsedTitle: "Show"}
		noSeasonToo := FileRecord{FileName: "Show extra a.mkv", MediaType: MediaKindTVShow, ParsedTitle: "Show"}
		files := []FileRecord{
			tvFile("Show", 2, 1),
			tvFile("Show", 1, 2),
			noSeason,
			tvFile("Show", 1, 1),
			noSeasonToo,
		}

		groups := New().GroupFiles(ctx, files)

		require.Len(t, groups, 1)
		names := make([]string, 0)
		for _, item := range groups[0].Items {
			names = append(names, item.RawName)
		}
		assert.Equal(t, []string{
			"Show extra a.mkv",
			"Show extra b.mkv",
			"Show S01E01.mkv",
			"Show S01E02.mkv",
			"Show S02E01.mkv",
		}, names)

		assert.Equal(t, []int{1, 2, NoSeason}, seasonNumbers(groups[0].Seasons))
	})

	t.Run("grouping does not depend on input order", func(t *testing.T) {
		files := []FileRecord{
			tvFile("Lost", 1, 3),
			movieFile("Heat", 1995),
			tvFile("Lost", 0, 1),
			tvFile("Lost", 1, 1),
			movieFile("Dune", 2021),
			tvFile("Severance", 2, 1),
			tvFile("Lost", 2, 2),
			{FileName: "mystery file.mkv", MediaType: MediaKindUnknown},
		}

		reversed := slices.Clone(files)
		slices.Reverse(reversed)
		rotated := append(slices.Clone(files[3:]), files[:3]...)

		want := New().GroupFiles(ctx, files)
		assert.Equal(t, want, New().GroupFiles(ctx, reversed))
		assert.Equal(t, want, New().GroupFiles(ctx, rotated))
	})

	t.Run("seasons partition the group items", func(t *testing.T) {
		files := []FileRecord{
			tvFile("Lost", 3, 1),
			tvFile("Lost", 1, 3),
			tvFile("Lost", 0, 1),
			tvFile("Lost", 1, 1),
			tvFile("Lost", 2, 2),
		}

		groups := New().GroupFiles(ctx, files)

		require.Len(t, groups, 1)
		g := groups[0]
		assert.True(t, g.IsTVShow)
		assert.Equal(t, g.Items, fileItems(g.Seasons))
		assert.Equal(t, []int{0, 1, 2, 3}, seasonNumbers(g.Seasons))
	})

	t.Run("kind conflict keeps the first classification", func(t *testing.T) {
		var conflicts []KindConflict
		g := New(WithConflictHandler(func(ctx context.Context, c KindConflict) {
			conflicts = append(conflicts, c)
		}))

		files := []FileRecord{
			tvFile("Lost", 1, 1),
			{FileName: "Lost S01E03.mkv", MediaType: MediaKindUnknown},
		}

		groups := g.GroupFiles(ctx, files)

		require.Len(t, groups, 1)
		assert.True(t, groups[0].IsTVShow)
		assert.True(t, groups[0].KindConflict)
		assert.Len(t, groups[0].Items, 2)
		require.Len(t, conflicts, 1)
		assert.Equal(t, KindConflict{SeriesName: "Lost", IsTVShow: true, RawName: "Lost S01E03.mkv", Kind: MediaKindUnknown}, conflicts[0])
	})

	t.Run("default conflict handler only logs", func(t *testing.T) {
		files := []FileRecord{
			{FileName: "Lost S01E03.mkv", MediaType: MediaKindUnknown},
			tvFile("Lost", 1, 1),
		}

		groups := New().GroupFiles(ctx, files)

		require.Len(t, groups, 1)
		assert.False(t, groups[0].IsTVShow)
		assert.True(t, groups[0].KindConflict)
		assert.Nil(t, groups[0].Seasons)
	})

	t.Run("language option", func(t *testing.T) {
		files := []FileRecord{tvFile("Zeta", 1, 1), tvFile("Äpfel", 1, 1), tvFile("Apfel", 1, 1)}

		groups := New(WithLanguage(language.German)).GroupFiles(ctx, files)

		assert.Equal(t, []string{"Apfel", "Äpfel", "Zeta"}, seriesNames(groups))
	})
}

func TestGrouper_GroupPreviews(t *testing.T) {
	ctx := context.Background()

	preview := func(series string, season, ep int) RenamePreview {
		return RenamePreview{
			OldPath:         "/downloads/" + series + episodeCode(season, ep) + ".mkv",
			PureNewFileName: series + " - " + episodeCode(season, ep) + ".mkv",
			Metadata: &PreviewMetadata{
				MediaType:     "TV",
				SeriesName:    series,
				SeasonNumber:  nullable.NewNullableWithValue(season),
				EpisodeNumber: nullable.NewNullableWithValue(ep),
			},
		}
	}

	withTotal := preview("Severance", 1, 1)
	withTotal.Metadata.SeasonTotalEpisodes = nullable.NewNullableWithValue(6)

	previews := []RenamePreview{
		preview("Severance", 1, 5),
		withTotal,
		preview("Severance", 1, 2),
		{PureNewFileName: "Dune (2021).mkv", Metadata: &PreviewMetadata{MediaType: "MOVIE", SeriesName: "Dune (2021)"}},
		{PureNewFileName: "不眠日 - S01E01.mp4"},
	}

	groups := New().GroupPreviews(ctx, previews)

	require.Equal(t, []string{"Dune (2021)", "Severance", "不眠日"}, seriesNames(groups))

	movie := groups[0]
	assert.False(t, movie.IsTVShow)
	assert.Nil(t, movie.Seasons)

	show := groups[1]
	require.True(t, show.IsTVShow)
	require.Len(t, show.Seasons, 1)
	season := show.Seasons[0]
	assert.Equal(t, "Season 1", season.DisplayName)
	assert.Equal(t, 6, season.TotalEpisodes)
	assert.Equal(t, 3, season.MatchedCount)
	assert.Equal(t, 3, season.MissingCount)
	assert.False(t, season.IsComplete)
	require.Equal(t, []EntryKind{EntryKindFile, EntryKindFile, EntryKindMissing, EntryKindFile, EntryKindMissing}, entryKinds(season.Entries))
	assert.Equal(t, "Severance - S01E03", season.Entries[2].Missing.TheoreticalName)
	assert.Equal(t, "Severance", season.Entries[4].Missing.SeriesName)

	unknown := groups[2]
	assert.False(t, unknown.IsTVShow)
	assert.Len(t, unknown.Items, 1)
}
