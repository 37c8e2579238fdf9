package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeriesName(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "tv catalog name wins over parsed title",
			item: Item{Kind: MediaKindTVShow, Catalog: &CatalogMatch{Name: "Breaking Bad"}, ParsedTitle: "breaking bad", RawName: "bb.s01e01.mkv"},
			want: "Breaking Bad",
		},
		{
			name: "tv catalog without name falls back to parsed title",
			item: Item{Kind: MediaKindTVShow, Catalog: &CatalogMatch{Name: "  "}, ParsedTitle: "Lost", RawName: "lost.s01e01.mkv"},
			want: "Lost",
		},
		{
			name: "movie catalog uses release year",
			item: Item{Kind: MediaKindMovie, Catalog: &CatalogMatch{Title: "Dune", ReleaseDate: "2021-09-15"}, ParsedYear: 2020, RawName: "dune.mkv"},
			want: "Dune (2021)",
		},
		{
			name: "movie catalog without release date uses parsed year",
			item: Item{Kind: MediaKindMovie, Catalog: &CatalogMatch{Title: "Dune"}, ParsedYear: 1984, RawName: "dune.mkv"},
			want: "Dune (1984)",
		},
		{
			name: "movie catalog with malformed release date",
			item: Item{Kind: MediaKindMovie, Catalog: &CatalogMatch{Title: "Dune", ReleaseDate: "TBA"}, RawName: "dune.mkv"},
			want: "Dune (unknown)",
		},
		{
			name: "parsed tv title",
			item: Item{Kind: MediaKindTVShow, ParsedTitle: "Lost", RawName: "whatever.mkv"},
			want: "Lost",
		},
		{
			name: "parsed movie title without year",
			item: Item{Kind: MediaKindMovie, ParsedTitle: "Heat", RawName: "heat.mkv"},
			want: "Heat (unknown)",
		},
		{
			name: "unknown kind uses file name heuristic",
			item: Item{Kind: MediaKindUnknown, ParsedTitle: "ignored", RawName: "Some Show S01E01.mkv"},
			want: "Some Show",
		},
		{
			name: "unknown kind with catalog uses file name heuristic",
			item: Item{Kind: MediaKindUnknown, Catalog: &CatalogMatch{Name: "ignored"}, RawName: "Some Show 1x01.mkv"},
			want: "Some Show",
		},
		{
			name: "nothing to go on",
			item: Item{Kind: MediaKindTVShow, RawName: "S01E01.mkv"},
			want: UnknownSeries,
		},
		{
			name: "preview series name",
			item: Item{Origin: OriginPreview, Kind: MediaKindTVShow, SeriesNameHint: "Severance", RawName: "Other - S01E01.mkv"},
			want: "Severance",
		},
		{
			name: "preview without series name",
			item: Item{Origin: OriginPreview, Kind: MediaKindTVShow, RawName: "不眠日 - S01E01.mp4"},
			want: "不眠日",
		},
		{
			name: "preview with nothing",
			item: Item{Origin: OriginPreview, RawName: ""},
			want: UnknownSeries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSeriesName(tt.item))
		})
	}
}

func Test_catalogYear(t *testing.T) {
	assert.Equal(t, "2021", catalogYear("2021-09-15", 0))
	assert.Equal(t, "2021", catalogYear("2021", 0))
	assert.Equal(t, "1999", catalogYear("", 1999))
	assert.Equal(t, "unknown", catalogYear("", 0))
	assert.Equal(t, "2019", catalogYear("-202", 2019))
	assert.Equal(t, "unknown", catalogYear("+202-01-01", 0))
	assert.Equal(t, "unknown", catalogYear(" 21-09-15", 0))
}
