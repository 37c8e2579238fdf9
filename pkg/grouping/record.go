package grouping

import (
	"path/filepath"
	"strings"

	"github.com/oapi-codegen/nullable"
)

// FromFileRecord normalizes a scanned file into an Item
func FromFileRecord(rec FileRecord) Item {
	kind := rec.MediaType
	if kind == "" {
		kind = MediaKindUnknown
	}

	item := Item{
		Origin:      OriginScan,
		Catalog:     rec.MatchedInfo,
		ParsedTitle: rec.ParsedTitle,
		ParsedYear:  intOr(rec.ParsedYear, 0),
		RawName:     firstNonBlank(rec.FileName, baseName(rec.FilePath), rec.ID),
		Kind:        kind,
		Season:      intOr(rec.ParsedSeason, NoSeason),
		Episode:     max(intOr(rec.ParsedEpisode, NoEpisode), NoEpisode),
		File:        &rec,
	}

	return item
}

// FromPreview normalizes a rename preview into an Item
func FromPreview(p RenamePreview) Item {
	md := p.Metadata
	if md == nil {
		md = &PreviewMetadata{}
	}

	return Item{
		Origin:              OriginPreview,
		SeriesNameHint:      md.SeriesName,
		RawName:             firstNonBlank(p.PureNewFileName, baseName(p.NewPath), p.PureOldFileName, baseName(p.OldPath)),
		Kind:                previewKind(md.MediaType),
		Season:              nullableOr(md.SeasonNumber, NoSeason),
		Episode:             max(nullableOr(md.EpisodeNumber, NoEpisode), NoEpisode),
		SeasonTotalEpisodes: max(nullableOr(md.SeasonTotalEpisodes, 0), 0),
		Preview:             &p,
	}
}

func previewKind(mediaType string) MediaKind {
	switch strings.ToUpper(strings.TrimSpace(mediaType)) {
	case previewMediaTypeTV, string(MediaKindTVShow):
		return MediaKindTVShow
	case string(MediaKindMovie):
		return MediaKindMovie
	default:
		return MediaKindUnknown
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func nullableOr(v nullable.Nullable[int], def int) int {
	got, err := v.Get()
	if err != nil {
		return def
	}
	return got
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
