package grouping

import (
	"github.com/oapi-codegen/nullable"
)

// MediaKind classifies a record as a movie, a tv episode or unknown
type MediaKind string

const (
	MediaKindMovie   MediaKind = "MOVIE"
	MediaKindTVShow  MediaKind = "TV_SHOW"
	MediaKindUnknown MediaKind = "UNKNOWN"
)

// previewMediaTypeTV is the tv media type reported by rename previews
const previewMediaTypeTV = "TV"

const (
	// NoSeason marks an item whose season is unknown
	NoSeason = -1
	// NoEpisode marks an item whose episode is unknown
	NoEpisode = 0

	// UnknownSeries is the identity used when nothing else can be resolved
	UnknownSeries = "Unknown Series"
)

// Origin tells which kind of upstream record an Item was built from
type Origin string

const (
	OriginScan    Origin = "scan"
	OriginPreview Origin = "preview"
)

// CatalogMatch is a confirmed catalog identity for a scanned file.
// Name is set for tv series, Title for movies.
type CatalogMatch struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// FileRecord is a single video file produced by a directory scan
type FileRecord struct {
	ID               string        `json:"id"`
	FilePath         string        `json:"filePath"`
	FileName         string        `json:"fileName" validate:"required"`
	Extension        string        `json:"extension,omitempty"`
	FileSize         int64         `json:"fileSize,omitempty" validate:"gte=0"`
	FileSizeReadable string        `json:"fileSizeReadable,omitempty"`
	MediaType        MediaKind     `json:"mediaType" validate:"omitempty,oneof=MOVIE TV_SHOW UNKNOWN"`
	ParsedTitle      string        `json:"parsedTitle,omitempty"`
	ParsedYear       *int          `json:"parsedYear,omitempty"`
	ParsedSeason     *int          `json:"parsedSeason,omitempty"`
	ParsedEpisode    *int          `json:"parsedEpisode,omitempty"`
	ParentDirectory  string        `json:"parentDirectory,omitempty"`
	MatchedInfo      *CatalogMatch `json:"matchedInfo,omitempty"`
}

// PreviewMetadata is the grouping metadata attached to a rename preview
type PreviewMetadata struct {
	MediaType           string                 `json:"mediaType,omitempty" validate:"omitempty,oneof=MOVIE TV TV_SHOW UNKNOWN"`
	SeriesName          string                 `json:"seriesName,omitempty"`
	SeasonNumber        nullable.Nullable[int] `json:"seasonNumber,omitempty"`
	EpisodeNumber       nullable.Nullable[int] `json:"episodeNumber,omitempty"`
	SeasonTotalEpisodes nullable.Nullable[int] `json:"seasonTotalEpisodes,omitempty"`
}

// RenamePreview is a planned rename for a single file
type RenamePreview struct {
	OldPath         string           `json:"oldPath,omitempty"`
	NewPath         string           `json:"newPath,omitempty"`
	PureOldFileName string           `json:"pureOldFileName,omitempty"`
	PureNewFileName string           `json:"pureNewFileName" validate:"required"`
	Status          string           `json:"status,omitempty"`
	Metadata        *PreviewMetadata `json:"metadata,omitempty"`
}

// Item is the shape both record kinds are normalized into before grouping
type Item struct {
	Origin         Origin        `json:"origin"`
	Catalog        *CatalogMatch `json:"-"`
	SeriesNameHint string        `json:"-"`
	ParsedTitle    string        `json:"-"`
	ParsedYear     int           `json:"-"`

	RawName             string    `json:"rawName"`
	Kind                MediaKind `json:"mediaType"`
	Season              int       `json:"season"`
	Episode             int       `json:"episode"`
	SeasonTotalEpisodes int       `json:"seasonTotalEpisodes,omitempty"`

	File    *FileRecord    `json:"file,omitempty"`
	Preview *RenamePreview `json:"preview,omitempty"`
}

// SeriesGroup holds every item resolved to the same series name
type SeriesGroup struct {
	SeriesName   string        `json:"seriesName"`
	IsTVShow     bool          `json:"isTvShow"`
	KindConflict bool          `json:"kindConflict,omitempty"`
	Items        []Item        `json:"items"`
	Seasons      []SeasonGroup `json:"seasons,omitempty"`
}

// SeasonGroup is one season of a tv series group
type SeasonGroup struct {
	SeasonNumber  int     `json:"seasonNumber"`
	DisplayName   string  `json:"displayName"`
	Entries       []Entry `json:"items"`
	TotalEpisodes int     `json:"totalEpisodes"`
	MatchedCount  int     `json:"matchedCount"`
	MissingCount  int     `json:"missingCount"`
	IsComplete    bool    `json:"isComplete"`
}

// EntryKind discriminates the values held by an Entry
type EntryKind string

const (
	EntryKindFile    EntryKind = "file"
	EntryKindMissing EntryKind = "missing"
)

// Entry is either a real item or a missing episode placeholder
type Entry struct {
	Kind    EntryKind       `json:"type"`
	Item    *Item           `json:"item,omitempty"`
	Missing *MissingEpisode `json:"missing,omitempty"`
}

func fileEntry(item Item) Entry {
	return Entry{Kind: EntryKindFile, Item: &item}
}

func missingEntry(m MissingEpisode) Entry {
	return Entry{Kind: EntryKindMissing, Missing: &m}
}

// MissingEpisode is a synthetic entry for a run of episodes absent from disk
type MissingEpisode struct {
	SyntheticID       string `json:"id"`
	SeasonNumber      int    `json:"season"`
	StartEpisode      int    `json:"startEpisode"`
	EndEpisode        int    `json:"endEpisode"`
	Count             int    `json:"count"`
	SeriesName        string `json:"seriesName"`
	EpisodeRangeLabel string `json:"episodeDisplay"`
	TheoreticalName   string `json:"theoreticalName"`
}
