// Package grouping organizes flat media records into series, seasons and missing episode placeholders
// for the rename review screen.
package grouping

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/kasuboski/mediagroup/pkg/logger"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// KindConflict is reported when items sharing a series name disagree on being a tv show
type KindConflict struct {
	SeriesName string    `json:"seriesName"`
	IsTVShow   bool      `json:"isTvShow"`
	RawName    string    `json:"rawName"`
	Kind       MediaKind `json:"mediaType"`
}

// ConflictHandler receives kind conflicts found while grouping
type ConflictHandler func(ctx context.Context, conflict KindConflict)

// Option configures a Grouper
type Option func(*Grouper)

// WithLanguage sets the locale series names and file names are collated with
func WithLanguage(tag language.Tag) Option {
	return func(g *Grouper) {
		g.tag = tag
	}
}

// WithConflictHandler replaces the default handler, which logs a warning
func WithConflictHandler(h ConflictHandler) Option {
	return func(g *Grouper) {
		if h != nil {
			g.onConflict = h
		}
	}
}

// Grouper builds series groups from flat record lists. It holds no state between calls.
type Grouper struct {
	tag        language.Tag
	onConflict ConflictHandler
}

// New creates a Grouper collating in English unless configured otherwise
func New(opts ...Option) Grouper {
	g := Grouper{
		tag:        language.English,
		onConflict: logConflict,
	}
	for _, opt := range opts {
		opt(&g)
	}

	return g
}

func logConflict(ctx context.Context, c KindConflict) {
	log := logger.FromCtx(ctx)
	log.Warnw("series name shared by tv and non-tv items, keeping first classification",
		"series", c.SeriesName, "isTvShow", c.IsTVShow, "file", c.RawName, "mediaType", c.Kind)
}

// GroupFiles groups scanned files
func (g Grouper) GroupFiles(ctx context.Context, files []FileRecord) []SeriesGroup {
	items := make([]Item, len(files))
	for i, f := range files {
		items[i] = FromFileRecord(f)
	}

	return g.Group(ctx, items)
}

// GroupPreviews groups rename previews
func (g Grouper) GroupPreviews(ctx context.Context, previews []RenamePreview) []SeriesGroup {
	items := make([]Item, len(previews))
	for i, p := range previews {
		items[i] = FromPreview(p)
	}

	return g.Group(ctx, items)
}

// Group partitions items by resolved series name. Groups are ordered by name, items by season, episode
// and name, and tv groups are split into seasons with placeholders for missing episodes.
func (g Grouper) Group(ctx context.Context, items []Item) []SeriesGroup {
	log := logger.FromCtx(ctx)

	acc := newOrderedMap[string, SeriesGroup]()
	for _, item := range items {
		name := ResolveSeriesName(item)
		isTV := item.Kind == MediaKindTVShow

		group, _ := acc.getOrInsert(name, func() SeriesGroup {
			return SeriesGroup{SeriesName: name, IsTVShow: isTV}
		})
		if group.IsTVShow != isTV {
			group.KindConflict = true
			g.onConflict(ctx, KindConflict{
				SeriesName: name,
				IsTVShow:   group.IsTVShow,
				RawName:    item.RawName,
				Kind:       item.Kind,
			})
		}
		group.Items = append(group.Items, item)
	}

	groups := acc.valuesInOrder()
	col := collate.New(g.tag)

	slices.SortFunc(groups, func(a, b SeriesGroup) int {
		return compareNames(col, a.SeriesName, b.SeriesName)
	})

	for i := range groups {
		slices.SortStableFunc(groups[i].Items, func(a, b Item) int {
			return compareItems(col, a, b)
		})

		if groups[i].IsTVShow {
			groups[i].Seasons = buildSeasons(groups[i].SeriesName, groups[i].Items)
		}
	}

	log.Debugw("grouped media", "items", len(items), "groups", acc.len())
	return groups
}

// compareItems orders by season, then episode, then name. Unknown seasons sort as season 0.
func compareItems(col *collate.Collator, a, b Item) int {
	if c := cmp.Compare(max(a.Season, 0), max(b.Season, 0)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Episode, b.Episode); c != 0 {
		return c
	}
	if c := compareNames(col, a.RawName, b.RawName); c != 0 {
		return c
	}

	return strings.Compare(sourceKey(a), sourceKey(b))
}

// compareNames collates for the configured locale and breaks collation ties byte-wise
func compareNames(col *collate.Collator, a, b string) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// sourceKey separates items with identical names, e.g. the same file name in two directories
func sourceKey(item Item) string {
	switch {
	case item.File != nil:
		return item.File.FilePath + "\x00" + item.File.ID
	case item.Preview != nil:
		return item.Preview.OldPath + "\x00" + item.Preview.NewPath
	default:
		return ""
	}
}
