package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/kasuboski/mediagroup/pkg/grouping"
)

// writeSummary prints groups as an indented tree
func writeSummary(w io.Writer, groups []grouping.SeriesGroup) error {
	var sb strings.Builder
	for _, g := range groups {
		kind := "movie"
		if g.IsTVShow {
			kind = "tv"
		}
		fmt.Fprintf(&sb, "%s [%s, %s, %s]", g.SeriesName, kind, english.Plural(len(g.Items), "file", ""), humanize.IBytes(groupSize(g)))
		if g.KindConflict {
			sb.WriteString(" (mixed media types)")
		}
		sb.WriteString("\n")

		if !g.IsTVShow {
			for _, item := range g.Items {
				fmt.Fprintf(&sb, "    %s\n", item.RawName)
			}
			continue
		}

		for _, s := range g.Seasons {
			fmt.Fprintf(&sb, "  %s (%s)\n", s.DisplayName, seasonProgress(s))
			for _, e := range s.Entries {
				switch e.Kind {
				case grouping.EntryKindFile:
					fmt.Fprintf(&sb, "    %s %s\n", episodeTag(e.Item.Episode), e.Item.RawName)
				case grouping.EntryKindMissing:
					fmt.Fprintf(&sb, "    --  %s missing\n", e.Missing.EpisodeRangeLabel)
				}
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func seasonProgress(s grouping.SeasonGroup) string {
	if s.TotalEpisodes == 0 {
		return english.Plural(s.MatchedCount, "episode", "")
	}

	progress := fmt.Sprintf("%d/%d episodes", s.MatchedCount, s.TotalEpisodes)
	if s.IsComplete {
		progress += ", complete"
	}
	return progress
}

func episodeTag(episode int) string {
	if episode <= 0 {
		return "   "
	}
	return fmt.Sprintf("E%02d", episode)
}

func groupSize(g grouping.SeriesGroup) uint64 {
	var total int64
	for _, item := range g.Items {
		if item.File != nil && item.File.FileSize > 0 {
			total += item.File.FileSize
		}
	}
	return uint64(total)
}
