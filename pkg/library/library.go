package library

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kasuboski/mediagroup/pkg/grouping"
	mio "github.com/kasuboski/mediagroup/pkg/io"
	"github.com/kasuboski/mediagroup/pkg/logger"
)

// FileSystem is a library root. Path is the location FS was opened from and prefixes reported file paths.
type FileSystem struct {
	Path string
	FS   fs.FS
}

type MediaLibrary struct {
	root FileSystem
	io   mio.FileIO
}

var _ Library = (*MediaLibrary)(nil)

func New(root FileSystem, fileIO mio.FileIO) *MediaLibrary {
	return &MediaLibrary{
		root: root,
		io:   fileIO,
	}
}

// Root returns the path the library was opened at
func (l *MediaLibrary) Root() string {
	return l.root.Path
}

// Scan walks the library and returns a record for every video file found
func (l *MediaLibrary) Scan(ctx context.Context) ([]grouping.FileRecord, error) {
	log := logger.FromCtx(ctx)

	if l.root.FS == nil {
		return nil, ErrNoFileSystem
	}

	if l.root.Path != "" {
		if err := mio.EnsureDir(l.io, l.root.Path); err != nil {
			return nil, err
		}
	}

	records := []grouping.FileRecord{}
	err := l.io.WalkDir(l.root.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// just skip this dir for now if there's an issue
			log.Debugw("skipping unreadable path", "path", path, "error", err)
			if d != nil && !d.IsDir() {
				return nil
			}
			return fs.SkipDir
		}

		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		if !isVideoFile(d.Name()) {
			return nil
		}

		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}

		rec := l.recordFromPath(path, size)
		log.Debugw("found media file", "path", path, "mediaType", rec.MediaType)
		records = append(records, rec)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan library: %w", err)
	}

	log.Infow("scanned library", "root", l.root.Path, "files", len(records))
	return records, nil
}

// recordFromPath builds a record from a slash separated path relative to the library root
func (l *MediaLibrary) recordFromPath(rel string, size int64) grouping.FileRecord {
	fileName := path.Base(rel)
	var dirs []string
	if dir := path.Dir(rel); dir != "." {
		dirs = strings.Split(dir, "/")
	}

	rec := grouping.FileRecord{
		ID:               uuid.NewSHA1(uuid.NameSpaceURL, []byte(rel)).String(),
		FilePath:         filepath.Join(l.root.Path, filepath.FromSlash(rel)),
		FileName:         fileName,
		Extension:        strings.TrimPrefix(filepath.Ext(fileName), "."),
		FileSize:         size,
		FileSizeReadable: humanize.IBytes(uint64(max(size, 0))),
		MediaType:        grouping.MediaKindUnknown,
	}
	if len(dirs) > 0 {
		rec.ParentDirectory = dirs[len(dirs)-1]
	}

	season, hasSeason := seasonFromDirectories(dirs)
	if !hasSeason {
		season, hasSeason = extractSeasonNumber(fileName)
	}
	episode := extractEpisodeNumber(fileName)

	if hasSeason || episode > 0 {
		rec.MediaType = grouping.MediaKindTVShow
		if hasSeason {
			rec.ParsedSeason = &season
		}
		if episode > 0 {
			rec.ParsedEpisode = &episode
		}

		title, year := seriesTitle(dirs, fileName)
		rec.ParsedTitle = title
		if year > 0 {
			rec.ParsedYear = &year
		}
		return rec
	}

	title, year := splitTitleYear(strings.TrimSuffix(fileName, path.Ext(fileName)))
	if year == 0 && rec.ParentDirectory != "" {
		title, year = splitTitleYear(rec.ParentDirectory)
	}
	if year > 0 {
		rec.MediaType = grouping.MediaKindMovie
		rec.ParsedTitle = title
		rec.ParsedYear = &year
	}

	return rec
}

// seasonFromDirectories checks the innermost directory for a season folder name
func seasonFromDirectories(dirs []string) (int, bool) {
	if len(dirs) == 0 {
		return 0, false
	}
	return parseSeasonDirectory(dirs[len(dirs)-1])
}

// seriesTitle uses the innermost directory that isn't a season folder, else the file name.
// Outer directories may be categories such as "TV".
func seriesTitle(dirs []string, fileName string) (string, int) {
	for i := len(dirs) - 1; i >= 0; i-- {
		if _, ok := parseSeasonDirectory(dirs[i]); ok {
			continue
		}
		return splitTitleYear(dirs[i])
	}

	name := grouping.SeriesFromFileName(fileName)
	if name == grouping.UnknownSeries {
		return "", 0
	}
	return splitTitleYear(name)
}
