package parser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go3tag/internal/shared"
)

// CollectFiles expands file and directory arguments into a sorted,
// deduplicated list of recognized audio files. Directories are walked
// recursively; unrecognized files inside them are ignored silently,
// but an explicitly named file with an unknown extension is an error.
func CollectFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			if shared.DetectFormat(p) == shared.FormatUnknown {
				return nil, fmt.Errorf("unsupported file type: %s", p)
			}
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && shared.DetectFormat(path) != shared.FormatUnknown {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// BuildGroups parses the collected files and groups them by containing
// directory. The total track count of a directory is the number of
// recognized audio files it holds, including files whose names could not
// be parsed (those are skipped but still occupy a track slot). The release
// year is shared by the whole group and falls back to the current year
// when the directory name carries none.
func BuildGroups(files []string, wc *shared.WarningCollector) []*shared.DirectoryGroup {
	byDir := make(map[string]*shared.DirectoryGroup)
	totals := make(map[string]int)
	var order []string

	for _, file := range files {
		dir := filepath.Dir(file)
		totals[dir]++
		if _, ok := byDir[dir]; !ok {
			byDir[dir] = &shared.DirectoryGroup{Dir: dir}
			order = append(order, dir)
		}

		tf, err := ParseFilename(file)
		if err != nil {
			wc.AddFilenameParseWarning(file, err.Error())
			continue
		}
		byDir[dir].Tracks = append(byDir[dir].Tracks, tf)
	}

	groups := make([]*shared.DirectoryGroup, 0, len(order))
	for _, dir := range order {
		group := byDir[dir]

		year, ok := YearFromDir(dir)
		if !ok {
			year = time.Now().Format("2006")
			wc.AddMissingYearWarning(dir, year)
		}
		group.Year = year

		var albums, compilations int
		for i := range group.Tracks {
			group.Tracks[i].TotalTracks = totals[dir]
			group.Tracks[i].Year = year
			if group.Tracks[i].Compilation {
				compilations++
			} else {
				albums++
			}
		}
		if albums > 0 && compilations > 0 {
			wc.AddMixedSchemeWarning(dir)
		}

		groups = append(groups, group)
	}
	return groups
}
