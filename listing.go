package ftpserver

import (
	"fmt"
	"os"
	"time"
)

const (
	dateFormatRecent = "Jan _2 15:04" // within the last six months
	dateFormatOld    = "Jan _2  2006" // older than six months
	dateFormatCutoff = time.Hour * 24 * 30 * 6
)

// readDirEntries lists path's immediate children through the mounted
// filesystem namespace.
func readDirEntries(fs FileSystem, path string) ([]fileListing, error) {
	dir, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.Readdir(-1)
}

// dirListPrefix and regularListPrefix are the fixed mode/owner/group
// fields every LIST line carries. Symlinks are treated as dirs.
const (
	dirListPrefix     = "drwxr-xr-x 1 owner group"
	regularListPrefix = "-rw-r--r-- 1 owner group"
)

// renderListing builds the ls -l-style LIST body: one "<prefix> <size>
// <date> <name>\r\n" line per entry, size right-aligned to 13 columns,
// empty directories rendering as an empty body rather than a single
// blank line.
func renderListing(entries []fileListing) string {
	if len(entries) == 0 {
		return ""
	}

	now := time.Now()

	var out string

	for _, e := range entries {
		prefix := regularListPrefix
		if e.IsDir() || e.Mode()&os.ModeSymlink != 0 {
			prefix = dirListPrefix
		}

		out += fmt.Sprintf(
			"%s %13d %s %s\r\n",
			prefix,
			e.Size(),
			formatListDate(now, e.ModTime()),
			e.Name(),
		)
	}

	return out
}

// renderNlst builds the NLST body: bare names, one per line.
func renderNlst(entries []fileListing) string {
	if len(entries) == 0 {
		return ""
	}

	var out string

	for _, e := range entries {
		out += e.Name() + "\r\n"
	}

	return out
}

func formatListDate(now, modTime time.Time) string {
	if now.Sub(modTime) > dateFormatCutoff {
		return modTime.Format(dateFormatOld)
	}

	return modTime.Format(dateFormatRecent)
}
