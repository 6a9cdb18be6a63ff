package mimetype

import "strings"

var archiveSuffixes = map[string]string{
	".tar":    "application/x-tar",
	".tar.gz": "application/x-tar",
	".tgz":    "application/x-tar",
	".zip":    "application/zip",
	".gz":     "application/gzip",
}

// IsArchive reports whether a list file looks like an archive that needs
// inflating before it can be parsed, based on its filename. Longer suffixes
// win, so ".tar.gz" is tar rather than gzip.
func IsArchive(filename string) (string, bool) {
	mime := ""
	longest := 0

	for suffix, m := range archiveSuffixes {
		if strings.HasSuffix(filename, suffix) && len(suffix) > longest {
			mime = m
			longest = len(suffix)
		}
	}

	return mime, mime != ""
}
