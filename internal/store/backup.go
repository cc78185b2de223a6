package store

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BackupTimeLayout renders the local time as YYYY.MM.DD-HH.MM.
const BackupTimeLayout = "2006.01.02-15.04"

const maxBackupAttempts = 100

// BackupPath returns the backup location for path at the given time: a
// sibling file whose name is the original stem, "-bk-", the timestamp and the
// original extension, e.g.
//
//	claude_desktop_config.json -> claude_desktop_config-bk-2025.03.07-14.05.json
func BackupPath(path string, at time.Time) string {
	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	return filepath.Join(dir, stem+"-bk-"+at.Format(BackupTimeLayout)+ext)
}

// numberedPath inserts "-<n>" before the extension of path for n > 0.
func numberedPath(path string, n int) string {
	if n == 0 {
		return path
	}

	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + strconv.Itoa(n) + ext
}
