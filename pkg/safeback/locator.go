package safeback

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/safeback/pkg/safeback/core"
	"github.com/arthur-debert/safeback/pkg/safeback/filesystem"
)

// findLatestBackup scans the workdir root for timestamped backups of the
// original and returns the workdir-relative name of the newest one. With
// no timestamped match it falls back to the plain artifact if that exists
// on disk, and reports NotFound otherwise.
//
// Entries that carry the ".bak" suffix but no parsable timestamp are not
// backups of this original and are skipped, not errors. Equal timestamps
// are broken by the lexically smallest file name, which keeps the pick
// deterministic regardless of directory enumeration order.
func findLatestBackup(fsys filesystem.FullFileSystem, original string) (string, error) {
	base, err := baseName(original)
	if err != nil {
		return "", err
	}

	entries, err := fsys.ReadDir(".")
	if err != nil {
		return "", fmt.Errorf("scan working directory: %w", err)
	}

	prefix := base + "."
	var best string
	var bestTS int64
	found := false
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		parsed := ParseBackupName(name)
		if parsed.Kind != TimestampedBackup {
			continue
		}
		if !found || parsed.Timestamp > bestTS ||
			(parsed.Timestamp == bestTS && name < best) {
			found = true
			best = name
			bestTS = parsed.Timestamp
		}
	}
	if found {
		return best, nil
	}

	plain, err := PlainName(original)
	if err != nil {
		return "", err
	}
	if _, err := fsys.Stat(plain); err == nil {
		return plain, nil
	}
	return "", &core.NotFoundError{Name: original, Reason: "no backup file found"}
}
