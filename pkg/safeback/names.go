package safeback

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/safeback/pkg/safeback/core"
)

// backupSuffix is the extension shared by every backup artifact.
const backupSuffix = ".bak"

// baseName extracts the final path segment of a name. Both separator
// styles are honored so Windows-style input behaves the same everywhere.
func baseName(name string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := normalized
	if i := strings.LastIndex(normalized, "/"); i >= 0 {
		base = normalized[i+1:]
	}
	if base == "" || base == "." || base == ".." {
		return "", &core.ValidationError{Name: name, Reason: "invalid file name"}
	}
	return base, nil
}

// stem strips the last extension from a base name. A name whose only dot
// is the leading one (".bashrc") keeps the whole base.
func stem(base string) string {
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

// TimestampedName derives the "<basename>.<ts>.bak" artifact name for an
// original, with the caller supplying the Unix-epoch-seconds timestamp.
func TimestampedName(original string, ts int64) (string, error) {
	base, err := baseName(original)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%d%s", base, ts, backupSuffix), nil
}

// PlainName derives the "<stem>.bak" convenience artifact name, which is
// overwritten on every backup of the original.
func PlainName(original string) (string, error) {
	base, err := baseName(original)
	if err != nil {
		return "", err
	}
	return stem(base) + backupSuffix, nil
}

// BackupKind tags the outcome of classifying a file name as a backup
// artifact.
type BackupKind int

const (
	// NotABackup is a name that does not parse as any backup artifact.
	NotABackup BackupKind = iota
	// PlainBackup is "<stem>.bak" with no numeric timestamp segment.
	PlainBackup
	// TimestampedBackup is "<original>.<unix-seconds>.bak".
	TimestampedBackup
)

// BackupName is the parsed form of a backup artifact's base file name.
type BackupName struct {
	Kind BackupKind
	// Original is the name the artifact was taken from. Timestamped only.
	Original string
	// Stem is everything before the ".bak" suffix. Plain only; may
	// itself contain dots.
	Stem string
	// Timestamp is the embedded Unix-epoch-seconds value. Timestamped only.
	Timestamp int64
}

// ParseBackupName classifies a base file name as a timestamped backup, a
// plain backup, or not a backup at all. The branch is explicit so callers
// never re-derive it by string slicing.
func ParseBackupName(name string) BackupName {
	if !strings.HasSuffix(name, backupSuffix) {
		return BackupName{Kind: NotABackup}
	}
	rest := strings.TrimSuffix(name, backupSuffix)
	if rest == "" {
		return BackupName{Kind: NotABackup}
	}
	tail := rest
	original := rest
	if i := strings.LastIndex(rest, "."); i >= 0 {
		tail = rest[i+1:]
		original = rest[:i]
	}
	if ts, err := strconv.ParseUint(tail, 10, 63); err == nil {
		return BackupName{
			Kind:      TimestampedBackup,
			Original:  original,
			Timestamp: int64(ts),
		}
	}
	return BackupName{
		Kind: PlainBackup,
		Stem: rest,
	}
}
