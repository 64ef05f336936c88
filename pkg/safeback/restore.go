package safeback

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/safeback/pkg/safeback/core"
)

// restorePlan names the backup artifact to read and the destination to
// write, both relative to the workdir root. Computing the plan has no
// side effects; the copy happens afterwards in the façade.
type restorePlan struct {
	source string
	dest   string
}

// resolveRestore branches on the form of the input:
//
//   - A name ending in ".bak" is the backup artifact itself. A
//     timestamped artifact restores to the original name embedded in it;
//     a plain artifact restores to "<stem>.restored.<now>" so the
//     original is never clobbered. A ".bak" name with nothing before the
//     suffix is unparseable and rejected.
//   - Any other name is an original: the locator picks the newest backup
//     and the destination is the original's own base name, overwriting
//     the file if present.
func (s *Service) resolveRestore(name string, now int64) (restorePlan, error) {
	trimmed := strings.TrimSpace(name)

	if strings.HasSuffix(trimmed, backupSuffix) {
		p, err := s.workdir.Validate(trimmed)
		if err != nil {
			return restorePlan{}, err
		}
		if _, err := s.fs.Stat(p.Name); err != nil {
			return restorePlan{}, &core.NotFoundError{Name: trimmed, Reason: "backup file not found"}
		}
		parsed := ParseBackupName(p.Base())
		switch parsed.Kind {
		case TimestampedBackup:
			return restorePlan{source: p.Name, dest: parsed.Original}, nil
		case PlainBackup:
			dest := fmt.Sprintf("%s.restored.%d", parsed.Stem, now)
			return restorePlan{source: p.Name, dest: dest}, nil
		default:
			return restorePlan{}, &core.ValidationError{Name: trimmed, Reason: "unparseable backup name"}
		}
	}

	if _, err := s.workdir.Validate(trimmed); err != nil {
		return restorePlan{}, err
	}
	source, err := findLatestBackup(s.fs, trimmed)
	if err != nil {
		return restorePlan{}, err
	}
	base, err := baseName(trimmed)
	if err != nil {
		return restorePlan{}, err
	}
	return restorePlan{source: source, dest: base}, nil
}
