// Package audit appends one JSON line per successful operation to an
// append-only record inside the working directory. The record is
// write-only: nothing in the tool reads it back.
package audit

import (
	"encoding/json"
	"fmt"
	"os/user"
	"time"

	"github.com/arthur-debert/safeback/pkg/safeback/filesystem"
)

// DefaultFileName is the audit record appended to inside the workdir.
const DefaultFileName = "logfile.txt"

// ResultOK is recorded for every successful operation. Failures are not
// logged at all.
const ResultOK = "ok"

// Entry is one audit record. Field order matches the on-disk format.
type Entry struct {
	TS     int64  `json:"ts"`
	User   string `json:"user"`
	Action string `json:"action"`
	File   string `json:"file"`
	Result string `json:"result"`
}

// Log writes audit entries through a rooted filesystem, so the record
// always lands inside the working directory.
type Log struct {
	fs   filesystem.WriteFS
	file string
	user string
	now  func() time.Time
}

// New creates an audit log. Empty file, user, or clock fall back to
// DefaultFileName, the OS account name, and wall-clock time.
func New(fsys filesystem.WriteFS, file, username string, now func() time.Time) *Log {
	if file == "" {
		file = DefaultFileName
	}
	if username == "" {
		username = CurrentUser()
	}
	if now == nil {
		now = time.Now
	}
	return &Log{fs: fsys, file: file, user: username, now: now}
}

// Record appends one entry. A write failure is returned to the caller:
// an operation whose audit entry cannot be written counts as failed.
func (l *Log) Record(action, file, result string) error {
	entry := Entry{
		TS:     l.now().Unix(),
		User:   l.user,
		Action: action,
		File:   file,
		Result: result,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}
	data = append(data, '\n')
	if err := l.fs.AppendFile(l.file, data, 0644); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// CurrentUser resolves the acting user name, falling back to "unknown"
// when the OS account cannot be determined.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}
