// Package safeback provides point-in-time backup, restore, and deletion
// of individual files inside a single working directory. Every
// user-supplied name is validated against path traversal before any
// filesystem operation runs, and each successful operation is appended
// to an audit record.
package safeback

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/safeback/pkg/safeback/audit"
	"github.com/arthur-debert/safeback/pkg/safeback/core"
	"github.com/arthur-debert/safeback/pkg/safeback/filesystem"
)

// Service orchestrates the validator, name resolvers, and locator over a
// rooted filesystem. Operations are synchronous and make no concurrency
// promises: the working directory is treated as owned by the caller for
// the duration of each call.
type Service struct {
	workdir   *Workdir
	fs        filesystem.FullFileSystem
	now       func() time.Time
	logger    zerolog.Logger
	idgen     IDGenerator
	auditLog  *audit.Log
	auditFile string
	user      string
}

// Option configures a Service.
type Option func(*Service)

// WithFileSystem replaces the OS filesystem, e.g. with an in-memory one
// for tests. The filesystem must be rooted at the service's workdir.
func WithFileSystem(fsys filesystem.FullFileSystem) Option {
	return func(s *Service) { s.fs = fsys }
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithIDGenerator replaces the operation ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Service) { s.idgen = gen }
}

// WithAuditFile sets the audit record's file name inside the workdir.
func WithAuditFile(name string) Option {
	return func(s *Service) { s.auditFile = name }
}

// WithUser sets the acting user recorded in audit entries.
func WithUser(name string) Option {
	return func(s *Service) { s.user = name }
}

// New creates a Service anchored at root. An empty root means the
// process working directory.
func New(root string, opts ...Option) (*Service, error) {
	workdir, err := NewWorkdir(root)
	if err != nil {
		return nil, err
	}
	s := &Service{
		workdir: workdir,
		now:     time.Now,
		logger:  DefaultLogger(),
		idgen:   UUIDIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = filesystem.NewOSFileSystem(workdir.Root())
	}
	s.auditLog = audit.New(s.fs, s.auditFile, s.user, s.now)
	return s, nil
}

// Root returns the absolute working directory of this service.
func (s *Service) Root() string {
	return s.workdir.Root()
}

// Validate checks a name without touching the filesystem and returns the
// absolute path it would resolve to.
func (s *Service) Validate(name string) (string, error) {
	p, err := s.workdir.Validate(name)
	if err != nil {
		return "", err
	}
	return p.Abs, nil
}

// Backup copies the named file to a new timestamped artifact and
// refreshes the plain "<stem>.bak" convenience copy. It returns the
// absolute path of the timestamped artifact.
func (s *Service) Backup(name string) (string, error) {
	opID := s.idgen(core.ActionBackup, name)
	p, err := s.workdir.Validate(name)
	if err != nil {
		return "", err
	}
	if _, err := s.fs.Stat(p.Name); err != nil {
		return "", &core.NotFoundError{Name: name, Reason: "source file does not exist"}
	}

	ts := s.now().Unix()
	tsName, err := TimestampedName(p.Name, ts)
	if err != nil {
		return "", err
	}
	if err := s.copyFile(p.Name, tsName); err != nil {
		return "", fmt.Errorf("write backup %s: %w", tsName, err)
	}
	plainName, err := PlainName(p.Name)
	if err != nil {
		return "", err
	}
	if err := s.copyFile(p.Name, plainName); err != nil {
		return "", fmt.Errorf("write backup %s: %w", plainName, err)
	}

	if err := s.auditLog.Record(core.ActionBackup, name, audit.ResultOK); err != nil {
		return "", err
	}
	s.logger.Info().
		Str("op", string(opID)).
		Str("file", p.Name).
		Str("artifact", tsName).
		Msg("backup created")
	return s.workdir.Abs(tsName), nil
}

// Restore copies a backup back into the working directory and returns
// the absolute destination path. The input may be either a backup
// artifact name or an original file name; see resolveRestore for how the
// source and destination are chosen.
func (s *Service) Restore(name string) (string, error) {
	opID := s.idgen(core.ActionRestore, name)
	plan, err := s.resolveRestore(name, s.now().Unix())
	if err != nil {
		return "", err
	}
	if err := s.copyFile(plan.source, plan.dest); err != nil {
		return "", fmt.Errorf("restore %s to %s: %w", plan.source, plan.dest, err)
	}

	if err := s.auditLog.Record(core.ActionRestore, name, audit.ResultOK); err != nil {
		return "", err
	}
	s.logger.Info().
		Str("op", string(opID)).
		Str("source", plan.source).
		Str("dest", plan.dest).
		Msg("file restored")
	return s.workdir.Abs(plan.dest), nil
}

// Delete removes the named file after validation.
func (s *Service) Delete(name string) error {
	opID := s.idgen(core.ActionDelete, name)
	p, err := s.workdir.Validate(name)
	if err != nil {
		return err
	}
	if _, err := s.fs.Stat(p.Name); err != nil {
		return &core.NotFoundError{Name: name, Reason: "file does not exist"}
	}
	if err := s.fs.Remove(p.Name); err != nil {
		return fmt.Errorf("delete %s: %w", p.Name, err)
	}

	if err := s.auditLog.Record(core.ActionDelete, name, audit.ResultOK); err != nil {
		return err
	}
	s.logger.Info().
		Str("op", string(opID)).
		Str("file", p.Name).
		Msg("file deleted")
	return nil
}

// copyFile copies src to dst inside the workdir, preserving the source's
// permission bits.
func (s *Service) copyFile(src, dst string) error {
	info, err := s.fs.Stat(src)
	if err != nil {
		return err
	}
	f, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return s.fs.WriteFile(dst, data, info.Mode().Perm())
}
