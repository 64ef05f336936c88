package safeback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/safeback/pkg/safeback/core"
)

func TestTimestampedName(t *testing.T) {
	cases := []struct {
		name     string
		original string
		ts       int64
		want     string
	}{
		{"simple", "report.txt", 1700000000, "report.txt.1700000000.bak"},
		{"no extension", "Makefile", 42, "Makefile.42.bak"},
		{"dotted name", "archive.tar.gz", 7, "archive.tar.gz.7.bak"},
		{"directory part dropped", "docs/report.txt", 9, "report.txt.9.bak"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TimestampedName(tc.original, tc.ts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("no base name", func(t *testing.T) {
		_, err := TimestampedName("", 1)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
		_, err = TimestampedName("docs/", 1)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})
}

func TestPlainName(t *testing.T) {
	cases := []struct {
		name     string
		original string
		want     string
	}{
		{"extension stripped", "report.txt", "report.bak"},
		{"no extension keeps whole name", "Makefile", "Makefile.bak"},
		{"only last extension stripped", "archive.tar.gz", "archive.tar.bak"},
		{"leading dot name kept whole", ".bashrc", ".bashrc.bak"},
		{"directory part dropped", "docs/report.txt", "report.bak"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PlainName(tc.original)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("idempotent derivation", func(t *testing.T) {
		first, err := PlainName("report.txt")
		require.NoError(t, err)
		second, err := PlainName("report.txt")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("no base name", func(t *testing.T) {
		_, err := PlainName("  ")
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})
}

func TestParseBackupName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  BackupName
	}{
		{
			"timestamped",
			"report.txt.1700000000.bak",
			BackupName{Kind: TimestampedBackup, Original: "report.txt", Timestamp: 1700000000},
		},
		{
			"timestamped with dotted original",
			"archive.tar.gz.55.bak",
			BackupName{Kind: TimestampedBackup, Original: "archive.tar.gz", Timestamp: 55},
		},
		{
			"plain",
			"report.bak",
			BackupName{Kind: PlainBackup, Stem: "report"},
		},
		{
			"plain with non-numeric tail",
			"report.v2.bak",
			BackupName{Kind: PlainBackup, Stem: "report.v2"},
		},
		{
			"bare numeric name",
			"123.bak",
			BackupName{Kind: TimestampedBackup, Original: "123", Timestamp: 123},
		},
		{
			"empty timestamp segment",
			"report..bak",
			BackupName{Kind: PlainBackup, Stem: "report."},
		},
		{
			"not a backup",
			"report.txt",
			BackupName{Kind: NotABackup},
		},
		{
			"suffix only",
			".bak",
			BackupName{Kind: NotABackup},
		},
		{
			"negative number is not a timestamp",
			"report.-5.bak",
			BackupName{Kind: PlainBackup, Stem: "report.-5"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseBackupName(tc.input))
		})
	}
}
