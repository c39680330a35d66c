package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:    store,
		Timezone: "UTC",
		Out:      out,
		Clock:    func() time.Time { return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) },
	}
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Errorf("failed to close context: %v", err)
		}
	})
	return ctx, out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: liftlog-") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	recs, err := ctx.Records()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := recs.Add(models.ExerciseRecord{Name: "Squat", Weight: 100, Sets: 5, Reps: 5, RPE: 8, Date: "2026-03-04"}); err != nil {
		t.Fatal(err)
	}

	mgr := backup.NewManager(ctx.Store)
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := recs.Add(models.ExerciseRecord{Name: "Bench", Weight: 60, Sets: 3, Reps: 8, RPE: 7, Date: "2026-03-04"}); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(path), Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Data restored successfully!") {
		t.Errorf("unexpected output %q", out.String())
	}

	recs, err = ctx.Records()
	if err != nil {
		t.Fatal(err)
	}
	all := recs.All()
	if len(all) != 1 || all[0].Name != "Squat" {
		t.Errorf("expected only the backed-up record after restore, got %+v", all)
	}
}

func TestBackupRestoreCmd_Missing(t *testing.T) {
	ctx, _ := setupTestContext(t)

	if err := (&BackupRestoreCmd{BackupFile: "liftlog-19990101-000000.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}
