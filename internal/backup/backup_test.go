package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/storage"
)

func setupStore(t *testing.T, name string) storage.Provider {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), name))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Put(constants.ExercisesKey, []byte(`[{"id":"v1"}]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	t := time.Date(2024, 5, 13, 10, 0, 0, 0, time.Local)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	for _, name := range []string{"liftlog.db", "liftlog.json"} {
		t.Run(name, func(t *testing.T) {
			store := setupStore(t, name)
			mgr := NewManager(store)

			path, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}
			if !strings.HasPrefix(filepath.Base(path), constants.BackupFilePrefix) || filepath.Ext(path) != filepath.Ext(name) {
				t.Errorf("unexpected backup name %s", path)
			}
			if filepath.Dir(path) != mgr.GetBackupDir() {
				t.Errorf("backup written outside backup dir: %s", path)
			}
			if err := verifyBackup(path); err != nil {
				t.Errorf("backup is not loadable: %v", err)
			}
		})
	}
}

func TestCreateBackupSameSecondGetsCounter(t *testing.T) {
	store := setupStore(t, "liftlog.db")
	mgr := NewManager(store)
	fixed := time.Date(2024, 5, 13, 10, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if first == second || !strings.HasSuffix(second, "-1.db") {
		t.Errorf("expected counter suffix, got %s and %s", first, second)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(backups))
	}
}

func TestRotation(t *testing.T) {
	store := setupStore(t, "liftlog.db")
	mgr := NewManager(store)
	mgr.now = steppingClock()

	var newest string
	for i := 0; i < constants.MaxBackups+3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		newest = path
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	if backups[0].Path != newest {
		t.Errorf("expected newest backup first, got %s", backups[0].Path)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	store := setupStore(t, "liftlog.db")
	mgr := NewManager(store)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "liftlog-garbage.db", "other-20240101-000000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %v", backups)
	}
}

func TestListBackupsMissingDir(t *testing.T) {
	mgr := NewManager(setupStore(t, "liftlog.db"))
	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("ListBackups() = %v, %v", backups, err)
	}
}

func TestRestoreBackup(t *testing.T) {
	for _, name := range []string{"liftlog.db", "liftlog.json"} {
		t.Run(name, func(t *testing.T) {
			store := setupStore(t, name)
			mgr := NewManager(store)
			mgr.now = steppingClock()

			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatal(err)
			}
			if err := store.Put(constants.ExercisesKey, []byte(`[{"id":"v2"}]`)); err != nil {
				t.Fatal(err)
			}

			safety, err := mgr.RestoreBackup(backupPath)
			if err != nil {
				t.Fatalf("RestoreBackup failed: %v", err)
			}

			if err := store.Load(); err != nil {
				t.Fatalf("Load() after restore error = %v", err)
			}
			data, _ := store.Get(constants.ExercisesKey)
			if !strings.Contains(string(data), "v1") {
				t.Errorf("expected restored data v1, got %s", data)
			}

			safetyStore := storage.NewProvider(safety)
			if err := safetyStore.Load(); err != nil {
				t.Fatal(err)
			}
			defer safetyStore.Close()
			data, _ = safetyStore.Get(constants.ExercisesKey)
			if !strings.Contains(string(data), "v2") {
				t.Errorf("expected safety backup to hold v2, got %s", data)
			}
		})
	}
}

func TestRestoreBackupRejectsInvalidFile(t *testing.T) {
	store := setupStore(t, "liftlog.json")
	mgr := NewManager(store)

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bad); err == nil {
		t.Error("expected error restoring invalid backup")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error restoring missing backup")
	}
}
