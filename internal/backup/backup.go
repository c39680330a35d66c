package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/storage"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the data store into a sibling backups directory and
// keeps the newest constants.MaxBackups copies.
type Manager struct {
	store     storage.Provider
	backupDir string
	suffix    string
	now       func() time.Time
}

// NewManager creates a backup manager for the store's file
func NewManager(store storage.Provider) *Manager {
	path := store.GetConfigPath()
	suffix := filepath.Ext(path)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		store:     store,
		backupDir: filepath.Join(filepath.Dir(path), constants.BackupDirName),
		suffix:    suffix,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the store and rotates old backups
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup()
	if err != nil {
		return "", err
	}
	if err := m.rotateBackups(); err != nil {
		// Rotation failures never fail the backup itself
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) createBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.uniquePath()
	if err != nil {
		return "", err
	}
	if err := m.store.Snapshot(path); err != nil {
		return "", fmt.Errorf("failed to backup data store: %w", err)
	}
	logger.Info("Created backup", "path", path)
	return path, nil
}

func (m *Manager) uniquePath() (string, error) {
	stamp := m.now().Format(constants.BackupTimestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, m.suffix))
	}
}

// ListBackups returns every backup, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		// liftlog-YYYYMMDD-HHMMSS[-N].ext
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		if len(stamp) < len(constants.BackupTimestampFormat) {
			continue
		}
		ts, err := time.ParseInLocation(constants.BackupTimestampFormat, stamp[:len(constants.BackupTimestampFormat)], time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			// Same second: the higher counter suffix is newer
			if len(backups[i].Path) != len(backups[j].Path) {
				return len(backups[i].Path) > len(backups[j].Path)
			}
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("Removed old backup", "path", backups[i].Path)
	}
	return nil
}

// RestoreBackup replaces the store file with backupPath. The current data is
// backed up first and the store is closed; callers must Load it again.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); err != nil {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := verifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	safety, err := m.createBackup()
	if err != nil {
		return "", fmt.Errorf("failed to backup current data before restore: %w", err)
	}
	if err := m.store.Close(); err != nil {
		return "", fmt.Errorf("failed to close data store: %w", err)
	}

	dest := m.store.GetConfigPath()
	tmp := dest + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to restore data store: %w", err)
	}
	logger.Info("Restored backup", "from", backupPath, "safety_backup", safety)
	return safety, nil
}

// verifyBackup opens the backup with the matching backend and reads its keys
func verifyBackup(path string) error {
	p := storage.NewProvider(path)
	if err := p.Load(); err != nil {
		return err
	}
	defer p.Close()
	_, err := p.Keys()
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
