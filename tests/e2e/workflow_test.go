package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEndToEndWorkflow(t *testing.T) {
	// 1. Setup Environment
	// Allow overriding bin dir via env var, default to ../../bin (relative to tests/e2e)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	binDir := os.Getenv("LIFTLOG_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)
	t.Logf("Using bin dir: %s", binDir)

	cliPath := filepath.Join(binDir, "liftlog")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it first to run this test.", cliPath)
	}

	// Create temp home for isolation
	tempDir := t.TempDir()
	t.Logf("Running test in temp dir: %s", tempDir)

	var cleanEnv []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "LIFTLOG_") {
			cleanEnv = append(cleanEnv, e)
		}
	}
	cleanEnv = append(cleanEnv,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("LIFTLOG_CONFIG=%s", filepath.Join(tempDir, "liftlog", "liftlog.db")),
		"LIFTLOG_TIMEZONE=UTC",
	)

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	weekday := now.Weekday().String()

	// 2. Initialize storage
	t.Log("Initializing storage...")
	out := runCmd(t, cliPath, cleanEnv, "init")
	assertContains(t, out, "Initialized liftlog storage")

	// 3. Plan today's workout
	t.Log("Planning today's workout...")
	runCmd(t, cliPath, cleanEnv, "plan", "set", weekday, "-m", "Legs", "--duration", "50")
	runCmd(t, cliPath, cleanEnv, "plan", "exercise", "add", weekday, "Squat", "--weight", "100", "--sets", "5", "--reps", "5", "--rpe", "8")
	out = runCmd(t, cliPath, cleanEnv, "today")
	assertContains(t, out, weekday+": Legs")
	assertContains(t, out, "Squat")

	// 4. Log two sessions of the same exercise
	t.Log("Logging exercises...")
	runCmd(t, cliPath, cleanEnv, "log", "add", "Squat", "--weight", "100", "--sets", "5", "--reps", "5", "--rpe", "8", "--workout", "Legs", "--date", yesterday)
	out = runCmd(t, cliPath, cleanEnv, "log", "add", "Squat", "--weight", "105", "--sets", "5", "--reps", "5", "--rpe", "9", "--workout", "Legs", "--date", today)
	assertContains(t, out, "Logged Squat")

	// 5. Reports
	t.Log("Checking reports...")
	out = runCmd(t, cliPath, cleanEnv, "stats", "--json")
	var m struct {
		TotalSets   int     `json:"totalSets"`
		TotalVolume float64 `json:"totalVolume"`
		ActiveDays  int     `json:"activeDays"`
	}
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("Failed to parse stats output: %v\nOutput: %s", err, out)
	}
	if m.TotalSets != 10 || m.TotalVolume != 5125 || m.ActiveDays != 2 {
		t.Errorf("Unexpected metrics: %+v", m)
	}

	out = runCmd(t, cliPath, cleanEnv, "progress", "Squat")
	assertContains(t, out, "Squat ("+yesterday)
	assertContains(t, out, "+5")

	out = runCmd(t, cliPath, cleanEnv, "history")
	assertContains(t, out, today)

	// 6. Backup and diagnostics
	t.Log("Creating backup...")
	out = runCmd(t, cliPath, cleanEnv, "backup", "create")
	assertContains(t, out, "Backup created")

	out = runCmd(t, cliPath, cleanEnv, "doctor")
	assertContains(t, out, "All diagnostics passed!")
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s\nStderr: %s", path, args, err, out, stderr.String())
	}
	return string(out)
}

func assertContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("Expected output to contain %q, got:\n%s", want, out)
	}
}
