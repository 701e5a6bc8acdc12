package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runKobo(t, binaryPath, home,
		"onboard",
		"--name", "Ada",
		"--goal", "Emergency fund",
		"--target", "100000",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runKobo(t, binaryPath, home, "wallet", "topup", "25000")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runKobo(t, binaryPath, home, "wallet", "balance")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "₦25,000.00")

	stdout, stderr, err = runKobo(t, binaryPath, home, "risk", "--answers", "2,2,2,2,2,2")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Moderate")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "kobo-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/kobo")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build kobo binary: %s", string(output))
	return binaryPath
}

func runKobo(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)

	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
}
