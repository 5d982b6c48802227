package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanShishkin/dirlist/internal/report"
	"github.com/IvanShishkin/dirlist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const header = "File Names, File Size Bytes, File Size String, Create Time, Accessed Time, Modified Time, FileType"

func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("hi"), 0644))
	return root
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScan_Stdout(t *testing.T) {
	root := newTree(t)

	stdout, _, err := run(t, "scan", "-d", root, "--md5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, header+", md5", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], filepath.Join(root, "a.txt")+", 0, 0 B, "))
	assert.True(t, strings.HasSuffix(lines[1], ", d41d8cd98f00b204e9800998ecf8427e"))
	assert.True(t, strings.HasPrefix(lines[2], filepath.Join(root, "sub", "b.txt")+", 2, 2.0 B, "))
}

func TestScan_WriteFile(t *testing.T) {
	root := newTree(t)
	outputFile := filepath.Join(t.TempDir(), "listing.csv")

	stdout, _, err := run(t, "scan", "-d", root, "-w", outputFile, "--sha1", "--sha256")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), header+", sha1, sha256\n"))
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestScan_WriteFailureFallsBackToStdout(t *testing.T) {
	root := newTree(t)
	outputFile := filepath.Join(t.TempDir(), "missing", "listing.csv")

	stdout, stderr, err := run(t, "scan", "-d", root, "-w", outputFile)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Error writing to file: "+outputFile)
	assert.True(t, strings.HasPrefix(stdout, header+"\n"))
}

func TestScan_MissingRoot(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "listing.csv")

	stdout, _, err := run(t, "scan", "-d", filepath.Join(tmpDir, "nope"), "-w", outputFile)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindScanFatal))
	assert.Empty(t, stdout)

	_, statErr := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(statErr), "no output file should be created")
}

func TestScan_MissingDirFlag(t *testing.T) {
	_, stderr, err := run(t, "scan")
	require.Error(t, err)
	assert.Contains(t, stderr, "Invalid parameter")
}

func TestScan_InvalidFormat(t *testing.T) {
	_, _, err := run(t, "scan", "-d", t.TempDir(), "-f", "xml")
	assert.Error(t, err)
}

func TestScan_Formats(t *testing.T) {
	root := newTree(t)

	tests := []struct {
		format string
		expect string
	}{
		{"csv", "File Names,File Size Bytes,"},
		{"json", `"file_count": 2`},
		{"yaml", "file_count: 2"},
		{"md", "| Files | 2 |"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := run(t, "scan", "-d", root, "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.expect)
		})
	}
}

func TestScan_ConfigFile(t *testing.T) {
	root := newTree(t)
	configFile := filepath.Join(t.TempDir(), "dirlist.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("path: "+root+"\nsha256: true\n"), 0644))

	stdout, _, err := run(t, "--config", configFile, "scan")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, header+", sha256\n"))
}

func TestScan_VerboseProgress(t *testing.T) {
	root := newTree(t)

	stdout, stderr, err := run(t, "-v", "scan", "-d", root, "--bar-width", "10")
	require.NoError(t, err)

	assert.Contains(t, stderr, " Loading: 1\r Loading: 2\r \nLoading Complete\n")
	assert.Contains(t, stderr, "1/2 0 B Processing Time: ")
	assert.Contains(t, stderr, "[**********] 100.0%\r \nComplete\n")
	assert.NotContains(t, stdout, "Loading")
}

func TestWriteOrPrint(t *testing.T) {
	gen, err := report.NewGenerator(report.FormatText, zap.NewNop())
	require.NoError(t, err)
	listing := models.NewInventoryReport(models.ScanOptions{IncludeMD5: true})

	var stdout, stderr bytes.Buffer
	require.NoError(t, writeOrPrint(gen, listing, "", &stdout, &stderr))
	assert.Equal(t, header+", md5\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestSize(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"size", "0"}, "0 B\n"},
		{[]string{"size", "1023"}, "1023.0 B\n"},
		{[]string{"size", "1536"}, "1.5 KB\n"},
		{[]string{"size", "1.5 KB"}, "1536\n"},
		{[]string{"size", "1.0", "MB"}, "1048576\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestSize_Invalid(t *testing.T) {
	_, _, err := run(t, "size", "lots")
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "b.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("hi"), 0644))

	stdout, _, err := run(t, "digest", "--md5", filePath)
	require.NoError(t, err)
	assert.Equal(t, "md5    49f68a5c8493ec2c0bf489821c21fc3b  "+filePath+"\n", stdout)

	stdout, _, err = run(t, "digest", filePath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "md5 "))
	assert.True(t, strings.HasPrefix(lines[1], "sha1 "))
	assert.True(t, strings.HasPrefix(lines[2], "sha256 "))
}

func TestDigest_MissingFile(t *testing.T) {
	_, _, err := run(t, "digest", filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}
