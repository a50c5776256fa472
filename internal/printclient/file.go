package printclient

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
)

const defaultFileName = "file"

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// WriteTempFile decodes base64 file content received from the admin UI into
// a temp file under a private directory, returning the file's path. The
// original filename is sanitized before it becomes part of the temp name.
func WriteTempFile(base64Content, originalName string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(base64Content)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(os.TempDir(), ".dui-admin", "tmp")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, "file_*_"+sanitizeFileName(originalName))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func sanitizeFileName(name string) string {
	if name == "" {
		return defaultFileName
	}
	return unsafeNameChars.ReplaceAllString(name, "_")
}
