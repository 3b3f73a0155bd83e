package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"sort"
)

// buildMultipart encodes data as form fields, in key order, followed by
// one part per existing file named file<index>. Paths that do not exist
// are skipped.
func buildMultipart(data url.Values, files []string, logger Logger) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, value := range data[key] {
			if err := w.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("failed to write form field %q: %w", key, err)
			}
		}
	}

	for i, path := range files {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			logger.Debugf("smsc: skipping attachment %q", path)
			continue
		}
		if err := writeFilePart(w, fmt.Sprintf("file%d", i), path); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open attachment: %w", err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create part %q: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to copy attachment %q: %w", path, err)
	}
	return nil
}
