package webserver

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ValidateFileUpload checks an uploaded file against the server policy
// before any counting happens: non-empty name, size cap, extension
// allowlist, no path traversal, and a cheap sniff that the content is
// text. The file's read position is restored before returning.
func ValidateFileUpload(file multipart.File, header *multipart.FileHeader, cfg Config) error {
	if strings.TrimSpace(header.Filename) == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if header.Size > cfg.MaxFileSizeBytes {
		return fmt.Errorf("file too large: %d bytes (max %d)", header.Size, cfg.MaxFileSizeBytes)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !cfg.ExtensionAllowed(ext) {
		return fmt.Errorf("invalid file type: %s (allowed: %s)", ext, strings.Join(cfg.AllowedExtensions, ", "))
	}

	if strings.Contains(header.Filename, "..") || strings.ContainsAny(header.Filename, `/\`) {
		return fmt.Errorf("invalid filename: contains path traversal characters")
	}

	buffer := make([]byte, 512)

	n, err := file.Read(buffer)
	if err != nil && n == 0 && header.Size > 0 {
		return fmt.Errorf("cannot read file content")
	}

	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("cannot rewind file content: %w", err)
	}

	// Control bytes other than tab, newline, carriage return, vertical
	// tab, and form feed mark the upload as binary. Bytes >= 0x80 pass,
	// so multi-byte encoded text is accepted and counted byte-wise.
	for i := 0; i < n; i++ {
		b := buffer[i]
		if b < 32 && b != '\t' && b != '\n' && b != '\r' && b != '\v' && b != '\f' {
			return fmt.Errorf("file contains invalid characters (not a text file)")
		}
	}

	return nil
}

// SanitizeFilename strips path separators and shell-hostile characters
// from a client-supplied filename so it is safe to echo back as a
// result label.
func SanitizeFilename(filename string) string {
	replacer := strings.NewReplacer(
		"/", "",
		`\`, "",
		"..", "",
		":", "",
		"*", "",
		"?", "",
		"<", "",
		">", "",
		"|", "",
		"\"", "",
	)

	filename = strings.TrimSpace(replacer.Replace(filename))
	if filename == "" {
		filename = "upload"
	}

	return filename
}
