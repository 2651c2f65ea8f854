package transport

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// Part is one field of a multipart/form-data body. A Part with a Filename
// is sent as a file.
type Part struct {
	Name        string
	Filename    string
	ContentType string
	Content     []byte
}

// FilePart reads the file at path into a Part named name.
func FilePart(name, path, contentType string) (Part, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-chosen upload
	if err != nil {
		return Part{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Part{
		Name:        name,
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Content:     data,
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart renders parts and returns the body with its content
// type, boundary included.
func encodeMultipart(parts []Part) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		disposition := fmt.Sprintf(`form-data; name="%s"`, quoteEscaper.Replace(p.Name))
		if p.Filename != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, quoteEscaper.Replace(p.Filename))
		}
		h.Set("Content-Disposition", disposition)

		switch {
		case p.ContentType != "":
			h.Set("Content-Type", p.ContentType)
		case p.Filename != "":
			h.Set("Content-Type", "application/octet-stream")
		}

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating part %q: %w", p.Name, err)
		}
		if _, err := pw.Write(p.Content); err != nil {
			return nil, "", fmt.Errorf("writing part %q: %w", p.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
