package render

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Destination says where the rendered report goes
type Destination struct {
	// Path is an explicit output file; empty = stdout unless Save is set
	Path string
	// Save derives a dated filename (standup_YYYYMMDD.<ext>) in the working
	// directory
	Save bool
	// Now is swappable in tests; nil = time.Now
	Now func() time.Time
}

// Write delivers the rendered report. It returns the file path written, or
// "" when the report went to the writer.
func (d Destination) Write(w io.Writer, content string, format Format) (string, error) {
	path := d.Path
	if path == "" && d.Save {
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		path = safeFilename(fmt.Sprintf("standup_%s", now().Format("20060102")), format.Ext())
	}

	if path == "" {
		_, err := io.WriteString(w, content)
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("render: write %s: %w", path, err)
	}
	return path, nil
}

// safeFilename appends a counter instead of overwriting an existing report
func safeFilename(base, ext string) string {
	name := fmt.Sprintf("%s.%s", base, ext)
	for count := 1; ; count++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s_%d.%s", base, count, ext)
	}
}
