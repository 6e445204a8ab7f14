package imagefile

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG renders d and atomically replaces path with the PNG. The
// destination directory must exist.
func WritePNG(path string, d Drawer, opts ...Option) error {
	img, err := Render(d, opts...)
	if err != nil {
		return err
	}

	return WriteFile(path, img)
}

// WriteFile encodes img as PNG and atomically replaces path with it.
func WriteFile(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWrite, err)
	}

	return writeAtomic(path, buf.Bytes())
}

// writeAtomic writes data to a temp file next to path, syncs it and renames
// it over path. The temp file is removed on every failure.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrWrite, err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("%w: chmod: %w", ErrWrite, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrWrite, err)
	}

	return nil
}
