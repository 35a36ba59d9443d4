package pointio

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/planar/closest"
)

// ReadFile reads a point set from path, decompressing by extension.
func ReadFile(path string) ([]closest.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rc, err := CodecFromPath(path).NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer rc.Close()

	pts, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// WriteFile writes points to path, compressing by extension. The file is
// created or truncated.
func WriteFile(path string, points []closest.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	wc, err := CodecFromPath(path).NewWriter(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = Write(wc, points); err != nil {
		_ = wc.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return wc.Close()
}
