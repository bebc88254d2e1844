package tensor

import (
	"fmt"

	"github.com/sbinet/npyio"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

func (l *Loader) loadNumPy(path string) (domain.PointCloud, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("npy: %w", err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("npy: failed to read header: %w", err)
	}

	shape := r.Header.Descr.Shape
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	n := shape[0]

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("npy: %w", err)
	}

	switch r.Header.Descr.Type {
	case "<f8":
		if err := fitsFile(n, 8, info.Size()); err != nil {
			return nil, err
		}
		raw := make([]float64, n*2)
		if err := r.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy: %w", err)
		}
		return toCloud(rowMajor(raw, n, r.Header.Descr.Fortran), shape)
	case "<f4":
		if err := fitsFile(n, 4, info.Size()); err != nil {
			return nil, err
		}
		raw := make([]float32, n*2)
		if err := r.Read(&raw); err != nil {
			return nil, fmt.Errorf("npy: %w", err)
		}
		return toCloud(rowMajor(raw, n, r.Header.Descr.Fortran), shape)
	default:
		return nil, fmt.Errorf("%w: npy dtype %s (expected <f4 or <f8)", domain.ErrUnsupportedType, r.Header.Descr.Type)
	}
}

// fitsFile rejects headers declaring more rows than the file could hold, so
// a forged shape cannot drive the allocation.
func fitsFile(n, width int, size int64) error {
	if int64(n) > size/int64(2*width) {
		return fmt.Errorf("%w: npy shape of %d rows exceeds file size %d", domain.ErrInvalidInput, n, size)
	}
	return nil
}

// rowMajor reorders a column-major [n, 2] buffer into row-major order.
func rowMajor[T float32 | float64](raw []T, n int, fortran bool) []T {
	if !fortran {
		return raw
	}
	out := make([]T, len(raw))
	for i := 0; i < n; i++ {
		out[2*i] = raw[i]
		out[2*i+1] = raw[n+i]
	}
	return out
}
