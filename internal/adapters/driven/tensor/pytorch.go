package tensor

import (
	"fmt"
	"io"
	"os"

	"github.com/nlpodyssey/gopickle/pytorch"
	"github.com/spf13/afero"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// loadPyTorch decodes a file written by torch.save.
// The pickle decoder needs a real file, so non-OS filesystems are staged
// through a temporary copy.
func (l *Loader) loadPyTorch(path string) (domain.PointCloud, error) {
	filename := path
	if _, ok := l.fs.(*afero.OsFs); !ok {
		staged, cleanup, err := l.stage(path)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		filename = staged
	}

	obj, err := pytorch.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("pytorch: %w", err)
	}

	t, ok := obj.(*pytorch.Tensor)
	if !ok {
		return nil, fmt.Errorf("%w: pytorch file holds %T, expected a tensor", domain.ErrUnsupportedType, obj)
	}
	return fromTensor(t)
}

func (l *Loader) stage(path string) (string, func(), error) {
	src, err := l.fs.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("pytorch: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "embedmap-*.pt")
	if err != nil {
		return "", nil, fmt.Errorf("pytorch: staging: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("pytorch: staging: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("pytorch: staging: %w", err)
	}
	return tmp.Name(), cleanup, nil
}

// fromTensor reads a [N, 2] tensor honouring its storage offset and strides.
func fromTensor(t *pytorch.Tensor) (domain.PointCloud, error) {
	if err := checkShape(t.Size); err != nil {
		return nil, err
	}

	var at func(int) float64
	var length int
	switch s := t.Source.(type) {
	case *pytorch.FloatStorage:
		at, length = func(i int) float64 { return float64(s.Data[i]) }, len(s.Data)
	case *pytorch.DoubleStorage:
		at, length = func(i int) float64 { return s.Data[i] }, len(s.Data)
	case *pytorch.HalfStorage:
		at, length = func(i int) float64 { return float64(s.Data[i]) }, len(s.Data)
	case *pytorch.BFloat16Storage:
		at, length = func(i int) float64 { return float64(s.Data[i]) }, len(s.Data)
	default:
		return nil, fmt.Errorf("%w: tensor storage %T (expected float, double, half or bfloat16)", domain.ErrUnsupportedType, t.Source)
	}

	n := t.Size[0]
	stride := t.Stride
	if len(stride) != 2 {
		stride = []int{2, 1}
	}

	cloud := make(domain.PointCloud, n)
	for i := range cloud {
		ix := t.StorageOffset + i*stride[0]
		iy := ix + stride[1]
		if ix < 0 || iy < 0 || ix >= length || iy >= length {
			return nil, fmt.Errorf("pytorch: tensor row %d lies outside storage of %d values", i, length)
		}
		cloud[i] = domain.Coordinate{X: at(ix), Y: at(iy)}
	}
	return cloud, nil
}
