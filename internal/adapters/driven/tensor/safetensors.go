package tensor

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/spf13/afero"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// preferredTensorNames are tried in order when a file holds several tensors.
var preferredTensorNames = []string{"embeddings", "embedding", "data"}

type safetensorsMeta struct {
	Dtype       string `json:"dtype"`
	Shape       []int  `json:"shape"`
	DataOffsets [2]int `json:"data_offsets"`
}

// loadSafetensors parses the 8-byte little-endian header length, the JSON
// header, and the raw payload of the selected tensor.
func (l *Loader) loadSafetensors(path string) (domain.PointCloud, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("safetensors: %w", err)
	}
	return decodeSafetensors(data)
}

func decodeSafetensors(data []byte) (domain.PointCloud, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("safetensors: file too small: %d bytes", len(data))
	}

	headerLen := binary.LittleEndian.Uint64(data[:8])
	if uint64(len(data))-8 < headerLen {
		return nil, fmt.Errorf("safetensors: header length %d exceeds file size", headerLen)
	}

	var header map[string]json.RawMessage
	if err := json.Unmarshal(data[8:8+headerLen], &header); err != nil {
		return nil, fmt.Errorf("safetensors: failed to parse header: %w", err)
	}
	delete(header, "__metadata__")

	name, err := selectTensor(header)
	if err != nil {
		return nil, err
	}

	var meta safetensorsMeta
	if err := json.Unmarshal(header[name], &meta); err != nil {
		return nil, fmt.Errorf("safetensors: failed to parse metadata of %q: %w", name, err)
	}
	if err := checkShape(meta.Shape); err != nil {
		return nil, err
	}

	var width int
	switch meta.Dtype {
	case "F32":
		width = 4
	case "F64":
		width = 8
	default:
		return nil, fmt.Errorf("%w: safetensors dtype %s (expected F32 or F64)", domain.ErrUnsupportedType, meta.Dtype)
	}

	base := 8 + int(headerLen)
	start, end := meta.DataOffsets[0], meta.DataOffsets[1]
	if start < 0 || end < start || end > len(data)-base {
		return nil, fmt.Errorf("%w: safetensors data range [%d:%d] exceeds file size (%d payload bytes)",
			domain.ErrInvalidInput, start, end, len(data)-base)
	}
	// Bound the row count by the payload before multiplying so huge shapes cannot overflow.
	if meta.Shape[0] > (end-start)/(2*width) || (end-start) != meta.Shape[0]*2*width {
		return nil, fmt.Errorf("%w: safetensors data size %d doesn't match shape %v",
			domain.ErrInvalidInput, end-start, meta.Shape)
	}
	count := meta.Shape[0] * 2
	start += base
	end += base

	payload := data[start:end]
	if width == 4 {
		values := make([]float32, count)
		for i := range values {
			values[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[i*4:]))
		}
		return toCloud(values, meta.Shape)
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return toCloud(values, meta.Shape)
}

func selectTensor(header map[string]json.RawMessage) (string, error) {
	if len(header) == 1 {
		for name := range header {
			return name, nil
		}
	}
	for _, name := range preferredTensorNames {
		if _, ok := header[name]; ok {
			return name, nil
		}
	}

	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	return "", fmt.Errorf("%w: safetensors file holds tensors %v; expected one tensor or one named %v",
		domain.ErrInvalidInput, names, preferredTensorNames)
}
