package tensor

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// safetensorsFile builds a safetensors payload holding the given tensors.
func safetensorsFile(t *testing.T, tensors map[string]fixtureTensor) []byte {
	t.Helper()

	header := map[string]any{"__metadata__": map[string]string{"format": "pt"}}
	var payload bytes.Buffer
	for _, name := range sortedKeys(tensors) {
		ft := tensors[name]
		start := payload.Len()
		for _, v := range ft.values {
			switch ft.dtype {
			case "F32":
				require.NoError(t, binary.Write(&payload, binary.LittleEndian, float32(v)))
			default:
				require.NoError(t, binary.Write(&payload, binary.LittleEndian, v))
			}
		}
		header[name] = map[string]any{
			"dtype":        ft.dtype,
			"shape":        ft.shape,
			"data_offsets": []int{start, payload.Len()},
		}
	}

	headerJSON, err := json.Marshal(header)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint64(len(headerJSON))))
	out.Write(headerJSON)
	out.Write(payload.Bytes())
	return out.Bytes()
}

type fixtureTensor struct {
	dtype  string
	shape  []int
	values []float64
}

func sortedKeys(m map[string]fixtureTensor) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// npyFile builds a version 1.0 .npy payload.
func npyFile(t *testing.T, descr string, fortran bool, shape []int, values []float64) []byte {
	t.Helper()

	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = fmt.Sprint(d)
	}
	shapeStr := "(" + strings.Join(dims, ", ")
	if len(shape) == 1 {
		shapeStr += ","
	}
	shapeStr += ")"

	order := "False"
	if fortran {
		order = "True"
	}
	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': %s, }", descr, order, shapeStr)
	// Magic (6) + version (2) + length (2) + header must be a multiple of 64.
	pad := 64 - (10+len(header)+1)%64
	header += strings.Repeat(" ", pad%64) + "\n"

	var out bytes.Buffer
	out.WriteString("\x93NUMPY")
	out.Write([]byte{1, 0})
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint16(len(header))))
	out.WriteString(header)
	for _, v := range values {
		switch descr {
		case "<f4":
			require.NoError(t, binary.Write(&out, binary.LittleEndian, math.Float32bits(float32(v))))
		default:
			require.NoError(t, binary.Write(&out, binary.LittleEndian, math.Float64bits(v)))
		}
	}
	return out.Bytes()
}
