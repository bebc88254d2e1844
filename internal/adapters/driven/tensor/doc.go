// Package tensor loads N×2 coordinate arrays from embedding files.
//
// Supported formats, chosen by file extension:
//
//   - .pt, .pth: PyTorch tensors saved with torch.save
//   - .safetensors: a single F32 or F64 tensor
//   - .npy: NumPy arrays of dtype <f4 or <f8
//
// Every loader rejects arrays whose shape is not [N, 2] with a
// *domain.ShapeError. Values are widened to float64; finiteness is checked
// later by the normaliser.
package tensor
