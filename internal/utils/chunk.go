package utils

// Chunk partitions items into consecutive groups of at most size elements,
// preserving order within and across groups. The last group may be smaller.
// Returns nil for empty input or a non-positive size.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 || size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
