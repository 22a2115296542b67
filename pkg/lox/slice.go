package lox

// Map differs from lo.Map in that the iteratee does not take an index.
// The result is never nil, so it always encodes as a JSON array.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
