package catalog

// Index numbers the given categories from 1.
// The numbering follows the iteration order of the set, so it is only valid
// for the selection it was computed for; callers recompute it every time.
func Index[C comparable](categories map[C]struct{}) map[int]C {
	indexed := make(map[int]C, len(categories))
	i := 1
	for category := range categories {
		indexed[i] = category
		i++
	}
	return indexed
}
