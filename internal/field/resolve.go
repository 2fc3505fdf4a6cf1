package field

// Resolve returns the value a field should render: the external value when
// one is supplied, the fallback otherwise. Presence is decided by the
// pointer, so false, 0 and "" are all honoured as external values.
func Resolve[T any](external *T, fallback T) T {
	if external != nil {
		return *external
	}
	return fallback
}

// Ptr returns a pointer to v. It is a convenience for supplying controlled
// and default values inline.
func Ptr[T any](v T) *T {
	return &v
}
