package cliargs

func valueOrDefault[T any](ptr *T, def T) T {
	if ptr != nil {
		return *ptr
	}
	return def
}

func ptr[T any](v T) *T {
	return &v
}

// defaultAs returns v when it holds a T, otherwise T's zero value.
func defaultAs[T any](v any) (t T) {
	if d, ok := v.(T); ok {
		t = d
	}
	return t
}
