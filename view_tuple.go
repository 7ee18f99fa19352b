package silo

// Tuple-arity accessors for ThreadSafeView, arities 2..8. Arity 1 lives in
// view.go alongside the view's other single-component operations; this
// file follows tuple.go's own shape, scoped down from 1..16 to 1..8 since
// the common case for a parallel prestep's shared reads is a handful of
// components, not the full arity the store-level facility supports.

// ViewGet2 fetches 2 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet2[T1 ThreadShareable, T2 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	return pT1, pT2
}

// ViewTryGet2 fetches 2 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet2[T1 ThreadShareable, T2 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2) {
	if !v.store.IsValid(h) {
		return nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	return vT1, vT2
}

// ViewGet3 fetches 3 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet3[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	pT3 := get[T3](v.store, h)
	return pT1, pT2, pT3
}

// ViewTryGet3 fetches 3 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet3[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3) {
	if !v.store.IsValid(h) {
		return nil, nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	vT3, _ := tryGet[T3](v.store, h)
	return vT1, vT2, vT3
}

// ViewGet4 fetches 4 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet4[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	pT3 := get[T3](v.store, h)
	pT4 := get[T4](v.store, h)
	return pT1, pT2, pT3, pT4
}

// ViewTryGet4 fetches 4 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet4[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4) {
	if !v.store.IsValid(h) {
		return nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	vT3, _ := tryGet[T3](v.store, h)
	vT4, _ := tryGet[T4](v.store, h)
	return vT1, vT2, vT3, vT4
}

// ViewGet5 fetches 5 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet5[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	pT3 := get[T3](v.store, h)
	pT4 := get[T4](v.store, h)
	pT5 := get[T5](v.store, h)
	return pT1, pT2, pT3, pT4, pT5
}

// ViewTryGet5 fetches 5 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet5[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5) {
	if !v.store.IsValid(h) {
		return nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	vT3, _ := tryGet[T3](v.store, h)
	vT4, _ := tryGet[T4](v.store, h)
	vT5, _ := tryGet[T5](v.store, h)
	return vT1, vT2, vT3, vT4, vT5
}

// ViewGet6 fetches 6 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet6[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	pT3 := get[T3](v.store, h)
	pT4 := get[T4](v.store, h)
	pT5 := get[T5](v.store, h)
	pT6 := get[T6](v.store, h)
	return pT1, pT2, pT3, pT4, pT5, pT6
}

// ViewTryGet6 fetches 6 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet6[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6) {
	if !v.store.IsValid(h) {
		return nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	vT3, _ := tryGet[T3](v.store, h)
	vT4, _ := tryGet[T4](v.store, h)
	vT5, _ := tryGet[T5](v.store, h)
	vT6, _ := tryGet[T6](v.store, h)
	return vT1, vT2, vT3, vT4, vT5, vT6
}

// ViewGet7 fetches 7 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet7[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	pT3 := get[T3](v.store, h)
	pT4 := get[T4](v.store, h)
	pT5 := get[T5](v.store, h)
	pT6 := get[T6](v.store, h)
	pT7 := get[T7](v.store, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7
}

// ViewTryGet7 fetches 7 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet7[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	if !v.store.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	vT3, _ := tryGet[T3](v.store, h)
	vT4, _ := tryGet[T4](v.store, h)
	vT5, _ := tryGet[T5](v.store, h)
	vT6, _ := tryGet[T6](v.store, h)
	vT7, _ := tryGet[T7](v.store, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7
}

// ViewGet8 fetches 8 components from a single entity by shared
// reference, panicking if the handle is invalid or any is absent.
func ViewGet8[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable, T8 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	pT1 := get[T1](v.store, h)
	pT2 := get[T2](v.store, h)
	pT3 := get[T3](v.store, h)
	pT4 := get[T4](v.store, h)
	pT5 := get[T5](v.store, h)
	pT6 := get[T6](v.store, h)
	pT7 := get[T7](v.store, h)
	pT8 := get[T8](v.store, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8
}

// ViewTryGet8 fetches 8 components from a single entity by shared
// reference. Each slot is nil independently when the handle is invalid or
// that component is absent; this variant never panics.
func ViewTryGet8[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable, T8 ThreadShareable](v *ThreadSafeView, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	if !v.store.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](v.store, h)
	vT2, _ := tryGet[T2](v.store, h)
	vT3, _ := tryGet[T3](v.store, h)
	vT4, _ := tryGet[T4](v.store, h)
	vT5, _ := tryGet[T5](v.store, h)
	vT6, _ := tryGet[T6](v.store, h)
	vT7, _ := tryGet[T7](v.store, h)
	vT8, _ := tryGet[T8](v.store, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8
}

