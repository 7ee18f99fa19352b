package silo

// Tuple-arity accessors for Cursor, arities 2..8. Arity 1 lives in
// cursor.go; this file mirrors view_tuple.go, scoped the same way and for
// the same reason.

// CursorGet2 fetches 2 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet2[T1 ThreadShareable, T2 ThreadShareable](c *Cursor) (*T1, *T2) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	return pT1, pT2
}

// CursorGetMut2 fetches 2 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut2[T1 ThreadShareable, T2 ThreadShareable](c *Cursor) (*T1, *T2) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	return pT1, pT2
}

// CursorTryGet2 fetches 2 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet2[T1 ThreadShareable, T2 ThreadShareable](c *Cursor) (*T1, *T2) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	return vT1, vT2
}

// CursorTryGetMut2 fetches 2 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut2[T1 ThreadShareable, T2 ThreadShareable](c *Cursor) (*T1, *T2) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	return vT1, vT2
}

// CursorGet3 fetches 3 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet3[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable](c *Cursor) (*T1, *T2, *T3) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	return pT1, pT2, pT3
}

// CursorGetMut3 fetches 3 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut3[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable](c *Cursor) (*T1, *T2, *T3) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	return pT1, pT2, pT3
}

// CursorTryGet3 fetches 3 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet3[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable](c *Cursor) (*T1, *T2, *T3) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	return vT1, vT2, vT3
}

// CursorTryGetMut3 fetches 3 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut3[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable](c *Cursor) (*T1, *T2, *T3) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	return vT1, vT2, vT3
}

// CursorGet4 fetches 4 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet4[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	return pT1, pT2, pT3, pT4
}

// CursorGetMut4 fetches 4 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut4[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	return pT1, pT2, pT3, pT4
}

// CursorTryGet4 fetches 4 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet4[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	return vT1, vT2, vT3, vT4
}

// CursorTryGetMut4 fetches 4 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut4[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	return vT1, vT2, vT3, vT4
}

// CursorGet5 fetches 5 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet5[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5
}

// CursorGetMut5 fetches 5 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut5[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5
}

// CursorTryGet5 fetches 5 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet5[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5
}

// CursorTryGetMut5 fetches 5 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut5[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5
}

// CursorGet6 fetches 6 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet6[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	pT6 := get[T6](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5, pT6
}

// CursorGetMut6 fetches 6 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut6[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	pT6 := get[T6](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5, pT6
}

// CursorTryGet6 fetches 6 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet6[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	vT6, _ := tryGet[T6](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5, vT6
}

// CursorTryGetMut6 fetches 6 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut6[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	vT6, _ := tryGet[T6](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5, vT6
}

// CursorGet7 fetches 7 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet7[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	pT6 := get[T6](c.store, c.handle)
	pT7 := get[T7](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7
}

// CursorGetMut7 fetches 7 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut7[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	pT6 := get[T6](c.store, c.handle)
	pT7 := get[T7](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7
}

// CursorTryGet7 fetches 7 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet7[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	vT6, _ := tryGet[T6](c.store, c.handle)
	vT7, _ := tryGet[T7](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7
}

// CursorTryGetMut7 fetches 7 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut7[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	vT6, _ := tryGet[T6](c.store, c.handle)
	vT7, _ := tryGet[T7](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7
}

// CursorGet8 fetches 8 components from this cursor's entity by shared
// reference, panicking if any is absent.
func CursorGet8[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable, T8 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	c.mustLive()
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	pT6 := get[T6](c.store, c.handle)
	pT7 := get[T7](c.store, c.handle)
	pT8 := get[T8](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8
}

// CursorGetMut8 fetches 8 components from this cursor's entity by
// exclusive reference. Panics if any is absent or if two of the requested
// types coincide.
func CursorGetMut8[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable, T8 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8]())
	pT1 := get[T1](c.store, c.handle)
	pT2 := get[T2](c.store, c.handle)
	pT3 := get[T3](c.store, c.handle)
	pT4 := get[T4](c.store, c.handle)
	pT5 := get[T5](c.store, c.handle)
	pT6 := get[T6](c.store, c.handle)
	pT7 := get[T7](c.store, c.handle)
	pT8 := get[T8](c.store, c.handle)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8
}

// CursorTryGet8 fetches 8 components from this cursor's entity by
// shared reference. Each slot is nil independently when absent; never
// panics (beyond the cursor-removed check every Cursor method makes).
func CursorTryGet8[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable, T8 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	c.mustLive()
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	vT6, _ := tryGet[T6](c.store, c.handle)
	vT7, _ := tryGet[T7](c.store, c.handle)
	vT8, _ := tryGet[T8](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8
}

// CursorTryGetMut8 fetches 8 components from this cursor's entity by
// exclusive reference. Panics if two requested types coincide; each slot
// is nil independently when absent.
func CursorTryGetMut8[T1 ThreadShareable, T2 ThreadShareable, T3 ThreadShareable, T4 ThreadShareable, T5 ThreadShareable, T6 ThreadShareable, T7 ThreadShareable, T8 ThreadShareable](c *Cursor) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	c.mustLive()
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8]())
	vT1, _ := tryGet[T1](c.store, c.handle)
	vT2, _ := tryGet[T2](c.store, c.handle)
	vT3, _ := tryGet[T3](c.store, c.handle)
	vT4, _ := tryGet[T4](c.store, c.handle)
	vT5, _ := tryGet[T5](c.store, c.handle)
	vT6, _ := tryGet[T6](c.store, c.handle)
	vT7, _ := tryGet[T7](c.store, c.handle)
	vT8, _ := tryGet[T8](c.store, c.handle)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8
}
