package silo

// Code in this file follows the shape of the teacher's own generated
// accessors (AccessibleComponent[T], FactoryNewComponent[T]) extended to
// tuples of 1..16 components, standing in for the variadic-tuple
// code-generation machinery the source treats as an external schema (see
// spec.md PURPOSE & SCOPE). Each arity is mechanical: N type-keyed bag
// lookups bundled into a fixed-shape return.

import (
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// distinctTypes panics if any two types in ts are identical. GetMut/TryGetMut
// tuple variants require pairwise-distinct component types so the caller can
// hold multiple exclusive references into the same bag without aliasing;
// arbitrary-arity pairwise distinctness has no static Go representation, so
// the precondition is checked here and treated like any other programmer
// error (panic, per spec.md ERROR HANDLING DESIGN).
func distinctTypes(ts ...reflect.Type) {
	for i := 0; i < len(ts); i++ {
		for j := i + 1; j < len(ts); j++ {
			if ts[i] == ts[j] {
				panic(bark.AddTrace(DuplicateComponentTypeError{Type: ts[i].String()}))
			}
		}
	}
}

// Get1 fetches 1 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get1[T1 any](s *Store, h Handle) (*T1) {
	pT1 := get[T1](s, h)
	return pT1
}

// GetMut1 fetches 1 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut1[T1 any](s *Store, h Handle) (*T1) {
	pT1 := get[T1](s, h)
	return pT1
}

// TryGet1 fetches 1 component from a single entity, returning ok=false
// instead of panicking when the handle is invalid or the component is absent.
func TryGet1[T1 any](s *Store, h Handle) (*T1, bool) {
	if !s.IsValid(h) {
		return nil, false
	}
	return tryGet[T1](s, h)
}

// TryGetMut1 fetches 1 component from a single entity by exclusive
// reference, returning ok=false instead of panicking on an invalid handle or
// absent component.
func TryGetMut1[T1 any](s *Store, h Handle) (*T1, bool) {
	if !s.IsValid(h) {
		return nil, false
	}
	return tryGet[T1](s, h)
}

// Get2 fetches 2 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get2[T1 any, T2 any](s *Store, h Handle) (*T1, *T2) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	return pT1, pT2
}

// GetMut2 fetches 2 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut2[T1 any, T2 any](s *Store, h Handle) (*T1, *T2) {
	distinctTypes(typeOf[T1](), typeOf[T2]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	return pT1, pT2
}

// TryGet2 fetches 2 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet2[T1 any, T2 any](s *Store, h Handle) (*T1, *T2) {
	if !s.IsValid(h) {
		return nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	return vT1, vT2
}

// TryGetMut2 fetches 2 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut2[T1 any, T2 any](s *Store, h Handle) (*T1, *T2) {
	distinctTypes(typeOf[T1](), typeOf[T2]())
	if !s.IsValid(h) {
		return nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	return vT1, vT2
}

// Get3 fetches 3 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get3[T1 any, T2 any, T3 any](s *Store, h Handle) (*T1, *T2, *T3) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	return pT1, pT2, pT3
}

// GetMut3 fetches 3 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut3[T1 any, T2 any, T3 any](s *Store, h Handle) (*T1, *T2, *T3) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	return pT1, pT2, pT3
}

// TryGet3 fetches 3 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet3[T1 any, T2 any, T3 any](s *Store, h Handle) (*T1, *T2, *T3) {
	if !s.IsValid(h) {
		return nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	return vT1, vT2, vT3
}

// TryGetMut3 fetches 3 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut3[T1 any, T2 any, T3 any](s *Store, h Handle) (*T1, *T2, *T3) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3]())
	if !s.IsValid(h) {
		return nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	return vT1, vT2, vT3
}

// Get4 fetches 4 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get4[T1 any, T2 any, T3 any, T4 any](s *Store, h Handle) (*T1, *T2, *T3, *T4) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	return pT1, pT2, pT3, pT4
}

// GetMut4 fetches 4 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut4[T1 any, T2 any, T3 any, T4 any](s *Store, h Handle) (*T1, *T2, *T3, *T4) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	return pT1, pT2, pT3, pT4
}

// TryGet4 fetches 4 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet4[T1 any, T2 any, T3 any, T4 any](s *Store, h Handle) (*T1, *T2, *T3, *T4) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	return vT1, vT2, vT3, vT4
}

// TryGetMut4 fetches 4 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut4[T1 any, T2 any, T3 any, T4 any](s *Store, h Handle) (*T1, *T2, *T3, *T4) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	return vT1, vT2, vT3, vT4
}

// Get5 fetches 5 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get5[T1 any, T2 any, T3 any, T4 any, T5 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	return pT1, pT2, pT3, pT4, pT5
}

// GetMut5 fetches 5 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut5[T1 any, T2 any, T3 any, T4 any, T5 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	return pT1, pT2, pT3, pT4, pT5
}

// TryGet5 fetches 5 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet5[T1 any, T2 any, T3 any, T4 any, T5 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	return vT1, vT2, vT3, vT4, vT5
}

// TryGetMut5 fetches 5 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut5[T1 any, T2 any, T3 any, T4 any, T5 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	return vT1, vT2, vT3, vT4, vT5
}

// Get6 fetches 6 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6
}

// GetMut6 fetches 6 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6
}

// TryGet6 fetches 6 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6
}

// TryGetMut6 fetches 6 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6
}

// Get7 fetches 7 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7
}

// GetMut7 fetches 7 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7
}

// TryGet7 fetches 7 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7
}

// TryGetMut7 fetches 7 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7
}

// Get8 fetches 8 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8
}

// GetMut8 fetches 8 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8
}

// TryGet8 fetches 8 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8
}

// TryGetMut8 fetches 8 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8
}

// Get9 fetches 9 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get9[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9
}

// GetMut9 fetches 9 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut9[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9
}

// TryGet9 fetches 9 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet9[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9
}

// TryGetMut9 fetches 9 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut9[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9
}

// Get10 fetches 10 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get10[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10
}

// GetMut10 fetches 10 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut10[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10
}

// TryGet10 fetches 10 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet10[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10
}

// TryGetMut10 fetches 10 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut10[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10
}

// Get11 fetches 11 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get11[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11
}

// GetMut11 fetches 11 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut11[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11
}

// TryGet11 fetches 11 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet11[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11
}

// TryGetMut11 fetches 11 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut11[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11
}

// Get12 fetches 12 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get12[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12
}

// GetMut12 fetches 12 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut12[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12
}

// TryGet12 fetches 12 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet12[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12
}

// TryGetMut12 fetches 12 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut12[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12
}

// Get13 fetches 13 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get13[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13
}

// GetMut13 fetches 13 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut13[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13
}

// TryGet13 fetches 13 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet13[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13
}

// TryGetMut13 fetches 13 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut13[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13
}

// Get14 fetches 14 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get14[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	pT14 := get[T14](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13, pT14
}

// GetMut14 fetches 14 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut14[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13](), typeOf[T14]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	pT14 := get[T14](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13, pT14
}

// TryGet14 fetches 14 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet14[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	vT14, _ := tryGet[T14](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13, vT14
}

// TryGetMut14 fetches 14 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut14[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13](), typeOf[T14]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	vT14, _ := tryGet[T14](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13, vT14
}

// Get15 fetches 15 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get15[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	pT14 := get[T14](s, h)
	pT15 := get[T15](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13, pT14, pT15
}

// GetMut15 fetches 15 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut15[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13](), typeOf[T14](), typeOf[T15]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	pT14 := get[T14](s, h)
	pT15 := get[T15](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13, pT14, pT15
}

// TryGet15 fetches 15 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet15[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	vT14, _ := tryGet[T14](s, h)
	vT15, _ := tryGet[T15](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13, vT14, vT15
}

// TryGetMut15 fetches 15 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut15[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13](), typeOf[T14](), typeOf[T15]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	vT14, _ := tryGet[T14](s, h)
	vT15, _ := tryGet[T15](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13, vT14, vT15
}

// Get16 fetches 16 component(s) from a single entity by shared reference,
// panicking if the handle is invalid or any component is absent.
func Get16[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any, T16 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15, *T16) {
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	pT14 := get[T14](s, h)
	pT15 := get[T15](s, h)
	pT16 := get[T16](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13, pT14, pT15, pT16
}

// GetMut16 fetches 16 component(s) from a single entity by exclusive
// reference. Panics if the handle is invalid, any component is absent, or
// (for n>1) any two of the requested types coincide.
func GetMut16[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any, T16 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15, *T16) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13](), typeOf[T14](), typeOf[T15](), typeOf[T16]())
	pT1 := get[T1](s, h)
	pT2 := get[T2](s, h)
	pT3 := get[T3](s, h)
	pT4 := get[T4](s, h)
	pT5 := get[T5](s, h)
	pT6 := get[T6](s, h)
	pT7 := get[T7](s, h)
	pT8 := get[T8](s, h)
	pT9 := get[T9](s, h)
	pT10 := get[T10](s, h)
	pT11 := get[T11](s, h)
	pT12 := get[T12](s, h)
	pT13 := get[T13](s, h)
	pT14 := get[T14](s, h)
	pT15 := get[T15](s, h)
	pT16 := get[T16](s, h)
	return pT1, pT2, pT3, pT4, pT5, pT6, pT7, pT8, pT9, pT10, pT11, pT12, pT13, pT14, pT15, pT16
}

// TryGet16 fetches 16 components from a single entity by shared reference.
// Each slot is nil independently when the handle is invalid or that
// component is absent; this variant never panics.
func TryGet16[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any, T16 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15, *T16) {
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	vT14, _ := tryGet[T14](s, h)
	vT15, _ := tryGet[T15](s, h)
	vT16, _ := tryGet[T16](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13, vT14, vT15, vT16
}

// TryGetMut16 fetches 16 components from a single entity by exclusive
// reference. Panics if two requested types coincide (the aliasing
// precondition is not optional even in the fallible variant); each slot is
// nil independently when the handle is invalid or that component is absent.
func TryGetMut16[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any, T13 any, T14 any, T15 any, T16 any](s *Store, h Handle) (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11, *T12, *T13, *T14, *T15, *T16) {
	distinctTypes(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6](), typeOf[T7](), typeOf[T8](), typeOf[T9](), typeOf[T10](), typeOf[T11](), typeOf[T12](), typeOf[T13](), typeOf[T14](), typeOf[T15](), typeOf[T16]())
	if !s.IsValid(h) {
		return nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil
	}
	vT1, _ := tryGet[T1](s, h)
	vT2, _ := tryGet[T2](s, h)
	vT3, _ := tryGet[T3](s, h)
	vT4, _ := tryGet[T4](s, h)
	vT5, _ := tryGet[T5](s, h)
	vT6, _ := tryGet[T6](s, h)
	vT7, _ := tryGet[T7](s, h)
	vT8, _ := tryGet[T8](s, h)
	vT9, _ := tryGet[T9](s, h)
	vT10, _ := tryGet[T10](s, h)
	vT11, _ := tryGet[T11](s, h)
	vT12, _ := tryGet[T12](s, h)
	vT13, _ := tryGet[T13](s, h)
	vT14, _ := tryGet[T14](s, h)
	vT15, _ := tryGet[T15](s, h)
	vT16, _ := tryGet[T16](s, h)
	return vT1, vT2, vT3, vT4, vT5, vT6, vT7, vT8, vT9, vT10, vT11, vT12, vT13, vT14, vT15, vT16
}
