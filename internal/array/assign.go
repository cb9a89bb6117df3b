package array

// Assign, AssignConverted and Fill overwrite elements in place with plain Go
// assignment and run no Releaser hooks. MoveAssign hands the destination's
// old elements to the source. TryAssignConverted and MoveAssignConverted
// build a temporary, swap it in and release the old elements.

// Assign copies every element of src into a. Self-assignment is a no-op.
func (a *Array[T, S]) Assign(src *Array[T, S]) {
	if a == src {
		return
	}
	a.mustLive()
	src.mustLive()
	copy(a.data, src.data)
}

// AssignConverted sets element i of dst to conv(src element i).
func AssignConverted[T, U any, S Extents](dst *Array[T, S], src *Array[U, S], conv func(U) T) {
	if sameArray(dst, src) {
		return
	}
	dst.mustLive()
	src.mustLive()
	for i, v := range src.data {
		dst.data[i] = conv(v)
	}
}

// TryAssignConverted is AssignConverted with a fallible conversion.
//
// Every element is converted before dst is touched: on failure the error is
// returned unmodified, the converted values are released and dst keeps its
// previous contents. On success the previous elements of dst are released,
// last first.
func TryAssignConverted[T, U any, S Extents](dst *Array[T, S], src *Array[U, S], conv func(U) (T, error)) error {
	if sameArray(dst, src) {
		return nil
	}
	dst.mustLive()
	tmp, err := TryConvertCopy(src, conv)
	if err != nil {
		return err
	}
	dst.Swap(tmp)
	tmp.Release()
	return nil
}

// MoveAssign moves every element of src into a. The elements a held before
// end up in src, which releases them when it is released. Self-assignment
// is a no-op.
func (a *Array[T, S]) MoveAssign(src *Array[T, S]) {
	a.Swap(src)
}

// MoveAssignConverted sets element i of dst to conv(src element i), resets
// each source element to its zero value and releases the previous elements
// of dst, last first.
func MoveAssignConverted[T, U any, S Extents](dst *Array[T, S], src *Array[U, S], conv func(U) T) {
	if sameArray(dst, src) {
		return
	}
	dst.mustLive()
	tmp := ConvertMove(src, conv)
	dst.Swap(tmp)
	tmp.Release()
}

// Swap exchanges the contents of a and b slot by slot. A pointer obtained
// from a before the swap afterwards observes b's former value.
func (a *Array[T, S]) Swap(b *Array[T, S]) {
	if a == b {
		return
	}
	a.mustLive()
	b.mustLive()
	for i := range a.data {
		a.data[i], b.data[i] = b.data[i], a.data[i]
	}
}

// Swap exchanges the contents of a and b. See Array.Swap.
func Swap[T any, S Extents](a, b *Array[T, S]) {
	a.Swap(b)
}

// Fill sets every element to v.
func (a *Array[T, S]) Fill(v T) {
	a.mustLive()
	for i := range a.data {
		a.data[i] = v
	}
}

// sameArray reports whether dst and src are the same instance, which can
// only happen when T and U are the same type.
func sameArray[T, U any, S Extents](dst *Array[T, S], src *Array[U, S]) bool {
	return any(dst) == any(src)
}
