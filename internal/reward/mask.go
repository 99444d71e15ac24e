package reward

import "fmt"

// Mask is an elementwise boolean result over a column.
type Mask []bool

// GreaterInt returns col[i] > v for every i.
func GreaterInt(col []int, v int) Mask {
	m := make(Mask, len(col))
	for i, x := range col {
		m[i] = x > v
	}
	return m
}

// AtLeastInt returns col[i] >= v for every i.
func AtLeastInt(col []int, v int) Mask {
	m := make(Mask, len(col))
	for i, x := range col {
		m[i] = x >= v
	}
	return m
}

// GreaterFloat returns col[i] > v for every i.
func GreaterFloat(col []float64, v float64) Mask {
	m := make(Mask, len(col))
	for i, x := range col {
		m[i] = x > v
	}
	return m
}

// And returns a[i] && b[i]. It panics if the masks differ in length.
func And(a, b Mask) Mask {
	mustSameLen(a, b)
	m := make(Mask, len(a))
	for i := range a {
		m[i] = a[i] && b[i]
	}
	return m
}

// Or returns a[i] || b[i]. It panics if the masks differ in length.
func Or(a, b Mask) Mask {
	mustSameLen(a, b)
	m := make(Mask, len(a))
	for i := range a {
		m[i] = a[i] || b[i]
	}
	return m
}

// Count returns the number of set elements.
func (m Mask) Count() int {
	var n int
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Where copies src[i] into dst[i] wherever m[i] is set, and returns dst.
// All three must have the same length.
func Where(dst, src []string, m Mask) []string {
	if len(dst) != len(m) || len(src) != len(m) {
		panic(fmt.Sprintf("reward: where: lengths dst=%d src=%d mask=%d", len(dst), len(src), len(m)))
	}
	for i, set := range m {
		if set {
			dst[i] = src[i]
		}
	}
	return dst
}

func mustSameLen(a, b Mask) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("reward: mask length mismatch: %d != %d", len(a), len(b)))
	}
}
