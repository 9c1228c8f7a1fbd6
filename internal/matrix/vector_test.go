package matrix

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewVectorValidation(t *testing.T) {
	tests := []struct {
		n         int
		shouldErr bool
	}{
		{1, false},
		{5, false},
		{0, true},
		{-3, true},
	}

	for _, tt := range tests {
		_, err := NewVector(tt.n)
		if tt.shouldErr && err == nil {
			t.Errorf("NewVector(%d) should fail but didn't", tt.n)
		}
		if !tt.shouldErr && err != nil {
			t.Errorf("NewVector(%d) failed: %v", tt.n, err)
		}
	}

	if _, err := NewVectorFromData(nil); err == nil {
		t.Error("NewVectorFromData(nil) should fail")
	}
}

func TestVectorFromDataCopies(t *testing.T) {
	data := []float64{1, 2, 3}
	v := mustVector(t, data)

	data[0] = 99
	if v.AtVec(0) != 1 {
		t.Error("NewVectorFromData should copy the buffer")
	}
}

func TestFromVecDenseColumnView(t *testing.T) {
	// A ColView of a Dense is a *VecDense with non-unit stride; adopting
	// one must not expose the rest of the backing matrix.
	m := mustMatrix(t, []float64{
		1, 100,
		2, 200,
		3, 300,
	}, 3, 2)

	col, ok := m.Dense().ColView(0).(*mat.VecDense)
	if !ok {
		t.Fatal("ColView should return a *mat.VecDense")
	}
	v := FromVecDense(col)

	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	assertEqualFloat64(t, 2, v.Mean(), "Mean of column view")

	v.AddConst(-2)
	for i, want := range []float64{-1, 0, 1} {
		assertEqualFloat64(t, want, v.AtVec(i), fmt.Sprintf("AddConst[%d]", i))
	}

	// The source matrix is untouched: the view was copied, and no element
	// of the backing array was rewritten.
	for i, want := range []float64{1, 2, 3} {
		assertEqualFloat64(t, want, m.At(i, 0), fmt.Sprintf("backing At(%d, 0)", i))
	}
	for i, want := range []float64{100, 200, 300} {
		assertEqualFloat64(t, want, m.At(i, 1), fmt.Sprintf("backing At(%d, 1)", i))
	}
}

func TestFromVecDenseUnitStrideAdopts(t *testing.T) {
	d := mat.NewVecDense(3, []float64{1, 2, 3})

	v := FromVecDense(d)
	v.SetVec(0, 9)

	// Unit-stride vectors are adopted, not copied.
	assertEqualFloat64(t, 9, d.AtVec(0), "adopted vector shares storage")
}

func TestVectorAtSet(t *testing.T) {
	v := mustVector(t, []float64{1, 2, 3})

	v.SetVec(1, 42)
	assertEqualFloat64(t, 42, v.AtVec(1), "After SetVec(1, 42)")
	assertEqualFloat64(t, 1, v.AtVec(0), "AtVec(0) untouched")
}

func TestVectorAddVec(t *testing.T) {
	a := mustVector(t, []float64{1, 2, 3})
	b := mustVector(t, []float64{10, 20, 30})

	if err := a.AddVec(b); err != nil {
		t.Fatalf("AddVec failed: %v", err)
	}
	for i, want := range []float64{11, 22, 33} {
		assertEqualFloat64(t, want, a.AtVec(i), fmt.Sprintf("AddVec[%d]", i))
	}

	if err := a.AddVec(mustVector(t, []float64{1, 2})); err == nil {
		t.Error("AddVec with mismatched lengths should fail")
	}
}

func TestVectorAddConstScale(t *testing.T) {
	v := mustVector(t, []float64{1, 2, 3})

	v.AddConst(-2)
	for i, want := range []float64{-1, 0, 1} {
		assertEqualFloat64(t, want, v.AtVec(i), fmt.Sprintf("AddConst[%d]", i))
	}

	v.Scale(10)
	for i, want := range []float64{-10, 0, 10} {
		assertEqualFloat64(t, want, v.AtVec(i), fmt.Sprintf("Scale[%d]", i))
	}
}

func TestVectorDot(t *testing.T) {
	a := mustVector(t, []float64{1, 2, 3})
	b := mustVector(t, []float64{4, 5, 6})

	got, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	assertEqualFloat64(t, 32, got, "Dot")

	if _, err := a.Dot(mustVector(t, []float64{1})); err == nil {
		t.Error("Dot with mismatched lengths should fail")
	}
}

func TestVectorStats(t *testing.T) {
	v := mustVector(t, []float64{2, 4, 6, 8})

	assertEqualFloat64(t, 5, v.Mean(), "Mean")
	// Sample standard deviation with N-1 denominator.
	assertEqualFloat64(t, 2.581988897471611, v.StdDev(), "StdDev")
}

func TestVectorClone(t *testing.T) {
	v := mustVector(t, []float64{1, 2, 3})

	clone := v.Clone()
	clone.SetVec(0, 99)
	if v.AtVec(0) != 1 {
		t.Error("Clone should be a deep copy")
	}
}

func TestVectorString(t *testing.T) {
	v := mustVector(t, []float64{1.23, 4})

	want := "1.23\n4\n"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
