package dynarray

import (
	"fmt"
	"testing"
)

func BenchmarkAppend_Trivial(b *testing.B) {
	a, err := New[int]()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Append(i); err != nil {
			b.Fatalf("append failed at iteration %d: %v", i, err)
		}
	}
}

func BenchmarkAppend_NonTrivial(b *testing.B) {
	a, err := New[string]()
	if err != nil {
		b.Fatal(err)
	}
	v := fmt.Sprintf("payload-%d", 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Append(v); err != nil {
			b.Fatalf("append failed at iteration %d: %v", i, err)
		}
	}
}

func BenchmarkInsertFront_Trivial(b *testing.B) {
	a, err := New[int]()
	if err != nil {
		b.Fatal(err)
	}
	// Pre-populate so every insert shifts a realistic suffix.
	for i := 0; i < 1024; i++ {
		if err := a.Append(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Insert(0, i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertFront_NonTrivial(b *testing.B) {
	a, err := New[string]()
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		if err := a.Append("x"); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Insert(0, "y"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAt(b *testing.B) {
	a, err := Of(make([]int, 1024)...)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.At(i % 1024); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMustAt(b *testing.B) {
	a, err := Of(make([]int, 1024)...)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.MustAt(i % 1024)
	}
}
