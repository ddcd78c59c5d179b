package types

import "testing"

func TestPrimitiveLLVMNames(t *testing.T) {
	tests := []struct {
		t    *TypeInfo
		want string
	}{
		{VoidType, "void"},
		{IntType, "i32"},
		{CharType, "i8"},
	}
	for _, tt := range tests {
		if got := tt.t.LLVMName(); got != tt.want {
			t.Errorf("LLVMName() = %q, want %q", got, tt.want)
		}
	}
}

func TestPointerAndArrayDerivation(t *testing.T) {
	ptr := PointerTo(IntType)
	if got, want := ptr.LLVMName(), "i32*"; got != want {
		t.Errorf("pointer LLVMName() = %q, want %q", got, want)
	}
	if got, want := ptr.String(), "int*"; got != want {
		t.Errorf("pointer String() = %q, want %q", got, want)
	}

	arr := ArrayOf(CharType, 10)
	if got, want := arr.LLVMName(), "[10 x i8]"; got != want {
		t.Errorf("array LLVMName() = %q, want %q", got, want)
	}
	if got, want := arr.String(), "char[10]"; got != want {
		t.Errorf("array String() = %q, want %q", got, want)
	}
}

func TestRegistryLookupPrimitives(t *testing.T) {
	r := NewRegistry()
	for name, want := range map[string]*TypeInfo{"void": VoidType, "int": IntType, "char": CharType} {
		got, ok := r.Lookup(name)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = (%v, %v), want (%v, true)", name, got, ok, want)
		}
	}
	if _, ok := r.Lookup("float"); ok {
		t.Errorf("Lookup(%q) should fail: float is not in the type grammar", "float")
	}
}

// RegisterStruct/Struct-kind Lookup exist because the Data Model
// requires the registry shape (name, ordered field list), even though
// no grammar production ever builds a struct declaration to populate
// it — exercised directly here rather than through the parser.
func TestRegistryStructRoundTrip(t *testing.T) {
	r := NewRegistry()
	fields := []Field{{Name: "x", Type: IntType}, {Name: "y", Type: IntType}}
	registered := r.RegisterStruct("Point", fields)

	got, ok := r.Lookup("Point")
	if !ok || got != registered {
		t.Fatalf("Lookup(%q) = (%v, %v), want the registered TypeInfo", "Point", got, ok)
	}
	if got.LLVMName() != "%struct.Point" {
		t.Errorf("struct LLVMName() = %q, want %q", got.LLVMName(), "%struct.Point")
	}
	if got.String() != "struct Point" {
		t.Errorf("struct String() = %q, want %q", got.String(), "struct Point")
	}
}
