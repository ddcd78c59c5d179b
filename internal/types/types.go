// Package types implements the TypeInfo registry: the handful of
// primitive types the language honors end-to-end (void, int, char),
// derived pointer/array forms built on top of them, and a nominal
// struct registry that is tracked but never lowered.
package types

import (
	"fmt"
	"strings"
)

// Kind tags what shape of type a TypeInfo describes.
type Kind int

const (
	Void Kind = iota
	Int
	Char
	Pointer
	Array
	Struct
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Int:
		return "int"
	case Char:
		return "char"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	case Struct:
		return "struct"
	default:
		return "unknown"
	}
}

// TypeInfo is one registry entry. Elem is set for Pointer and Array;
// ArrayLen is set for Array; Name is set for Struct; Fields is the
// struct's ordered field list (name, type), never lowered into IR.
type TypeInfo struct {
	Kind     Kind
	Name     string // struct name, empty otherwise
	Elem     *TypeInfo
	ArrayLen int
	Fields   []Field
}

// Field is one member of a registered nominal struct.
type Field struct {
	Name string
	Type *TypeInfo
}

func (t *TypeInfo) String() string {
	switch t.Kind {
	case Pointer:
		return t.Elem.String() + "*"
	case Array:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.ArrayLen)
	case Struct:
		return "struct " + t.Name
	default:
		return t.Kind.String()
	}
}

var (
	VoidType = &TypeInfo{Kind: Void}
	IntType  = &TypeInfo{Kind: Int}
	CharType = &TypeInfo{Kind: Char}
)

// Registry resolves the built-in primitives plus every nominal struct
// registered by name through RegisterStruct.
type Registry struct {
	structs map[string]*TypeInfo
}

func NewRegistry() *Registry {
	return &Registry{structs: make(map[string]*TypeInfo)}
}

// RegisterStruct adds a nominal struct type, keyed by its bare name
// (without the "struct" keyword). Re-registration overwrites the prior
// entry — the source language has no separate compilation, so a struct
// name is seen at most once per run in practice.
func (r *Registry) RegisterStruct(name string, fields []Field) *TypeInfo {
	t := &TypeInfo{Kind: Struct, Name: name, Fields: fields}
	r.structs[name] = t
	return t
}

// Lookup resolves a type-name string exactly as spec'd: "void", "int",
// "char" map to the fixed primitives; "struct NAME" (or the bare NAME
// it was registered under) resolves a registered nominal struct;
// anything else fails.
func (r *Registry) Lookup(name string) (*TypeInfo, bool) {
	switch name {
	case "void":
		return VoidType, true
	case "int":
		return IntType, true
	case "char":
		return CharType, true
	}
	if t, ok := r.structs[strings.TrimPrefix(name, "struct ")]; ok {
		return t, true
	}
	return nil, false
}

// PointerTo returns a (non-interned) pointer TypeInfo over elem.
func PointerTo(elem *TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: Pointer, Elem: elem}
}

// ArrayOf returns a (non-interned) array TypeInfo of elem with the
// given length.
func ArrayOf(elem *TypeInfo, length int) *TypeInfo {
	return &TypeInfo{Kind: Array, Elem: elem, ArrayLen: length}
}

// LLVMName renders the type the way the code generator's value-type
// mapping requires: void/i32/i8 for the primitives, "<elem>*" for
// pointers, "[n x elem]" for arrays, and "%struct.NAME" for a
// registered struct (never expanded to its field layout).
func (t *TypeInfo) LLVMName() string {
	switch t.Kind {
	case Void:
		return "void"
	case Int:
		return "i32"
	case Char:
		return "i8"
	case Pointer:
		return t.Elem.LLVMName() + "*"
	case Array:
		return fmt.Sprintf("[%d x %s]", t.ArrayLen, t.Elem.LLVMName())
	case Struct:
		return "%struct." + t.Name
	default:
		return "i32"
	}
}
