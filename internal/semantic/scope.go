package semantic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/cc0/internal/types"
)

// SymbolKind tags what a Scope entry denotes.
type SymbolKind int

const (
	Variable SymbolKind = iota
	Function
	Parameter
	StructType
)

func (k SymbolKind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Parameter:
		return "parameter"
	case StructType:
		return "struct"
	default:
		return "unknown"
	}
}

// Symbol is one entry in a Scope: a name bound to a TypeInfo, tagged
// with the kind of thing it names. ParamTypes is populated only for
// Function-kind symbols, in declaration order, for arity/type checks
// at call sites.
type Symbol struct {
	Name        string
	Type        *types.TypeInfo
	Kind        SymbolKind
	Initialized bool
	ParamTypes  []*types.TypeInfo
}

// Scope is a node in the tree of lexical name environments. It owns its
// symbols and its child scopes; Parent is a weak back-reference used
// only for lookup and exit, never for ownership.
type Scope struct {
	symbols  map[string]*Symbol
	children []*Scope
	Parent   *Scope
}

// NewScope creates a scope enclosed by parent. parent is nil only for
// the single global scope created at analyzer init.
func NewScope(parent *Scope) *Scope {
	s := &Scope{symbols: make(map[string]*Symbol), Parent: parent}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Define adds a new symbol to this scope. The caller must already have
// checked for redeclaration via Declared.
func (s *Scope) Define(sym *Symbol) {
	s.symbols[sym.Name] = sym
}

// Declared reports whether name is bound directly in this scope
// (ignoring enclosing scopes) — the redeclaration check operates at
// this granularity; shadowing across scopes is allowed.
func (s *Scope) Declared(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

// Lookup searches this scope, then each enclosing scope in turn, up to
// and including the global scope.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Dump renders the scope tree as indented text for the verbose CLI
// dump: one line per symbol (name, kind, type), nested scopes indented
// under their parent. Symbol order within a scope is sorted by name so
// output is stable across runs.
func (s *Scope) Dump(indent int) string {
	var sb strings.Builder
	pad := strings.Repeat("  ", indent)

	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sym := s.symbols[name]
		fmt.Fprintf(&sb, "%s%s %s: %s\n", pad, sym.Kind, sym.Name, sym.Type)
	}
	for _, child := range s.children {
		fmt.Fprintf(&sb, "%s{\n", pad)
		sb.WriteString(child.Dump(indent + 1))
		fmt.Fprintf(&sb, "%s}\n", pad)
	}
	return sb.String()
}
