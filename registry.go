package dyncol

import (
	"strings"
	"sync"
)

// Factory builds a DataType from the raw argument text of a declaration.
// args is the text between the parentheses, or "" when the name carries no
// argument list.
type Factory func(args string) (DataType, error)

// Registry maps declared type names to factories. The zero value is not
// usable; use NewRegistry or the package-level default.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register installs a factory under base (the name before any parentheses).
// Re-registering a name replaces the previous factory.
func (r *Registry) Register(base string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[base] = f
}

// Lookup parses a declared type name and builds the DataType. Unknown base
// names yield an unknown_type issue; argument errors propagate from the
// factory.
func (r *Registry) Lookup(name string) (DataType, error) {
	base, args, hasArgs, err := splitDeclaration(name)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	f, ok := r.factories[base]
	r.mu.RUnlock()
	if !ok {
		return nil, Issues{{Path: name, Code: CodeUnknownType, Message: "unknown type '" + base + "'"}}
	}
	if !hasArgs {
		return f("")
	}
	return f(args)
}

// TryLookup is Lookup with soft semantics: (nil, false) for any failure.
func (r *Registry) TryLookup(name string) (DataType, bool) {
	dt, err := r.Lookup(name)
	if err != nil || dt == nil {
		return nil, false
	}
	return dt, true
}

// splitDeclaration splits "Base(args)" into its parts. A bare name has no
// argument list at all, which factories may treat differently from "Base()".
func splitDeclaration(name string) (base, args string, hasArgs bool, err error) {
	i := strings.IndexByte(name, '(')
	if i < 0 {
		return name, "", false, nil
	}
	if !strings.HasSuffix(name, ")") {
		return "", "", false, Issues{{Path: name, Code: CodeParseError, Message: "unbalanced parentheses in type name"}}
	}
	return name[:i], name[i+1 : len(name)-1], true, nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry the package-level
// helpers use.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register installs a factory in the default registry.
func Register(base string, f Factory) { defaultRegistry.Register(base, f) }

// Lookup resolves a declared type name against the default registry.
func Lookup(name string) (DataType, error) { return defaultRegistry.Lookup(name) }

// TryLookup resolves a declared type name with soft semantics.
func TryLookup(name string) (DataType, bool) { return defaultRegistry.TryLookup(name) }

func fixedFactory(dt DataType) Factory {
	return func(args string) (DataType, error) {
		if args != "" {
			return nil, Issues{{Path: dt.Name(), Code: CodeBadArity, Message: dt.Name() + " takes no arguments"}}
		}
		return dt, nil
	}
}

func wrapperFactory(base string, wrap func(DataType) (DataType, error)) Factory {
	return func(args string) (DataType, error) {
		if args == "" {
			return nil, Issues{{Path: base, Code: CodeBadArity, Message: base + " requires exactly one type argument"}}
		}
		inner, err := defaultRegistry.Lookup(strings.TrimSpace(args))
		if err != nil {
			return nil, err
		}
		return wrap(inner)
	}
}

func init() {
	for _, dt := range []DataType{
		TypeInt8, TypeInt16, TypeInt32, TypeInt64,
		TypeUInt8, TypeUInt16, TypeUInt32, TypeUInt64,
		TypeFloat32, TypeFloat64, TypeString, TypeBool,
	} {
		Register(dt.Name(), fixedFactory(dt))
	}
	Register("Nullable", wrapperFactory("Nullable", func(inner DataType) (DataType, error) {
		if !inner.CanBeInsideNullable() {
			return nil, Issues{{Path: "Nullable", Code: CodeBadArgument, Message: inner.Name() + " cannot be inside Nullable"}}
		}
		return NewNullable(inner), nil
	}))
	Register("LowCardinality", wrapperFactory("LowCardinality", func(inner DataType) (DataType, error) {
		dict := inner
		if n, ok := inner.(*NullableType); ok {
			dict = n.Inner()
		}
		// Dictionary values must be scalar; composite and wrapper types
		// have no hashable dictionary representation.
		if !dict.CanBeInsideNullable() {
			return nil, Issues{{Path: "LowCardinality", Code: CodeBadArgument, Message: "LowCardinality is not supported for " + inner.Name()}}
		}
		return NewLowCardinality(inner), nil
	}))
	Register("Array", wrapperFactory("Array", func(inner DataType) (DataType, error) {
		return NewArray(inner), nil
	}))
	Register("Dynamic", createDynamic)
}
