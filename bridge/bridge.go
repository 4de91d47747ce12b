// Package bridge lets native Go functions serve as selector-addressed
// methods on object types that are defined at runtime rather than compile
// time. Types extend host-published base types, collect method bindings,
// and become instantiable once finalized.
//
// Signatures are a closed set of callback kinds checked at bind time, so a
// mismatched binding is an error instead of undefined behavior.
package bridge

import (
	"errors"
	"fmt"

	"plasma/hal"
)

// Callback signatures a method can carry.
type (
	// PaintFunc renders into a host drawing surface.
	PaintFunc func(ctx hal.DrawContext)
	// CloseFunc handles a window close request; returning true lets the
	// host terminate its event loop.
	CloseFunc func() bool
	// TickFunc handles a periodic timer tick.
	TickFunc func()
)

// Kind identifies a callback signature.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPaint
	KindClose
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindPaint:
		return "func(hal.DrawContext)"
	case KindClose:
		return "func() bool"
	case KindTick:
		return "func()"
	default:
		return "invalid"
	}
}

var (
	ErrUnknownBaseType  = errors.New("bridge: unknown base type")
	ErrDuplicateType    = errors.New("bridge: type name already defined")
	ErrTypeFinalized    = errors.New("bridge: type already finalized")
	ErrTypeNotFinalized = errors.New("bridge: type not finalized")
	ErrDuplicateMethod  = errors.New("bridge: selector already bound")
	ErrBadSignature     = errors.New("bridge: unsupported callback signature")
	ErrUnknownType      = errors.New("bridge: unknown type")
	ErrBaseInstance     = errors.New("bridge: base types cannot be instantiated")
)

// Method is one native callback registered under a selector.
type Method struct {
	Selector string
	Kind     Kind
	fn       any
}

// Type is a runtime-defined object type: a base type name plus a method
// table. It is built once during setup and never mutated afterwards.
type Type struct {
	reg       *Registry
	name      string
	base      string
	methods   map[string]Method
	finalized bool
}

// Name returns the type's registered name.
func (t *Type) Name() string { return t.name }

// Registry owns every runtime-defined type. Type names are unique for the
// registry's lifetime. A Registry is not safe for concurrent mutation; all
// definitions happen during single-threaded setup.
type Registry struct {
	types map[string]*Type
}

// NewRegistry seeds a registry with the host's base type names. Base types
// carry no methods and cannot be instantiated, only extended.
func NewRegistry(baseTypes ...string) *Registry {
	r := &Registry{types: make(map[string]*Type, len(baseTypes))}
	for _, name := range baseTypes {
		r.types[name] = &Type{reg: r, name: name, finalized: true}
	}
	return r
}

// DefineType creates a new type extending base. The base must exist and be
// finalized; the new name must be unused. Failures here are setup failures:
// the caller cannot present a window without its types.
func (r *Registry) DefineType(base, name string) (*Type, error) {
	bt, ok := r.types[base]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBaseType, base)
	}
	if !bt.finalized {
		return nil, fmt.Errorf("%w: base %q", ErrTypeNotFinalized, base)
	}
	if _, ok := r.types[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateType, name)
	}
	t := &Type{reg: r, name: name, base: base, methods: make(map[string]Method)}
	r.types[name] = t
	return t, nil
}

// Bind attaches fn to the type under selector. Binding after Finalize, a
// duplicate selector, or a function outside the fixed callback kinds is an
// error.
func (t *Type) Bind(selector string, fn any) error {
	if t.finalized {
		return fmt.Errorf("%w: %q", ErrTypeFinalized, t.name)
	}
	if _, ok := t.methods[selector]; ok {
		return fmt.Errorf("%w: %s.%s", ErrDuplicateMethod, t.name, selector)
	}
	m := Method{Selector: selector}
	switch f := fn.(type) {
	case PaintFunc:
		m.Kind, m.fn = KindPaint, f
	case func(hal.DrawContext):
		m.Kind, m.fn = KindPaint, PaintFunc(f)
	case CloseFunc:
		m.Kind, m.fn = KindClose, f
	case func() bool:
		m.Kind, m.fn = KindClose, CloseFunc(f)
	case TickFunc:
		m.Kind, m.fn = KindTick, f
	case func():
		m.Kind, m.fn = KindTick, TickFunc(f)
	default:
		return fmt.Errorf("%w: %s.%s has type %T", ErrBadSignature, t.name, selector, fn)
	}
	t.methods[selector] = m
	return nil
}

// Finalize publishes the type: afterwards it can be instantiated and
// extended, and no new methods can be bound.
func (t *Type) Finalize() error {
	if t.finalized {
		return fmt.Errorf("%w: %q", ErrTypeFinalized, t.name)
	}
	t.finalized = true
	return nil
}

// New instantiates a finalized, non-base type.
func (r *Registry) New(typeName string) (*Object, error) {
	t, ok := r.types[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	if t.base == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseInstance, typeName)
	}
	if !t.finalized {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFinalized, typeName)
	}
	return &Object{t: t}, nil
}

// Object is an instance of a runtime-defined type. Objects are stateless
// handles; all behavior lives in the bound methods.
type Object struct {
	t *Type
}

// TypeName returns the name of the object's type.
func (o *Object) TypeName() string { return o.t.name }

// lookup walks from the object's own type toward its base types.
func (o *Object) lookup(selector string) (Method, bool) {
	for t := o.t; t != nil; {
		if m, ok := t.methods[selector]; ok {
			return m, true
		}
		if t.base == "" {
			break
		}
		t = t.reg.types[t.base]
	}
	return Method{}, false
}

// PaintFunc resolves selector to a paint callback, or false when the
// selector is unbound or bound with a different signature.
func (o *Object) PaintFunc(selector string) (PaintFunc, bool) {
	m, ok := o.lookup(selector)
	if !ok || m.Kind != KindPaint {
		return nil, false
	}
	return m.fn.(PaintFunc), true
}

// CloseFunc resolves selector to a close callback.
func (o *Object) CloseFunc(selector string) (CloseFunc, bool) {
	m, ok := o.lookup(selector)
	if !ok || m.Kind != KindClose {
		return nil, false
	}
	return m.fn.(CloseFunc), true
}

// TickFunc resolves selector to a tick callback.
func (o *Object) TickFunc(selector string) (TickFunc, bool) {
	m, ok := o.lookup(selector)
	if !ok || m.Kind != KindTick {
		return nil, false
	}
	return m.fn.(TickFunc), true
}
