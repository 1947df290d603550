package facade

// Attribute is the type-erased view of a bound field, used to render a
// facade generically.
type Attribute interface {
	Name() string
	Binding() Binding
	Resolve(ctx Context) (any, bool, error)
}

// Field binds a name to an element and a decoder. Fields are declared once
// per facade type and read against any context of that type.
type Field[T any] struct {
	name    string
	binding Binding
	decode  Decoder[T]
}

// Bind declares a typed field.
func Bind[T any](name string, b Binding, decode Decoder[T]) Field[T] {
	return Field[T]{name: name, binding: b, decode: decode}
}

func (f Field[T]) Name() string     { return f.name }
func (f Field[T]) Binding() Binding { return f.binding }

// Get reads the field. ok is false when the element is absent or empty, in
// which case the decoder is not invoked.
func (f Field[T]) Get(ctx Context) (value T, ok bool, err error) {
	raw, found := Locate(ctx, f.binding)
	if !found || raw == "" {
		return value, false, nil
	}
	value, err = f.decode(raw)
	if err != nil {
		var zero T
		return zero, false, &DecodeError{Attribute: f.name, Binding: f.binding, Raw: raw, Err: err}
	}
	return value, true, nil
}

func (f Field[T]) Resolve(ctx Context) (any, bool, error) {
	v, ok, err := f.Get(ctx)
	if err != nil || !ok {
		return nil, ok, err
	}
	return v, true, nil
}

// TextField is a field returning the raw element. An element that is present
// but empty is returned as "" with ok set.
type TextField struct {
	name    string
	binding Binding
}

// Text declares a raw string field.
func Text(name string, b Binding) TextField {
	return TextField{name: name, binding: b}
}

func (f TextField) Name() string     { return f.name }
func (f TextField) Binding() Binding { return f.binding }

func (f TextField) Get(ctx Context) (string, bool) {
	return Locate(ctx, f.binding)
}

func (f TextField) Resolve(ctx Context) (any, bool, error) {
	v, ok := f.Get(ctx)
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}
