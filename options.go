package sketch

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	c := sketch.NewController(
//	    sketch.WithKind(sketch.KindRect),
//	    sketch.WithStyle(style),
//	)
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	kind     Kind
	style    Style
	bindings Bindings
	registry *Registry
	onRedraw func()
}

func defaultOptions() controllerOptions {
	return controllerOptions{
		style:    DefaultStyle(),
		bindings: DefaultBindings(),
	}
}

// WithKind sets the initially active tool. Invalid kinds are ignored.
func WithKind(k Kind) ControllerOption {
	return func(o *controllerOptions) {
		if k.Valid() {
			o.kind = k
		}
	}
}

// WithStyle sets the pens used by RenderAll.
func WithStyle(st Style) ControllerOption {
	return func(o *controllerOptions) {
		o.style = st
	}
}

// WithBindings sets the modifier bindings.
func WithBindings(b Bindings) ControllerOption {
	return func(o *controllerOptions) {
		o.bindings = b
	}
}

// WithRegistry makes the controller operate on an existing registry.
func WithRegistry(r *Registry) ControllerOption {
	return func(o *controllerOptions) {
		o.registry = r
	}
}

// WithRedrawFunc registers a callback invoked whenever a transition
// changes what RenderAll would draw. The callback must not re-enter the
// controller.
func WithRedrawFunc(fn func()) ControllerOption {
	return func(o *controllerOptions) {
		o.onRedraw = fn
	}
}
