package extend

import (
	"fmt"

	"github.com/a-peyrard/extend/option"
)

type (
	// Extension is an auxiliary object attached to exactly one component. It
	// supplies handlers for a subset of the component's extendable operations;
	// operations without a handler are simply not reacted to.
	Extension struct {
		name      string
		component *Component
		handlers  map[Op]Handler
		order     []Op
	}

	ExtensionOptions struct {
		handlers []handlerDecl
	}

	handlerDecl struct {
		op      Op
		handler Handler
	}
)

// WithHandler registers a handler for one extendable operation.
func WithHandler(op Op, handler Handler) option.Option[ExtensionOptions] {
	return func(opts *ExtensionOptions) {
		opts.handlers = append(opts.handlers, handlerDecl{op: op, handler: handler})
	}
}

// NewExtension builds an extension named name and attaches it to component.
//
// The handler set is supplied via WithHandler options and is fixed for the
// lifetime of the extension; there is no inheritance or reflection based
// discovery. The attachment fails if a handled operation is not declared by the
// component.
func NewExtension(component *Component, name string, opts ...option.Option[ExtensionOptions]) (*Extension, error) {
	if component == nil {
		return nil, fmt.Errorf("extension %s needs a component to attach to", name)
	}

	options := option.Build(&ExtensionOptions{}, opts...)

	extension := &Extension{
		name:     name,
		handlers: make(map[Op]Handler, len(options.handlers)),
		order:    make([]Op, 0, len(options.handlers)),
	}
	for _, decl := range options.handlers {
		if decl.handler == nil {
			return nil, fmt.Errorf("extension %s registers a nil handler for %q", name, decl.op)
		}
		if _, exists := extension.handlers[decl.op]; exists {
			return nil, fmt.Errorf("extension %s registers two handlers for %q:\n\t%w", name, decl.op, ErrDuplicateOp)
		}
		extension.handlers[decl.op] = decl.handler
		extension.order = append(extension.order, decl.op)
	}

	if err := component.Attach(extension); err != nil {
		return nil, fmt.Errorf("failed to attach extension %s:\n\t%w", name, err)
	}

	return extension, nil
}

// Name returns the extension identity.
func (e *Extension) Name() string {
	return e.name
}

// Component returns the component this extension is attached to.
func (e *Extension) Component() *Component {
	return e.component
}

// Handles lists the operations this extension registered a handler for, in
// registration order.
func (e *Extension) Handles() []Op {
	ops := make([]Op, len(e.order))
	copy(ops, e.order)
	return ops
}

func (e *Extension) String() string {
	return fmt.Sprintf("Extension(%s, handles=%v)", e.name, e.order)
}
