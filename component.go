package extend

import (
	"fmt"
	"strings"

	"github.com/a-peyrard/extend/option"
	"github.com/rs/zerolog"
)

type (
	// Component owns a fixed set of extendable operations, declared once at
	// construction time, and an ordered sequence of attached extensions.
	//
	// A component is not safe for concurrent use: the protocol is a synchronous,
	// single caller call/return model.
	Component struct {
		name   string
		ops    map[Op]BaseFunc
		order  []Op
		policy FaultPolicy
		logger zerolog.Logger

		extensions []*Extension
	}

	ComponentOptions struct {
		operations  []operationDecl
		middlewares []Middleware
		policy      FaultPolicy
		logger      zerolog.Logger
	}

	operationDecl struct {
		op   Op
		base BaseFunc
	}
)

// WithOperation declares an extendable operation and its base implementation.
// Declaration order is preserved for introspection.
func WithOperation(op Op, base BaseFunc) option.Option[ComponentOptions] {
	return func(opts *ComponentOptions) {
		opts.operations = append(opts.operations, operationDecl{op: op, base: base})
	}
}

// WithMiddleware wraps the base implementation of every declared operation.
// The first middleware given is the outermost wrapper.
func WithMiddleware(middlewares ...Middleware) option.Option[ComponentOptions] {
	return func(opts *ComponentOptions) {
		opts.middlewares = append(opts.middlewares, middlewares...)
	}
}

// WithFaultPolicy selects how handler errors are treated during dispatch.
func WithFaultPolicy(policy FaultPolicy) option.Option[ComponentOptions] {
	return func(opts *ComponentOptions) {
		opts.policy = policy
	}
}

// WithLogger sets the logger used to report dispatch events, in particular
// handler errors under the Observe fault policy.
func WithLogger(logger zerolog.Logger) option.Option[ComponentOptions] {
	return func(opts *ComponentOptions) {
		opts.logger = logger
	}
}

// NewComponent builds a component named name, with the operations declared via
// WithOperation options.
//
// The operation set is checked eagerly: a duplicate operation name or a nil base
// implementation fails the construction.
func NewComponent(name string, opts ...option.Option[ComponentOptions]) (*Component, error) {
	options := option.Build(
		&ComponentOptions{
			policy: FailFast,
			logger: zerolog.Nop(),
		},
		opts...,
	)

	c := &Component{
		name:   name,
		ops:    make(map[Op]BaseFunc, len(options.operations)),
		order:  make([]Op, 0, len(options.operations)),
		policy: options.policy,
		logger: options.logger,
	}
	for _, decl := range options.operations {
		if decl.base == nil {
			return nil, fmt.Errorf("operation %q of component %s has no base implementation", decl.op, name)
		}
		if _, exists := c.ops[decl.op]; exists {
			return nil, fmt.Errorf("component %s declares %q twice:\n\t%w", name, decl.op, ErrDuplicateOp)
		}
		c.ops[decl.op] = wrap(decl.op, decl.base, options.middlewares)
		c.order = append(c.order, decl.op)
	}

	return c, nil
}

// MustNewComponent builds a component and panics if the declaration is invalid.
func MustNewComponent(name string, opts ...option.Option[ComponentOptions]) *Component {
	c, err := NewComponent(name, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build component %s:\n\t%v", name, err))
	}
	return c
}

func wrap(op Op, base BaseFunc, middlewares []Middleware) BaseFunc {
	wrapped := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](op, wrapped)
	}
	return wrapped
}

// Name returns the component identity.
func (c *Component) Name() string {
	return c.name
}

// Operations lists the declared extendable operations, in declaration order.
func (c *Component) Operations() []Op {
	ops := make([]Op, len(c.order))
	copy(ops, c.order)
	return ops
}

// Extensions lists the attached extensions, in attachment order.
func (c *Component) Extensions() []*Extension {
	extensions := make([]*Extension, len(c.extensions))
	copy(extensions, c.extensions)
	return extensions
}

// Attach registers the extension at the end of the component's extension
// sequence. It fails if the extension is already attached to another component,
// or if it handles an operation this component never declared.
//
// Attaching the same extension twice is not rejected: the extension is appended
// again and its handlers will run twice per invocation.
func (c *Component) Attach(extension *Extension) error {
	if extension == nil {
		return fmt.Errorf("component %s: cannot attach a nil extension", c.name)
	}
	if extension.component != nil && extension.component != c {
		return fmt.Errorf(
			"extension %s is attached to component %s, not %s:\n\t%w",
			extension.name, extension.component.name, c.name, ErrBoundElsewhere,
		)
	}
	for _, op := range extension.order {
		if _, declared := c.ops[op]; !declared {
			return fmt.Errorf(
				"extension %s handles %q which component %s does not declare:\n\t%w",
				extension.name, op, c.name, ErrUnknownOp,
			)
		}
	}

	extension.component = c
	c.extensions = append(c.extensions, extension)

	return nil
}

// Invoke runs the base implementation of op with the given arguments, then
// notifies every attached extension handling op, in attachment order, with the
// same arguments. The base result is returned.
//
// Extensions attached while the dispatch is running are not notified for the
// in-flight invocation: the extension sequence is snapshotted before iterating.
func (c *Component) Invoke(op Op, args ...any) (any, error) {
	base, declared := c.ops[op]
	if !declared {
		return nil, fmt.Errorf("component %s has no operation %q:\n\t%w", c.name, op, ErrUnknownOp)
	}

	result, err := callBase(op, base, args)
	if err != nil {
		return nil, fmt.Errorf("base implementation of %q failed:\n\t%w", op, err)
	}

	extensions := c.extensions
	for _, extension := range extensions {
		handler, handled := extension.handlers[op]
		if !handled {
			continue
		}
		if err := callHandler(op, handler, args); err != nil {
			if c.policy == Observe {
				c.logger.Warn().
					Str("component", c.name).
					Str("extension", extension.name).
					Str("operation", string(op)).
					Err(err).
					Msg("extension handler failed, resuming dispatch")
				continue
			}
			return nil, fmt.Errorf("extension %s failed handling %q:\n\t%w", extension.name, op, err)
		}
	}

	return result, nil
}

// callBase invokes the base implementation with panic recovery, as a base is an
// arbitrary caller-supplied function.
func callBase(op Op, base BaseFunc, args []any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("panic in base implementation of %q: %v", op, r)
		}
	}()
	return base(args...)
}

func callHandler(op Op, handler Handler, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in handler of %q: %v", op, r)
		}
	}()
	return handler(args...)
}

// Describe returns a human readable description of the component, its declared
// operations and its attached extensions.
func (c *Component) Describe() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("* Component %s (policy=%s)\n", c.name, c.policy))
	b.WriteString("\toperations:\n")
	for _, op := range c.order {
		b.WriteString(fmt.Sprintf("\t\t- %s\n", op))
	}
	b.WriteString("\textensions:\n")
	for _, extension := range c.extensions {
		handled := make([]string, len(extension.order))
		for i, op := range extension.order {
			handled[i] = string(op)
		}
		b.WriteString(fmt.Sprintf("\t\t- %s (handles: %s)\n", extension.name, strings.Join(handled, ", ")))
	}
	return b.String()
}
