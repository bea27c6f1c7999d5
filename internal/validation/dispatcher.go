package validation

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Dispatcher runs the rules of a fixed list of fields against request input.
type Dispatcher struct {
	fields []Field
	rules  []Rule
	logger *zap.Logger
}

type dispatcherOptions struct {
	allowUnknown bool
	logger       *zap.Logger
}

// DispatcherOption customizes NewDispatcher.
type DispatcherOption func(*dispatcherOptions)

// AllowUnknownFields makes unknown field names contribute no rules instead of
// failing construction.
func AllowUnknownFields() DispatcherOption {
	return func(o *dispatcherOptions) {
		o.allowUnknown = true
	}
}

// WithLogger sets the logger used to report recovered check panics.
func WithLogger(l *zap.Logger) DispatcherOption {
	return func(o *dispatcherOptions) {
		o.logger = l
	}
}

// NewDispatcher flattens the rules of names, keeping caller field order and
// per-field rule order.
func NewDispatcher(reg *Registry, names []string, opts ...DispatcherOption) (*Dispatcher, error) {
	options := dispatcherOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}

	d := &Dispatcher{logger: options.logger}

	if options.allowUnknown {
		for _, name := range names {
			if f, err := ParseField(name); err == nil {
				d.fields = append(d.fields, f)
			}
			d.rules = append(d.rules, reg.RulesFor(name)...)
		}
		return d, nil
	}

	fields, err := reg.Resolve(names)
	if err != nil {
		return nil, fmt.Errorf("build validator: %w", err)
	}
	d.fields = fields
	for _, f := range fields {
		d.rules = append(d.rules, reg.Rules(f)...)
	}
	return d, nil
}

// Fields returns the fields this dispatcher validates.
func (d *Dispatcher) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// RuleCount returns the number of rules run per request.
func (d *Dispatcher) RuleCount() int {
	return len(d.rules)
}

// Validate runs every rule concurrently and waits for all of them. The result
// is nil when all rules pass, otherwise every failure in rule order.
func (d *Dispatcher) Validate(in *Input) Errors {
	results := make([]*FieldError, len(d.rules))
	var wg sync.WaitGroup

	for i, rule := range d.rules {
		wg.Add(1)
		go func(i int, rule Rule) {
			defer wg.Done()
			results[i] = d.run(rule, in)
		}(i, rule)
	}
	wg.Wait()

	var errs Errors
	for _, fe := range results {
		if fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// run evaluates one rule. A panicking check is reported as a failure of that rule.
func (d *Dispatcher) run(rule Rule, in *Input) (result *FieldError) {
	defer func() {
		if p := recover(); p != nil {
			d.logger.Error("Validation rule panicked",
				zap.String("field", rule.Field.String()),
				zap.String("rule", rule.Name),
				zap.Any("panic", p))
			fe := rule.failure(fmt.Errorf("Invalid %s", rule.Field))
			result = &fe
		}
	}()

	if err := rule.Check(in); err != nil {
		fe := rule.failure(err)
		return &fe
	}
	return nil
}
