// Package commands maps operation names such as "customer.create" onto
// service calls. Each operation decodes a JSON payload, runs one service
// method and reports a Result that any front end can render.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"restaurant-management/internal/apperror"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/validation"
)

// Result is the outcome of one operation
type Result struct {
	OK        bool          `json:"ok"`
	Operation string        `json:"operation"`
	Data      interface{}   `json:"data,omitempty"`
	Kind      apperror.Kind `json:"kind,omitempty"`
	Message   string        `json:"message,omitempty"`
}

type operation struct {
	// failure names the failed action for operators, e.g. "Failed to add customer."
	failure string
	run     func(ctx context.Context, payload json.RawMessage) (interface{}, error)
}

// op adapts a typed handler to the registry. An empty payload decodes to
// the zero value of P.
func op[P any](failure string, fn func(ctx context.Context, p P) (interface{}, error)) operation {
	return operation{
		failure: failure,
		run: func(ctx context.Context, payload json.RawMessage) (interface{}, error) {
			var p P
			if err := decode(payload, &p); err != nil {
				return nil, err
			}
			return fn(ctx, p)
		},
	}
}

func decode(payload json.RawMessage, v interface{}) error {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return validation.ValidationError{Field: "payload", Message: "Invalid request payload."}
	}
	return nil
}

type Dispatcher struct {
	operations map[string]operation
	logger     *logger.Logger
}

// NewDispatcher registers every operation of the given services
func NewDispatcher(svc Services, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{operations: make(map[string]operation), logger: log}
	d.registerCustomers(svc.Customers)
	d.registerStaff(svc.Staff)
	d.registerMenu(svc.Menu)
	d.registerOrders(svc.Orders)
	d.registerPayments(svc.Payments)
	d.registerDashboard(svc.Dashboard)
	return d
}

func (d *Dispatcher) register(name string, o operation) {
	if _, exists := d.operations[name]; exists {
		panic(fmt.Sprintf("commands: operation %q registered twice", name))
	}
	d.operations[name] = o
}

// Operations lists the registered operation names in sorted order
func (d *Dispatcher) Operations() []string {
	names := make([]string, 0, len(d.operations))
	for name := range d.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named operation. Unknown operations are reported as
// not found.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload json.RawMessage) Result {
	requestID := logger.RequestIDFrom(ctx)
	ctx = logger.WithRequestID(ctx, requestID)

	o, ok := d.operations[name]
	if !ok {
		d.logger.Debug("command_unknown", "Unknown operation requested", requestID, map[string]interface{}{
			"operation": name,
		})
		return Result{
			Operation: name,
			Kind:      apperror.KindNotFound,
			Message:   fmt.Sprintf("Unknown operation %s.", name),
		}
	}

	data, err := o.run(ctx, payload)
	if err != nil {
		kind := apperror.KindOf(err)
		d.logger.Debug("command_failed", "Operation failed", requestID, map[string]interface{}{
			"operation": name,
			"kind":      string(kind),
			"error":     err.Error(),
		})
		return Result{
			Operation: name,
			Kind:      kind,
			Message:   apperror.UserMessage(err, o.failure),
		}
	}

	d.logger.Debug("command_completed", "Operation completed", requestID, map[string]interface{}{
		"operation": name,
	})
	return Result{OK: true, Operation: name, Data: data}
}
