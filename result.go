package hxrating

// Result is returned from the widget's action handlers to control the
// response: what props to re-render, which event to trigger, which flashes
// to append, and whether the action failed.
//
// Hosts normally never build Results themselves - the widget produces them
// internally - but the type is exported so custom error handlers and tests
// can reason about action outcomes.
type Result struct {
	props       Props
	err         error
	trigger     string
	triggerData map[string]any
	flashes     []Flash
	headers     map[string]string
	status      int
}

// OK creates a success result that re-renders with the given props.
func OK(props Props) Result {
	return Result{props: props}
}

// Err creates an error result. The error is routed through the registry's
// OnError handler; nothing is rendered.
func Err(props Props, err error) Result {
	return Result{props: props, err: err}
}

// Flash appends a one-time toast notification rendered as an OOB swap.
func (r Result) Flash(level, message string) Result {
	r.flashes = append(r.flashes, Flash{Level: level, Message: message})
	return r
}

// Trigger emits an event via the HX-Trigger header so host-page listeners
// can react (refresh an average display, update a counter, ...).
func (r Result) Trigger(event string, data ...map[string]any) Result {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// Header sets a custom response header.
func (r Result) Header(key, value string) Result {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Status overrides the HTTP status code (default 200).
func (r Result) Status(code int) Result {
	r.status = code
	return r
}

// Props returns the props the result will render with.
func (r Result) Props() Props {
	return r.props
}

// Error returns the action error, if any.
func (r Result) Error() error {
	return r.err
}
