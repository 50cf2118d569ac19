package coach

// ValidationError means the payload parsed as JSON but broke the expected shape,
// cardinality or required fields. Message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ResponseParseError means the payload was not JSON at all.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return "Failed to parse LLM response as JSON: " + e.Err.Error()
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}
