package verify

import "errors"

var (
	// ErrNoJSON means no JSON object boundaries were found in model output.
	ErrNoJSON = errors.New("no json object in model output")

	// ErrSchema means the model output parsed as JSON but is missing or
	// mistyping a field required by the kind's response schema.
	ErrSchema = errors.New("model output does not match response schema")
)
