package container

import "errors"

var (
	// Reported when an engine response contradicts the engine's documented
	// API contract, such as an inspected container with no state. These
	// conditions are fatal and never masked with a default value.
	ErrEngineContract = errors.New("engine contract violation")
)
