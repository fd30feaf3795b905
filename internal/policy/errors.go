package policy

import "fmt"

// ConfigurationError reports an invalid workflow or pattern configuration.
// It is raised once, before any branch is evaluated.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// EvaluationError reports that the repository backend could not answer a
// query. It is distinct from a policy denial: the caller must not coerce it
// into either an allow or a deny.
type EvaluationError struct {
	Op  string
	Ref string
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation failed: %s %s: %v", e.Op, e.Ref, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
