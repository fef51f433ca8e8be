package scoring

import "fmt"

// ConfigurationError reports scoring settings or field weights that cannot be scored.
// The form configuration has to be fixed before any submission is scored against it.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid scoring configuration: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
