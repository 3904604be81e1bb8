package port

// Fields carries structured data into a log record.
type Fields map[string]interface{}

// LoggerPort defines the contract for the logging system. It keeps the
// application core independent from the concrete logger implementation.
type LoggerPort interface {
	// Info writes an informational message.
	Info(msg string, fields Fields)

	// Warn writes a warning.
	Warn(msg string, fields Fields)

	// Error writes an error message, usually together with the error object.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields creates a new logger instance with the given fields already
	// attached. Useful for adding context such as a component name.
	WithFields(fields Fields) LoggerPort
}
