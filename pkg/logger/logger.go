package logger

// Logger is the structured logger every component depends on.
// Implementations live in sub-packages (see zap_adapter).
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// ErrorField is a shortcut for the most common field.
func ErrorField(err error) Field {
	return Field{Key: "error", Value: err}
}
