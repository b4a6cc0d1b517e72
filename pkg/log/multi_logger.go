package log

// MultiLogger fans one event stream out to several loggers, for example
// console output through SlogAdapter alongside a FileLogger capture.
type MultiLogger []Logger

// NewMultiLogger combines loggers into one. Nil entries are dropped.
func NewMultiLogger(loggers ...Logger) MultiLogger {
	combined := make(MultiLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			combined = append(combined, l)
		}
	}
	return combined
}

// Log forwards the event to every logger in order.
func (m MultiLogger) Log(event Event) {
	for _, l := range m {
		l.Log(event)
	}
}

var _ Logger = MultiLogger(nil)
