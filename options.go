package typedemit

// BusOption configures a Bus.
type BusOption func(*busConfig)

// busConfig contains configuration for the bus.
type busConfig struct {
	// panicHandler is called when EmitAsync captures a listener panic.
	panicHandler PanicHandler
}

// defaultBusConfig returns sensible default configuration.
func defaultBusConfig() busConfig {
	return busConfig{
		panicHandler: DefaultPanicHandler,
	}
}

// WithPanicHandler sets the observer for panics captured by EmitAsync.
func WithPanicHandler(h PanicHandler) BusOption {
	return func(c *busConfig) {
		if h != nil {
			c.panicHandler = h
		}
	}
}
