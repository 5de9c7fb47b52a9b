package pp

// Option configures an Engine.
type Option func(*config)

type config struct {
	width func(string) int
}

// WithWidthFunc overrides how the rendered width of a string token is
// measured. The default counts printable cells the way a terminal does:
// ANSI escape sequences are zero width and East Asian wide runes count as
// two columns.
func WithWidthFunc(f func(string) int) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.width = f
		}
	}
}
