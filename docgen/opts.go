package docgen

type Option func(*docState)

// WithColors renders with the given color table. Off by default.
func WithColors(c *Colors) Option {
	return func(ds *docState) { ds.Color = c.Color }
}
