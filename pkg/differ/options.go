package differ

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithIgnoredColumns sets columns to ignore during comparison
func WithIgnoredColumns(columns ...string) Option {
	return func(d *differ) {
		for _, col := range columns {
			d.ignoreColumns[col] = true
		}
	}
}
