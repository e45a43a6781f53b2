package store

import "golang.org/x/crypto/bcrypt"

// Option tunes a credential store
type Option func(*int)

// WithBcryptCost sets the bcrypt cost factor used when hashing passwords at
// signup. Higher cost trades request latency for brute-force resistance.
func WithBcryptCost(cost int) Option {
	return func(target *int) {
		*target = cost
	}
}

func applyOptions(cost *int, opts ...Option) {
	*cost = bcrypt.DefaultCost
	for _, opt := range opts {
		if opt != nil {
			opt(cost)
		}
	}
}
