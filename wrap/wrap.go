package wrap

// Decorator transforms a function into an enhanced function of the
// same shape. Parametrized decorators are written as factories that
// return one.
type Decorator[F any] func(F) F

// Chain applies decorators to f in declaration order: the first listed
// becomes the outermost layer, so it sees the call before all others
// and the result after all others. Nil entries are skipped.
func Chain[F any](f F, ds ...Decorator[F]) F {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i] == nil {
			continue
		}
		f = ds[i](f)
	}

	return f
}

// Compose fuses decorators into one, preserving Chain's ordering. An
// empty Compose is the identity decorator.
func Compose[F any](ds ...Decorator[F]) Decorator[F] {
	return func(f F) F {
		return Chain(f, ds...)
	}
}
