package rowsave

import "log/slog"

type SaverOption func(s *Saver)

// WithLogger makes the saver log every statement and its args before
// execution.
func WithLogger(logger *slog.Logger) SaverOption {
	return func(s *Saver) {
		s.logger = logger
	}
}

type SaveOption func(o *saveOption)

type saveOption struct {
	Tx Transaction
}

// WithTransaction runs the save inside a caller-owned transaction. The
// saver neither commits nor rolls it back; the caller does.
func WithTransaction(tx Transaction) SaveOption {
	return func(o *saveOption) {
		o.Tx = tx
	}
}
