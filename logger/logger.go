// Package logger provides adapters for popular logger libraries to work with
// bptree's Logger interface.
//
// Note that the standard library's slog.Logger already implements
// bptree.Logger directly.
//
// Example with zap:
//
//	zapLogger, _ := zap.NewProduction()
//	tree := bptree.New(32, bptree.WithLogger(logger.NewZap(zapLogger)))
package logger
