package logging

import "go.uber.org/zap"

// Logger is the package-level logger used by the client layer. It defaults to
// a no-op; applications that want SDK logs install one with SetLogger. The
// pure calculator and builder packages never log.
var Logger = zap.NewNop()

func SetLogger(l *zap.Logger) {
	Logger = l
}
