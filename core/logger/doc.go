// Package logger provides a structured logging facility based on Zap.
//
// New builds a logger from a Config. The "debug" level selects Zap's
// development configuration; every other level uses the production
// configuration with the requested minimum level. Output always goes to
// stderr so that stdout stays reserved for the readiness line.
//
// # Request Correlation
//
// Every request served by the mock route carries a RayID, stored in the Fiber
// locals by the rayid middleware. WithRayID attaches it to a logger so that
// resolution failures can be matched to the response that reported them.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Mock server starting")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Response resolution failed", zap.Error(err))
package logger
