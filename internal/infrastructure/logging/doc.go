// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Components receive a *zap.Logger through their options and default to a
// no-op logger, so library code never logs unless the host asks for it.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Development: true})
//	doc := dom.NewDocument(dom.WithLogger(logger.Component("dom")))
//	logger.Info("Rendering blueprint", zap.String("path", path))
package logging
