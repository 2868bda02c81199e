// Package logger provides structured logging for fixturekit using zerolog.
//
// Sessions and the database layer accept a *Logger; when none is supplied
// they log through NewNop so a test run stays quiet unless asked otherwise.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "console"
//
// # Usage
//
//	log := logger.New(&logger.Config{Level: "debug"}, "fixtures")
//	log.WithComponent("factory").Debug("statement", logger.Fields("sql", stmt))
package logger
