// Package logging configures log/slog for portion binaries.
//
// Logs are JSON on stderr. Every record carries the module and version of the
// binary that wrote it, and debug records also carry their source location.
//
// The level comes from, in order: an explicit level string, the LOG_LEVEL
// environment variable, and finally INFO. Level names are case-insensitive:
// debug, info, warn (or warning), error. Unknown names fall back to INFO.
//
// Binaries set the default logger once at startup:
//
//	logging.SetDefaultStructuredLogger("portiond", version)
//	slog.Info("server started", "port", 8080)
//
// The CLI passes the --log-level flag through:
//
//	logging.SetDefaultStructuredLoggerWithLevel("portion", version, cmd.String("log-level"))
//
// Libraries such as pkg/scale and pkg/recipe never configure logging and only
// call slog. Unreadable quantities are logged at debug:
//
//	LOG_LEVEL=debug portion scale --from 4 --to 6 "en nypa salt"
//
// NewLogLogger adapts the default handler to a *log.Logger for APIs that need
// one, such as http.Server.ErrorLog.
package logging
