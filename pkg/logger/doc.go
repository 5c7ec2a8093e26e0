// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names for document
// validation logs.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "invoicing"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("document rejected",
//	    logger.DocumentType("RUC"),
//	    logger.DocumentNumber("20100070971"), // logged as ********971
//	    logger.Status("invalid_checksum"),
//	)
//
// DocumentNumber always masks its value, so raw identity numbers never reach
// the log output.
package logger
