// Package database opens the optional plan database through GORM.
//
// MySQL is used in deployments and SQLite for local runs and tests. An
// empty driver disables the database; features then skip persistence.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
