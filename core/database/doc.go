// Package database handles connections to the local store database.
//
// It provides a wrapper around GORM to configure either a local sqlite file
// (the default, matching the tracker's local-first design) or a MySQL
// connection for shared installs.
//
// # Connect
//
// The Connect function establishes the connection based on the configured
// driver. Opening the sqlite store is self-healing: if the database file is
// unreadable it is deleted and recreated empty instead of failing startup.
// This deliberately loses local data as a last resort and is logged loudly.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database, log)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
package database
