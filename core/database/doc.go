// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration. The ledger feature stores users, collections and minted NFTs
// through the returned *gorm.DB.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity
// feature uses it to verify that the ledger schema matches the gorm models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "collections")
package database
