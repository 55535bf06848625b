package db

import (
	"log"
	"yatube/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init connects to MySQL, Postgres or SQLite (in that order of preference) based on the config
func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		log.Println("Using MySQL database")
		dialector = mysql.Open(config.MYSQL_DSN)
	} else if config.POSTGRES_DSN != "" {
		log.Println("Using Postgres database")
		dialector = postgres.Open(config.POSTGRES_DSN)
	} else {
		log.Printf("Using SQLite database %s", config.SQLITE_FILE)
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	if err := Open(dialector); err != nil {
		panic(err)
	}
}

// Open sets Instance to a new connection using the given dialector
func Open(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if dialector.Name() == "sqlite" {
		// SQLite has a single writer, more connections just fight over the lock
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	}
	Instance = db
	return nil
}

// Close releases the underlying connection pool
func Close() {
	if Instance == nil {
		return
	}
	if sqlDB, err := Instance.DB(); err == nil {
		sqlDB.Close()
	}
	Instance = nil
}
