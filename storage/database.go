package storage

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/models"
	"github.com/Lawhacknifemi/real-estate/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	dsn := utils.Conf.DBConnectionString
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connecting to db: " + dbError.Error())
	}

	DB = db
	return db
}

// Migrate runs schema migration; tests call it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Realtor{},
		&models.Property{},
		&models.Vendor{},
		&models.Purchase{},
		&models.Blog{},
		&models.Favorite{},
		&models.Follower{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	if err := Migrate(db); err != nil {
		log.Panic("migration failed: " + err.Error())
	}
	return db
}
