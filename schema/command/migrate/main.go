package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/sacavia/sacavia-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sacavia")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "sacavia")
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS sacavia`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO sacavia").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(&schema.Account{}).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
