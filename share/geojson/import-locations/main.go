package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sacavia/sacavia-api/share/geojson"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sacavia")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var file string
	flag.StringVar(&file, "f", "locations.geojson", "path of the feature collection to import")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}
	defer client.Disconnect(ctx)

	count, err := geojson.ImportLocations(client, viper.GetString("mongo.database"), file)
	if err != nil {
		panic(err)
	}

	fmt.Printf("imported %d locations\n", count)
}
