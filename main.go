package main

import (
	"context"
	"crypto/rsa"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/sacavia/sacavia-api/api"
	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/external/geoinfo"
	"github.com/sacavia/sacavia-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.database", "sacavia")
	viper.SetDefault("mongo.pool", 100)
	viper.SetDefault("location.candidate_limit", consts.DefaultCandidateLimit)
	viper.SetDefault("auth.cookie", "payload-token")
	viper.SetDefault("i18n.dir", "./i18n")

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sacavia")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func loadJWTPublicKey(file string) (*rsa.PublicKey, error) {
	if file == "" {
		return nil, nil
	}

	pem, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return jwt.ParseRSAPublicKeyFromPEM(pem)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle(viper.GetString("i18n.dir"))
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	// Load JWT public key of the session issuer
	jwtPublicKey, err := loadJWTPublicKey(viper.GetString("jwt.pubkeyfile"))
	if err != nil {
		log.Panic(err)
	}
	if jwtPublicKey == nil {
		log.WithField("prefix", "init").Warn("No jwt public key. All requests are anonymous.")
	}

	var geoClient geoinfo.GeoInfo
	if apiKey := viper.GetString("maps.apikey"); apiKey != "" {
		geoClient, err = geoinfo.New(apiKey)
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized geocoder")
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	metrics, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:    "sacavia_api",
		Separator: "_",
	}, time.Second)
	defer closer.Close()

	// Init http server
	server = api.NewServer(
		ormDB,
		mongoClient,
		jwtPublicKey,
		geoClient,
		metrics)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
