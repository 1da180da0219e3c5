package main

import (
	"fmt"
	"net/http"
	"os"

	"restaurant/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer func() {
		if err := app.Close(); err != nil {
			log.Errorf("Error closing composition root: %v", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:       goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPriceChangedTopic:   goDotEnvVariable("KAFKA_PRICE_CHANGED_TOPIC"),
		RedisHost:                goDotEnvVariable("REDIS_HOST"),
		MenusCacheTTL:            goDotEnvVariable("MENUS_CACHE_TTL"),
		MenuRevalidationSchedule: goDotEnvVariable("MENU_REVALIDATION_SCHEDULE"),
		CourierServiceURL:        goDotEnvVariable("COURIER_SERVICE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
