package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"delivery/cmd"
	"delivery/internal/adapters/out/grpc/geosrv"
	"delivery/internal/adapters/out/postgres/courierrepo"
	"delivery/internal/adapters/out/postgres/orderrepo"
	"delivery/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoswagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenGormDB(configs)
	migrateSchema(gormDB)

	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	defer sqlDB.Close()

	geoClient, err := geosrv.NewClient(configs.GeoServiceGrpcHost)
	if err != nil {
		log.Fatalf("Error creating geo client: %v", err)
	}
	defer geoClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, sqlDB, geoClient, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		GeoServiceGrpcHost: os.Getenv("GEO_SERVICE_GRPC_HOST"),
	}
}

func mustOpenGormDB(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

// migrateSchema creates the tables on startup. A dedicated migration tool
// would be overkill for a schema this small.
func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&courierrepo.TransportDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, "Failed to load API spec")
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoswagger.EchoWrapHandler(echoswagger.URL("/openapi.json")))

	servers.RegisterHandlersWithBaseURL(e, app.CreateHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
