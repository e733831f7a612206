package cmd

import "fmt"

// Config carries the application settings read from the environment.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	GeoServiceGrpcHost string
}

// DSN builds the Postgres connection string shared by the ORM write side
// and the database/sql read side.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
