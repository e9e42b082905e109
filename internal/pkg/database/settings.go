package database

import (
	"fmt"
	"net/url"
)

type PostgresSettings struct {
	User       string `envconfig:"DB_USER" default:"admin"`
	Password   string `envconfig:"DB_PASSWORD" default:"password"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	DBName     string `envconfig:"DB_NAME" default:"vending_db"`
	SSlEnabled bool   `envconfig:"DB_SSL" default:"false"`
}

func (s PostgresSettings) GetURL() string {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(s.User), url.QueryEscape(s.Password), s.Host, s.Port, s.DBName)

	if !s.SSlEnabled {
		dbURL += "?sslmode=disable"
	}

	return dbURL
}
