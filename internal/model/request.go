package model

type ConnectRequest struct {
	Driver string `json:"driver"` // "postgres", "pgx", "mysql" or "sqlite"
	DSN    string `json:"dsn"`    // connection string
}
