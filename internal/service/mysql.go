package service

import (
	_ "github.com/go-sql-driver/mysql"
)

func NewMySQLClient() *SQLClient {
	return NewSQLClient(MySQL)
}
