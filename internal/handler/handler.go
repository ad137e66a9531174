package handler

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"vindtables/backend/helper"
	"vindtables/backend/internal/model"
	"vindtables/backend/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	activeDB service.DBClient
	dbMu     sync.RWMutex
)

// clientFactories maps a driver name to its client constructor. Tests swap
// entries for mocks.
var clientFactories = map[string]func() service.DBClient{
	"postgres": func() service.DBClient { return service.NewPostgresClient() },
	"pgx":      func() service.DBClient { return service.NewPgxClient() },
	"mysql":    func() service.DBClient { return service.NewMySQLClient() },
	"sqlite":   func() service.DBClient { return service.NewSQLiteClient() },
}

func currentDB() service.DBClient {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return activeDB
}

func setActiveDB(db service.DBClient) {
	dbMu.Lock()
	prev := activeDB
	activeDB = db
	dbMu.Unlock()

	if prev != nil && prev != db {
		if err := prev.Disconnect(); err != nil {
			log.Printf("closing previous connection: %v", err)
		}
	}
}

var errUnsupportedDriver = errors.New("Unsupported driver")

// Connect opens a connection with the named driver and makes it the active
// one.
func Connect(driver, dsn string) error {
	factory, ok := clientFactories[driver]
	if !ok {
		return errUnsupportedDriver
	}
	db := factory()
	if err := db.Connect(dsn); err != nil {
		return err
	}
	setActiveDB(db)
	return nil
}

// Disconnect closes the active connection, if any.
func Disconnect() {
	setActiveDB(nil)
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func ConnectHandler(c *gin.Context) {
	var req model.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := Connect(req.Driver, req.DSN); err != nil {
		if errors.Is(err, errUnsupportedDriver) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Connected successfully"})
}

func ListSchemasHandler(c *gin.Context) {
	db := currentDB()
	if db == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	schemas, err := db.ListSchemas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if schemas == nil {
		schemas = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"schemas": schemas})
}

func ListTablesHandler(c *gin.Context) {
	db := currentDB()
	if db == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	schema := c.DefaultQuery("schema", db.DefaultSchema())
	if !helper.ValidIdentifiers(schema) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schema name"})
		return
	}

	tables, err := db.ListTables(schema)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if tables == nil {
		tables = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func ListColumnsHandler(c *gin.Context) {
	db := currentDB()
	if db == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not connected to any database"})
		return
	}

	schema := c.DefaultQuery("schema", db.DefaultSchema())
	table := c.Query("table")
	if table == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'table' query parameter"})
		return
	}
	if !helper.IsValidIdentifier(table) || !helper.ValidIdentifiers(schema) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table or schema name"})
		return
	}

	log.Printf("Listing columns for %s.%s\n", schema, table)
	columns, err := db.ListColumns(schema, table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch columns: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}
