package handler

import (
	"fmt"
	"net/http"

	"vindtables/backend/helper"
	"vindtables/backend/internal/datatables"
	"vindtables/backend/internal/model"

	"github.com/gin-gonic/gin"
)

// DataTablesHandler serves server-side processing requests for one table.
// Once the request is understood the response is always 200 with an
// envelope; query failures are reported in its error field.
func DataTablesHandler(c *gin.Context) {
	db := currentDB()
	if db == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active DB connection"})
		return
	}

	schema := c.DefaultQuery("schema", db.DefaultSchema())
	table := c.Param("table")
	if !helper.IsValidIdentifier(table) || !helper.ValidIdentifiers(schema) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table or schema name"})
		return
	}

	input, err := bindDataTablesInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	columns, err := db.ListColumns(schema, table)
	if err == nil && len(columns) == 0 {
		err = fmt.Errorf("table %s not found", table)
	}
	if err != nil {
		c.JSON(http.StatusOK, model.DataTablesOutput{
			Draw:  input.Draw,
			Data:  []map[string]any{},
			Error: err.Error(),
		})
		return
	}

	repo := datatables.NewRepository(db.Table(schema, table), datatables.NewAttributes(columns))
	c.JSON(http.StatusOK, repo.FindAll(c.Request.Context(), input))
}

// bindDataTablesInput accepts a JSON body or the bracket-notation form
// DataTables sends by default, in the query string or a form body.
func bindDataTablesInput(c *gin.Context) (model.DataTablesInput, error) {
	if c.Request.Method == http.MethodPost && c.ContentType() == gin.MIMEJSON {
		input := model.NewDataTablesInput()
		if err := c.ShouldBindJSON(&input); err != nil {
			return input, err
		}
		return input, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return model.DataTablesInput{}, err
	}
	return model.ParseDataTablesForm(c.Request.Form)
}
