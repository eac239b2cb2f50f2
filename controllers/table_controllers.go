package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"github.com/yeremiapane/ranahan-restaurant/utils"
)

type TableController struct {
	Registry *services.TableRegistry
}

func NewTableController(registry *services.TableRegistry) *TableController {
	return &TableController{Registry: registry}
}

// GetAllTables -> menampilkan seluruh meja urut id
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Registry.ListTables(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, tables)
}

// GetTableStatus -> status satu meja
func (tc *TableController) GetTableStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	status, err := tc.Registry.GetTableStatus(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"id": id, "status": status})
}

// UpdateTableStatus -> edit status oleh staff (Available/Unavailable/Reserved)
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid status")
		return
	}

	updated, err := tc.Registry.SetTableStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		respondServiceError(c, err, http.StatusNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"updated": updated})
}
