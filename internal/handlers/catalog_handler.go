package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingai/listingai-backend/internal/config"
)

type CatalogHandler struct {
	catalog *config.Catalog
}

func NewCatalogHandler(catalog *config.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog godoc
// @Summary Get generator options
// @Description Returns the marketplaces, item conditions and plans the generator form offers.
// @Tags catalog
// @Produce json
// @Success 200 {object} config.Catalog
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
