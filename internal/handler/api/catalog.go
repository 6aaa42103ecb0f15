package api

import (
	"net/http"
	"strconv"

	resdto "carseat-rental/internal/handler/dto/response"
	"carseat-rental/internal/handler/httperr"
	"carseat-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase}
}

// @Summary List locations
// @Description Pickup locations with stock status, optionally filtered by name, code or address
// @Tags catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} resdto.LocationDirectoryResponse
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	dir, err := h.catalogUseCase.Directory(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list locations")
		return
	}
	resp, err := resdto.FromLocationDirectory(dir)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Get location
// @Tags catalog
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	loc, err := h.catalogUseCase.GetLocation(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load location")
		return
	}
	resp, err := resdto.FromLocationView(loc)
	respond(c, http.StatusOK, resp, err)
}

// @Summary List seat types
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ItemTypeResponse
// @Router /item-types [get]
func (h *CatalogHandler) ListItemTypes(c *gin.Context) {
	items, err := h.catalogUseCase.ListItemTypes(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list seat types")
		return
	}
	resp, err := resdto.FromItemTypes(items)
	respond(c, http.StatusOK, resp, err)
}
