package api

import (
	"net/http"

	resdto "beauty-booking/internal/handler/dto/response"
	"beauty-booking/internal/handler/httperr"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List services
// @Description List the service catalog ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 500 {object} httperr.Response
// @Router /api/servicos [get]
func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromServiceViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map services"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get service
// @Description Get one service by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/servicos/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromServiceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map service"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
