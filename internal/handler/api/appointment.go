package api

import (
	"net/http"

	reqdto "beauty-booking/internal/handler/dto/request"
	resdto "beauty-booking/internal/handler/dto/response"
	"beauty-booking/internal/handler/httperr"
	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds         commands.AppointmentCommands
	q            queries.AppointmentQueries
	availability queries.AvailabilityQueries
}

func NewAppointmentHandler(
	cmds commands.AppointmentCommands,
	q queries.AppointmentQueries,
	availability queries.AvailabilityQueries,
) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Available slots
// @Description Free slots of a service on a day, in canonical order. An empty list means fully booked.
// @Tags appointments
// @Produce json
// @Param servicoId query string true "Service ID"
// @Param data query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} string
// @Failure 400 {object} httperr.Response
// @Router /api/horarios-disponiveis [get]
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	var query reqdto.AvailableSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "servicoId and data are required", nil)
		return
	}

	serviceID, err := query.ServiceID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "servicoId must be a valid UUID", nil)
		return
	}

	slots, err := h.availability.AvailableSlots(c.Request.Context(), serviceID, query.Data)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Book appointment
// @Description Book a slot for the authenticated user
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agendar [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromAppointmentResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map appointment"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary My appointments
// @Description Appointments of the authenticated user ordered by date and slot
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/minhas-consultas [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromAppointmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map appointments"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary All appointments
// @Description Every appointment with its client, for the owner
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentAdminResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /todas-consultas [get]
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListAll(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromAppointmentAdminViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map appointments"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Complete appointment
// @Description Mark an appointment completed. Completing twice is a no-op.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompleteAppointmentRequest true "Completion request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /concluir-consulta [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Complete(c.Request.Context(), actor, req.AppointmentID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromAppointmentResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map appointment"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
