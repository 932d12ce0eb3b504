package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/service"
)

type BloqueosHandler struct{ svc service.BloqueoService }

func NewBloqueosHandler(svc service.BloqueoService) *BloqueosHandler {
	return &BloqueosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista los dias bloqueados (publico, alimenta el calendario)
// @Tags dias-bloqueados
// @Produce json
// @Success 200 {array} dto.DiaBloqueadoResponse
// @Router /v1/dias-bloqueados [get]
func (h *BloqueosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Bloquear godoc
// @Summary Bloquea un dia para un tipo de entrega
// @Tags dias-bloqueados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.BloquearDiaRequest true "Dia y tipo a bloquear"
// @Success 201 {object} dto.DiaBloqueadoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/dias-bloqueados [post]
func (h *BloqueosHandler) Bloquear(c *gin.Context) {
	var req dto.BloquearDiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Bloquear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Desbloquear godoc
// @Summary Quita el bloqueo de un dia
// @Tags dias-bloqueados
// @Security BearerAuth
// @Param id path string true "ID del bloqueo"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/dias-bloqueados/{id} [delete]
func (h *BloqueosHandler) Desbloquear(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desbloquear(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
