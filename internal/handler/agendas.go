package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/middleware"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
	"github.com/ArojasJ/agendas-entregas/internal/service"
)

type AgendasHandler struct{ svc service.AgendaService }

func NewAgendasHandler(svc service.AgendaService) *AgendasHandler {
	return &AgendasHandler{svc: svc}
}

// Crear godoc
// @Summary Agenda una entrega (publico, reglas completas)
// @Tags agendas
// @Accept json
// @Produce json
// @Param body body dto.CrearAgendaRequest true "Datos de la agenda"
// @Success 201 {object} dto.AgendaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/agendas [post]
func (h *AgendasHandler) Crear(c *gin.Context) {
	var req dto.CrearAgendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, false)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CrearManual godoc
// @Summary Alta manual de staff (omite las reglas de agendado)
// @Tags agendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearAgendaRequest true "Datos de la agenda"
// @Success 201 {object} dto.AgendaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/agendas/manual [post]
func (h *AgendasHandler) CrearManual(c *gin.Context) {
	var req dto.CrearAgendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, true)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista agendas con filtros opcionales
// @Tags agendas
// @Produce json
// @Security BearerAuth
// @Param type query string false "bodega | domicilio | paqueteria"
// @Param from query string false "Fecha minima YYYY-MM-DD"
// @Param to query string false "Fecha maxima YYYY-MM-DD"
// @Success 200 {array} dto.AgendaResponse
// @Router /v1/agendas [get]
func (h *AgendasHandler) Listar(c *gin.Context) {
	f := repository.AgendaFilter{
		Tipo:       c.Query("type"),
		FechaDesde: c.Query("from"),
		FechaHasta: c.Query("to"),
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), f, claims.Rol)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarEntrega godoc
// @Summary Actualiza el ciclo de entrega de una agenda
// @Tags agendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de agenda"
// @Param body body dto.ActualizarEntregaRequest true "Campos a actualizar"
// @Success 200 {object} dto.AgendaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/agendas/{id}/entrega [patch]
func (h *AgendasHandler) ActualizarEntrega(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ActualizarEntrega(c.Request.Context(), id, req, claims.Rol)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reagendar godoc
// @Summary Cambia la fecha de una agenda existente
// @Tags agendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de agenda"
// @Param body body dto.ReagendarRequest true "Nueva fecha"
// @Success 200 {object} dto.AgendaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/agendas/{id}/reagendar [patch]
func (h *AgendasHandler) Reagendar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ReagendarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Reagendar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarStatus godoc
// @Summary Cambia el status de cotizacion de una paqueteria
// @Tags agendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de agenda"
// @Param body body dto.ActualizarStatusRequest true "Nuevo status"
// @Success 200 {object} dto.AgendaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/agendas/{id}/status [patch]
func (h *AgendasHandler) ActualizarStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MarcarStatus(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Elimina una agenda
// @Tags agendas
// @Security BearerAuth
// @Param id path string true "ID de agenda"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/agendas/{id} [delete]
func (h *AgendasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
