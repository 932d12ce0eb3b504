package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/infra"
	"github.com/ArojasJ/agendas-entregas/internal/service"
)

type CajaHandler struct {
	svc         service.CajaService
	storagePath string
}

func NewCajaHandler(svc service.CajaService, storagePath string) *CajaHandler {
	return &CajaHandler{svc: svc, storagePath: storagePath}
}

// Preparar godoc
// @Summary Previsualiza el corte de caja abierto
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CortePreparadoResponse
// @Router /v1/caja/corte [get]
func (h *CajaHandler) Preparar(c *gin.Context) {
	resp, err := h.svc.PrepararCorte(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Registra el corte de caja con el efectivo contado
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearCorteRequest true "Efectivo contado y nota"
// @Success 201 {object} dto.CorteResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/caja/corte [post]
func (h *CajaHandler) Crear(c *gin.Context) {
	var req dto.CrearCorteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCorte(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Historial godoc
// @Summary Historial de cortes, del mas reciente al mas antiguo
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CorteResponse
// @Router /v1/caja/historial [get]
func (h *CajaHandler) Historial(c *gin.Context) {
	resp, err := h.svc.Historial(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Detalle de un corte con las entregas de su ventana
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del corte"
// @Success 200 {object} dto.CorteDetalleResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caja/cortes/{id} [get]
func (h *CajaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerCorte(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPDF godoc
// @Summary Reporte PDF de un corte
// @Tags caja
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID del corte"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/caja/cortes/{id}/pdf [get]
func (h *CajaHandler) ObtenerPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detalle, err := h.svc.ObtenerCorte(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	path, err := infra.GenerateCortePDF(detalle, h.storagePath)
	if err != nil {
		responderError(c, err)
		return
	}
	c.FileAttachment(path, "corte_"+detalle.Corte.ID+".pdf")
}
