package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderError maps service errors onto the HTTP envelope. Typed business
// rejections keep their code on the wire; anything else becomes an opaque 500.
func responderError(c *gin.Context, err error) {
	var rechazo *apierror.Rechazo
	if errors.As(err, &rechazo) {
		status := http.StatusBadRequest
		switch rechazo.Codigo {
		case apierror.CodigoNoEncontrado:
			status = http.StatusNotFound
		case apierror.CodigoNoAutorizado:
			status = http.StatusUnauthorized
		}
		c.JSON(status, &apierror.APIError{Detail: rechazo.Detail, Code: rechazo.Codigo})
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New("No se pudo completar la operacion."))
}

// parseID reads the :id path param as a UUID, writing the 400 itself on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
