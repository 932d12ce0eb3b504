// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Rechazo is a typed business rejection. Every rule of the booking validator
// and every staff operation failure maps to exactly one code, so the UI can
// tell "no slots left for this date" apart from "this date is blocked".
type Rechazo struct {
	Codigo string
	Detail string
}

func (r *Rechazo) Error() string { return r.Detail }

// Rejection codes.
const (
	CodigoCamposFaltantes   = "missing_fields"
	CodigoDiaBloqueado      = "day_blocked"
	CodigoMismoDia          = "same_day_not_allowed"
	CodigoDiaRecoleccion    = "invalid_pickup_day"
	CodigoUbicacionFaltante = "missing_location_fields"
	CodigoCPInvalido        = "invalid_postal_code"
	CodigoCupoAgotado       = "capacity_exceeded"
	CodigoStatusNoAplica    = "status_not_applicable"
	CodigoNoAutorizado      = "unauthorized"
	CodigoNoEncontrado      = "not_found"
)

var (
	ErrCamposFaltantes   = &Rechazo{Codigo: CodigoCamposFaltantes, Detail: "Faltan campos obligatorios."}
	ErrDiaBloqueado      = &Rechazo{Codigo: CodigoDiaBloqueado, Detail: "Este dia esta bloqueado para el tipo de entrega."}
	ErrMismoDia          = &Rechazo{Codigo: CodigoMismoDia, Detail: "Debes agendar con al menos un dia de anticipacion."}
	ErrDiaRecoleccion    = &Rechazo{Codigo: CodigoDiaRecoleccion, Detail: "Dia de bodega invalido: solo martes y jueves."}
	ErrUbicacionFaltante = &Rechazo{Codigo: CodigoUbicacionFaltante, Detail: "Faltan datos de ubicacion para entrega a domicilio."}
	ErrCPInvalido        = &Rechazo{Codigo: CodigoCPInvalido, Detail: "El codigo postal debe tener exactamente 5 digitos."}
	ErrCupoAgotado       = &Rechazo{Codigo: CodigoCupoAgotado, Detail: "No quedan cupos para esta fecha."}
	ErrNoAutorizado      = &Rechazo{Codigo: CodigoNoAutorizado, Detail: "No autorizado."}
	ErrNoEncontrado      = &Rechazo{Codigo: CodigoNoEncontrado, Detail: "No existe el registro solicitado."}
)

// NuevoRechazo builds a rejection with a custom detail for an existing code.
func NuevoRechazo(codigo, detail string) *Rechazo {
	return &Rechazo{Codigo: codigo, Detail: detail}
}
