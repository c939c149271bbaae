package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// StatsResponse mirrors the dashboard counters payload
type StatsResponse struct {
	RegisteredPeople  int    `json:"personas_registradas" example:"12"`
	DetectionsToday   int    `json:"detecciones_hoy" example:"34"`
	UniquePeopleToday int    `json:"personas_unicas_hoy" example:"8"`
	UnknownsToday     int    `json:"desconocidos_hoy" example:"3"`
	PendingEvents     int    `json:"eventos_pendientes" example:"5"`
	CriticalEvents    int    `json:"eventos_criticos" example:"2"`
	ActiveCameras     int    `json:"camaras_activas" example:"4"`
	UpdatedAt         string `json:"ultima_actualizacion" example:"2024-01-01T12:00:00Z"`
}

// PersonResponse represents a registered person
type PersonResponse struct {
	ID        int64  `json:"id" example:"7"`
	FirstName string `json:"nombre" example:"Ana"`
	LastName  string `json:"apellido" example:"Lopez"`
	Type      string `json:"tipo" example:"residente"`
	Active    bool   `json:"activo" example:"true"`
}

// DetectionResponse represents one recognition match
type DetectionResponse struct {
	ID         int64   `json:"id" example:"101"`
	FirstName  string  `json:"nombre" example:"Ana"`
	LastName   string  `json:"apellido" example:"Lopez"`
	CameraName string  `json:"camara_nombre" example:"Entrada Principal"`
	Confidence float64 `json:"confianza" example:"0.92"`
	IsUnknown  bool    `json:"es_desconocido" example:"false"`
}

// EventResponse represents an alertable event
type EventResponse struct {
	ID          int64  `json:"id" example:"42"`
	Type        string `json:"tipo" example:"desconocido_detectado"`
	Severity    string `json:"severidad" example:"alta"`
	Description string `json:"descripcion" example:"Persona desconocida en entrada"`
	Resolved    bool   `json:"resuelto" example:"false"`
}

// ConfigResponse represents the tunable system settings
type ConfigResponse struct {
	ConfidenceThreshold float64 `json:"umbral_confianza" example:"0.6"`
	AlertsEnabled       bool    `json:"activar_alertas" example:"true"`
	SaveFrames          bool    `json:"guardar_frames" example:"true"`
	ImageRetentionDays  int     `json:"dias_retencion_imagenes" example:"30"`
}

// CreatePersonBody is the registration request payload
type CreatePersonBody struct {
	FirstName string `json:"nombre" example:"Ana"`
	LastName  string `json:"apellido" example:"Lopez"`
	Type      string `json:"tipo" example:"residente"`
	Notes     string `json:"notas" example:""`
	Image     string `json:"imagen" example:"data:image/jpeg;base64,..."`
}

// ResolveEventBody carries optional resolution notes
type ResolveEventBody struct {
	Notes string `json:"notas" example:"falsa alarma"`
}

// ErrorResponse represents the failure envelope
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Persona no encontrada"`
	Code    string `json:"code" example:"PERSON_NOT_FOUND"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Centinela Dashboard API",
		Version:     "v0.1.0",
		Description: "Facial recognition surveillance dashboard backend: people, detections, events and system configuration",
		Host:        "localhost:5000",
		Path:        "/api",
	})

	endpoints := []*endpoint.EndPoint{
		endpoint.New(
			endpoint.GET,
			"/dashboard/stats",
			endpoint.WithTags("Dashboard"),
			endpoint.WithSummary("Dashboard counters"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StatsResponse{}, "200", "Current aggregates"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/dashboard/activity",
			endpoint.WithTags("Dashboard"),
			endpoint.WithSummary("Detections per day"),
			endpoint.WithParams(
				parameter.IntParam("days", parameter.Query, parameter.WithDescription("Window in days (default 7)")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]StatsResponse{}, "200", "Daily totals, most recent first"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/personas",
			endpoint.WithTags("Personas"),
			endpoint.WithSummary("List active registered people"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]PersonResponse{}, "200", "Active people"),
			}),
		),
		endpoint.New(
			endpoint.POST,
			"/personas",
			endpoint.WithTags("Personas"),
			endpoint.WithSummary("Register a person"),
			endpoint.WithDescription("Registers a person with a base64 reference photo captured from the dashboard camera widget"),
			endpoint.WithBody(CreatePersonBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(PersonResponse{}, "201", "Person registered"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NAME_REQUIRED", Error: "El nombre es obligatorio"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "IMAGE_REQUIRED", Error: "Se requiere una imagen para registrar"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "PERSON_EXISTS", Error: "Ya existe una persona registrada con ese nombre"}, "409", "Conflict"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Error: "Invalid image format or corrupted file"}, "422", "Unprocessable Entity"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/personas/{id}",
			endpoint.WithTags("Personas"),
			endpoint.WithSummary("Get a person"),
			endpoint.WithParams(
				parameter.IntParam("id", parameter.Path, parameter.WithDescription("Record id")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(PersonResponse{}, "200", "Person"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "PERSON_NOT_FOUND", Error: "Persona no encontrada"}, "404", "Not Found"),
			}),
		),
		endpoint.New(
			endpoint.PUT,
			"/personas/{id}",
			endpoint.WithTags("Personas"),
			endpoint.WithSummary("Update a person"),
			endpoint.WithParams(
				parameter.IntParam("id", parameter.Path, parameter.WithDescription("Record id")),
			),
			endpoint.WithBody(CreatePersonBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(PersonResponse{}, "200", "Updated person"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "PERSON_NOT_FOUND", Error: "Persona no encontrada"}, "404", "Not Found"),
			}),
		),
		endpoint.New(
			endpoint.DELETE,
			"/personas/{id}",
			endpoint.WithTags("Personas"),
			endpoint.WithSummary("Deactivate a person"),
			endpoint.WithParams(
				parameter.IntParam("id", parameter.Path, parameter.WithDescription("Record id")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ErrorResponse{Success: true}, "200", "Person deactivated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "PERSON_NOT_FOUND", Error: "Persona no encontrada"}, "404", "Not Found"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/detecciones",
			endpoint.WithTags("Detecciones"),
			endpoint.WithSummary("Recent detections"),
			endpoint.WithParams(
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Max rows (default 50)")),
				parameter.IntParam("camara_id", parameter.Query, parameter.WithDescription("Filter by camera")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]DetectionResponse{}, "200", "Detections, most recent first"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/eventos",
			endpoint.WithTags("Eventos"),
			endpoint.WithSummary("List events"),
			endpoint.WithParams(
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Max rows (default 100)")),
				parameter.StrParam("resueltos", parameter.Query, parameter.WithDescription("true lists resolved events instead of pending ones")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]EventResponse{}, "200", "Events"),
			}),
		),
		endpoint.New(
			endpoint.POST,
			"/eventos/{id}/resolver",
			endpoint.WithTags("Eventos"),
			endpoint.WithSummary("Resolve an event"),
			endpoint.WithParams(
				parameter.IntParam("id", parameter.Path, parameter.WithDescription("Record id")),
			),
			endpoint.WithBody(ResolveEventBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ErrorResponse{Success: true}, "200", "Event resolved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "EVENT_NOT_FOUND", Error: "Evento no encontrado"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "EVENT_ALREADY_RESOLVED", Error: "El evento ya fue resuelto"}, "409", "Conflict"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/camaras",
			endpoint.WithTags("Camaras"),
			endpoint.WithSummary("List active cameras"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]EventResponse{}, "200", "Active cameras"),
			}),
		),
		endpoint.New(
			endpoint.GET,
			"/configuracion",
			endpoint.WithTags("Configuracion"),
			endpoint.WithSummary("Current system settings"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ConfigResponse{}, "200", "Settings with defaults applied"),
			}),
		),
		endpoint.New(
			endpoint.POST,
			"/configuracion",
			endpoint.WithTags("Configuracion"),
			endpoint.WithSummary("Update system settings"),
			endpoint.WithBody(ConfigResponse{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ErrorResponse{Success: true}, "200", "Settings updated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_CONFIG_KEY", Error: "Unknown configuration key"}, "422", "Unprocessable Entity"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)
	return sw
}
