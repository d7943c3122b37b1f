package domain

import "time"

// Rol represents a user role in the system
type Rol string

const (
	RolResidente     Rol = "Residente/Arrendador"
	RolAdministrador Rol = "Administrador"
)

// EstadoUnidad represents the occupancy state of a unit
type EstadoUnidad string

const (
	UnidadDisponible    EstadoUnidad = "Disponible"
	UnidadOcupado       EstadoUnidad = "Ocupado"
	UnidadMantenimiento EstadoUnidad = "Mantenimiento"
)

// TipoUnidad represents the layout type of a unit
type TipoUnidad string

const (
	UnidadApartamento   TipoUnidad = "Apartamento"
	UnidadApartaestudio TipoUnidad = "Apartaestudio"
)

// ValidEstadoUnidad reports whether s is a known unit state
func ValidEstadoUnidad(s EstadoUnidad) bool {
	switch s {
	case UnidadDisponible, UnidadOcupado, UnidadMantenimiento:
		return true
	}
	return false
}

// ValidTipoUnidad reports whether t is a known unit layout
func ValidTipoUnidad(t TipoUnidad) bool {
	switch t {
	case UnidadApartamento, UnidadApartaestudio:
		return true
	}
	return false
}

// Unit represents a rentable unit of the building
type Unit struct {
	ID           string       `json:"id"`
	Piso         int          `json:"piso"`
	Tipo         TipoUnidad   `json:"tipo"`
	Estado       EstadoUnidad `json:"estado"`
	PrecioOferta float64      `json:"precio_oferta"`
	Area         float64      `json:"area"`
	Habitaciones int          `json:"habitaciones"`
	Banos        int          `json:"banos"`
	Descripcion  string       `json:"descripcion"`
	MediaURLs    []string     `json:"media_urls"`
}

// EstadoPago represents the settlement state of a payment record
type EstadoPago string

const (
	PagoCompletado EstadoPago = "Completado"
	PagoPendiente  EstadoPago = "Pendiente"
	PagoRechazado  EstadoPago = "Rechazado"
)

// PaymentRecord represents one entry of a user's payment history
type PaymentRecord struct {
	ID       string     `json:"id"`
	Fecha    time.Time  `json:"fecha"`
	Monto    float64    `json:"monto"`
	Concepto string     `json:"concepto"`
	Estado   EstadoPago `json:"estado"`
}

// User represents a portal user in the domain layer
type User struct {
	ID             string
	Nombre         string
	Email          string
	Password       string // bcrypt hash
	Rol            Rol
	UnidadAsignada string // unit ID, empty when none
	HistorialPagos []PaymentRecord
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserResponse is the public view of a user (no password hash)
type UserResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Email          string          `json:"email"`
	Rol            Rol             `json:"rol"`
	UnidadAsignada string          `json:"unidad_asignada,omitempty"`
	HistorialPagos []PaymentRecord `json:"historial_pagos"`
}

// ToResponse converts a User to its public view
func (u *User) ToResponse() UserResponse {
	historial := u.HistorialPagos
	if historial == nil {
		historial = []PaymentRecord{}
	}
	return UserResponse{
		ID:             u.ID,
		Nombre:         u.Nombre,
		Email:          u.Email,
		Rol:            u.Rol,
		UnidadAsignada: u.UnidadAsignada,
		HistorialPagos: historial,
	}
}

// TipoSolicitud represents the kind of a support request
type TipoSolicitud string

const (
	SolicitudReclamo       TipoSolicitud = "Reclamo"
	SolicitudMantenimiento TipoSolicitud = "Mantenimiento"
	SolicitudSugerencia    TipoSolicitud = "Sugerencia"
)

// EstadoSolicitud represents the workflow state of a support request
type EstadoSolicitud string

const (
	SolicitudPendiente EstadoSolicitud = "Pendiente"
	SolicitudEnProceso EstadoSolicitud = "En Proceso"
	SolicitudResuelta  EstadoSolicitud = "Resuelta"
)

// ValidTipoSolicitud reports whether t is a known request kind
func ValidTipoSolicitud(t TipoSolicitud) bool {
	switch t {
	case SolicitudReclamo, SolicitudMantenimiento, SolicitudSugerencia:
		return true
	}
	return false
}

// ValidEstadoSolicitud reports whether s is a known request state
func ValidEstadoSolicitud(s EstadoSolicitud) bool {
	switch s {
	case SolicitudPendiente, SolicitudEnProceso, SolicitudResuelta:
		return true
	}
	return false
}

// SupportRequest represents a resident's request to the administration
type SupportRequest struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UnidadID      string          `json:"unidad_id,omitempty"`
	Tipo          TipoSolicitud   `json:"tipo"`
	Detalle       string          `json:"detalle"`
	Estado        EstadoSolicitud `json:"estado"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
	// FechaActualizacion never precedes FechaCreacion
	FechaActualizacion time.Time  `json:"fecha_actualizacion"`
	FechaCierre        *time.Time `json:"fecha_cierre,omitempty"`
}

// TipoNotificacion represents the origin of a notification
type TipoNotificacion string

const (
	NotificacionPago      TipoNotificacion = "pago"
	NotificacionSolicitud TipoNotificacion = "solicitud"
)

// Notification represents one entry of the administration feed.
// Mensaje is the headline, Usuario the display name of the resident
// involved, Detalle an optional second line.
type Notification struct {
	ID      string           `json:"id"`
	Tipo    TipoNotificacion `json:"tipo"`
	Mensaje string           `json:"mensaje"`
	Detalle string           `json:"detalle,omitempty"`
	Usuario string           `json:"usuario"`
	Fecha   time.Time        `json:"fecha"`
	Leida   bool             `json:"leida"`
	UserID  string           `json:"user_id,omitempty"`
}

// Event represents a building event or announcement
type Event struct {
	ID          string    `json:"id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion"`
	Fecha       time.Time `json:"fecha"`
	ImagenURL   string    `json:"imagen_url"`
	Destacado   bool      `json:"destacado"`
}

// Session represents a refresh session bound to a hashed token
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked reports whether the session was explicitly revoked
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired reports whether the session passed its expiry
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
