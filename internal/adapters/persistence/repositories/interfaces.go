package repositories

import (
	"context"

	"torrealta-portal/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	AddPayment(ctx context.Context, userID string, record domain.PaymentRecord) error
	CountByRol(ctx context.Context, rol domain.Rol) (int64, error)
}

// SessionRepository defines refresh session repository interface
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Revoke(ctx context.Context, id string) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
	CountActiveByUserID(ctx context.Context, userID string) (int64, error)
}

// UnitRepository defines unit catalog repository interface
type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	List(ctx context.Context) ([]*domain.Unit, error)
	ListByEstado(ctx context.Context, estado domain.EstadoUnidad) ([]*domain.Unit, error)
	UpdateEstado(ctx context.Context, id string, estado domain.EstadoUnidad) error
	CountByEstado(ctx context.Context, estado domain.EstadoUnidad) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// EventRepository defines building event repository interface
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	List(ctx context.Context) ([]*domain.Event, error)
	ListDestacados(ctx context.Context) ([]*domain.Event, error)
}

// RequestRepository defines support request repository interface
type RequestRepository interface {
	Create(ctx context.Context, request *domain.SupportRequest) error
	GetByID(ctx context.Context, id string) (*domain.SupportRequest, error)
	Update(ctx context.Context, request *domain.SupportRequest) error
	List(ctx context.Context) ([]*domain.SupportRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.SupportRequest, error)
	CountByEstado(ctx context.Context, estado domain.EstadoSolicitud) (int64, error)
}

// NotificationRepository defines notification feed repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
	CountByTipo(ctx context.Context, tipo domain.TipoNotificacion) (int64, error)
}
