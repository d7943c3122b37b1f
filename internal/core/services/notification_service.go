package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"

	"github.com/google/uuid"
)

// Notification feed filters
const (
	FiltroTodas       = "todas"
	FiltroPagos       = "pagos"
	FiltroSolicitudes = "solicitudes"
	FiltroNoLeidas    = "no-leidas"
)

// ErrInvalidFiltro is returned for an unknown feed filter
var ErrInvalidFiltro = errors.New("invalid notification filter")

var mesesCortos = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// RelativeAge renders the age of fecha against now the way the feed
// shows it: minutes under an hour, hours under a day, days under a
// week, then a short es-ES date.
func RelativeAge(fecha, now time.Time) string {
	diff := now.Sub(fecha)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("Hace %d min", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("Hace %dh", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("Hace %dd", int(diff.Hours()/24))
	default:
		return fmt.Sprintf("%02d %s", fecha.Day(), mesesCortos[fecha.Month()-1])
	}
}

// NotificationView is a feed entry plus its rendered relative age
type NotificationView struct {
	domain.Notification
	TiempoRelativo string `json:"tiempo_relativo"`
}

// NotificationService maintains the administration notification feed
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns feed entries matching the filter, newest first
func (s *NotificationService) List(ctx context.Context, filtro string) ([]NotificationView, error) {
	if filtro == "" {
		filtro = FiltroTodas
	}
	switch filtro {
	case FiltroTodas, FiltroPagos, FiltroSolicitudes, FiltroNoLeidas:
	default:
		return nil, ErrInvalidFiltro
	}

	feed, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]NotificationView, 0, len(feed))
	for _, n := range feed {
		switch filtro {
		case FiltroPagos:
			if n.Tipo != domain.NotificacionPago {
				continue
			}
		case FiltroSolicitudes:
			if n.Tipo != domain.NotificacionSolicitud {
				continue
			}
		case FiltroNoLeidas:
			if n.Leida {
				continue
			}
		}
		out = append(out, NotificationView{
			Notification:   *n,
			TiempoRelativo: RelativeAge(n.Fecha, now),
		})
	}
	return out, nil
}

// MarkRead flags one notification as read. An absent id is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// MarkAllRead flags the whole feed as read
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllRead(ctx)
}

// UnreadCount returns the number of unread entries
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.notificationRepo.CountUnread(ctx)
}

// NotifyPayment records a payment entry in the feed
func (s *NotificationService) NotifyPayment(ctx context.Context, user *domain.User, unidadID string, monto float64, metodo string) {
	n := &domain.Notification{
		ID:      "notif" + uuid.New().String()[:8],
		Tipo:    domain.NotificacionPago,
		Mensaje: fmt.Sprintf("%s ha realizado el pago de arriendo", user.Nombre),
		Detalle: fmt.Sprintf("Unidad %s - $%.0f vía %s", unidadID, monto, metodo),
		Usuario: user.Nombre,
		Fecha:   time.Now(),
		UserID:  user.ID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("⚠️ Failed to record payment notification: %v", err)
	}
}

// NotifyNewRequest records a new support request entry in the feed
func (s *NotificationService) NotifyNewRequest(ctx context.Context, user *domain.User, request *domain.SupportRequest) {
	mensaje := fmt.Sprintf("Nueva solicitud de tipo %s", request.Tipo)
	if request.UnidadID != "" {
		mensaje += " - Unidad " + request.UnidadID
	}
	n := &domain.Notification{
		ID:      "notif" + uuid.New().String()[:8],
		Tipo:    domain.NotificacionSolicitud,
		Mensaje: mensaje,
		Detalle: request.Detalle,
		Usuario: user.Nombre,
		Fecha:   time.Now(),
		UserID:  user.ID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("⚠️ Failed to record request notification: %v", err)
	}
}

// NotifyRequestStatus records a workflow state change in the feed
func (s *NotificationService) NotifyRequestStatus(ctx context.Context, user *domain.User, request *domain.SupportRequest) {
	n := &domain.Notification{
		ID:      "notif" + uuid.New().String()[:8],
		Tipo:    domain.NotificacionSolicitud,
		Mensaje: fmt.Sprintf("La solicitud %s pasó a estado %s", request.ID, request.Estado),
		Detalle: request.Detalle,
		Usuario: user.Nombre,
		Fecha:   time.Now(),
		UserID:  request.UserID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("⚠️ Failed to record status notification: %v", err)
	}
}

// NotifyPaymentReminder records a due-date reminder in the feed
func (s *NotificationService) NotifyPaymentReminder(ctx context.Context, user *domain.User, standing PaymentStanding) {
	n := &domain.Notification{
		ID:      "notif" + uuid.New().String()[:8],
		Tipo:    domain.NotificacionPago,
		Mensaje: fmt.Sprintf("Recordatorio de pago para %s", user.Nombre),
		Detalle: fmt.Sprintf("%s (unidad %s)", standing.Mensaje, user.UnidadAsignada),
		Usuario: user.Nombre,
		Fecha:   time.Now(),
		UserID:  user.ID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("⚠️ Failed to record reminder notification: %v", err)
	}
}
