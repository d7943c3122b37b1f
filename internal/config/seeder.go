package config

import (
	"context"
	"log"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
	"torrealta-portal/internal/pkg/password"
)

// Seeder loads the demo dataset into the in-memory repositories
type Seeder struct {
	userRepo         repositories.UserRepository
	unitRepo         repositories.UnitRepository
	eventRepo        repositories.EventRepository
	requestRepo      repositories.RequestRepository
	notificationRepo repositories.NotificationRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(
	userRepo repositories.UserRepository,
	unitRepo repositories.UnitRepository,
	eventRepo repositories.EventRepository,
	requestRepo repositories.RequestRepository,
	notificationRepo repositories.NotificationRepository,
) *Seeder {
	return &Seeder{
		userRepo:         userRepo,
		unitRepo:         unitRepo,
		eventRepo:        eventRepo,
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
	}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Seeding portal data...")

	ctx := context.Background()
	if err := SeedCatalog(ctx, s.unitRepo, s.eventRepo); err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedRequests(ctx); err != nil {
		return err
	}
	if err := s.seedNotifications(ctx); err != nil {
		return err
	}

	log.Println("✅ Seeding completed")
	return nil
}

func fecha(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

// seedUsers seeds the demo accounts. Passwords are hashed at startup
// so no hash ever lands in the source tree.
func (s *Seeder) seedUsers(ctx context.Context) error {
	demoPass, err := password.Hash("demo123")
	if err != nil {
		return err
	}
	adminPass, err := password.Hash("admin123")
	if err != nil {
		return err
	}

	users := []*domain.User{
		{
			ID:             "user001",
			Nombre:         "María González",
			Email:          "maria@example.com",
			Password:       demoPass,
			Rol:            domain.RolResidente,
			UnidadAsignada: "102",
			HistorialPagos: []domain.PaymentRecord{
				{
					ID:       "pago001",
					Fecha:    fecha(2025, time.January, 15, 0, 0),
					Monto:    850000,
					Concepto: "Arriendo Enero 2025",
					Estado:   domain.PagoCompletado,
				},
				{
					ID:       "pago002",
					Fecha:    fecha(2024, time.December, 15, 0, 0),
					Monto:    850000,
					Concepto: "Arriendo Diciembre 2024",
					Estado:   domain.PagoCompletado,
				},
			},
		},
		{
			ID:             "user002",
			Nombre:         "Carlos Rodríguez",
			Email:          "carlos@example.com",
			Password:       demoPass,
			Rol:            domain.RolResidente,
			UnidadAsignada: "203",
			HistorialPagos: []domain.PaymentRecord{
				{
					ID:       "pago003",
					Fecha:    fecha(2025, time.January, 15, 0, 0),
					Monto:    1400000,
					Concepto: "Arriendo Enero 2025",
					Estado:   domain.PagoCompletado,
				},
			},
		},
		{
			ID:             "admin001",
			Nombre:         "Admin Edificio",
			Email:          "admin@example.com",
			Password:       adminPass,
			Rol:            domain.RolAdministrador,
			HistorialPagos: []domain.PaymentRecord{},
		},
	}

	for _, u := range users {
		if err := s.userRepo.Create(ctx, u); err != nil {
			return err
		}
	}

	log.Printf("   Seeded %d users", len(users))
	return nil
}

func (s *Seeder) seedRequests(ctx context.Context) error {
	cierre := fecha(2025, time.January, 15, 0, 0)

	// Oldest first so the newest-first feed comes out in order
	requests := []*domain.SupportRequest{
		{
			ID:                 "sol003",
			UserID:             "user002",
			UnidadID:           "203",
			Tipo:               domain.SolicitudReclamo,
			Detalle:            "Ruido excesivo proveniente de la unidad superior durante la noche",
			Estado:             domain.SolicitudResuelta,
			FechaCreacion:      fecha(2025, time.January, 10, 0, 0),
			FechaActualizacion: cierre,
			FechaCierre:        &cierre,
		},
		{
			ID:                 "sol001",
			UserID:             "user001",
			UnidadID:           "102",
			Tipo:               domain.SolicitudMantenimiento,
			Detalle:            "La llave del agua caliente del baño principal gotea constantemente",
			Estado:             domain.SolicitudEnProceso,
			FechaCreacion:      fecha(2025, time.January, 18, 0, 0),
			FechaActualizacion: fecha(2025, time.January, 19, 0, 0),
		},
		{
			ID:                 "sol002",
			UserID:             "user001",
			UnidadID:           "102",
			Tipo:               domain.SolicitudSugerencia,
			Detalle:            "Sería genial tener un horario extendido para el gimnasio los fines de semana",
			Estado:             domain.SolicitudPendiente,
			FechaCreacion:      fecha(2025, time.January, 19, 0, 0),
			FechaActualizacion: fecha(2025, time.January, 19, 0, 0),
		},
	}

	for _, req := range requests {
		if err := s.requestRepo.Create(ctx, req); err != nil {
			return err
		}
	}

	log.Printf("   Seeded %d support requests", len(requests))
	return nil
}

func (s *Seeder) seedNotifications(ctx context.Context) error {
	// Oldest first so the newest-first feed comes out in order
	notifications := []*domain.Notification{
		{
			ID:      "not005",
			Tipo:    domain.NotificacionPago,
			Mensaje: "Ana Martínez ha realizado el pago de arriendo",
			Detalle: "Arriendo Enero 2025 - $1,200,000",
			Usuario: "Ana Martínez",
			Fecha:   fecha(2025, time.January, 18, 11, 0),
			Leida:   true,
		},
		{
			ID:      "not004",
			Tipo:    domain.NotificacionSolicitud,
			Mensaje: "Nueva sugerencia - Sistema de gimnasio",
			Detalle: "Horario extendido para el gimnasio",
			Usuario: "María González",
			Fecha:   fecha(2025, time.January, 19, 9, 20),
			Leida:   true,
			UserID:  "user001",
		},
		{
			ID:      "not003",
			Tipo:    domain.NotificacionPago,
			Mensaje: "Carlos Rodríguez ha realizado el pago de arriendo",
			Detalle: "Arriendo Enero 2025 - $1,400,000",
			Usuario: "Carlos Rodríguez",
			Fecha:   fecha(2025, time.January, 19, 16, 45),
			Leida:   true,
			UserID:  "user002",
		},
		{
			ID:      "not002",
			Tipo:    domain.NotificacionSolicitud,
			Mensaje: "Nueva solicitud de mantenimiento - Departamento 102",
			Detalle: "Reparación de llave de agua caliente",
			Usuario: "María González",
			Fecha:   fecha(2025, time.January, 20, 10, 15),
			UserID:  "user001",
		},
		{
			ID:      "not001",
			Tipo:    domain.NotificacionPago,
			Mensaje: "María González ha realizado el pago de arriendo",
			Detalle: "Arriendo Enero 2025 - $850,000",
			Usuario: "María González",
			Fecha:   fecha(2025, time.January, 20, 14, 30),
			UserID:  "user001",
		},
	}

	for _, n := range notifications {
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			return err
		}
	}

	log.Printf("   Seeded %d notifications", len(notifications))
	return nil
}
