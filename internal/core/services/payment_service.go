package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"

	"github.com/google/uuid"
)

// DueDay is the day of the month rent falls due
const DueDay = 5

// Late fee bands, in COP
const (
	lateFeeEarly = 50000  // days 6-15
	lateFeeLate  = 100000 // days 16-30
)

// PaymentMethods lists the accepted payment methods
var PaymentMethods = []string{
	"Tarjeta de Crédito/Débito",
	"Bancolombia",
	"Nequi",
	"PSE",
}

// ValidPaymentMethod reports whether metodo is accepted
func ValidPaymentMethod(metodo string) bool {
	for _, m := range PaymentMethods {
		if m == metodo {
			return true
		}
	}
	return false
}

// LateFee describes the surcharge owed for paying late
type LateFee struct {
	Monto       float64 `json:"monto"`
	Periodo     string  `json:"periodo,omitempty"`
	Descripcion string  `json:"descripcion,omitempty"`
}

// PaymentStanding describes where the user stands against the due date
type PaymentStanding struct {
	Estado      string    `json:"estado"` // overdue | urgent | warning | normal
	Dias        int       `json:"dias"`   // days overdue or days remaining
	Mensaje     string    `json:"mensaje"`
	FechaLimite time.Time `json:"fecha_limite"`
}

// PaymentSummary is the full payment picture for a resident
type PaymentSummary struct {
	UnidadID      string          `json:"unidad_id"`
	ValorBase     float64         `json:"valor_base"`
	Recargo       LateFee         `json:"recargo"`
	Total         float64         `json:"total"`
	ProximaFecha  time.Time       `json:"proxima_fecha"`
	Standing      PaymentStanding `json:"standing"`
	MetodosDePago []string        `json:"metodos_de_pago"`
}

// NextDueDate returns the upcoming rent due date as seen from now.
// Once the 5th is reached the next due date rolls into the following month.
func NextDueDate(now time.Time) time.Time {
	year, month, day := now.Date()
	if day >= DueDay {
		month++
	}
	return time.Date(year, month, DueDay, 0, 0, 0, 0, now.Location())
}

// CurrentDueDate returns the 5th of the running month, the reference
// date for overdue and late-fee calculations.
func CurrentDueDate(now time.Time) time.Time {
	year, month, _ := now.Date()
	return time.Date(year, month, DueDay, 0, 0, 0, 0, now.Location())
}

// CalculateLateFee returns the surcharge band for the given date.
// Days 1-5 carry no fee, 6-15 the early band, 16-30 the late band.
func CalculateLateFee(now time.Time) LateFee {
	day := now.Day()
	switch {
	case day >= 6 && day <= 15:
		return LateFee{
			Monto:       lateFeeEarly,
			Periodo:     "6 al 15",
			Descripcion: "Recargo por mora (6-15)",
		}
	case day >= 16 && day <= 30:
		return LateFee{
			Monto:       lateFeeLate,
			Periodo:     "16 al 30",
			Descripcion: "Recargo por mora (16-30)",
		}
	default:
		return LateFee{}
	}
}

// TotalPayable returns the base amount plus any late fee for the date
func TotalPayable(base float64, now time.Time) float64 {
	return base + CalculateLateFee(now).Monto
}

// Standing classifies the user's position against the running month's
// due date: overdue once the 5th has passed, otherwise urgent (0-3 days
// left), warning (4-7) or normal.
func Standing(now time.Time) PaymentStanding {
	due := CurrentDueDate(now)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(due.Sub(today).Hours() / 24)

	if days < 0 {
		late := -days
		return PaymentStanding{
			Estado:      "overdue",
			Dias:        late,
			Mensaje:     fmt.Sprintf("Pago vencido hace %d días", late),
			FechaLimite: due,
		}
	}

	standing := PaymentStanding{Dias: days, FechaLimite: due}
	switch {
	case days <= 3:
		standing.Estado = "urgent"
		standing.Mensaje = "Pago próximo a vencer"
	case days <= 7:
		standing.Estado = "warning"
		standing.Mensaje = "Recordatorio de pago"
	default:
		standing.Estado = "normal"
		standing.Mensaje = "Fecha límite"
	}
	return standing
}

// PaymentService handles rent payment business logic
type PaymentService struct {
	userRepo      repositories.UserRepository
	unitRepo      repositories.UnitRepository
	notifyService *NotificationService

	// processingDelay simulates the gateway round trip; zero in tests
	processingDelay time.Duration
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	userRepo repositories.UserRepository,
	unitRepo repositories.UnitRepository,
	notifyService *NotificationService,
	processingDelay time.Duration,
) *PaymentService {
	return &PaymentService{
		userRepo:        userRepo,
		unitRepo:        unitRepo,
		notifyService:   notifyService,
		processingDelay: processingDelay,
	}
}

// PayInput represents a payment submission
type PayInput struct {
	Concepto string `json:"concepto" validate:"required"`
	Metodo   string `json:"metodo" validate:"required"`
}

// GetSummary builds the payment picture for a user's assigned unit
func (s *PaymentService) GetSummary(ctx context.Context, userID string, now time.Time) (*PaymentSummary, error) {
	// 1. Resolve the user's unit
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UnidadAsignada == "" {
		return nil, domain.ErrUnitNotAssigned
	}

	unit, err := s.unitRepo.GetByID(ctx, user.UnidadAsignada)
	if err != nil {
		return nil, err
	}

	// 2. Apply the date rules
	fee := CalculateLateFee(now)
	return &PaymentSummary{
		UnidadID:      unit.ID,
		ValorBase:     unit.PrecioOferta,
		Recargo:       fee,
		Total:         unit.PrecioOferta + fee.Monto,
		ProximaFecha:  NextDueDate(now),
		Standing:      Standing(now),
		MetodosDePago: PaymentMethods,
	}, nil
}

// RecordPayment charges the user's unit rent plus any late fee running
// at now, appends the record to the user's history and notifies the
// administration
func (s *PaymentService) RecordPayment(ctx context.Context, userID string, input *PayInput, now time.Time) (*domain.PaymentRecord, error) {
	// 1. Validate method
	if !ValidPaymentMethod(input.Metodo) {
		return nil, domain.ErrInvalidPaymentMethod
	}
	concepto := input.Concepto
	if concepto == "" {
		concepto = "Pago de arriendo"
	}

	// 2. Resolve the user's unit and base amount
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UnidadAsignada == "" {
		return nil, domain.ErrUnitNotAssigned
	}
	unit, err := s.unitRepo.GetByID(ctx, user.UnidadAsignada)
	if err != nil {
		return nil, err
	}
	if unit.PrecioOferta <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// 3. Compute the total for the payment date
	fee := CalculateLateFee(now)
	total := unit.PrecioOferta + fee.Monto

	// 4. Simulate the gateway round trip
	if s.processingDelay > 0 {
		select {
		case <-time.After(s.processingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// 5. Build and store the record
	descripcion := concepto
	if fee.Monto > 0 {
		descripcion += " + " + fee.Descripcion
	}
	// Records carry the calendar day only
	fecha := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	record := domain.PaymentRecord{
		ID:       "pay" + uuid.New().String()[:8],
		Fecha:    fecha,
		Monto:    total,
		Concepto: descripcion + " - " + input.Metodo,
		Estado:   domain.PagoCompletado,
	}

	if err := s.userRepo.AddPayment(ctx, userID, record); err != nil {
		return nil, err
	}

	// 6. Notify the administration feed
	if s.notifyService != nil {
		s.notifyService.NotifyPayment(ctx, user, unit.ID, total, input.Metodo)
	}

	log.Printf("✅ Payment recorded: %s paid %.0f for unit %s", user.Nombre, total, unit.ID)
	return &record, nil
}

// GetHistory returns the user's payment history, newest first
func (s *PaymentService) GetHistory(ctx context.Context, userID string) ([]domain.PaymentRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HistorialPagos == nil {
		return []domain.PaymentRecord{}, nil
	}
	return user.HistorialPagos, nil
}
