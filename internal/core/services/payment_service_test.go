package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before the 5th stays in month", date(2025, time.January, 3), date(2025, time.January, 5)},
		{"on the 5th rolls forward", date(2025, time.January, 5), date(2025, time.February, 5)},
		{"after the 5th rolls forward", date(2025, time.January, 20), date(2025, time.February, 5)},
		{"december rolls into january", date(2025, time.December, 10), date(2026, time.January, 5)},
		{"first of month", date(2025, time.March, 1), date(2025, time.March, 5)},
	}

	for _, tt := range tests {
		got := NextDueDate(tt.now)
		if !got.Equal(tt.want) {
			t.Errorf("%s: NextDueDate(%v) = %v, want %v", tt.name, tt.now, got, tt.want)
		}
	}
}

func TestCurrentDueDate(t *testing.T) {
	got := CurrentDueDate(date(2025, time.January, 20))
	want := date(2025, time.January, 5)
	if !got.Equal(want) {
		t.Errorf("CurrentDueDate = %v, want %v", got, want)
	}
}

func TestCalculateLateFee(t *testing.T) {
	tests := []struct {
		day  int
		want float64
	}{
		{1, 0},
		{5, 0},
		{6, 50000},
		{10, 50000},
		{15, 50000},
		{16, 100000},
		{20, 100000},
		{30, 100000},
		{31, 0},
	}

	for _, tt := range tests {
		fee := CalculateLateFee(date(2025, time.January, tt.day))
		if fee.Monto != tt.want {
			t.Errorf("day %d: fee = %.0f, want %.0f", tt.day, fee.Monto, tt.want)
		}
	}
}

func TestCalculateLateFeeDescriptions(t *testing.T) {
	early := CalculateLateFee(date(2025, time.January, 10))
	if early.Descripcion != "Recargo por mora (6-15)" {
		t.Errorf("early band description = %q", early.Descripcion)
	}

	late := CalculateLateFee(date(2025, time.January, 20))
	if late.Descripcion != "Recargo por mora (16-30)" {
		t.Errorf("late band description = %q", late.Descripcion)
	}

	none := CalculateLateFee(date(2025, time.January, 3))
	if none.Monto != 0 || none.Descripcion != "" {
		t.Errorf("expected empty fee, got %+v", none)
	}
}

func TestTotalPayable(t *testing.T) {
	if got := TotalPayable(850000, date(2025, time.January, 3)); got != 850000 {
		t.Errorf("on time total = %.0f, want 850000", got)
	}
	if got := TotalPayable(850000, date(2025, time.January, 10)); got != 900000 {
		t.Errorf("early band total = %.0f, want 900000", got)
	}
	if got := TotalPayable(850000, date(2025, time.January, 20)); got != 950000 {
		t.Errorf("late band total = %.0f, want 950000", got)
	}
}

func TestStanding(t *testing.T) {
	overdue := Standing(date(2025, time.January, 20))
	if overdue.Estado != "overdue" || overdue.Dias != 15 {
		t.Errorf("jan 20: got %s/%d, want overdue/15", overdue.Estado, overdue.Dias)
	}
	if overdue.Mensaje != "Pago vencido hace 15 días" {
		t.Errorf("jan 20 mensaje = %q", overdue.Mensaje)
	}

	urgent := Standing(date(2025, time.January, 3))
	if urgent.Estado != "urgent" || urgent.Dias != 2 {
		t.Errorf("jan 3: got %s/%d, want urgent/2", urgent.Estado, urgent.Dias)
	}

	warning := Standing(date(2025, time.January, 1))
	if warning.Estado != "warning" || warning.Dias != 4 {
		t.Errorf("jan 1: got %s/%d, want warning/4", warning.Estado, warning.Dias)
	}

	onDue := Standing(date(2025, time.January, 5))
	if onDue.Estado != "urgent" || onDue.Dias != 0 {
		t.Errorf("jan 5: got %s/%d, want urgent/0", onDue.Estado, onDue.Dias)
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		if !ValidPaymentMethod(m) {
			t.Errorf("method %q should be accepted", m)
		}
	}
	if ValidPaymentMethod("Efectivo") {
		t.Error("unknown method should be rejected")
	}
}

func newPaymentFixture(t *testing.T) (*PaymentService, repositories.UserRepository, repositories.NotificationRepository) {
	t.Helper()
	ctx := context.Background()

	userRepo := repositories.NewUserRepository()
	unitRepo := repositories.NewUnitRepository()
	notificationRepo := repositories.NewNotificationRepository()
	notifyService := NewNotificationService(notificationRepo)

	unit := &domain.Unit{
		ID:           "102",
		Piso:         1,
		Tipo:         domain.UnidadApartamento,
		Estado:       domain.UnidadOcupado,
		PrecioOferta: 850000,
	}
	if err := unitRepo.Create(ctx, unit); err != nil {
		t.Fatalf("create unit: %v", err)
	}

	users := []*domain.User{
		{
			ID:             "user001",
			Nombre:         "María González",
			Email:          "maria@torrealta.co",
			Rol:            domain.RolResidente,
			UnidadAsignada: "102",
		},
		{
			ID:     "user002",
			Nombre: "Sin Unidad",
			Email:  "sinunidad@torrealta.co",
			Rol:    domain.RolResidente,
		},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	service := NewPaymentService(userRepo, unitRepo, notifyService, 0)
	return service, userRepo, notificationRepo
}

func TestPaymentService_GetSummary(t *testing.T) {
	service, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	summary, err := service.GetSummary(ctx, "user001", date(2025, time.January, 20))
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.UnidadID != "102" {
		t.Errorf("unidad = %s, want 102", summary.UnidadID)
	}
	if summary.ValorBase != 850000 {
		t.Errorf("valor base = %.0f, want 850000", summary.ValorBase)
	}
	if summary.Recargo.Monto != 100000 {
		t.Errorf("recargo = %.0f, want 100000", summary.Recargo.Monto)
	}
	if summary.Total != 950000 {
		t.Errorf("total = %.0f, want 950000", summary.Total)
	}
	if !summary.ProximaFecha.Equal(date(2025, time.February, 5)) {
		t.Errorf("proxima fecha = %v, want feb 5", summary.ProximaFecha)
	}
	if summary.Standing.Estado != "overdue" {
		t.Errorf("standing = %s, want overdue", summary.Standing.Estado)
	}
	if len(summary.MetodosDePago) != len(PaymentMethods) {
		t.Errorf("metodos = %d, want %d", len(summary.MetodosDePago), len(PaymentMethods))
	}
}

func TestPaymentService_GetSummaryNoUnit(t *testing.T) {
	service, _, _ := newPaymentFixture(t)

	_, err := service.GetSummary(context.Background(), "user002", date(2025, time.January, 10))
	if !errors.Is(err, domain.ErrUnitNotAssigned) {
		t.Errorf("expected ErrUnitNotAssigned, got %v", err)
	}
}

func TestPaymentService_RecordPayment(t *testing.T) {
	service, userRepo, notificationRepo := newPaymentFixture(t)
	ctx := context.Background()

	now := time.Date(2025, time.February, 10, 14, 30, 0, 0, time.UTC)
	record, err := service.RecordPayment(ctx, "user001", &PayInput{
		Concepto: "Arriendo Febrero 2025",
		Metodo:   "Nequi",
	}, now)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	// Base 850000 plus the early band surcharge on the 10th
	if record.Monto != 900000 {
		t.Errorf("monto = %.0f, want 900000", record.Monto)
	}
	if record.Estado != domain.PagoCompletado {
		t.Errorf("estado = %s, want Completado", record.Estado)
	}
	if !record.Fecha.Equal(date(2025, time.February, 10)) {
		t.Errorf("fecha = %v, want the calendar day only", record.Fecha)
	}
	if !strings.HasPrefix(record.ID, "pay") {
		t.Errorf("id = %s, want pay prefix", record.ID)
	}
	if !strings.HasPrefix(record.Concepto, "Arriendo Febrero 2025") || !strings.HasSuffix(record.Concepto, " - Nequi") {
		t.Errorf("concepto = %q", record.Concepto)
	}

	// The record lands at the head of the user's history
	user, err := userRepo.GetByID(ctx, "user001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(user.HistorialPagos) != 1 || user.HistorialPagos[0].ID != record.ID {
		t.Errorf("expected history head %s, got %+v", record.ID, user.HistorialPagos)
	}

	// The administration feed got a payment entry
	feed, err := notificationRepo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(feed) != 1 || feed[0].Tipo != domain.NotificacionPago {
		t.Errorf("expected one payment notification, got %d", len(feed))
	}
}

func TestPaymentService_RecordPaymentNewestFirst(t *testing.T) {
	service, userRepo, _ := newPaymentFixture(t)
	ctx := context.Background()

	first, err := service.RecordPayment(ctx, "user001", &PayInput{Concepto: "Enero", Metodo: "PSE"}, date(2025, time.January, 3))
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	second, err := service.RecordPayment(ctx, "user001", &PayInput{Concepto: "Febrero", Metodo: "PSE"}, date(2025, time.February, 3))
	if err != nil {
		t.Fatalf("second payment: %v", err)
	}

	user, _ := userRepo.GetByID(ctx, "user001")
	if len(user.HistorialPagos) != 2 {
		t.Fatalf("expected 2 records, got %d", len(user.HistorialPagos))
	}
	if user.HistorialPagos[0].ID != second.ID || user.HistorialPagos[1].ID != first.ID {
		t.Error("history should be newest first")
	}
}

func TestPaymentService_RecordPaymentErrors(t *testing.T) {
	service, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	now := date(2025, time.February, 3)

	_, err := service.RecordPayment(ctx, "user001", &PayInput{Metodo: "Efectivo"}, now)
	if !errors.Is(err, domain.ErrInvalidPaymentMethod) {
		t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
	}

	_, err = service.RecordPayment(ctx, "user002", &PayInput{Metodo: "Nequi"}, now)
	if !errors.Is(err, domain.ErrUnitNotAssigned) {
		t.Errorf("expected ErrUnitNotAssigned, got %v", err)
	}

	_, err = service.RecordPayment(ctx, "nobody", &PayInput{Metodo: "Nequi"}, now)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPaymentService_RecordPaymentCancelled(t *testing.T) {
	service, userRepo, notificationRepo := newPaymentFixture(t)
	service.processingDelay = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.RecordPayment(ctx, "user001", &PayInput{Metodo: "Nequi"}, date(2025, time.February, 3))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	// Nothing was persisted
	user, _ := userRepo.GetByID(context.Background(), "user001")
	if len(user.HistorialPagos) != 0 {
		t.Error("cancelled payment should not reach the history")
	}
	feed, _ := notificationRepo.List(context.Background())
	if len(feed) != 0 {
		t.Error("cancelled payment should not reach the feed")
	}
}

func TestPaymentService_GetHistoryEmpty(t *testing.T) {
	service, _, _ := newPaymentFixture(t)

	history, err := service.GetHistory(context.Background(), "user002")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Errorf("expected empty slice, got %v", history)
	}
}
