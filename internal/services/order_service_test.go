package services

import (
	"testing"

	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func orderService(t *testing.T) (OrderService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := OrderService{OrderRepo: repositories.OrderRepository{DB: db}}
	return svc, mock, func() { db.Close() }
}

func TestAdvanceStatusValidTransition(t *testing.T) {
	svc, mock, done := orderService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("received"))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("in_progress", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := svc.AdvanceStatus(7, "in_progress")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "in_progress" {
		t.Fatalf("status = %q, want in_progress", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdvanceStatusSkippingStepIsConflict(t *testing.T) {
	svc, mock, done := orderService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("received"))

	_, err := svc.AdvanceStatus(7, "collected")
	if err == nil {
		t.Fatalf("skipping received -> collected should fail")
	}
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict error, got %T: %v", err, err)
	}
	// no UPDATE expected
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdvanceStatusBackwardsIsConflict(t *testing.T) {
	svc, mock, done := orderService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ready"))

	_, err := svc.AdvanceStatus(7, "received")
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict error, got %v", err)
	}
}

func TestAdvanceStatusTerminalState(t *testing.T) {
	svc, mock, done := orderService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("collected"))

	_, err := svc.AdvanceStatus(7, "collected")
	if !domain.IsConflict(err) {
		t.Fatalf("collected is terminal, want conflict, got %v", err)
	}
}

func TestAdvanceStatusUnknownStatus(t *testing.T) {
	svc, _, done := orderService(t)
	defer done()

	_, err := svc.AdvanceStatus(7, "ironed")
	if !domain.IsValidation(err) {
		t.Fatalf("unknown status should be a validation error, got %v", err)
	}
}

func TestAdvanceStatusMissingOrder(t *testing.T) {
	svc, mock, done := orderService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	_, err := svc.AdvanceStatus(99, "in_progress")
	if !domain.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, done := orderService(t)
	defer done()

	_, err := svc.Create(models.Order{ClientID: 0, ServiceType: "wash_fold"})
	if !domain.IsValidation(err) {
		t.Fatalf("missing client should fail validation, got %v", err)
	}
	_, err = svc.Create(models.Order{ClientID: 1, ServiceType: "dry_ice"})
	if !domain.IsValidation(err) {
		t.Fatalf("unknown service type should fail validation, got %v", err)
	}
}

func TestCreateCollectedSetsTimestamp(t *testing.T) {
	svc, mock, done := orderService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ready"))
	mock.ExpectExec("UPDATE orders SET status = \\?, collected_at = NOW").
		WithArgs("collected", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := svc.AdvanceStatus(3, "collected"); err != nil {
		t.Fatalf("ready -> collected should pass, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
