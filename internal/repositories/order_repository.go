package repositories

import (
	"database/sql"

	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
)

// OrderRepository runs raw parameterized SQL against the orders table.
type OrderRepository struct {
	DB *sql.DB
}

const orderColumns = `
    o.id, o.client_id, c.name, o.service_type, o.status, o.weight_kg,
    o.total_amount, o.notes, o.received_at, o.collected_at, o.created_at, o.updated_at`

func scanOrder(row interface{ Scan(...any) error }) (models.Order, error) {
	var o models.Order
	var collected sql.NullTime
	err := row.Scan(
		&o.ID, &o.ClientID, &o.ClientName, &o.ServiceType, &o.Status, &o.WeightKg,
		&o.TotalAmount, &o.Notes, &o.ReceivedAt, &collected, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}
	if collected.Valid {
		t := collected.Time
		o.CollectedAt = &t
	}
	return o, nil
}

func (r OrderRepository) GetByID(id int64) (models.Order, error) {
	row := r.DB.QueryRow(`
        SELECT`+orderColumns+`
        FROM orders o JOIN clients c ON c.id = o.client_id
        WHERE o.id = ?`, id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return models.Order{}, domain.NotFoundError{Resource: "order"}
	}
	return o, err
}

// List returns one page of orders plus the full matching count. where must be
// built from fixed fragments; values travel in args.
func (r OrderRepository) List(where string, args []any, orderBy string, limit, offset int) ([]models.Order, int64, error) {
	var total int64
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM orders o"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT` + orderColumns + `
        FROM orders o JOIN clients c ON c.id = o.client_id` + where +
		" ORDER BY " + orderBy + " LIMIT ? OFFSET ?"
	rows, err := r.DB.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

func (r OrderRepository) Create(o models.Order) (int64, error) {
	res, err := r.DB.Exec(`
        INSERT INTO orders (client_id, service_type, status, weight_kg, total_amount, notes, received_at, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW(), NOW())
    `, o.ClientID, o.ServiceType, models.OrderStatusReceived, o.WeightKg, o.TotalAmount, o.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetStatus loads just the status, for transition checks.
func (r OrderRepository) GetStatus(id int64) (string, error) {
	var status string
	err := r.DB.QueryRow("SELECT status FROM orders WHERE id = ?", id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", domain.NotFoundError{Resource: "order"}
	}
	return status, err
}

// SetStatus writes the new status; collected orders also get their
// collection timestamp.
func (r OrderRepository) SetStatus(id int64, status string) error {
	if status == models.OrderStatusCollected {
		_, err := r.DB.Exec(
			"UPDATE orders SET status = ?, collected_at = NOW(), updated_at = NOW() WHERE id = ?",
			status, id)
		return err
	}
	_, err := r.DB.Exec(
		"UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?",
		status, id)
	return err
}
