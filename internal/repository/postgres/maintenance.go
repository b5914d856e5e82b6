package postgres

import (
	"context"
	"database/sql"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, tenant_id, property_id, owner_id, description, status, created_on, updated_on`

func scanMaintenance(row interface{ Scan(...any) error }) (*domain.MaintenanceRequest, error) {
	m := &domain.MaintenanceRequest{}
	err := row.Scan(&m.ID, &m.TenantID, &m.PropertyID, &m.OwnerID, &m.Description, &m.Status, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) list(ctx context.Context, query string, id int32) ([]domain.MaintenanceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *m)
	}
	return reqs, rows.Err()
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	query := `INSERT INTO maintenance_requests (tenant_id, property_id, owner_id, description, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on, updated_on`
	return r.db.QueryRowContext(ctx, query, m.TenantID, m.PropertyID, m.OwnerID, m.Description, m.Status).
		Scan(&m.ID, &m.CreatedOn, &m.UpdatedOn)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "maintenance request")
	}
	return m, nil
}

func (r *maintenanceRepository) UpdateStatus(ctx context.Context, id int32, status domain.MaintenanceStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE maintenance_requests SET status = $1, updated_on = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRows(result, "maintenance request")
}

func (r *maintenanceRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.MaintenanceRequest, error) {
	return r.list(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE owner_id = $1 ORDER BY created_on DESC`, ownerID)
}

func (r *maintenanceRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.MaintenanceRequest, error) {
	return r.list(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE tenant_id = $1 ORDER BY created_on DESC`, tenantID)
}

func (r *maintenanceRepository) CreateComplaint(ctx context.Context, c *domain.Complaint) error {
	query := `INSERT INTO complaints (tenant_id, property_id, subject, description, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, c.TenantID, c.PropertyID, c.Subject, c.Description, c.Status).Scan(&c.ID, &c.CreatedOn)
}
