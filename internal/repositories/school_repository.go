package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/spksaw/backend/internal/database"
	"github.com/spksaw/backend/internal/models"
	"go.uber.org/zap"
)

const schoolColumns = `id, code, name, address, province, district, metadata, principal_id, created_at, updated_at`

// schoolRepository implements SchoolRepository
type schoolRepository struct {
	db     database.DBTX
	logger *zap.Logger
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db database.DBTX, logger *zap.Logger) *schoolRepository {
	return &schoolRepository{
		db:     db,
		logger: logger,
	}
}

func scanSchool(row rowScanner) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(
		&school.ID,
		&school.Code,
		&school.Name,
		&school.Address,
		&school.Province,
		&school.District,
		&school.Metadata,
		&school.PrincipalID,
		&school.CreatedAt,
		&school.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// Create inserts a new school into the database
func (r *schoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (code, name, address, province, district, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		school.Code, school.Name, school.Address, school.Province, school.District, school.Metadata)
	if err != nil {
		r.logger.Error("failed to create school", zap.Error(err), zap.String("code", school.Code))
		return fmt.Errorf("failed to create school: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	school.ID = int(id)
	return nil
}

// GetByID retrieves a school by ID
func (r *schoolRepository) GetByID(ctx context.Context, schoolID int) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE id = ? LIMIT 1`

	school, err := scanSchool(r.db.QueryRowContext(ctx, query, schoolID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("school not found: %w", models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get school by id", zap.Error(err), zap.Int("schoolId", schoolID))
		return nil, fmt.Errorf("failed to get school by id: %w", err)
	}

	return school, nil
}

// List retrieves schools matching the filter, ordered by name
func (r *schoolRepository) List(ctx context.Context, filter models.SchoolFilter) ([]models.School, error) {
	var conditions []string
	var args []any
	if filter.Province != "" {
		conditions = append(conditions, "province = ?")
		args = append(args, filter.Province)
	}
	if filter.District != "" {
		conditions = append(conditions, "district = ?")
		args = append(args, filter.District)
	}

	query := `SELECT ` + schoolColumns + ` FROM schools`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list schools", zap.Error(err))
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	defer rows.Close()

	schools := make([]models.School, 0)
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan school: %w", err)
		}
		schools = append(schools, *school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schools: %w", err)
	}

	return schools, nil
}

// SetPrincipal links a user as the principal of a school
func (r *schoolRepository) SetPrincipal(ctx context.Context, schoolID, userID int) error {
	query := `UPDATE schools SET principal_id = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, schoolID)
	if err != nil {
		r.logger.Error("failed to set school principal", zap.Error(err), zap.Int("schoolId", schoolID))
		return fmt.Errorf("failed to set school principal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("school not found: %w", models.ErrNotFound)
	}

	return nil
}

// Count returns the total number of schools
func (r *schoolRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schools`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count schools: %w", err)
	}
	return count, nil
}

// CountWithPrincipal returns the number of schools that have a principal assigned
func (r *schoolRepository) CountWithPrincipal(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM schools WHERE principal_id IS NOT NULL`
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count schools with principal: %w", err)
	}
	return count, nil
}
