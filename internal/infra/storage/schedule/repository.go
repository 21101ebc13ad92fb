package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
	"github.com/tcsoares1914/test-gbi-backend/pkg/dbmetrics"
	"github.com/tcsoares1914/test-gbi-backend/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"wash_type",
	"vehicle_plate",
	"slot_start",
	"confirmation",
	"created_at",
	"updated_at",
}

// Repository persists schedules in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new schedule and returns it with generated fields
// filled in. The id is a fresh uuid; slot_start is stored as passed
// (callers normalize to UTC). If the context carries an open
// transaction, the insert joins it.
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule.ID = uuid.New().String()

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"id",
			"wash_type",
			"vehicle_plate",
			"slot_start",
			"confirmation",
		).
		Values(
			schedule.ID,
			schedule.WashType,
			schedule.VehiclePlate,
			schedule.SlotStart,
			schedule.Confirmation,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// FindByID fetches a schedule by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan schedule: %w", ErrScanRow, err)
	}

	return schedule, nil
}

// FindAll fetches every schedule, newest slot first.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		OrderBy("slot_start DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// FindBetween fetches all schedules whose slot_start lies within
// [start, end], both bounds inclusive. The availability engine probes
// a candidate window with this query; inside a transaction the matched
// rows are locked with FOR UPDATE.
func (r *Repository) FindBetween(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.GtOrEq{"slot_start": start}).
		Where(squirrel.LtOrEq{"slot_start": end}).
		OrderBy("slot_start ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindBetween - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// Update applies a partial update and returns the updated schedule.
func (r *Repository) Update(ctx context.Context, id string, update *domain.ScheduleUpdate) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("schedules").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.WashType != nil {
		updateBuilder = updateBuilder.Set("wash_type", *update.WashType)
	}
	if update.VehiclePlate != nil {
		updateBuilder = updateBuilder.Set("vehicle_plate", *update.VehiclePlate)
	}
	if update.SlotStart != nil {
		updateBuilder = updateBuilder.Set("slot_start", *update.SlotStart)
	}
	if update.Confirmation != nil {
		updateBuilder = updateBuilder.Set("confirmation", *update.Confirmation)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(scheduleColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	schedule, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan schedule: %w", ErrScanRow, err)
	}

	return schedule, nil
}

// Delete removes a schedule by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var schedule domain.Schedule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&schedule.ID,
		&schedule.WashType,
		&schedule.VehiclePlate,
		&schedule.SlotStart,
		&schedule.Confirmation,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.SlotStart = schedule.SlotStart.UTC()
	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		schedule, err := r.scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %w", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %w", ErrScanRow, err)
	}

	return schedules, nil
}
