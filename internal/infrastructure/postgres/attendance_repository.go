package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Constructora-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo consultas de solo lectura sobre asistencia de trabajadores.
type AttendanceRepo struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository construye el adaptador.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepo {
	return &AttendanceRepo{pool: pool}
}

// SummarizeWindow suma jornales, anticipos y penalizaciones de la ventana
// inclusiva [start, end]. COALESCE garantiza resumen en cero cuando no hay
// registros, nunca un error.
func (r *AttendanceRepo) SummarizeWindow(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (repository.LabourCostSummary, error) {
	const query = `
	SELECT
	    COALESCE(SUM(a.wage),              0) AS total_wages,
	    COALESCE(SUM(a.advance_deduction), 0) AS total_advances,
	    COALESCE(SUM(a.penalty),           0) AS total_penalties,
	    COUNT(*)                              AS record_count
	FROM attendance_records a
	WHERE a.company_id = $1
	  AND a.date >= $2 AND a.date <= $3`

	var summary repository.LabourCostSummary
	err := r.pool.QueryRow(ctx, query, companyID, start, end).Scan(
		&summary.TotalWages,
		&summary.TotalAdvances,
		&summary.TotalPenalties,
		&summary.RecordCount,
	)
	if err != nil {
		return repository.LabourCostSummary{}, fmt.Errorf("attendance.SummarizeWindow: %w", err)
	}
	return summary, nil
}
