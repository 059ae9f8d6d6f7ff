package employee

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindById(ctx context.Context, id string) (employee Entity, err error) {
	err = r.db.GetContext(ctx, &employee, "SELECT * FROM employee WHERE emp_id = $1", id)
	return employee, err
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var employees []Entity
	err := r.db.SelectContext(ctx, &employees, "SELECT * FROM employee")
	return employees, err
}

func (r *Repository) ExistsByNameAndDesignation(ctx context.Context, name, designation string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM employee WHERE emp_name = $1 AND emp_designation = $2)",
		name, designation)
	return exists, err
}

// Save сохраняет сотрудника: вставка для нового emp_id, обновление для существующего
func (r *Repository) Save(ctx context.Context, employee *Entity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employee (emp_id, emp_name, emp_designation, emp_salary, emp_experience_years, emp_performance_rating)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (emp_id) DO UPDATE SET
		     emp_name = EXCLUDED.emp_name,
		     emp_designation = EXCLUDED.emp_designation,
		     emp_salary = EXCLUDED.emp_salary,
		     emp_experience_years = EXCLUDED.emp_experience_years,
		     emp_performance_rating = EXCLUDED.emp_performance_rating,
		     updated_at = now()`,
		employee.EmpId, employee.Name, employee.Designation,
		employee.Salary, employee.ExperienceYears, employee.PerformanceRating)
	return err
}

func (r *Repository) DeleteById(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM employee WHERE emp_id = $1", id)
	return err
}

// IsUniqueViolation сообщает, вызвана ли ошибка нарушением
// ограничения уникальности (имя + должность)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
