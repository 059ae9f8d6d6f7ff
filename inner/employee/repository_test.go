package employee

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entityColumns = []string{
	"emp_id", "emp_name", "emp_designation", "emp_salary",
	"emp_experience_years", "emp_performance_rating", "created_at", "updated_at",
}

func setupMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock
}

func entityRow(e Entity) *sqlmock.Rows {
	return sqlmock.NewRows(entityColumns).AddRow(
		e.EmpId, e.Name, e.Designation, e.Salary,
		e.ExperienceYears, e.PerformanceRating, time.Now(), time.Now())
}

func TestRepository_FindById(t *testing.T) {
	repo, mock := setupMockRepo(t)

	entity := Entity{
		EmpId:             "rewardlyEmp-20251106-164405-8157",
		Name:              "Rohit Sharma",
		Designation:       "Senior Developer",
		Salary:            55000,
		ExperienceYears:   3.5,
		PerformanceRating: 5,
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM employee WHERE emp_id = $1")).
		WithArgs(entity.EmpId).
		WillReturnRows(entityRow(entity))

	found, err := repo.FindById(context.Background(), entity.EmpId)

	require.NoError(t, err)
	assert.Equal(t, entity.EmpId, found.EmpId)
	assert.Equal(t, entity.Name, found.Name)
	assert.Equal(t, entity.Salary, found.Salary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindById_NoRows(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM employee WHERE emp_id = $1")).
		WithArgs("rewardlyEmp-20250101-000000-1234").
		WillReturnRows(sqlmock.NewRows(entityColumns))

	_, err := repo.FindById(context.Background(), "rewardlyEmp-20250101-000000-1234")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows(entityColumns).
		AddRow("rewardlyEmp-20250101-000000-1111", "Rohit Sharma", "Senior Developer",
			55000.0, 3.5, 5, time.Now(), time.Now()).
		AddRow("rewardlyEmp-20250101-000001-2222", "Riya Singh", "Manager",
			92000.0, 6.0, 2, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM employee")).WillReturnRows(rows)

	employees, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	// порядок строк из базы сохраняется
	assert.Equal(t, "Rohit Sharma", employees[0].Name)
	assert.Equal(t, "Riya Singh", employees[1].Name)
}

func TestRepository_ExistsByNameAndDesignation(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("Rohit Sharma", "Senior Developer").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByNameAndDesignation(context.Background(), "Rohit Sharma", "Senior Developer")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := setupMockRepo(t)

	entity := Entity{
		EmpId:             "rewardlyEmp-20251106-164405-8157",
		Name:              "Rohit Sharma",
		Designation:       "Senior Developer",
		Salary:            55000,
		ExperienceYears:   3.5,
		PerformanceRating: 5,
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employee")).
		WithArgs(entity.EmpId, entity.Name, entity.Designation,
			entity.Salary, entity.ExperienceYears, entity.PerformanceRating).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &entity)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_UniqueViolation(t *testing.T) {
	repo, mock := setupMockRepo(t)

	entity := Entity{
		EmpId:       "rewardlyEmp-20251106-164405-8157",
		Name:        "Rohit Sharma",
		Designation: "Senior Developer",
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employee")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Save(context.Background(), &entity)

	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestRepository_DeleteById(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employee WHERE emp_id = $1")).
		WithArgs("rewardlyEmp-20251106-164405-8157").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteById(context.Background(), "rewardlyEmp-20251106-164405-8157")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("db error")))
	assert.False(t, IsUniqueViolation(nil))
}
