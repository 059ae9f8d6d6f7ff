package employee

import "time"

type Entity struct {
	EmpId             string    `db:"emp_id"`
	Name              string    `db:"emp_name"`
	Designation       string    `db:"emp_designation"`
	Salary            float64   `db:"emp_salary"`
	ExperienceYears   float64   `db:"emp_experience_years"`
	PerformanceRating int       `db:"emp_performance_rating"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (e *Entity) toResponse() Response {
	return Response{
		EmpId:             e.EmpId,
		Name:              e.Name,
		Designation:       e.Designation,
		Salary:            e.Salary,
		ExperienceYears:   e.ExperienceYears,
		PerformanceRating: e.PerformanceRating,
	}
}

// Request - тело запроса на создание и обновление сотрудника.
// Поля-указатели: отсутствующее в JSON поле остаётся nil и
// при обновлении не затирает существующее значение.
// empId клиент не передаёт никогда.
type Request struct {
	Name              *string  `json:"empName" validate:"required,min=2,max=100,namepattern"`
	Designation       *string  `json:"empDesignation" validate:"required,min=2,max=100,namepattern"`
	Salary            *float64 `json:"empSalary" validate:"omitempty,gte=0"`
	ExperienceYears   *float64 `json:"empExperienceYears" validate:"omitempty,gte=0"`
	PerformanceRating *int     `json:"empPerformanceRating" validate:"omitempty,min=1,max=5"`
} // @name EmployeeRequest

// ToEntity конвертирует запрос в новую сущность, empId не заполняется
func (r *Request) ToEntity() Entity {
	var entity Entity
	r.ApplyTo(&entity)
	return entity
}

// ApplyTo переносит заполненные поля запроса в существующую сущность,
// nil-поля пропускаются, empId не трогается
func (r *Request) ApplyTo(entity *Entity) {
	if r.Name != nil {
		entity.Name = *r.Name
	}
	if r.Designation != nil {
		entity.Designation = *r.Designation
	}
	if r.Salary != nil {
		entity.Salary = *r.Salary
	}
	if r.ExperienceYears != nil {
		entity.ExperienceYears = *r.ExperienceYears
	}
	if r.PerformanceRating != nil {
		entity.PerformanceRating = *r.PerformanceRating
	}
}

type Response struct {
	EmpId             string  `json:"empId,omitempty"`
	Name              string  `json:"empName,omitempty"`
	Designation       string  `json:"empDesignation,omitempty"`
	Salary            float64 `json:"empSalary"`
	ExperienceYears   float64 `json:"empExperienceYears"`
	PerformanceRating int     `json:"empPerformanceRating"`
} // @name EmployeeResponse
