package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"naijapath/internal/catalog"
	"naijapath/internal/domain"
)

// CareerRepository supplies the career catalog. Like the question list, the
// catalog is loaded once at startup and never written by this service.
type CareerRepository interface {
	ListCareers(ctx context.Context) ([]domain.Career, error)
}

// StaticCareerRepository serves the bundled career catalog.
type StaticCareerRepository struct{}

func NewStaticCareerRepository() *StaticCareerRepository {
	return &StaticCareerRepository{}
}

func (r *StaticCareerRepository) ListCareers(_ context.Context) ([]domain.Career, error) {
	cs := catalog.Careers()
	if err := catalog.ValidateCareers(cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// PgCareerRepository loads the career catalog from Postgres.
type PgCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPgCareerRepository(pool *pgxpool.Pool) *PgCareerRepository {
	return &PgCareerRepository{pool: pool}
}

func (r *PgCareerRepository) ListCareers(ctx context.Context) ([]domain.Career, error) {
	const query = `
		SELECT id, title, description,
		       required_skills, education_requirements,
		       salary_min, salary_max, salary_currency,
		       growth_outlook, work_environment, personality_fit, industry_tags,
		       demand, local_opportunities, average_salary
		FROM careers
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs []domain.Career
	for rows.Next() {
		var c domain.Career
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.RequiredSkills,
			&c.EducationRequirements,
			&c.SalaryRange.Min,
			&c.SalaryRange.Max,
			&c.SalaryRange.Currency,
			&c.GrowthOutlook,
			&c.WorkEnvironment,
			&c.PersonalityFit,
			&c.IndustryTags,
			&c.MarketContext.Demand,
			&c.MarketContext.LocalOpportunities,
			&c.MarketContext.AverageSalary,
		); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := catalog.ValidateCareers(cs); err != nil {
		return nil, err
	}
	return cs, nil
}
