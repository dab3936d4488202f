// Package report builds the read-only aggregate views of the review process.
// Reads are not taken under the application lock and may trail concurrent
// writes slightly.
package report

import (
	"context"

	"scholarship/engine"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type Overview struct {
	Scholarships     int64                   `json:"scholarships"`
	Applications     int64                   `json:"applications"`
	ByStatus         map[engine.Status]int64 `json:"by_status"`
	ReviewsAssigned  int64                   `json:"reviews_assigned"`
	ReviewsSubmitted int64                   `json:"reviews_submitted"`
	ReviewsPending   int64                   `json:"reviews_pending"`
}

// Filter narrows the overview to one scholarship when ScholarshipID is set.
type Filter struct {
	ScholarshipID *int
}

type Reporter struct {
	DB *gorm.DB
}

func NewReporter(db *gorm.DB) *Reporter {
	return &Reporter{DB: db}
}

// Statements are rendered with ? placeholders; gorm rebinds them for the
// active dialect.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func scholarshipCountQuery(filter Filter) sq.SelectBuilder {
	query := builder.Select("COUNT(*)").From("scholarships")
	if filter.ScholarshipID != nil {
		query = query.Where(sq.Eq{"id": *filter.ScholarshipID})
	}
	return query
}

func statusCountQuery(filter Filter) sq.SelectBuilder {
	query := builder.Select("status", "COUNT(*) AS total").From("applications").GroupBy("status").OrderBy("status")
	if filter.ScholarshipID != nil {
		query = query.Where(sq.Eq{"scholarship_id": *filter.ScholarshipID})
	}
	return query
}

func reviewCountQuery(filter Filter) sq.SelectBuilder {
	query := builder.Select(
		"COUNT(*) AS assigned",
		"COALESCE(SUM(CASE WHEN r.score IS NOT NULL AND r.decision IS NOT NULL THEN 1 ELSE 0 END), 0) AS submitted",
	).From("reviews r")
	if filter.ScholarshipID != nil {
		query = query.Join("applications a ON a.id = r.application_id").
			Where(sq.Eq{"a.scholarship_id": *filter.ScholarshipID})
	}
	return query
}

type statusRow struct {
	Status engine.Status
	Total  int64
}

type reviewRow struct {
	Assigned  int64
	Submitted int64
}

func (r *Reporter) Overview(ctx context.Context, filter Filter) (*Overview, error) {
	db := r.DB.WithContext(ctx)
	overview := &Overview{ByStatus: make(map[engine.Status]int64, len(engine.Statuses))}
	for _, status := range engine.Statuses {
		overview.ByStatus[status] = 0
	}

	query, args, err := scholarshipCountQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}
	if err := db.Raw(query, args...).Scan(&overview.Scholarships).Error; err != nil {
		return nil, err
	}

	query, args, err = statusCountQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}
	var rows []statusRow
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		overview.ByStatus[row.Status] = row.Total
		overview.Applications += row.Total
	}

	query, args, err = reviewCountQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}
	var reviews reviewRow
	if err := db.Raw(query, args...).Scan(&reviews).Error; err != nil {
		return nil, err
	}
	overview.ReviewsAssigned = reviews.Assigned
	overview.ReviewsSubmitted = reviews.Submitted
	overview.ReviewsPending = reviews.Assigned - reviews.Submitted
	return overview, nil
}
