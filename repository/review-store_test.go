package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"scholarship/engine"

	"github.com/ory/dockertest/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("Could not construct pool, skipping database tests: %s", err)
		os.Exit(m.Run())
	}
	if err = pool.Client.Ping(); err != nil {
		log.Printf("Could not connect to Docker, skipping database tests: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600)
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if db == nil {
		t.Skip("database not available")
	}
}

func TearDown() {
	db.Exec("DELETE FROM system_logs")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM applications")
	db.Exec("DELETE FROM scholarships")
	db.Exec("DELETE FROM users")
}

type fixture struct {
	student     *User
	reviewers   []*User
	committee   *User
	scholarship *Scholarship
	application *Application
}

func SetUp(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}
	users := NewUserRepository(db)
	var err error
	f.student, err = users.SaveUser(&User{Username: "student", Email: "student@example.com", Permissions: []Permission{PermissionStudent}})
	require.NoError(t, err)
	for i := 1; i <= 2; i++ {
		reviewer, err := users.SaveUser(&User{
			Username:    fmt.Sprintf("reviewer%d", i),
			Email:       fmt.Sprintf("reviewer%d@example.com", i),
			Permissions: []Permission{PermissionReviewer},
		})
		require.NoError(t, err)
		f.reviewers = append(f.reviewers, reviewer)
	}
	f.committee, err = users.SaveUser(&User{Username: "committee", Email: "committee@example.com", Permissions: []Permission{PermissionCommittee}})
	require.NoError(t, err)

	maxIncome := int64(50000)
	f.scholarship, err = NewScholarshipRepository(db).SaveScholarship(&Scholarship{
		Title:              "Merit award",
		MinCgpa:            decimal.NewNullDecimal(decimal.RequireFromString("3.0")),
		MaxIncome:          &maxIncome,
		ExcludedProgrammes: []string{"Law"},
	})
	require.NoError(t, err)

	f.application, err = NewApplicationRepository(db).CreateApplication(&Application{
		StudentID:       f.student.ID,
		ScholarshipID:   f.scholarship.ID,
		Cgpa:            decimal.NewNullDecimal(decimal.RequireFromString("3.45")),
		HouseholdIncome: decimal.NewNullDecimal(decimal.NewFromInt(42000)),
		Programme:       "Engineering",
		SubmittedAt:     time.Now(),
	})
	require.NoError(t, err)
	return f
}

func TestScholarshipCriteriaRoundTrip(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)

	loaded, err := NewScholarshipRepository(db).GetScholarshipById(f.scholarship.ID)
	require.NoError(t, err)
	criteria := loaded.Criteria()
	require.NotNil(t, criteria.MinCgpa)
	assert.Equal(t, "3", criteria.MinCgpa.String())
	assert.Equal(t, int64(50000), *criteria.MaxIncome)
	assert.Equal(t, []string{"Law"}, criteria.ExcludedProgrammes)

	application, err := NewApplicationRepository(db).GetApplicationById(f.application.ID)
	require.NoError(t, err)
	result := engine.Evaluate(criteria, application.Profile())
	assert.True(t, result.Eligible)
}

func TestReviewStoreDrivesEngine(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)
	ctx := context.Background()

	e, err := engine.New(NewReviewStore(db), NewUserRepository(db), engine.DefaultPolicy())
	require.NoError(t, err)

	result, err := e.AssignReviewers(ctx, f.application.ID, []int{f.reviewers[0].ID, f.reviewers[1].ID}, f.committee.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, engine.StatusAssigned, result.Status)

	_, err = e.SubmitReview(ctx, engine.ReviewSubmission{ApplicationID: f.application.ID, ReviewerID: f.reviewers[0].ID, Score: 80, Decision: engine.DecisionPass})
	require.NoError(t, err)
	summary, err := e.SubmitReview(ctx, engine.ReviewSubmission{ApplicationID: f.application.ID, ReviewerID: f.reviewers[1].ID, Score: 40, Decision: engine.DecisionFail, Comment: "weak statement"})
	require.NoError(t, err)
	assert.True(t, summary.IsComplete)
	assert.Equal(t, "60", summary.AverageScore.String())
	assert.Equal(t, 1, summary.FailCount)

	stored, err := NewApplicationRepository(db).GetApplicationById(f.application.ID)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusReviewed, stored.Status)

	outcome, err := e.Decide(ctx, f.application.ID, f.committee.ID, engine.EventAccept)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusAccepted, outcome.To)

	_, err = e.SubmitReview(ctx, engine.ReviewSubmission{ApplicationID: f.application.ID, ReviewerID: f.reviewers[0].ID, Score: 10, Decision: engine.DecisionFail})
	assert.ErrorIs(t, err, engine.ErrAlreadyDecided)

	reviews, err := NewReviewRepository(db).GetReviewsForApplication(f.application.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 80, *reviews[0].Score)
	assert.Equal(t, "weak statement", *reviews[1].Comment)
}

func TestReviewStoreRejectsUnknownReviewer(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)

	e, err := engine.New(NewReviewStore(db), NewUserRepository(db), engine.DefaultPolicy())
	require.NoError(t, err)
	_, err = e.AssignReviewers(context.Background(), f.application.ID, []int{f.reviewers[0].ID, f.student.ID}, f.committee.ID)
	assert.ErrorIs(t, err, engine.ErrInvalidReviewer)

	reviews, err := NewReviewRepository(db).GetReviewsForApplication(f.application.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewStoreMissingApplication(t *testing.T) {
	requireDB(t)
	defer TearDown()
	store := NewReviewStore(db)
	ctx := context.Background()

	err := store.InTx(ctx, 999999, func(engine.Store) error { return nil })
	assert.ErrorIs(t, err, engine.ErrNotFound)
	_, err = store.LoadApplication(ctx, 999999)
	assert.ErrorIs(t, err, engine.ErrNotFound)
	err = store.SaveApplicationStatus(ctx, 999999, engine.StatusAssigned)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestReviewUniquePerReviewer(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)

	first := &Review{ApplicationID: f.application.ID, ReviewerID: f.reviewers[0].ID}
	require.NoError(t, db.Create(first).Error)
	second := &Review{ApplicationID: f.application.ID, ReviewerID: f.reviewers[0].ID}
	assert.Error(t, db.Create(second).Error)
}

func TestAssignedReviewerCannotBeDeleted(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)
	reviewer := f.reviewers[0]
	require.NoError(t, db.Create(&Review{ApplicationID: f.application.ID, ReviewerID: reviewer.ID}).Error)

	assert.Error(t, db.Delete(&User{}, reviewer.ID).Error)

	reviews, err := NewReviewRepository(db).GetReviewsForApplication(f.application.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, db.Delete(&Application{}, f.application.ID).Error)
	reviews, err = NewReviewRepository(db).GetReviewsForApplication(f.application.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NoError(t, db.Delete(&User{}, reviewer.ID).Error)
}

func TestRankingForReviewer(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)
	applications := NewApplicationRepository(db)
	reviewer := f.reviewers[0]

	scores := []int{55, 90, 70}
	for i, score := range scores {
		application := f.application
		if i > 0 {
			var err error
			application, err = applications.CreateApplication(&Application{StudentID: f.student.ID, ScholarshipID: f.scholarship.ID, SubmittedAt: time.Now()})
			require.NoError(t, err)
		}
		s := score
		require.NoError(t, db.Create(&Review{ApplicationID: application.ID, ReviewerID: reviewer.ID, Score: &s}).Error)
	}
	other, err := applications.CreateApplication(&Application{StudentID: f.student.ID, ScholarshipID: f.scholarship.ID, SubmittedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, db.Create(&Review{ApplicationID: other.ID, ReviewerID: reviewer.ID}).Error)

	ranking, err := NewReviewRepository(db).GetRankingForReviewer(reviewer.ID)
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, 90, *ranking[0].Score)
	assert.Equal(t, 70, *ranking[1].Score)
	assert.Equal(t, 55, *ranking[2].Score)

	all, err := NewReviewRepository(db).GetReviewsForReviewer(reviewer.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSystemLogsForApplication(t *testing.T) {
	requireDB(t)
	defer TearDown()
	f := SetUp(t)
	repo := NewSystemLogRepository(db)

	require.NoError(t, repo.SaveSystemLog(&SystemLog{Level: LogLevelInfo, Action: "assign_reviewers", Message: "assigned", ApplicationID: &f.application.ID}))
	require.NoError(t, repo.SaveSystemLog(&SystemLog{Level: LogLevelWarning, Action: "decide", Message: "premature", ApplicationID: &f.application.ID}))

	logs, err := repo.GetLogsForApplication(f.application.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "assign_reviewers", logs[0].Action)
	assert.NotEqual(t, logs[0].CorrelationID, logs[1].CorrelationID)
}
