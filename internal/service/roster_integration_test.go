//go:build integration
// +build integration

package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"guardops-backend/internal/database/models"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/service"
	"guardops-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// RosterIntegrationTestSuite runs roster generation against Postgres
type RosterIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	shiftAssigns  *repository.ShiftAssignmentRepository
	patterns      *repository.PatternRepository
	rosterService *service.RosterService
	user          *models.User
	pattern       *models.Pattern
}

func (suite *RosterIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	v := validator.New()
	suite.patterns = repository.NewPatternRepository(db)
	suite.shiftAssigns = repository.NewShiftAssignmentRepository(db)
	suite.rosterService = service.NewRosterService(
		repository.NewPatternAssignmentRepository(db),
		repository.NewShiftRepository(db),
		suite.shiftAssigns,
		service.NewPatternService(suite.patterns, v),
		service.NewReconciler(),
		v,
	)
}

func (suite *RosterIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RosterIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	shifts := repository.NewShiftRepository(db)
	for _, shift := range suite.factories.Shift.Standard() {
		suite.Require().NoError(shifts.Create(shift))
	}

	suite.user = suite.factories.User.WithName("dimas", "Dimas Saputra")
	suite.Require().NoError(repository.NewUserRepository(db).Create(suite.user))

	suite.pattern = suite.factories.Pattern.WithGrid("Reference", [][]int{{1, 3, 2, 3, 2, 2, 0}})
	suite.Require().NoError(suite.patterns.Create(suite.pattern))

	assignment := suite.factories.PatternAssignment.Create(suite.user.ID, suite.pattern.ID, 2025, time.January, 0)
	suite.Require().NoError(repository.NewPatternAssignmentRepository(db).Create(assignment))
}

func (suite *RosterIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RosterIntegrationTestSuite) januaryRows() []models.ShiftAssignment {
	rows, err := suite.shiftAssigns.GetByDateRange("2025-01-01", "2025-01-31", nil)
	suite.Require().NoError(err)
	return rows
}

func (suite *RosterIntegrationTestSuite) TestGenerateIsIdempotent() {
	ctx := context.Background()
	req := &service.GenerateRosterRequest{Month: "2025-01"}

	first, err := suite.rosterService.Generate(ctx, req, "admin")
	suite.Require().NoError(err)
	suite.Equal(27, first.Created)
	suite.Equal(4, first.Skipped)
	suite.Empty(first.Errors)

	second, err := suite.rosterService.Generate(ctx, req, "admin")
	suite.Require().NoError(err)
	suite.Equal(27, second.Created)

	rows := suite.januaryRows()
	suite.Len(rows, 27)
	last := rows[len(rows)-1]
	suite.Equal("2025-01-31", time.Time(last.AssignmentDate).Format("2006-01-02"))
	suite.Equal(uint(2), last.ShiftID)
	suite.Equal("admin", last.CreatedBy)
	suite.False(last.IsReplacement)

	stored, err := suite.patterns.GetByID(suite.pattern.ID)
	suite.Require().NoError(err)
	suite.Equal(2, stored.UsageCount)
}

func (suite *RosterIntegrationTestSuite) TestForceClearsMonth() {
	ctx := context.Background()

	// a manual entry on an OFF day that the pattern would never produce
	stray := suite.factories.ShiftAssignment.Create(suite.user.ID, 1, 2025, time.January, 7)
	suite.Require().NoError(suite.shiftAssigns.Create(stray))
	february := suite.factories.ShiftAssignment.Create(suite.user.ID, 1, 2025, time.February, 1)
	suite.Require().NoError(suite.shiftAssigns.Create(february))

	kept, err := suite.rosterService.Generate(ctx, &service.GenerateRosterRequest{Month: "2025-01"}, "admin")
	suite.Require().NoError(err)
	suite.Equal(int64(0), kept.Deleted)
	suite.Len(suite.januaryRows(), 28)

	forced, err := suite.rosterService.Generate(ctx, &service.GenerateRosterRequest{Month: "2025-01", Force: true}, "admin")
	suite.Require().NoError(err)
	suite.Equal(int64(28), forced.Deleted)
	suite.Equal(27, forced.Created)
	suite.Len(suite.januaryRows(), 27)

	_, err = suite.shiftAssigns.GetByUserAndDate(suite.user.ID, "2025-02-01")
	suite.NoError(err)
}

func (suite *RosterIntegrationTestSuite) TestCalendarReadsGeneratedRows() {
	ctx := context.Background()
	_, err := suite.rosterService.Generate(ctx, &service.GenerateRosterRequest{Month: "2025-01"}, "admin")
	suite.Require().NoError(err)

	calendar, err := suite.rosterService.Calendar(ctx, "2025-01", &suite.user.ID)
	suite.Require().NoError(err)
	suite.Equal(31, calendar.Days)
	suite.Equal(27, calendar.Total)
	suite.Equal("2025-01-01", calendar.Entries[0].Date)
	suite.Equal("P", calendar.Entries[0].ShiftCode)
	suite.Equal("Dimas Saputra", calendar.Entries[0].FullName)
}

func TestRosterIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RosterIntegrationTestSuite))
}
