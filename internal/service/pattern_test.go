package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"guardops-backend/internal/database/models"
	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/mocks"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PatternServiceTestSuite defines the test suite for PatternService
type PatternServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockPatternRepositoryInterface
	patternService *service.PatternService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *PatternServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPatternRepositoryInterface(suite.ctrl)
	suite.patternService = service.NewPatternService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *PatternServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PatternServiceTestSuite) TestCreate() {
	suite.Run("valid pattern is stored", func() {
		req := &service.CreatePatternRequest{
			Name:          "Night heavy",
			Description:   "two guards",
			PersonilCount: 2,
			PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0],[0,1,1,2,2,3,3]]`),
			IsDefault:     true,
		}

		suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Pattern) error {
			suite.Equal("Night heavy", p.Name)
			suite.Equal(2, p.PersonilCount)
			suite.True(p.IsDefault)
			suite.Equal("admin.rw01", p.CreatedBy)
			p.ID = uuid.New()
			return nil
		})

		resp, err := suite.patternService.Create(suite.ctx, req, "admin.rw01")
		suite.Require().NoError(err)
		suite.Equal([][]int{{1, 3, 2, 3, 2, 2, 0}, {0, 1, 1, 2, 2, 3, 3}}, resp.PatternData)
		suite.Equal("admin.rw01", resp.CreatedBy)
		suite.NotEqual(uuid.Nil, resp.ID)
	})

	suite.Run("integral floats are normalised", func() {
		req := &service.CreatePatternRequest{
			Name:          "floats",
			PersonilCount: 1,
			PatternData:   json.RawMessage(`[[1.0,3,2,3,2,2,0]]`),
		}
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.patternService.Create(suite.ctx, req, "admin")
		suite.Require().NoError(err)
		suite.Equal([][]int{{1, 3, 2, 3, 2, 2, 0}}, resp.PatternData)
	})

	suite.Run("row count mismatch writes nothing", func() {
		req := &service.CreatePatternRequest{
			Name:          "short",
			PersonilCount: 2,
			PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0]]`),
		}

		resp, err := suite.patternService.Create(suite.ctx, req, "admin")
		suite.Nil(resp)

		var patternErr *apperrors.PatternValidationError
		suite.Require().True(errors.As(err, &patternErr))
		suite.Contains(patternErr.Errors, "pattern has 1 rows but personil count is 2")
	})

	suite.Run("every problem is reported", func() {
		req := &service.CreatePatternRequest{
			Name:          "broken",
			PersonilCount: 1,
			PatternData:   json.RawMessage(`[[1,3,2,9,2,2,1]]`),
		}

		_, err := suite.patternService.Create(suite.ctx, req, "admin")

		var patternErr *apperrors.PatternValidationError
		suite.Require().True(errors.As(err, &patternErr))
		suite.Equal([]string{
			"row 1, day 4: invalid value 9 (must be an integer between 0 and 3)",
			"row 1 has no day off (0)",
		}, patternErr.Errors)
	})

	suite.Run("missing name", func() {
		req := &service.CreatePatternRequest{
			PersonilCount: 1,
			PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0]]`),
		}

		_, err := suite.patternService.Create(suite.ctx, req, "admin")
		suite.True(apperrors.IsValidation(err))
		suite.Contains(err.Error(), "name")
	})

	suite.Run("concurrent default collision", func() {
		req := &service.CreatePatternRequest{
			Name:          "race",
			PersonilCount: 1,
			PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0]]`),
			IsDefault:     true,
		}
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := suite.patternService.Create(suite.ctx, req, "admin")
		suite.True(apperrors.IsAlreadyExists(err))
	})
}

func (suite *PatternServiceTestSuite) TestGetByID() {
	pattern := newPattern("single", [][]int{referenceRow})

	suite.mockRepo.EXPECT().GetByID(pattern.ID).Return(pattern, nil)
	resp, err := suite.patternService.GetByID(pattern.ID)
	suite.Require().NoError(err)
	suite.Equal(pattern.Name, resp.Name)
	suite.Nil(resp.LastUsedAt)

	missing := uuid.New()
	suite.mockRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.patternService.GetByID(missing)
	suite.ErrorIs(err, apperrors.ErrPatternNotFound)
}

func (suite *PatternServiceTestSuite) TestUpdate() {
	suite.Run("rename skips grid validation", func() {
		pattern := newPattern("old", [][]int{referenceRow})
		name := "new"

		suite.mockRepo.EXPECT().GetByID(pattern.ID).Return(pattern, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Pattern) error {
			suite.Equal("new", p.Name)
			suite.Equal(1, p.PersonilCount)
			return nil
		})

		resp, err := suite.patternService.Update(suite.ctx, pattern.ID, &service.UpdatePatternRequest{Name: &name})
		suite.Require().NoError(err)
		suite.Equal("new", resp.Name)
	})

	suite.Run("both grid fields are revalidated together", func() {
		pattern := newPattern("old", [][]int{referenceRow})
		count := 2

		suite.mockRepo.EXPECT().GetByID(pattern.ID).Return(pattern, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		resp, err := suite.patternService.Update(suite.ctx, pattern.ID, &service.UpdatePatternRequest{
			PersonilCount: &count,
			PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0],[0,1,1,1,1,1,1]]`),
		})
		suite.Require().NoError(err)
		suite.Equal(2, resp.PersonilCount)
		suite.Len(resp.PatternData, 2)
	})

	suite.Run("count alone is checked against the stored grid", func() {
		pattern := newPattern("old", [][]int{referenceRow})
		count := 3

		suite.mockRepo.EXPECT().GetByID(pattern.ID).Return(pattern, nil)

		_, err := suite.patternService.Update(suite.ctx, pattern.ID, &service.UpdatePatternRequest{PersonilCount: &count})
		suite.True(apperrors.IsPatternValidation(err))
	})

	suite.Run("invalid grid writes nothing", func() {
		pattern := newPattern("old", [][]int{referenceRow})

		suite.mockRepo.EXPECT().GetByID(pattern.ID).Return(pattern, nil)

		_, err := suite.patternService.Update(suite.ctx, pattern.ID, &service.UpdatePatternRequest{
			PatternData: json.RawMessage(`[[1,1,1,1,1,1]]`),
		})
		var patternErr *apperrors.PatternValidationError
		suite.Require().True(errors.As(err, &patternErr))
		suite.Equal([]string{
			"row 1 must have exactly 7 days, got 6",
			"row 1 has no day off (0)",
		}, patternErr.Errors)
	})

	suite.Run("not found is distinct from invalid", func() {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.patternService.Update(suite.ctx, id, &service.UpdatePatternRequest{
			PatternData: json.RawMessage(`"not a grid"`),
		})
		suite.ErrorIs(err, apperrors.ErrPatternNotFound)
		suite.False(apperrors.IsPatternValidation(err))
	})
}

func (suite *PatternServiceTestSuite) TestDelete() {
	id := uuid.New()

	suite.mockRepo.EXPECT().Delete(id).Return(nil)
	suite.NoError(suite.patternService.Delete(suite.ctx, id))

	suite.mockRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.patternService.Delete(suite.ctx, id), apperrors.ErrPatternNotFound)

	suite.mockRepo.EXPECT().Delete(id).Return(&pgconn.PgError{Code: "23503"})
	suite.ErrorIs(suite.patternService.Delete(suite.ctx, id), apperrors.ErrPatternInUse)
}

func (suite *PatternServiceTestSuite) TestList() {
	suite.Run("filters are composed in order", func() {
		count := 4
		isDefault := true
		filter := &service.PatternListFilter{
			PersonilCount: &count,
			IsDefault:     &isDefault,
			CreatedBy:     "admin",
			Search:        "night",
		}
		expected := []repository.PatternFilter{
			repository.PersonilCountFilter(4),
			repository.IsDefaultFilter(true),
			repository.CreatedByFilter("admin"),
			repository.SearchFilter("night"),
		}
		patterns := []models.Pattern{*newPattern("a", [][]int{referenceRow})}

		suite.mockRepo.EXPECT().List(expected, 10, 10).Return(patterns, int64(11), nil)

		resp, err := suite.patternService.List(filter, 2, 10)
		suite.Require().NoError(err)
		suite.Equal(int64(11), resp.Total)
		suite.Len(resp.Patterns, 1)
		suite.Equal(2, resp.Page)
	})

	suite.Run("no filters", func() {
		suite.mockRepo.EXPECT().List(gomock.Nil(), 20, 0).Return([]models.Pattern{}, int64(0), nil)

		resp, err := suite.patternService.List(&service.PatternListFilter{}, 1, 20)
		suite.Require().NoError(err)
		suite.Empty(resp.Patterns)
	})

	suite.Run("invalid pagination", func() {
		_, err := suite.patternService.List(nil, 0, 20)
		suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

		_, err = suite.patternService.List(nil, 1, 101)
		suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
	})
}

func (suite *PatternServiceTestSuite) TestGetDefault() {
	pattern := newPattern("default", [][]int{referenceRow})
	pattern.IsDefault = true

	suite.mockRepo.EXPECT().GetDefault(1).Return(pattern, nil)
	resp, found, err := suite.patternService.GetDefault(1)
	suite.Require().NoError(err)
	suite.True(found)
	suite.True(resp.IsDefault)

	suite.mockRepo.EXPECT().GetDefault(4).Return(nil, gorm.ErrRecordNotFound)
	resp, found, err = suite.patternService.GetDefault(4)
	suite.NoError(err)
	suite.False(found)
	suite.Nil(resp)

	_, _, err = suite.patternService.GetDefault(0)
	suite.True(apperrors.IsValidation(err))
}

func (suite *PatternServiceTestSuite) TestIncrementUsage() {
	id := uuid.New()

	suite.mockRepo.EXPECT().IncrementUsage(id, gomock.Any()).Return(nil)
	suite.NoError(suite.patternService.IncrementUsage(id))

	suite.mockRepo.EXPECT().IncrementUsage(id, gomock.Any()).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.patternService.IncrementUsage(id), apperrors.ErrPatternNotFound)
}

func (suite *PatternServiceTestSuite) TestValidate() {
	result := suite.patternService.Validate(&service.ValidatePatternRequest{
		PersonilCount: 2,
		PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0]]`),
	})
	suite.False(result.Valid)
	suite.Contains(result.Errors, "pattern has 1 rows but personil count is 2")

	result = suite.patternService.Validate(&service.ValidatePatternRequest{
		PersonilCount: 1,
		PatternData:   json.RawMessage(`[[1,3,2,3,2,2,0]]`),
	})
	suite.True(result.Valid)
	suite.Empty(result.Errors)
}

// TestPatternServiceTestSuite runs the test suite
func TestPatternServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PatternServiceTestSuite))
}
