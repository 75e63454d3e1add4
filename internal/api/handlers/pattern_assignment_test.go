package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"guardops-backend/internal/api/handlers"
	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/mocks"
	"guardops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PatternAssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPatternAssignmentServiceInterface
	router      *gin.Engine
}

func (suite *PatternAssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPatternAssignmentServiceInterface(suite.ctrl)
	handler := handlers.NewPatternAssignmentHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.Use(withActor("supervisor"))
	suite.router.GET("/pattern-assignments", handler.ListPatternAssignments)
	suite.router.POST("/pattern-assignments", handler.CreatePatternAssignment)
	suite.router.DELETE("/pattern-assignments/:id", handler.DeletePatternAssignment)
}

func (suite *PatternAssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PatternAssignmentHandlerTestSuite) TestList() {
	suite.Run("month required", func() {
		w := performRequest(suite.router, http.MethodGet, "/pattern-assignments", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	})

	suite.Run("bad month", func() {
		suite.mockService.EXPECT().ListByMonth("2025-13").Return(nil, apperrors.ErrInvalidMonthFormat)
		w := performRequest(suite.router, http.MethodGet, "/pattern-assignments?month=2025-13", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	})

	suite.Run("listed", func() {
		suite.mockService.EXPECT().ListByMonth("2025-01").Return([]service.PatternAssignmentResponse{
			{ID: uuid.New(), Month: "2025-01", RowIndex: 0, Row: []int{1, 1, 2, 2, 3, 3, 0}},
		}, nil)
		w := performRequest(suite.router, http.MethodGet, "/pattern-assignments?month=2025-01", nil)

		assert.Equal(suite.T(), http.StatusOK, w.Code)
		var got []service.PatternAssignmentResponse
		assert.NoError(suite.T(), decodeBody(w, &got))
		assert.Len(suite.T(), got, 1)
		assert.Equal(suite.T(), "2025-01", got[0].Month)
	})
}

func (suite *PatternAssignmentHandlerTestSuite) TestCreate() {
	userID := uuid.New()
	patternID := uuid.New()

	suite.Run("created", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), "supervisor").
			DoAndReturn(func(_ context.Context, req *service.CreatePatternAssignmentRequest, actor string) (*service.PatternAssignmentResponse, error) {
				assert.Equal(suite.T(), userID, req.UserID)
				assert.Equal(suite.T(), patternID, req.PatternID)
				assert.Equal(suite.T(), 1, req.RowIndex)
				return &service.PatternAssignmentResponse{ID: uuid.New(), UserID: userID, PatternID: patternID, Month: req.Month, RowIndex: 1, CreatedBy: actor}, nil
			})

		w := performRequest(suite.router, http.MethodPost, "/pattern-assignments", map[string]interface{}{
			"user_id":    userID,
			"pattern_id": patternID,
			"month":      "2025-01",
			"row_index":  1,
		})
		assert.Equal(suite.T(), http.StatusCreated, w.Code)
	})

	suite.Run("row out of range", func() {
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), "supervisor").Return(nil, apperrors.ErrRowIndexOutOfRange)
		w := performRequest(suite.router, http.MethodPost, "/pattern-assignments", map[string]interface{}{
			"user_id": userID, "pattern_id": patternID, "month": "2025-01", "row_index": 5,
		})
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	})

	suite.Run("duplicate", func() {
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), "supervisor").Return(nil, apperrors.ErrPatternAssignmentExists)
		w := performRequest(suite.router, http.MethodPost, "/pattern-assignments", map[string]interface{}{
			"user_id": userID, "pattern_id": patternID, "month": "2025-01",
		})
		assert.Equal(suite.T(), http.StatusConflict, w.Code)
	})

	suite.Run("unknown user", func() {
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), "supervisor").Return(nil, apperrors.ErrUserNotFound)
		w := performRequest(suite.router, http.MethodPost, "/pattern-assignments", map[string]interface{}{
			"user_id": userID, "pattern_id": patternID, "month": "2025-01",
		})
		assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	})
}

func (suite *PatternAssignmentHandlerTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrPatternAssignmentNotFound)

	w := performRequest(suite.router, http.MethodDelete, "/pattern-assignments/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestPatternAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PatternAssignmentHandlerTestSuite))
}
