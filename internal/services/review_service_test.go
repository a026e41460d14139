// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ReviewService

	agent *models.Agent
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewReviewService(suite.db)

	createTestUser(suite.T(), suite.db, "vendor-1")
	createTestUser(suite.T(), suite.db, "buyer-1")

	suite.agent = createTestAgent(suite.T(), suite.db, "vendor-1", testAgentOptions{
		Name:     "Email Genius",
		Price:    "19.99",
		IsActive: true,
	})
}

func (suite *ReviewServiceTestSuite) TestCreateReview() {
	review, err := suite.service.CreateReview("buyer-1", suite.agent.ID, &CreateReviewRequest{
		Rating:  5,
		Comment: "Saves me an hour a day",
	})

	assert.NoError(suite.T(), err)
	assert.NotZero(suite.T(), review.ID)
	assert.Equal(suite.T(), 5, review.Rating)
}

func (suite *ReviewServiceTestSuite) TestCreateReviewDoesNotTouchAggregates() {
	_, err := suite.service.CreateReview("buyer-1", suite.agent.ID, &CreateReviewRequest{
		Rating: 4,
	})
	suite.Require().NoError(err)

	var agent models.Agent
	suite.Require().NoError(suite.db.First(&agent, suite.agent.ID).Error)
	assert.Equal(suite.T(), int64(0), agent.ReviewCount)
	assert.True(suite.T(), agent.Rating.IsZero())
}

func (suite *ReviewServiceTestSuite) TestRatingOutOfRangeIsRejected() {
	for _, rating := range []int{0, 6} {
		_, err := suite.service.CreateReview("buyer-1", suite.agent.ID, &CreateReviewRequest{
			Rating: rating,
		})
		assert.ErrorIs(suite.T(), err, ErrValidation, "rating %d", rating)
	}
}

func (suite *ReviewServiceTestSuite) TestReviewForUnknownAgent() {
	_, err := suite.service.CreateReview("buyer-1", 99999, &CreateReviewRequest{
		Rating: 3,
	})

	assert.ErrorIs(suite.T(), err, ErrAgentNotFound)
}

func (suite *ReviewServiceTestSuite) TestGetReviewsByAgentIsPaginated() {
	for i := 0; i < 5; i++ {
		_, err := suite.service.CreateReview("buyer-1", suite.agent.ID, &CreateReviewRequest{
			Rating: (i % 5) + 1,
		})
		suite.Require().NoError(err)
	}

	reviews, total, err := suite.service.GetReviewsByAgent(suite.agent.ID, utils.PaginationParams{
		Page:  1,
		Limit: 3,
		Sort:  "created_at",
		Order: "desc",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), total)
	assert.Len(suite.T(), reviews, 3)
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
