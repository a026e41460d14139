// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/identity"
	"github.com/agntslab/marketplace-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewUserService(suite.db)
}

func (suite *UserServiceTestSuite) TestUpsertCreatesUser() {
	user, err := suite.service.UpsertFromIdentity(&identity.Identity{
		UserID:    "user-1",
		Email:     "user-1@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", user.ID)
	suite.Require().NotNil(user.Email)
	assert.Equal(suite.T(), "user-1@example.com", *user.Email)
	assert.False(suite.T(), user.IsVendor)
}

func (suite *UserServiceTestSuite) TestUpsertRefreshesProfile() {
	_, err := suite.service.UpsertFromIdentity(&identity.Identity{
		UserID:    "user-1",
		Email:     "old@example.com",
		FirstName: "Ada",
	})
	suite.Require().NoError(err)

	user, err := suite.service.UpsertFromIdentity(&identity.Identity{
		UserID:    "user-1",
		Email:     "new@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.NoError(suite.T(), err)
	suite.Require().NotNil(user.Email)
	assert.Equal(suite.T(), "new@example.com", *user.Email)
	assert.Equal(suite.T(), "Lovelace", user.LastName)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *UserServiceTestSuite) TestUpsertKeepsVendorFlag() {
	_, err := suite.service.UpsertFromIdentity(&identity.Identity{UserID: "user-1"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.PromoteToVendor("user-1"))

	user, err := suite.service.UpsertFromIdentity(&identity.Identity{UserID: "user-1"})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), user.IsVendor)
}

func (suite *UserServiceTestSuite) TestGetUserNotFound() {
	_, err := suite.service.GetUser("ghost")

	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
