// internal/services/catalog_service_test.go
package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/models"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CatalogService

	productivity models.Category
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewCatalogService(suite.db)

	suite.productivity = models.Category{Name: "Productivity"}
	suite.Require().NoError(suite.db.Create(&suite.productivity).Error)

	createTestUser(suite.T(), suite.db, "vendor-1")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	createTestAgent(suite.T(), suite.db, "vendor-1", testAgentOptions{
		Name:        "Email Genius",
		Description: "Drafts and triages email",
		Price:       "19.99",
		IsActive:    true,
		CategoryID:  &suite.productivity.ID,
		Model:       "GPT-4",
		Runtime:     "Cloud",
		CreatedAt:   base,
	})
	createTestAgent(suite.T(), suite.db, "vendor-1", testAgentOptions{
		Name:        "SQL Query Assistant",
		Description: "Writes SQL from plain language",
		IsFree:      true,
		IsActive:    true,
		Model:       "Claude",
		Runtime:     "Local",
		CreatedAt:   base.Add(time.Hour),
	})
	createTestAgent(suite.T(), suite.db, "vendor-1", testAgentOptions{
		Name:        "Retired Agent",
		Description: "No longer listed",
		IsFree:      true,
		IsActive:    false,
		Model:       "GPT-4",
		Runtime:     "Cloud",
		CreatedAt:   base.Add(2 * time.Hour),
	})
}

func (suite *CatalogServiceTestSuite) TestListAgentsExcludesInactive() {
	agents, err := suite.service.ListAgents(AgentFilters{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), agents, 2)
	for _, agent := range agents {
		assert.True(suite.T(), agent.IsActive)
		assert.NotEqual(suite.T(), "Retired Agent", agent.Name)
	}
}

func (suite *CatalogServiceTestSuite) TestFilteredListNeverReturnsInactive() {
	// Every term below matches only the inactive agent's fields.
	byName, err := suite.service.ListAgents(AgentFilters{Search: "retired"})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), byName)

	byDescription, err := suite.service.ListAgents(AgentFilters{Search: "no longer"})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), byDescription)

	byModel, err := suite.service.ListAgents(AgentFilters{Price: "free", Model: "gpt"})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), byModel)

	// The search OR must stay scoped inside the activity guard.
	byRuntime, err := suite.service.ListAgents(AgentFilters{Runtime: "cloud", Search: "listed"})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), byRuntime)
}

func (suite *CatalogServiceTestSuite) TestListAgentsNewestFirst() {
	agents, err := suite.service.ListAgents(AgentFilters{})

	assert.NoError(suite.T(), err)
	suite.Require().Len(agents, 2)
	assert.Equal(suite.T(), "SQL Query Assistant", agents[0].Name)
	assert.Equal(suite.T(), "Email Genius", agents[1].Name)
}

func (suite *CatalogServiceTestSuite) TestListAgentsPriceTierPartition() {
	free, err := suite.service.ListAgents(AgentFilters{Price: "free"})
	assert.NoError(suite.T(), err)
	suite.Require().Len(free, 1)
	assert.Equal(suite.T(), "SQL Query Assistant", free[0].Name)

	paid, err := suite.service.ListAgents(AgentFilters{Price: "paid"})
	assert.NoError(suite.T(), err)
	suite.Require().Len(paid, 1)
	assert.Equal(suite.T(), "Email Genius", paid[0].Name)
}

func (suite *CatalogServiceTestSuite) TestListAgentsSearchIsCaseInsensitive() {
	for _, term := range []string{"sql", "SQL", "Sql"} {
		agents, err := suite.service.ListAgents(AgentFilters{Search: term})
		assert.NoError(suite.T(), err)
		suite.Require().Len(agents, 1, "search term %q", term)
		assert.Equal(suite.T(), "SQL Query Assistant", agents[0].Name)
	}
}

func (suite *CatalogServiceTestSuite) TestListAgentsSearchMatchesDescription() {
	agents, err := suite.service.ListAgents(AgentFilters{Search: "triages"})

	assert.NoError(suite.T(), err)
	suite.Require().Len(agents, 1)
	assert.Equal(suite.T(), "Email Genius", agents[0].Name)
}

func (suite *CatalogServiceTestSuite) TestListAgentsCategoryFilter() {
	agents, err := suite.service.ListAgents(AgentFilters{
		Category: strconv.FormatUint(uint64(suite.productivity.ID), 10),
	})

	assert.NoError(suite.T(), err)
	suite.Require().Len(agents, 1)
	assert.Equal(suite.T(), "Email Genius", agents[0].Name)
}

func (suite *CatalogServiceTestSuite) TestListAgentsNonNumericCategoryMatchesNothing() {
	agents, err := suite.service.ListAgents(AgentFilters{Category: "productivity"})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), agents)
}

func (suite *CatalogServiceTestSuite) TestListAgentsFiltersAreConjunctive() {
	agents, err := suite.service.ListAgents(AgentFilters{
		Price: "free",
		Model: "gpt",
	})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), agents)
}

func (suite *CatalogServiceTestSuite) TestGetAgentReturnsInactive() {
	var retired models.Agent
	suite.Require().NoError(suite.db.Where("name = ?", "Retired Agent").First(&retired).Error)

	agent, err := suite.service.GetAgent(retired.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Retired Agent", agent.Name)
}

func (suite *CatalogServiceTestSuite) TestGetAgentNotFound() {
	_, err := suite.service.GetAgent(99999)

	assert.ErrorIs(suite.T(), err, ErrAgentNotFound)
}

func (suite *CatalogServiceTestSuite) TestGetCategoriesSortedByName() {
	suite.Require().NoError(suite.db.Create(&models.Category{Name: "AI Assistants"}).Error)

	categories, err := suite.service.GetCategories()

	assert.NoError(suite.T(), err)
	suite.Require().Len(categories, 2)
	assert.Equal(suite.T(), "AI Assistants", categories[0].Name)
	assert.Equal(suite.T(), "Productivity", categories[1].Name)
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
