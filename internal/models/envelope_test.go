package models_test

import (
	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
)

func (suite *TestSuiteStandard) TestEnvelopeCreate() {
	envelope := suite.createTestEnvelope(models.Envelope{
		UserID:       "default",
		Title:        "Groceries",
		WeeklyBudget: 10000,
	})

	suite.Assert().NotEqual(uuid.Nil, envelope.ID)
	suite.Assert().False(envelope.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestEnvelopeCreatedOn() {
	envelope := suite.createTestEnvelope(models.Envelope{
		UserID:       "default",
		Title:        "Groceries",
		WeeklyBudget: 10000,
	})

	suite.Assert().True(envelope.CreatedOn().Equal(types.DateOf(envelope.CreatedAt)))
	suite.Assert().False(envelope.CreatedOn().After(types.Today()))
}

func (suite *TestSuiteStandard) TestEnvelopesForUser() {
	suite.createTestEnvelope(models.Envelope{UserID: "default", Title: "Fun", WeeklyBudget: 5000, SortOrder: 2})
	suite.createTestEnvelope(models.Envelope{UserID: "default", Title: "Groceries", WeeklyBudget: 10000, SortOrder: 1})
	suite.createTestEnvelope(models.Envelope{UserID: "someone-else", Title: "Clothes", WeeklyBudget: 2000})

	envelopes, err := models.EnvelopesForUser("default")

	suite.Assert().Nil(err)
	suite.Assert().Len(envelopes, 2)

	// Ordered by sort order, not creation
	suite.Assert().Equal("Groceries", envelopes[0].Title)
	suite.Assert().Equal("Fun", envelopes[1].Title)
}

func (suite *TestSuiteStandard) TestEnvelopesForUserEmpty() {
	envelopes, err := models.EnvelopesForUser("default")

	suite.Assert().Nil(err)
	suite.Assert().Len(envelopes, 0)
}
