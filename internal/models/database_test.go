package models_test

import (
	"github.com/weekly-envelope/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/directory/does/not/exist/db")
	suite.Assert().NotNil(err)

	// Restore a working connection for the teardown
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestNotFoundError() {
	var envelope models.Envelope
	err := models.DB.First(&envelope, "id = ?", "65392deb-5e92-4268-b114-297faad6cdce").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no envelope matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseError() {
	suite.CloseDB()

	var envelopes []models.Envelope
	err := models.DB.Find(&envelopes).Error

	suite.Assert().ErrorIs(err, models.ErrGeneral)

	// Restore a working connection for the teardown
	suite.SetupTest()
}
