package models_test

import (
	"time"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetRevisionAppendOnly() {
	project := suite.createTestProject(models.Project{TotalValue: decimal.NewFromInt(1000)})

	revision := models.BudgetRevision{
		ProjectID:     project.ID,
		PreviousValue: decimal.NewFromInt(1000),
		NewValue:      decimal.NewFromInt(800),
		Reason:        " cliente reduziu escopo ",
		ChangedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*60*60)),
	}
	suite.Require().Nil(suite.db.Omit("Project").Create(&revision).Error)

	var stored models.BudgetRevision
	suite.Require().Nil(suite.db.First(&stored, "id = ?", revision.ID).Error)
	suite.Assert().Equal("cliente reduziu escopo", stored.Reason)
	suite.Assert().Equal(time.UTC, stored.ChangedAt.Location())
	suite.Assert().True(time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC).Equal(stored.ChangedAt))

	err := suite.db.Model(&stored).Update("reason", "outro motivo").Error
	suite.Assert().ErrorIs(err, models.ErrRevisionImmutable)

	err = suite.db.Delete(&stored).Error
	suite.Assert().ErrorIs(err, models.ErrRevisionImmutable)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.BudgetRevision{}).Where("reason = ?", "cliente reduziu escopo").Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
