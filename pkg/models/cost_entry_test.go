package models_test

import (
	"github.com/gessotrack/backend/internal/types"
	"github.com/gessotrack/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCostEntryBeforeSave() {
	project := suite.createTestProject(models.Project{})
	entry := suite.createTestCostEntry(models.CostEntry{
		ProjectID:   project.ID,
		Type:        models.CostTypeVehicle,
		Description: "  Frete  ",
		Amount:      decimal.RequireFromString("99.999"),
		Date:        types.NewDate(2025, 5, 6),
		Notes:       " ida e volta ",
	})

	var stored models.CostEntry
	suite.Require().Nil(suite.db.First(&stored, "id = ?", entry.ID).Error)

	suite.Assert().Equal("Frete", stored.Description)
	suite.Assert().Equal("ida e volta", stored.Notes)
	suite.Assert().True(decimal.NewFromInt(100).Equal(stored.Amount), stored.Amount.String())
	suite.Assert().Equal("2025-05-06", stored.Date.String())
	suite.Assert().Nil(stored.MaterialID)
	suite.Assert().False(stored.Quantity.Valid)
	suite.Assert().True(stored.Deducted().IsZero())
}

func (suite *TestSuiteStandard) TestCostEntryMaterialFields() {
	project := suite.createTestProject(models.Project{})
	material := suite.createTestMaterial(models.Material{Quantity: decimal.NewFromInt(5)})

	entry := suite.createTestCostEntry(models.CostEntry{
		ProjectID:                 project.ID,
		Type:                      models.CostTypeMaterial,
		MaterialID:                &material.ID,
		Quantity:                  decimal.NewNullDecimal(decimal.RequireFromString("7.5")),
		InventoryDeductedQuantity: decimal.NewNullDecimal(decimal.NewFromInt(5)),
	})

	var stored models.CostEntry
	suite.Require().Nil(suite.db.Preload("Material").First(&stored, "id = ?", entry.ID).Error)

	suite.Assert().True(stored.IsMaterial())
	suite.Require().NotNil(stored.MaterialID)
	suite.Assert().Equal(material.ID, *stored.MaterialID)
	suite.Require().NotNil(stored.Material)
	suite.Assert().Equal("Placa de gesso ST", stored.Material.Name)
	suite.Assert().True(decimal.RequireFromString("7.5").Equal(stored.Quantity.Decimal))
	suite.Assert().True(decimal.NewFromInt(5).Equal(stored.Deducted()))
}

func (suite *TestSuiteStandard) TestCostTypeValid() {
	for _, t := range models.CostTypes {
		suite.Assert().True(t.Valid(), t)
	}

	suite.Assert().False(models.CostType("TAX").Valid())
	suite.Assert().False(models.CostType("").Valid())
}
