package models_test

import (
	"testing"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMaterialLowStock() {
	tests := []struct {
		quantity, min int64
		low           bool
	}{
		{10, 5, false},
		{5, 5, true},
		{0, 0, true},
		{1, 0, false},
	}

	for _, tt := range tests {
		m := models.Material{Quantity: decimal.NewFromInt(tt.quantity), MinQuantity: decimal.NewFromInt(tt.min)}
		suite.Assert().Equal(tt.low, m.LowStock(), "quantity %d, minimum %d", tt.quantity, tt.min)
	}
}

func (suite *TestSuiteStandard) TestMaterialValidate() {
	tests := []struct {
		name     string
		material models.Material
		err      error
	}{
		{"Valid", models.Material{Name: "Perfil F530", PriceCost: decimal.NewFromInt(12)}, nil},
		{"Empty name", models.Material{Name: " "}, models.ErrMaterialNameEmpty},
		{"Negative quantity", models.Material{Name: "Perfil", Quantity: decimal.NewFromInt(-1)}, models.ErrMaterialQuantityNegative},
		{"Negative minimum", models.Material{Name: "Perfil", MinQuantity: decimal.NewFromInt(-1)}, models.ErrMaterialQuantityNegative},
		{"Negative price", models.Material{Name: "Perfil", PriceCost: decimal.NewFromInt(-1)}, models.ErrUnitCostNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestMaterialBeforeSave() {
	m := suite.createTestMaterial(models.Material{Name: " Massa para junta ", Unit: " kg "})

	var stored models.Material
	suite.Require().Nil(suite.db.First(&stored, "id = ?", m.ID).Error)
	suite.Assert().Equal("Massa para junta", stored.Name)
	suite.Assert().Equal("kg", stored.Unit)
}
