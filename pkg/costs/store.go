// Package costs validates and stores the cost entries of projects.
package costs

import (
	"context"
	"strings"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/google/uuid"
)

// Repository is the persistence needed by the Store.
type Repository interface {
	GetProject(ctx context.Context, id uuid.UUID) (models.Project, error)
	CreateCostEntry(ctx context.Context, c *models.CostEntry) error
	GetCostEntry(ctx context.Context, id uuid.UUID) (models.CostEntry, error)
	SaveCostEntry(ctx context.Context, c *models.CostEntry) error
	DeleteCostEntry(ctx context.Context, id uuid.UUID) error
	ListCostEntries(ctx context.Context, projectID uuid.UUID, filter repository.CostEntryFilter) ([]models.CostEntry, error)
}

// Store manages cost entries.
type Store struct {
	repo Repository
}

func New(repo Repository) *Store {
	return &Store{repo: repo}
}

// Validate checks a cost entry without touching storage.
func Validate(entry models.CostEntry) error {
	if !entry.Amount.IsPositive() {
		return models.ErrCostAmountNotPositive
	}

	if strings.TrimSpace(entry.Description) == "" {
		return models.ErrCostDescriptionEmpty
	}

	if !entry.Type.Valid() {
		return models.ErrCostTypeInvalid
	}

	if entry.Date.IsZero() {
		return models.ErrCostDateMissing
	}

	if !entry.IsMaterial() {
		if entry.MaterialID != nil || entry.Quantity.Valid || entry.InventoryDeductedQuantity.Valid {
			return models.ErrCostMaterialFields
		}
		return nil
	}

	if entry.Quantity.Valid && entry.Quantity.Decimal.IsNegative() {
		return models.ErrQuantityNegative
	}

	if entry.InventoryDeductedQuantity.Valid {
		deducted := entry.InventoryDeductedQuantity.Decimal
		if deducted.IsNegative() {
			return models.ErrQuantityNegative
		}

		if !entry.Quantity.Valid || deducted.GreaterThan(entry.Quantity.Decimal) {
			return models.ErrCostDeductedExceeds
		}
	}

	return nil
}

// Add validates and persists a new cost entry.
func (s *Store) Add(ctx context.Context, entry models.CostEntry) (models.CostEntry, error) {
	if err := Validate(entry); err != nil {
		return models.CostEntry{}, err
	}

	if _, err := s.repo.GetProject(ctx, entry.ProjectID); err != nil {
		return models.CostEntry{}, err
	}

	if err := s.repo.CreateCostEntry(ctx, &entry); err != nil {
		return models.CostEntry{}, err
	}

	return entry, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (models.CostEntry, error) {
	return s.repo.GetCostEntry(ctx, id)
}

// Update replaces the editable fields of an existing cost entry.
//
// The project, the material and the deducted inventory quantity are fixed
// at creation. The type can change between LABOR and VEHICLE only.
func (s *Store) Update(ctx context.Context, entry models.CostEntry) (models.CostEntry, error) {
	existing, err := s.repo.GetCostEntry(ctx, entry.ID)
	if err != nil {
		return models.CostEntry{}, err
	}

	if err := Validate(entry); err != nil {
		return models.CostEntry{}, err
	}

	if existing.IsMaterial() != entry.IsMaterial() {
		return models.CostEntry{}, models.ErrCostMaterialTypeChange
	}

	if !immutableFieldsEqual(existing, entry) {
		return models.CostEntry{}, models.ErrCostImmutableField
	}

	if _, err := s.repo.GetProject(ctx, entry.ProjectID); err != nil {
		return models.CostEntry{}, err
	}

	if err := s.repo.SaveCostEntry(ctx, &entry); err != nil {
		return models.CostEntry{}, err
	}

	return s.repo.GetCostEntry(ctx, entry.ID)
}

func immutableFieldsEqual(a, b models.CostEntry) bool {
	if a.ProjectID != b.ProjectID {
		return false
	}

	if (a.MaterialID == nil) != (b.MaterialID == nil) || (a.MaterialID != nil && *a.MaterialID != *b.MaterialID) {
		return false
	}

	if a.InventoryDeductedQuantity.Valid != b.InventoryDeductedQuantity.Valid {
		return false
	}

	return !a.InventoryDeductedQuantity.Valid || a.InventoryDeductedQuantity.Decimal.Equal(b.InventoryDeductedQuantity.Decimal)
}

// Delete removes a cost entry. Deleting an entry twice returns ErrResourceNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCostEntry(ctx, id)
}

// ListByProject returns the matching cost entries of a project, newest first.
func (s *Store) ListByProject(ctx context.Context, projectID uuid.UUID, filter Filter) ([]models.CostEntry, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, models.ErrCostTypeInvalid
	}

	entries, err := s.repo.ListCostEntries(ctx, projectID, repository.CostEntryFilter{Type: filter.Type})
	if err != nil {
		return nil, err
	}

	if filter.Description == "" {
		return entries, nil
	}

	matched := make([]models.CostEntry, 0, len(entries))
	for _, e := range entries {
		if filter.matchDescription(e.Description) {
			matched = append(matched, e)
		}
	}

	return matched, nil
}
