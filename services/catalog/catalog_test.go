package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

type memServiceRepo struct {
	services map[string]models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]models.Service)}
}

func (m *memServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return &svc, nil
}

func (m *memServiceRepo) ListByBusiness(businessID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range m.services {
		if svc.BusinessID == businessID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Create(svc *models.Service) error {
	m.services[svc.ID] = *svc
	return nil
}

func (m *memServiceRepo) UpdateWithDocument(id string, doc bson.M) error {
	svc, ok := m.services[id]
	if !ok {
		return fmt.Errorf("service with id %s not found", id)
	}
	if active, ok := doc["active"].(bool); ok {
		svc.Active = active
	}
	if name, ok := doc["name"].(string); ok {
		svc.Name = name
	}
	m.services[id] = svc
	return nil
}

func (m *memServiceRepo) Delete(id string) error {
	delete(m.services, id)
	return nil
}

func TestCreateValidatesInput(t *testing.T) {
	svc := NewCatalogService(newMemServiceRepo())

	_, err := svc.Create("biz-1", ServiceInput{Name: "", Price: 10, Duration: 30})
	assert.Error(t, err)

	_, err = svc.Create("biz-1", ServiceInput{Name: "Haircut", Price: -1, Duration: 30})
	assert.Error(t, err)

	_, err = svc.Create("biz-1", ServiceInput{Name: "Haircut", Price: 80, Duration: 0})
	assert.Error(t, err)

	created, err := svc.Create("biz-1", ServiceInput{Name: "Haircut", Price: 80, Duration: 30})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.NotEmpty(t, created.ID)
}

func TestListActiveFiltersToggledServices(t *testing.T) {
	repo := newMemServiceRepo()
	svc := NewCatalogService(repo)

	a, err := svc.Create("biz-1", ServiceInput{Name: "Haircut", Price: 80, Duration: 30})
	require.NoError(t, err)
	_, err = svc.Create("biz-1", ServiceInput{Name: "Coloring", Price: 220, Duration: 90})
	require.NoError(t, err)

	require.NoError(t, svc.SetActive("biz-1", a.ID, false))

	active, err := svc.ListActive("biz-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Coloring", active[0].Name)

	all, err := svc.List("biz-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOwnershipScoping(t *testing.T) {
	svc := NewCatalogService(newMemServiceRepo())

	created, err := svc.Create("biz-1", ServiceInput{Name: "Haircut", Price: 80, Duration: 30})
	require.NoError(t, err)

	_, err = svc.Get("biz-2", created.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	err = svc.Delete("biz-2", created.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, err = svc.Update("biz-2", created.ID, ServiceInput{Name: "Trim", Price: 50, Duration: 30})
	assert.ErrorIs(t, err, ErrNotOwned)
}
