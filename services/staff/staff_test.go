package staff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

type stubBusinessRepo struct {
	plan string
}

func (s *stubBusinessRepo) GetByID(id string) (*models.Business, error) {
	return &models.Business{ID: id, Plan: s.plan}, nil
}

func (s *stubBusinessRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Business, error) {
	return s.GetByID(id)
}

func (s *stubBusinessRepo) GetByEmail(email string) (*models.Business, error) { return nil, nil }
func (s *stubBusinessRepo) Create(b *models.Business) error                   { return nil }
func (s *stubBusinessRepo) UpdateWithDocument(id string, doc bson.M) error    { return nil }
func (s *stubBusinessRepo) Delete(id string) error                            { return nil }

type memProfessionalRepo struct {
	pros map[string]models.Professional
}

func newMemProfessionalRepo() *memProfessionalRepo {
	return &memProfessionalRepo{pros: make(map[string]models.Professional)}
}

func (m *memProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	pro, ok := m.pros[id]
	if !ok {
		return nil, fmt.Errorf("professional with id %s not found", id)
	}
	return &pro, nil
}

func (m *memProfessionalRepo) ListByBusiness(businessID string) ([]models.Professional, error) {
	var out []models.Professional
	for _, pro := range m.pros {
		if pro.BusinessID == businessID {
			out = append(out, pro)
		}
	}
	return out, nil
}

func (m *memProfessionalRepo) CountByBusiness(businessID string) (int, error) {
	pros, _ := m.ListByBusiness(businessID)
	return len(pros), nil
}

func (m *memProfessionalRepo) Create(pro *models.Professional) error {
	m.pros[pro.ID] = *pro
	return nil
}

func (m *memProfessionalRepo) UpdateWithDocument(id string, doc bson.M) error { return nil }

func (m *memProfessionalRepo) Delete(id string) error {
	delete(m.pros, id)
	return nil
}

func TestCreateEnforcesPlanCap(t *testing.T) {
	svc := NewStaffService(newMemProfessionalRepo(), &stubBusinessRepo{plan: "start"})

	// The start plan holds exactly one professional.
	_, err := svc.Create("biz-1", ProfessionalInput{Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.Create("biz-1", ProfessionalInput{Name: "Carlos"})
	assert.ErrorIs(t, err, ErrPlanLimitReached)
}

func TestCreateCapCountsInactiveProfiles(t *testing.T) {
	repo := newMemProfessionalRepo()
	svc := NewStaffService(repo, &stubBusinessRepo{plan: "start"})

	pro, err := svc.Create("biz-1", ProfessionalInput{Name: "Ana"})
	require.NoError(t, err)
	require.NoError(t, svc.SetActive("biz-1", pro.ID, false))

	_, err = svc.Create("biz-1", ProfessionalInput{Name: "Carlos"})
	assert.ErrorIs(t, err, ErrPlanLimitReached)
}

func TestDeleteFreesCapSlot(t *testing.T) {
	svc := NewStaffService(newMemProfessionalRepo(), &stubBusinessRepo{plan: "start"})

	pro, err := svc.Create("biz-1", ProfessionalInput{Name: "Ana"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete("biz-1", pro.ID))

	_, err = svc.Create("biz-1", ProfessionalInput{Name: "Carlos"})
	assert.NoError(t, err)
}

func TestProTierAllowsThree(t *testing.T) {
	svc := NewStaffService(newMemProfessionalRepo(), &stubBusinessRepo{plan: "pro"})

	for _, name := range []string{"Ana", "Carlos", "Marina"} {
		_, err := svc.Create("biz-1", ProfessionalInput{Name: name})
		require.NoError(t, err)
	}

	_, err := svc.Create("biz-1", ProfessionalInput{Name: "Rafael"})
	assert.ErrorIs(t, err, ErrPlanLimitReached)
}

func TestOwnershipScoping(t *testing.T) {
	repo := newMemProfessionalRepo()
	svc := NewStaffService(repo, &stubBusinessRepo{plan: "business"})

	pro, err := svc.Create("biz-1", ProfessionalInput{Name: "Ana"})
	require.NoError(t, err)

	err = svc.Delete("biz-2", pro.ID)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, err = svc.Update("biz-2", pro.ID, ProfessionalInput{Name: "Eve"})
	assert.ErrorIs(t, err, ErrNotOwned)
}
