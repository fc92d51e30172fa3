package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Category)
	return list, args.Error(1)
}

func (m *mockCategoryRepo) SaveAndFlush(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductCounter struct {
	mock.Mock
}

func (m *mockProductCounter) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func newManager() (*usecase.CategoryManager, *mockCategoryRepo, *mockProductCounter) {
	repo := &mockCategoryRepo{}
	products := &mockProductCounter{}
	return usecase.NewCategoryManager(repo, products, nil), repo, products
}

// echoSave devuelve la categoría recibida con ID asignado, como haría el store.
func echoSave(id string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		c := args.Get(1).(*entity.Category)
		if c.ID == "" {
			c.ID = id
		}
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var httpErr domain.HTTPError
	require.True(t, errors.As(err, &httpErr), "el error debe exponer un código HTTP: %v", err)
	return httpErr.StatusCode()
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinPadreEsRaiz(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	input := &entity.Category{Name: "Electrónica"}
	repo.On("SaveAndFlush", ctx, input).Run(echoSave("c-1")).Return(input, nil).Once()

	created, err := m.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "c-1", created.ID)
	assert.Nil(t, created.Parent)
	assert.Empty(t, created.ParentID)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreate_IgnoraIDDelLlamador(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	input := &entity.Category{ID: "existente", Name: "Audio"}
	repo.On("SaveAndFlush", ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.ID == "" })).
		Run(echoSave("nuevo")).Return(input, nil).Once()

	created, err := m.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "nuevo", created.ID)
	repo.AssertExpectations(t)
}

func TestCreate_PadreInexistenteNoEscribe(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	repo.On("FindByID", ctx, "fantasma").Return(nil, nil).Once()

	_, err := m.Create(ctx, &entity.Category{Name: "Audio", ParentID: "fantasma"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	repo.AssertNotCalled(t, "SaveAndFlush", mock.Anything, mock.Anything)
}

func TestCreate_ConPadreValidoLoAdjunta(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	parent := &entity.Category{ID: "p-1", Name: "Electrónica"}
	repo.On("FindByID", ctx, "p-1").Return(parent, nil).Once()
	repo.On("SaveAndFlush", ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Parent == parent
	})).Run(echoSave("c-2")).Return(&entity.Category{ID: "c-2", Name: "Audio", ParentID: "p-1", Parent: parent}, nil).Once()

	created, err := m.Create(ctx, &entity.Category{Name: "Audio", ParentID: "p-1"})

	require.NoError(t, err)
	require.NotNil(t, created.Parent)
	assert.Equal(t, "p-1", created.Parent.ID)
	repo.AssertExpectations(t)
}

func TestCreate_ErrorDelStoreSePropaga(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	storeErr := errors.New("conexión perdida")
	repo.On("SaveAndFlush", ctx, mock.Anything).Return(nil, storeErr).Once()

	_, err := m.Create(ctx, &entity.Category{Name: "Audio"})

	assert.Same(t, storeErr, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Read / ReadAll
// ──────────────────────────────────────────────────────────────────────────────

func TestRead_Encontrada(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	parent := &entity.Category{ID: "p-1", Name: "Electrónica"}
	withParent := &entity.Category{ID: "c-1", Name: "Audio", ParentID: "p-1", Parent: parent}
	root := &entity.Category{ID: "p-1", Name: "Electrónica"}
	repo.On("FindByID", ctx, "c-1").Return(withParent, nil)
	repo.On("FindByID", ctx, "p-1").Return(root, nil)

	got, err := m.Read(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", got.Parent.ID)

	got, err = m.Read(ctx, "p-1")
	require.NoError(t, err)
	assert.Nil(t, got.Parent)
}

func TestRead_NoEncontrada(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	repo.On("FindByID", ctx, "x").Return(nil, nil)

	_, err := m.Read(ctx, "x")

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestRead_EsIdempotente(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	stored := &entity.Category{ID: "c-1", Name: "Audio"}
	repo.On("FindByID", ctx, "c-1").Return(stored, nil)

	first, err := m.Read(ctx, "c-1")
	require.NoError(t, err)
	second, err := m.Read(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNotCalled(t, "SaveAndFlush", mock.Anything, mock.Anything)
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("devuelve todas", func(t *testing.T) {
		m, repo, _ := newManager()
		list := []*entity.Category{{ID: "a"}, {ID: "b"}}
		repo.On("FindAll", ctx).Return(list, nil)

		got, err := m.ReadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("vacío es no encontrado", func(t *testing.T) {
		m, repo, _ := newManager()
		repo.On("FindAll", ctx).Return([]*entity.Category{}, nil)

		_, err := m.ReadAll(ctx)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_IDInexistenteAntesQuePadre(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	repo.On("Exists", ctx, "x").Return(false, nil).Once()

	_, err := m.Update(ctx, &entity.Category{ID: "x", Name: "Audio", ParentID: "fantasma"})

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveAndFlush", mock.Anything, mock.Anything)
}

func TestUpdate_SinPadreQuedaRaiz(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	repo.On("Exists", ctx, "c-1").Return(true, nil).Once()
	repo.On("SaveAndFlush", ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Parent == nil && c.ParentID == ""
	})).Return(&entity.Category{ID: "c-1", Name: "Audio"}, nil).Once()

	updated, err := m.Update(ctx, &entity.Category{ID: "c-1", Name: "Audio"})

	require.NoError(t, err)
	assert.True(t, updated.IsRoot())
	repo.AssertExpectations(t)
}

func TestUpdate_PadreInexistente(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	repo.On("Exists", ctx, "c-1").Return(true, nil).Once()
	repo.On("FindByID", ctx, "fantasma").Return(nil, nil).Once()

	_, err := m.Update(ctx, &entity.Category{ID: "c-1", Name: "Audio", ParentID: "fantasma"})

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	repo.AssertNotCalled(t, "SaveAndFlush", mock.Anything, mock.Anything)
}

func TestUpdate_PadreValido(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	parent := &entity.Category{ID: "p-1", Name: "Electrónica"}
	repo.On("Exists", ctx, "c-1").Return(true, nil).Once()
	repo.On("FindByID", ctx, "p-1").Return(parent, nil).Once()
	repo.On("SaveAndFlush", ctx, mock.Anything).
		Return(&entity.Category{ID: "c-1", Name: "Audio", ParentID: "p-1", Parent: parent}, nil).Once()

	updated, err := m.Update(ctx, &entity.Category{ID: "c-1", Name: "Audio", ParentID: "p-1"})

	require.NoError(t, err)
	assert.Equal(t, "p-1", updated.Parent.ID)
	repo.AssertExpectations(t)
}

func TestUpdate_CicloEsConflicto(t *testing.T) {
	// A <- B <- C; mover A bajo C cerraría el ciclo.
	ctx := context.Background()
	m, repo, _ := newManager()
	a := &entity.Category{ID: "a", Name: "A"}
	b := &entity.Category{ID: "b", Name: "B", ParentID: "a"}
	c := &entity.Category{ID: "c", Name: "C", ParentID: "b"}
	repo.On("Exists", ctx, "a").Return(true, nil)
	repo.On("FindByID", ctx, "a").Return(a, nil)
	repo.On("FindByID", ctx, "b").Return(b, nil)
	repo.On("FindByID", ctx, "c").Return(c, nil)

	_, err := m.Update(ctx, &entity.Category{ID: "a", Name: "A", ParentID: "c"})

	assert.ErrorIs(t, err, domain.ErrCyclicHierarchyDetected)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	repo.AssertNotCalled(t, "SaveAndFlush", mock.Anything, mock.Anything)
}

func TestUpdate_PropioPadreEsConflicto(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	self := &entity.Category{ID: "a", Name: "A"}
	repo.On("Exists", ctx, "a").Return(true, nil)
	repo.On("FindByID", ctx, "a").Return(self, nil)

	_, err := m.Update(ctx, &entity.Category{ID: "a", Name: "A", ParentID: "a"})

	assert.ErrorIs(t, err, domain.ErrCyclicHierarchyDetected)
	repo.AssertNotCalled(t, "SaveAndFlush", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_NoEncontrada(t *testing.T) {
	ctx := context.Background()
	m, repo, products := newManager()
	repo.On("FindByID", ctx, "x").Return(nil, nil)

	err := m.Delete(ctx, "x")

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	products.AssertNotCalled(t, "CountByCategory", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_ConHijos(t *testing.T) {
	ctx := context.Background()
	m, repo, products := newManager()
	repo.On("FindByID", ctx, "a").Return(&entity.Category{
		ID: "a", Children: []*entity.Category{{ID: "b", ParentID: "a"}},
	}, nil)

	err := m.Delete(ctx, "a")

	assert.ErrorIs(t, err, domain.ErrCannotDeleteNonLeafNodes)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	products.AssertNotCalled(t, "CountByCategory", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_ConProductos(t *testing.T) {
	ctx := context.Background()
	m, repo, products := newManager()
	repo.On("FindByID", ctx, "a").Return(&entity.Category{ID: "a"}, nil)
	products.On("CountByCategory", ctx, "a").Return(int64(3), nil)

	err := m.Delete(ctx, "a")

	assert.ErrorIs(t, err, domain.ErrCannotDeleteCategoryAssignedToProducts)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_HojaSinProductos(t *testing.T) {
	ctx := context.Background()
	m, repo, products := newManager()
	repo.On("FindByID", ctx, "a").Return(&entity.Category{ID: "a"}, nil)
	products.On("CountByCategory", ctx, "a").Return(int64(0), nil)
	repo.On("Delete", ctx, "a").Return(nil).Once()

	require.NoError(t, m.Delete(ctx, "a"))
	repo.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ancestors
// ──────────────────────────────────────────────────────────────────────────────

func TestAncestors_RutaHastaLaRaiz(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newManager()
	a := &entity.Category{ID: "a", Name: "A"}
	b := &entity.Category{ID: "b", Name: "B", ParentID: "a"}
	c := &entity.Category{ID: "c", Name: "C", ParentID: "b"}
	repo.On("FindByID", ctx, "a").Return(a, nil)
	repo.On("FindByID", ctx, "b").Return(b, nil)
	repo.On("FindByID", ctx, "c").Return(c, nil)

	path, err := m.Ancestors(ctx, "c")

	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "b", path[0].ID)
	assert.Equal(t, "a", path[1].ID)
}
