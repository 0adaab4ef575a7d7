package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
	"github.com/sena-adso/catalogo-api/internal/domain"
)

func newSubcategoryUC() (*usecase.SubcategoryUseCase, *fakeCategoryRepo, *fakeSubcategoryRepo, *fakeProductRepo) {
	categories := newFakeCategoryRepo()
	subcategories := newFakeSubcategoryRepo()
	products := newFakeProductRepo()
	return usecase.NewSubcategoryUseCase(subcategories, categories, products), categories, subcategories, products
}

func TestSubcategoryCreate_OK(t *testing.T) {
	uc, categories, _, _ := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")

	out, err := uc.Create(dto.CreateSubcategoryRequest{Name: "Audio", Description: "Parlantes y más", Category: "cat-1"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Audio", out.Name)
	assert.Equal(t, "cat-1", out.Category.ID)
	assert.Equal(t, "Electrónica", out.Category.Name, "el padre debe expandirse a {id, name}")
	assert.True(t, out.Active)
}

func TestSubcategoryCreate_PadreNoExiste(t *testing.T) {
	uc, _, _, _ := newSubcategoryUC()

	_, err := uc.Create(dto.CreateSubcategoryRequest{Name: "Audio", Description: "x", Category: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestSubcategoryCreate_NombreDuplicado(t *testing.T) {
	uc, categories, subcategories, _ := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")
	seedCategory(categories, "cat-2", "Hogar")
	seedSubcategory(subcategories, "sub-1", "Audio", "cat-1")

	// La unicidad del nombre es global a la colección, no por categoría
	_, err := uc.Create(dto.CreateSubcategoryRequest{Name: "Audio", Description: "x", Category: "cat-2"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestSubcategoryUpdate_CambioDePadre(t *testing.T) {
	uc, categories, subcategories, _ := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")
	seedCategory(categories, "cat-2", "Hogar")
	seedSubcategory(subcategories, "sub-1", "Audio", "cat-1")

	newParent := "cat-2"
	out, err := uc.Update("sub-1", dto.UpdateSubcategoryRequest{Category: &newParent})
	require.NoError(t, err)

	assert.Equal(t, "cat-2", out.Category.ID)
	assert.Equal(t, "Hogar", out.Category.Name)
}

func TestSubcategoryUpdate_PadreNuevoNoExiste(t *testing.T) {
	uc, categories, subcategories, _ := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")
	seedSubcategory(subcategories, "sub-1", "Audio", "cat-1")

	newParent := "no-existe"
	_, err := uc.Update("sub-1", dto.UpdateSubcategoryRequest{Category: &newParent})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestSubcategoryUpdate_NoExiste(t *testing.T) {
	uc, _, _, _ := newSubcategoryUC()

	name := "x"
	out, err := uc.Update("no-existe", dto.UpdateSubcategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSubcategoryDelete_SoftDesactivaProductos(t *testing.T) {
	uc, categories, subcategories, products := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")
	seedSubcategory(subcategories, "sub-1", "Audio", "cat-1")
	seedProduct(products, "prod-1", "Parlante", "cat-1", "sub-1")
	seedProduct(products, "prod-2", "Micrófono", "cat-1", "sub-1")
	seedProduct(products, "prod-3", "Televisor", "cat-1", "sub-2")

	out, err := uc.Delete("sub-1", false)
	require.NoError(t, err)

	assert.False(t, out.Hard)
	assert.Equal(t, int64(2), out.Products)
	assert.False(t, subcategories.items["sub-1"].Active)
	assert.False(t, products.items["prod-1"].Active)
	assert.False(t, products.items["prod-2"].Active)
	assert.True(t, products.items["prod-3"].Active, "productos de otra subcategoría no se tocan")
}

// Repetir la desactivación solo cuenta filas realmente modificadas: la
// segunda pasada sobre productos ya inactivos reporta cero.
func TestSubcategoryDelete_SoftIdempotente(t *testing.T) {
	uc, categories, subcategories, products := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")
	seedSubcategory(subcategories, "sub-1", "Audio", "cat-1")
	seedProduct(products, "prod-1", "Parlante", "cat-1", "sub-1")

	first, err := uc.Delete("sub-1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Products)

	second, err := uc.Delete("sub-1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Products, "segunda pasada no encuentra filas activas")
}

func TestSubcategoryDelete_HardEliminaProductos(t *testing.T) {
	uc, categories, subcategories, products := newSubcategoryUC()
	seedCategory(categories, "cat-1", "Electrónica")
	seedSubcategory(subcategories, "sub-1", "Audio", "cat-1")
	seedProduct(products, "prod-1", "Parlante", "cat-1", "sub-1")

	out, err := uc.Delete("sub-1", true)
	require.NoError(t, err)

	assert.True(t, out.Hard)
	assert.Equal(t, int64(1), out.Products)
	assert.Nil(t, subcategories.items["sub-1"])
	assert.Nil(t, products.items["prod-1"])
}

func TestSubcategoryDelete_NoExiste(t *testing.T) {
	uc, _, _, _ := newSubcategoryUC()

	_, err := uc.Delete("no-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
