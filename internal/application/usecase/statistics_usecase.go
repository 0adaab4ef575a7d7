package usecase

import (
	"sync"

	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/domain/repository"
)

// StatisticsUseCase totales por colección para el dashboard.
type StatisticsUseCase struct {
	users         repository.UserRepository
	products      repository.ProductRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewStatisticsUseCase construye el caso de uso con los cuatro puertos.
func NewStatisticsUseCase(users repository.UserRepository, products repository.ProductRepository, categories repository.CategoryRepository, subcategories repository.SubcategoryRepository) *StatisticsUseCase {
	return &StatisticsUseCase{users: users, products: products, categories: categories, subcategories: subcategories}
}

// Get ejecuta los cuatro conteos en paralelo y devuelve el primero de los
// errores si alguno falla.
func (uc *StatisticsUseCase) Get() (*dto.StatisticsResponse, error) {
	var out dto.StatisticsResponse
	var errs [4]error
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		out.TotalUsers, errs[0] = uc.users.Count()
	}()
	go func() {
		defer wg.Done()
		out.TotalProducts, errs[1] = uc.products.Count()
	}()
	go func() {
		defer wg.Done()
		out.TotalCategories, errs[2] = uc.categories.Count()
	}()
	go func() {
		defer wg.Done()
		out.TotalSubcategories, errs[3] = uc.subcategories.Count()
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &out, nil
}
