package usecase_test

import (
	"sort"

	"github.com/sena-adso/catalogo-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Misma semántica que las
// implementaciones de postgres: Get* devuelve (nil, nil) cuando no hay fila y
// las cascadas devuelven filas afectadas.

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.items[id], nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(includeInactive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.items {
		if includeInactive || c.Active {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCategoryRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type fakeSubcategoryRepo struct {
	items map[string]*entity.Subcategory
}

func newFakeSubcategoryRepo() *fakeSubcategoryRepo {
	return &fakeSubcategoryRepo{items: map[string]*entity.Subcategory{}}
}

func (r *fakeSubcategoryRepo) Create(s *entity.Subcategory) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	return r.items[id], nil
}

func (r *fakeSubcategoryRepo) GetByName(name string) (*entity.Subcategory, error) {
	for _, s := range r.items {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubcategoryRepo) GetByIDAndCategory(id, categoryID string) (*entity.Subcategory, error) {
	s := r.items[id]
	if s == nil || s.CategoryID != categoryID {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSubcategoryRepo) Update(s *entity.Subcategory) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSubcategoryRepo) List(includeInactive bool) ([]*entity.Subcategory, error) {
	var out []*entity.Subcategory
	for _, s := range r.items {
		if includeInactive || s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) ListIDsByCategory(categoryID string) ([]string, error) {
	var ids []string
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			ids = append(ids, s.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeSubcategoryRepo) DeactivateByCategory(categoryID string) (int64, error) {
	var n int64
	for _, s := range r.items {
		if s.CategoryID == categoryID && s.Active {
			s.Active = false
			n++
		}
	}
	return n, nil
}

func (r *fakeSubcategoryRepo) DeleteByCategory(categoryID string) (int64, error) {
	var n int64
	for id, s := range r.items {
		if s.CategoryID == categoryID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeSubcategoryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeSubcategoryRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.items[id], nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(includeInactive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if includeInactive || p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchesCategoryOrSubs(p *entity.Product, categoryID string, subcategoryIDs []string) bool {
	if p.CategoryID == categoryID {
		return true
	}
	for _, id := range subcategoryIDs {
		if p.SubcategoryID == id {
			return true
		}
	}
	return false
}

func (r *fakeProductRepo) DeactivateByCategoryOrSubcategories(categoryID string, subcategoryIDs []string) (int64, error) {
	var n int64
	for _, p := range r.items {
		if matchesCategoryOrSubs(p, categoryID, subcategoryIDs) && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) DeleteByCategoryOrSubcategories(categoryID string, subcategoryIDs []string) (int64, error) {
	var n int64
	for id, p := range r.items {
		if matchesCategoryOrSubs(p, categoryID, subcategoryIDs) {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) DeactivateBySubcategory(subcategoryID string) (int64, error) {
	var n int64
	for _, p := range r.items {
		if p.SubcategoryID == subcategoryID && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) DeleteBySubcategory(subcategoryID string) (int64, error) {
	var n int64
	for id, p := range r.items {
		if p.SubcategoryID == subcategoryID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.items)), nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailOrUsername(email, username string) (*entity.User, error) {
	for _, u := range r.users {
		if (email != "" && u.Email == email) || (username != "" && u.Username == username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(includeInactive bool) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if includeInactive || u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}
