package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
	"github.com/sena-adso/catalogo-api/internal/domain"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
)

func seedUser(repo *fakeUserRepo, id, username, role string) *entity.User {
	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte("clave-segura-123"), bcrypt.MinCost)
	u := &entity.User{
		ID: id, Username: username, Email: username + "@sena.edu.co",
		PasswordHash: string(hash), Role: role, Active: true,
		CreatedAt: now, UpdatedAt: now,
	}
	repo.users[id] = u
	return u
}

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	return usecase.NewUserUseCase(users), users
}

func TestUserList_AuxiliarSoloVeSuRegistro(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	out, err := uc.List(entity.RoleAuxiliar, "u-aux", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "u-aux", out[0].ID)
}

func TestUserList_CoordinadorVeTodos(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)
	seedUser(users, "u-coord", "coord1", entity.RoleCoordinador)
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	out, err := uc.List(entity.RoleCoordinador, "u-coord", false)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestUserList_ExcluyeInactivosPorDefecto(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-1", "activo", entity.RoleAuxiliar)
	inactive := seedUser(users, "u-2", "inactivo", entity.RoleAuxiliar)
	inactive.Active = false

	out, err := uc.List(entity.RoleAdmin, "u-admin", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "u-1", out[0].ID)
}

func TestUserGetByID_AuxiliarNoVeOtros(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)
	seedUser(users, "u-otro", "aux2", entity.RoleAuxiliar)

	_, err := uc.GetByID(entity.RoleAuxiliar, "u-aux", "u-otro")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetByID(entity.RoleAuxiliar, "u-aux", "u-aux")
	require.NoError(t, err)
	assert.Equal(t, "u-aux", out.ID)
}

func TestUserGetByID_CoordinadorNoVeAdmins(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)
	seedUser(users, "u-coord", "coord1", entity.RoleCoordinador)

	_, err := uc.GetByID(entity.RoleCoordinador, "u-coord", "u-admin")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// La existencia se comprueba antes que los permisos: un objetivo inexistente
// devuelve 404 lógico aunque el llamador tampoco tuviera acceso.
func TestUserGetByID_InexistenteAntesQuePermisos(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	_, err := uc.GetByID(entity.RoleAuxiliar, "u-aux", "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUpdate_AuxiliarSoloASiMismo(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)
	seedUser(users, "u-otro", "aux2", entity.RoleAuxiliar)

	username := "nuevo"
	_, err := uc.Update(entity.RoleAuxiliar, "u-aux", "u-otro", dto.UpdateUserRequest{Username: &username})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_AuxiliarNoCambiaRol(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	role := entity.RoleAdmin
	_, err := uc.Update(entity.RoleAuxiliar, "u-aux", "u-aux", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_AdminCambiaRol(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	role := entity.RoleCoordinador
	out, err := uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCoordinador, out.Role)
}

func TestUserUpdate_RolInvalido(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	role := "gerente"
	_, err := uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserUpdate_UsernameTomado(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	taken := "admin1"
	_, err := uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserUpdate_EmailInvalido(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	bad := "sin-arroba"
	_, err := uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Email: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// El hash solo se regenera si el password realmente cambió: re-enviar el
// mismo password deja el hash intacto.
func TestUserUpdate_PasswordSoloSeRehasheaSiCambia(t *testing.T) {
	uc, users := newUserUC()
	u := seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)
	originalHash := u.PasswordHash

	same := "clave-segura-123"
	_, err := uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Password: &same})
	require.NoError(t, err)
	assert.Equal(t, originalHash, users.users["u-aux"].PasswordHash, "mismo password no debe re-hashearse")

	changed := "otra-clave-segura"
	_, err = uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Password: &changed})
	require.NoError(t, err)
	newHash := users.users["u-aux"].PasswordHash
	assert.NotEqual(t, originalHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(changed)))
}

func TestUserUpdate_PasswordCorto(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	short := "corta"
	_, err := uc.Update(entity.RoleAdmin, "u-admin", "u-aux", dto.UpdateUserRequest{Password: &short})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserDelete_AdminSoloPorAdmin(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-admin", "admin1", entity.RoleAdmin)

	_, err := uc.Delete(entity.RoleCoordinador, "u-admin", true)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un coordinador no puede eliminar a un admin")

	out, err := uc.Delete(entity.RoleAdmin, "u-admin", true)
	require.NoError(t, err)
	assert.True(t, out.Hard)
	assert.Nil(t, users.users["u-admin"])
}

func TestUserDelete_SoftDesactiva(t *testing.T) {
	uc, users := newUserUC()
	seedUser(users, "u-aux", "aux1", entity.RoleAuxiliar)

	out, err := uc.Delete(entity.RoleAdmin, "u-aux", false)
	require.NoError(t, err)

	assert.False(t, out.Hard)
	assert.False(t, out.User.Active)
	require.NotNil(t, users.users["u-aux"], "soft delete conserva la fila")
	assert.False(t, users.users["u-aux"].Active)
}

func TestUserDelete_NoExiste(t *testing.T) {
	uc, _ := newUserUC()

	_, err := uc.Delete(entity.RoleAdmin, "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
