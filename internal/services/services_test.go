package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"testing"
	"time"

	"wematch_backend/internal/access"
	"wematch_backend/internal/auth"
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/services/dto"
	"wematch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	ctx      context.Context
	users    *fakeUserRepo
	orgs     *fakeOrganizationRepo
	skills   *fakeSkillRepo
	opps     *fakeOpportunityRepo
	storage  *memStorage
	tokens   *auth.TokenManager
	services *ServiceContainer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		ctx:     context.Background(),
		users:   newFakeUserRepo(),
		opps:    newFakeOpportunityRepo(),
		storage: newMemStorage(),
		tokens:  auth.NewTokenManager("test-secret", time.Hour),
	}
	env.orgs = newFakeOrganizationRepo(env.opps)
	env.skills = newFakeSkillRepo(env.users)

	images := NewImageService(env.storage, ImageConfig{
		MaxSize:      1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		Quality:      85,
		MaxDimension: 64,
		MaxPixels:    1_000_000,
	})
	env.services = &ServiceContainer{
		AuthService:         NewAuthService(env.users, env.tokens),
		UserService:         NewUserService(env.users),
		OrganizationService: NewOrganizationService(env.orgs),
		SkillService:        NewSkillService(env.skills),
		OpportunityService:  NewOpportunityService(env.opps, env.orgs, images),
		ImageService:        images,
	}
	return env
}

func principal(id string, role models.UserRole, scope access.Scope) access.Principal {
	return access.Principal{ID: id, Role: role, Scope: scope}
}

func requireAppError(t *testing.T, err error, status int) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "ожидалась AppError, получено %T: %v", err, err)
	require.Equal(t, status, appErr.HTTPCode, "неверный HTTP-код: %v", err)
	return appErr
}

func pngUpload(t *testing.T, w, h int) *dto.ImageUpload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return &dto.ImageUpload{Filename: "pic.png", ContentType: "image/png", Data: buf.Bytes()}
}

func sampleOpportunity(title string) *dto.CreateOpportunityRequest {
	return &dto.CreateOpportunityRequest{
		Title:           title,
		Description:     "Build things",
		Category:        models.CategoryTech,
		OpportunityType: models.OpportunityTypeJob,
		ExperienceLevel: models.ExperienceLevelJunior,
		PaymentType:     models.PaymentTypePaid,
		Location:        "Almaty",
	}
}

// =======================================================================
// Opportunities
// =======================================================================

func TestOpportunity_CreateThenGetReturnsPayloadAndServerFields(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)

	created, err := svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("Go developer"), nil)
	require.NoError(t, err)

	got, err := svc.Get(env.ctx, nil, owner, created.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
	assert.Equal(t, "Go developer", got.Title)
	assert.Equal(t, models.CategoryTech, got.Category)
	assert.Equal(t, models.PaymentTypePaid, got.PaymentType)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "user-1", *got.UserID)
	assert.Nil(t, got.OrganizationID, "владелец ровно один")
}

func TestOpportunity_ForeignRecordIsNotFoundUnderOwnerScope(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	alice := principal("alice", models.UserRoleOrganization, access.ScopeOwner)
	bob := principal("bob", models.UserRoleOrganization, access.ScopeOwner)
	admin := principal("root", models.UserRoleSuperAdmin, access.ScopeAdmin)

	created, err := svc.CreateByUser(env.ctx, nil, alice, sampleOpportunity("Alice's"), nil)
	require.NoError(t, err)

	_, err = svc.Get(env.ctx, nil, bob, created.ID)
	requireAppError(t, err, http.StatusNotFound)

	title := "Hijacked"
	_, err = svc.Update(env.ctx, nil, bob, created.ID, &dto.UpdateOpportunityRequest{Title: &title}, nil)
	requireAppError(t, err, http.StatusNotFound)

	err = svc.Delete(env.ctx, nil, bob, created.ID)
	requireAppError(t, err, http.StatusNotFound)

	got, err := svc.Get(env.ctx, nil, admin, created.ID)
	require.NoError(t, err, "админская область без ограничения владельцем")
	assert.Equal(t, "Alice's", got.Title)
}

func TestOpportunity_SecondDeleteIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)

	created, err := svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("Once"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(env.ctx, nil, owner, created.ID))
	err = svc.Delete(env.ctx, nil, owner, created.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestOpportunity_CreateForOrganization(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	admin := principal("root", models.UserRoleSuperAdmin, access.ScopeAdmin)

	// Организации у аккаунта еще нет
	_, err := svc.CreateForOrganization(env.ctx, nil, admin, sampleOpportunity("No org"), nil)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "organization", appErr.Domain)

	org, err := env.services.OrganizationService.Create(env.ctx, nil, admin, &dto.CreateOrganizationRequest{Name: "WeMatch"})
	require.NoError(t, err)

	created, err := svc.CreateForOrganization(env.ctx, nil, admin, sampleOpportunity("Org job"), nil)
	require.NoError(t, err)
	require.NotNil(t, created.OrganizationID)
	assert.Equal(t, org.ID, *created.OrganizationID)
	assert.Nil(t, created.UserID)

	result, err := svc.ListForOrganization(env.ctx, nil, admin, query.Page{Page: 1, Limit: 10}, query.OpportunityFilter{OrganizationID: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, env.opps.lastPlan.Predicates(), "organizationId принудительно равен организации вызывающего")
}

func TestOpportunity_ListByUserPaginates(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)
	other := principal("user-2", models.UserRoleOrganization, access.ScopeOwner)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("mine"), nil)
		require.NoError(t, err)
	}
	_, err := svc.CreateByUser(env.ctx, nil, other, sampleOpportunity("theirs"), nil)
	require.NoError(t, err)

	result, err := svc.ListByUser(env.ctx, nil, owner, query.Page{Page: 1, Limit: 2}, query.OpportunityFilter{})
	require.NoError(t, err)

	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasMore)
	for _, o := range result.Data {
		assert.Equal(t, "user-1", *o.UserID)
	}
}

func TestOpportunity_ListPublicRejectsInvalidFilter(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.OpportunityService.ListPublic(env.ctx, nil, query.Page{Page: 1, Limit: 10}, query.OpportunityFilter{Category: "SPORTS"})

	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Details, "category")
}

func TestOpportunity_ImageLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)

	created, err := svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("With image"), pngUpload(t, 200, 100))
	require.NoError(t, err)
	require.NotEmpty(t, created.ImageURL)
	assert.Regexp(t, `^/images/opportunities/[0-9a-f-]{36}\.png$`, created.ImageURL)
	assert.Equal(t, 1, env.storage.count())

	stored := env.opps.opps[created.ID]
	data, ok := env.storage.object(stored.ImageKey)
	require.True(t, ok)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width, "изображение уменьшено до MaxDimension")
	assert.Equal(t, 32, cfg.Height)

	oldKey := stored.ImageKey
	updated, err := svc.Update(env.ctx, nil, owner, created.ID, &dto.UpdateOpportunityRequest{}, pngUpload(t, 10, 10))
	require.NoError(t, err)
	assert.NotEqual(t, created.ImageURL, updated.ImageURL)

	_, exists := env.storage.object(oldKey)
	assert.False(t, exists, "старый объект удаляется после замены")
	assert.Equal(t, 1, env.storage.count())

	require.NoError(t, svc.Delete(env.ctx, nil, owner, created.ID))
	assert.Equal(t, 0, env.storage.count())
}

func TestOpportunity_ImageRejections(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OpportunityService
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)

	big := &dto.ImageUpload{ContentType: "image/png", Data: make([]byte, 1024*1024+1)}
	_, err := svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("big"), big)
	requireAppError(t, err, http.StatusRequestEntityTooLarge)

	text := &dto.ImageUpload{Data: []byte("plain text, not an image")}
	_, err = svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("text"), text)
	requireAppError(t, err, http.StatusUnsupportedMediaType)

	fake := &dto.ImageUpload{ContentType: "image/png", Data: []byte("not really png")}
	_, err = svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("fake"), fake)
	requireAppError(t, err, http.StatusUnsupportedMediaType)

	var huge bytes.Buffer
	require.NoError(t, png.Encode(&huge, image.NewGray(image.Rect(0, 0, 2000, 1000))))
	require.Less(t, huge.Len(), 1024*1024, "по байтам файл проходит лимит")
	wide := &dto.ImageUpload{ContentType: "image/png", Data: huge.Bytes()}
	_, err = svc.CreateByUser(env.ctx, nil, owner, sampleOpportunity("wide"), wide)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, apperrors.ErrImageTooLarge.Message, appErr.Message)

	assert.Empty(t, env.opps.opps, "строки не создаются при отклоненном файле")
	assert.Equal(t, 0, env.storage.count())
}

func TestOpportunity_FailedInsertRemovesStoredImage(t *testing.T) {
	env := newTestEnv(t)
	env.opps.failCreate = errBoom
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)

	_, err := env.services.OpportunityService.CreateByUser(env.ctx, nil, owner, sampleOpportunity("x"), pngUpload(t, 4, 4))

	requireAppError(t, err, http.StatusInternalServerError)
	assert.Equal(t, 0, env.storage.count())
}

func TestOpportunity_StorageFailure(t *testing.T) {
	env := newTestEnv(t)
	env.storage.failNew = errBoom
	owner := principal("user-1", models.UserRoleOrganization, access.ScopeOwner)

	_, err := env.services.OpportunityService.CreateByUser(env.ctx, nil, owner, sampleOpportunity("x"), pngUpload(t, 4, 4))

	appErr := requireAppError(t, err, http.StatusInternalServerError)
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)
	assert.Empty(t, env.opps.opps)
}

func TestOpportunity_PublicScopeIsReadOnly(t *testing.T) {
	env := newTestEnv(t)
	anon := access.Principal{Scope: access.ScopePublic}

	_, err := env.services.OpportunityService.CreateByUser(env.ctx, nil, anon, sampleOpportunity("x"), nil)
	requireAppError(t, err, http.StatusForbidden)

	err = env.services.OpportunityService.Delete(env.ctx, nil, anon, "any")
	requireAppError(t, err, http.StatusForbidden)
}

// =======================================================================
// Skills
// =======================================================================

func TestSkill_NonOwnerUpdateFailsAndSkillIsUnchanged(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.SkillService
	alice := principal("alice", models.UserRoleUser, access.ScopeOwner)
	bob := principal("bob", models.UserRoleUser, access.ScopeOwner)

	skill, err := svc.Create(env.ctx, nil, alice, &dto.CreateSkillRequest{SkillName: "Go", Level: "senior"})
	require.NoError(t, err)

	name := "Rust"
	_, err = svc.Update(env.ctx, nil, bob, skill.ID, &dto.UpdateSkillRequest{SkillName: &name})
	requireAppError(t, err, http.StatusNotFound)

	got, err := svc.Get(env.ctx, nil, alice, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.SkillName)
	assert.Equal(t, "senior", got.Level)
	assert.Equal(t, skill.UpdatedAt, got.UpdatedAt)
}

func TestSkill_CRUD(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.SkillService
	me := principal("me", models.UserRoleUser, access.ScopeOwner)

	first, err := svc.Create(env.ctx, nil, me, &dto.CreateSkillRequest{SkillName: "  Design "})
	require.NoError(t, err)
	assert.Equal(t, "Design", first.SkillName)
	_, err = svc.Create(env.ctx, nil, me, &dto.CreateSkillRequest{SkillName: "Marketing"})
	require.NoError(t, err)

	mine, err := svc.ListMine(env.ctx, nil, me)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	level := "expert"
	updated, err := svc.Update(env.ctx, nil, me, first.ID, &dto.UpdateSkillRequest{Level: &level})
	require.NoError(t, err)
	assert.Equal(t, "Design", updated.SkillName)
	assert.Equal(t, "expert", updated.Level)

	require.NoError(t, svc.Delete(env.ctx, nil, me, first.ID))
	requireAppError(t, svc.Delete(env.ctx, nil, me, first.ID), http.StatusNotFound)
}

func TestCreate_DeletedAccountIsNotFound(t *testing.T) {
	// Arrange: токен еще валиден, а аккаунт уже удален, вставка падает на FK
	env := newTestEnv(t)
	env.skills.failCreate = repositories.ErrStillReferenced
	env.orgs.failCreate = repositories.ErrStillReferenced
	env.opps.failCreate = repositories.ErrStillReferenced
	ghost := principal("deleted-user", models.UserRoleOrganization, access.ScopeOwner)

	// Act + Assert
	_, err := env.services.SkillService.Create(env.ctx, nil, ghost, &dto.CreateSkillRequest{SkillName: "Go"})
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "user", appErr.Domain)

	_, err = env.services.OrganizationService.Create(env.ctx, nil, ghost, &dto.CreateOrganizationRequest{Name: "Ghost Inc"})
	appErr = requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "user", appErr.Domain)

	_, err = env.services.OpportunityService.CreateByUser(env.ctx, nil, ghost, sampleOpportunity("Ghost"), pngUpload(t, 4, 4))
	appErr = requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "user", appErr.Domain)
	assert.Equal(t, 0, env.storage.count(), "файл удаляется, если строка не записалась")
}

func TestSkill_SearchUsersBySkill(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.services.AuthService.Register(env.ctx, nil, &dto.RegisterRequest{
		Email: "dev@example.com", Password: "password123", FirstName: "Dev", LastName: "One", Role: models.UserRoleUser,
	})
	require.NoError(t, err)
	me := principal(user.ID, models.UserRoleUser, access.ScopeOwner)
	_, err = env.services.SkillService.Create(env.ctx, nil, me, &dto.CreateSkillRequest{SkillName: "Golang"})
	require.NoError(t, err)

	matches, err := env.services.SkillService.SearchUsersBySkill(env.ctx, nil, "go")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "dev@example.com", matches[0].User.Email)
	assert.Equal(t, "Golang", matches[0].Skill.SkillName)

	_, err = env.services.SkillService.SearchUsersBySkill(env.ctx, nil, "   ")
	requireAppError(t, err, http.StatusBadRequest)
}

// =======================================================================
// Organizations
// =======================================================================

func TestOrganization_OnePerAccount(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OrganizationService
	acct := principal("acct", models.UserRoleOrganization, access.ScopeOwner)

	_, err := svc.Create(env.ctx, nil, acct, &dto.CreateOrganizationRequest{Name: "First"})
	require.NoError(t, err)

	_, err = svc.Create(env.ctx, nil, acct, &dto.CreateOrganizationRequest{Name: "Second"})
	requireAppError(t, err, http.StatusConflict)
}

func TestOrganization_UpdateScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.OrganizationService
	acct := principal("acct", models.UserRoleOrganization, access.ScopeOwner)
	stranger := principal("stranger", models.UserRoleOrganization, access.ScopeOwner)
	admin := principal("root", models.UserRoleSuperAdmin, access.ScopeAdmin)

	org, err := svc.Create(env.ctx, nil, acct, &dto.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	name := "Evil"
	_, err = svc.Update(env.ctx, nil, stranger, org.ID, &dto.UpdateOrganizationRequest{Name: &name})
	requireAppError(t, err, http.StatusNotFound)

	name = "Acme Inc"
	updated, err := svc.Update(env.ctx, nil, admin, org.ID, &dto.UpdateOrganizationRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", updated.Name)
	assert.Equal(t, "acct", updated.AccountID, "владелец не меняется")
}

func TestOrganization_DeleteRefusesWhenReferenced(t *testing.T) {
	env := newTestEnv(t)
	acct := principal("acct", models.UserRoleSuperAdmin, access.ScopeAdmin)

	org, err := env.services.OrganizationService.Create(env.ctx, nil, acct, &dto.CreateOrganizationRequest{Name: "Busy"})
	require.NoError(t, err)
	_, err = env.services.OpportunityService.CreateForOrganization(env.ctx, nil, acct, sampleOpportunity("job"), nil)
	require.NoError(t, err)

	err = env.services.OrganizationService.Delete(env.ctx, nil, org.ID)
	requireAppError(t, err, http.StatusConflict)

	_, err = env.services.OrganizationService.Get(env.ctx, nil, org.ID)
	require.NoError(t, err, "организация не удалена")

	requireAppError(t, env.services.OrganizationService.Delete(env.ctx, nil, "missing"), http.StatusNotFound)
}

// =======================================================================
// Auth & users
// =======================================================================

func registerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.UserRoleUser,
	}
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.AuthService

	user, err := svc.Register(env.ctx, nil, registerRequest(" Ada@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "password123", env.users.users[user.ID].PasswordHash)

	resp, err := svc.Login(env.ctx, nil, &dto.LoginRequest{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := env.tokens.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, models.UserRoleUser, claims.Role)
}

func TestAuth_Failures(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.AuthService

	_, err := svc.Register(env.ctx, nil, registerRequest("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(env.ctx, nil, registerRequest("DUP@example.com"))
	requireAppError(t, err, http.StatusConflict)

	adminReq := registerRequest("admin@example.com")
	adminReq.Role = models.UserRoleSuperAdmin
	_, err = svc.Register(env.ctx, nil, adminReq)
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.Login(env.ctx, nil, &dto.LoginRequest{Email: "dup@example.com", Password: "wrong-password"})
	appErr := requireAppError(t, err, http.StatusUnauthorized)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	_, err = svc.Login(env.ctx, nil, &dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	requireAppError(t, err, http.StatusUnauthorized)

	_, err = svc.Me(env.ctx, nil, access.Principal{})
	requireAppError(t, err, http.StatusUnauthorized)
}

func TestAuth_DuplicateRaceMapsToConflict(t *testing.T) {
	env := newTestEnv(t)
	// Проверка FindByEmail прошла, но параллельная регистрация успела раньше
	env.users.failWith = repositories.ErrDuplicate

	_, err := env.services.AuthService.Register(env.ctx, nil, registerRequest("x@example.com"))
	requireAppError(t, err, http.StatusConflict)

	env.users.failWith = errBoom
	_, err = env.services.AuthService.Register(env.ctx, nil, registerRequest("y@example.com"))
	requireAppError(t, err, http.StatusInternalServerError)
}

func TestUsers_AdminCannotModifySelf(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.UserService

	created, err := svc.EnsureAdmin(env.ctx, nil, "root@example.com", "supersecret", "Root", "Admin")
	require.NoError(t, err)
	assert.True(t, created)

	again, err := svc.EnsureAdmin(env.ctx, nil, "ROOT@example.com", "supersecret", "Root", "Admin")
	require.NoError(t, err)
	assert.False(t, again, "повторный сидинг ничего не создает")

	root, err := env.users.FindByEmail(nil, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleSuperAdmin, root.Role)
	admin := principal(root.ID, models.UserRoleSuperAdmin, access.ScopeAdmin)

	_, err = svc.UpdateRole(env.ctx, nil, admin, root.ID, models.UserRoleUser)
	requireAppError(t, err, http.StatusForbidden)

	err = svc.Delete(env.ctx, nil, admin, root.ID)
	requireAppError(t, err, http.StatusForbidden)
}

func TestUsers_AdminOperations(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.UserService
	admin := principal("root", models.UserRoleSuperAdmin, access.ScopeAdmin)

	user, err := env.services.AuthService.Register(env.ctx, nil, registerRequest("u@example.com"))
	require.NoError(t, err)

	updated, err := svc.UpdateRole(env.ctx, nil, admin, user.ID, models.UserRoleOrganization)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleOrganization, updated.Role)

	list, err := svc.List(env.ctx, nil, query.Page{Page: 1, Limit: 10}, query.UserFilter{Role: "ORGANIZATION"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	_, err = svc.List(env.ctx, nil, query.Page{Page: 1, Limit: 10}, query.UserFilter{Role: "GOD"})
	requireAppError(t, err, http.StatusBadRequest)

	env.users.reference[user.ID] = true
	requireAppError(t, svc.Delete(env.ctx, nil, admin, user.ID), http.StatusConflict)

	env.users.reference[user.ID] = false
	require.NoError(t, svc.Delete(env.ctx, nil, admin, user.ID))
	requireAppError(t, svc.Delete(env.ctx, nil, admin, user.ID), http.StatusNotFound)
	_, err = svc.Get(env.ctx, nil, user.ID)
	requireAppError(t, err, http.StatusNotFound)
}
