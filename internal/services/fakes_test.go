package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"wematch_backend/internal/models"
	"wematch_backend/internal/query"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Репозитории в памяти. Аргумент db игнорируется (в тестах передается nil).
// Предикаты плана - SQL, поэтому фейки учитывают только владельца и страницу.

var clock = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func stamp(m *models.BaseModel) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	clock = clock.Add(time.Second)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = clock
	}
	m.UpdatedAt = clock
}

func paginate[T any](items []T, page query.Page) []T {
	start := page.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ---------------- users ----------------

type fakeUserRepo struct {
	users     map[string]*models.User
	failWith  error
	reference map[string]bool // id -> на пользователя есть ссылки
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, reference: map[string]bool{}}
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	stamp(&user.BaseModel)
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) List(db *gorm.DB, plan *query.Plan) ([]models.User, int64, error) {
	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, plan.Page), int64(len(all)), nil
}

func (r *fakeUserRepo) UpdateRole(db *gorm.DB, id string, role models.UserRole) error {
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Delete(db *gorm.DB, id string) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	if r.reference[id] {
		return repositories.ErrStillReferenced
	}
	delete(r.users, id)
	return nil
}

// ---------------- organizations ----------------

type fakeOrganizationRepo struct {
	orgs       map[string]*models.Organization
	opps       *fakeOpportunityRepo
	failCreate error
}

func newFakeOrganizationRepo(opps *fakeOpportunityRepo) *fakeOrganizationRepo {
	return &fakeOrganizationRepo{orgs: map[string]*models.Organization{}, opps: opps}
}

func (r *fakeOrganizationRepo) Create(db *gorm.DB, org *models.Organization) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, o := range r.orgs {
		if o.AccountID == org.AccountID {
			return repositories.ErrDuplicate
		}
	}
	stamp(&org.BaseModel)
	cp := *org
	r.orgs[org.ID] = &cp
	return nil
}

func (r *fakeOrganizationRepo) FindByID(db *gorm.DB, id string) (*models.Organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, repositories.ErrOrganizationNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrganizationRepo) FindByAccountID(db *gorm.DB, accountID string) (*models.Organization, error) {
	for _, o := range r.orgs {
		if o.AccountID == accountID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repositories.ErrOrganizationNotFound
}

func (r *fakeOrganizationRepo) List(db *gorm.DB, plan *query.Plan) ([]models.Organization, int64, error) {
	all := make([]models.Organization, 0, len(r.orgs))
	for _, o := range r.orgs {
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, plan.Page), int64(len(all)), nil
}

func (r *fakeOrganizationRepo) Update(db *gorm.DB, id, ownerID string, upd repositories.OrganizationUpdate) (*models.Organization, error) {
	o, ok := r.orgs[id]
	if !ok || (ownerID != "" && o.AccountID != ownerID) {
		return nil, repositories.ErrOrganizationNotFound
	}
	if upd.Name != nil {
		o.Name = *upd.Name
	}
	if upd.Description != nil {
		o.Description = *upd.Description
	}
	if upd.Website != nil {
		o.Website = *upd.Website
	}
	if upd.Location != nil {
		o.Location = *upd.Location
	}
	if upd.LogoURL != nil {
		o.LogoURL = *upd.LogoURL
	}
	stamp(&o.BaseModel)
	cp := *o
	return &cp, nil
}

func (r *fakeOrganizationRepo) Delete(db *gorm.DB, id string) error {
	if _, ok := r.orgs[id]; !ok {
		return repositories.ErrOrganizationNotFound
	}
	delete(r.orgs, id)
	return nil
}

func (r *fakeOrganizationRepo) CountOpportunities(db *gorm.DB, id string) (int64, error) {
	var n int64
	for _, o := range r.opps.opps {
		if o.OrganizationID != nil && *o.OrganizationID == id {
			n++
		}
	}
	return n, nil
}

// ---------------- skills ----------------

type fakeSkillRepo struct {
	skills     map[string]*models.Skill
	users      *fakeUserRepo
	failCreate error
}

func newFakeSkillRepo(users *fakeUserRepo) *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[string]*models.Skill{}, users: users}
}

func (r *fakeSkillRepo) visible(id, ownerID string) (*models.Skill, bool) {
	s, ok := r.skills[id]
	if !ok || (ownerID != "" && s.UserID != ownerID) {
		return nil, false
	}
	return s, true
}

func (r *fakeSkillRepo) Create(db *gorm.DB, skill *models.Skill) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	stamp(&skill.BaseModel)
	cp := *skill
	r.skills[skill.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) FindByID(db *gorm.DB, id, ownerID string) (*models.Skill, error) {
	s, ok := r.visible(id, ownerID)
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) ListByUser(db *gorm.DB, userID string) ([]models.Skill, error) {
	out := []models.Skill{}
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSkillRepo) Update(db *gorm.DB, id, ownerID string, upd repositories.SkillUpdate) (*models.Skill, error) {
	s, ok := r.visible(id, ownerID)
	if !ok {
		return nil, repositories.ErrSkillNotFound
	}
	if upd.SkillName != nil {
		s.SkillName = *upd.SkillName
	}
	if upd.Level != nil {
		s.Level = *upd.Level
	}
	stamp(&s.BaseModel)
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) Delete(db *gorm.DB, id, ownerID string) error {
	if _, ok := r.visible(id, ownerID); !ok {
		return repositories.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) SearchByName(db *gorm.DB, name string, limit int) ([]models.Skill, error) {
	out := []models.Skill{}
	for _, s := range r.skills {
		if strings.Contains(strings.ToLower(s.SkillName), strings.ToLower(name)) {
			cp := *s
			if u, err := r.users.FindByID(nil, s.UserID); err == nil {
				cp.User = u
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------------- opportunities ----------------

type fakeOpportunityRepo struct {
	opps       map[string]*models.Opportunity
	failCreate error
	lastOwner  repositories.Owner
	lastPlan   *query.Plan
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opps: map[string]*models.Opportunity{}}
}

func ownerMatches(o *models.Opportunity, owner repositories.Owner) bool {
	if owner.UserID != "" && (o.UserID == nil || *o.UserID != owner.UserID) {
		return false
	}
	if owner.OrganizationID != "" && (o.OrganizationID == nil || *o.OrganizationID != owner.OrganizationID) {
		return false
	}
	return true
}

func (r *fakeOpportunityRepo) Create(db *gorm.DB, opp *models.Opportunity) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	stamp(&opp.BaseModel)
	cp := *opp
	r.opps[opp.ID] = &cp
	return nil
}

func (r *fakeOpportunityRepo) FindByID(db *gorm.DB, id string, owner repositories.Owner) (*models.Opportunity, error) {
	o, ok := r.opps[id]
	if !ok || !ownerMatches(o, owner) {
		return nil, repositories.ErrOpportunityNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOpportunityRepo) List(db *gorm.DB, plan *query.Plan, owner repositories.Owner) ([]models.Opportunity, int64, error) {
	r.lastOwner, r.lastPlan = owner, plan
	all := []models.Opportunity{}
	for _, o := range r.opps {
		if ownerMatches(o, owner) {
			all = append(all, *o)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, plan.Page), int64(len(all)), nil
}

func (r *fakeOpportunityRepo) Update(db *gorm.DB, id string, owner repositories.Owner, upd repositories.OpportunityUpdate) (*models.Opportunity, error) {
	o, ok := r.opps[id]
	if !ok || !ownerMatches(o, owner) {
		return nil, repositories.ErrOpportunityNotFound
	}
	if upd.Title != nil {
		o.Title = *upd.Title
	}
	if upd.Description != nil {
		o.Description = *upd.Description
	}
	if upd.Category != nil {
		o.Category = *upd.Category
	}
	if upd.OpportunityType != nil {
		o.OpportunityType = *upd.OpportunityType
	}
	if upd.ExperienceLevel != nil {
		o.ExperienceLevel = *upd.ExperienceLevel
	}
	if upd.PaymentType != nil {
		o.PaymentType = *upd.PaymentType
	}
	if upd.Location != nil {
		o.Location = *upd.Location
	}
	if upd.ImageURL != nil {
		o.ImageURL = *upd.ImageURL
	}
	if upd.ImageKey != nil {
		o.ImageKey = *upd.ImageKey
	}
	stamp(&o.BaseModel)
	cp := *o
	return &cp, nil
}

func (r *fakeOpportunityRepo) Delete(db *gorm.DB, id string, owner repositories.Owner) error {
	o, ok := r.opps[id]
	if !ok || !ownerMatches(o, owner) {
		return repositories.ErrOpportunityNotFound
	}
	delete(r.opps, id)
	return nil
}

// ---------------- storage ----------------

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	failNew error
}

var _ storage.Storage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (s *memStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if s.failNew != nil {
		return s.failNew
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStorage) object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

func (s *memStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "/images/" + key, nil
}

func (s *memStorage) Name() string { return "memory" }

func (s *memStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

var errBoom = errors.New("boom")
