package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"sportline_backend/internal/email"
	"sportline_backend/internal/models"
	"sportline_backend/internal/repositories"
)

// fakeUserRepo - потокобезопасное in-memory хранилище пользователей
// с тем же контрактом ошибок, что и gorm-реализация
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) clone(u *models.User) *models.User {
	cp := *u
	if u.ResetTokenExp != nil {
		exp := *u.ResetTokenExp
		cp.ResetTokenExp = &exp
	}
	return &cp
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return r.clone(u), nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return r.clone(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = r.clone(user)
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.PasswordHash = user.PasswordHash
	existing.Role = user.Role
	existing.FavoriteSportID = user.FavoriteSportID
	return nil
}

func (r *fakeUserRepo) UpdatePhoto(userID string, photo []byte, photoType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Photo = photo
	u.PhotoType = photoType
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *r.clone(u))
	}
	return out, nil
}

func (r *fakeUserRepo) SetResetToken(userID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ResetTokenHash = tokenHash
	u.ResetTokenExp = &expiresAt
	return nil
}

func (r *fakeUserRepo) ClearResetToken(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil
	}
	u.ResetTokenHash = ""
	u.ResetTokenExp = nil
	return nil
}

func (r *fakeUserRepo) FindByResetToken(tokenHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, u := range r.users {
		if u.ResetTokenHash != "" && u.ResetTokenHash == tokenHash &&
			u.ResetTokenExp != nil && u.ResetTokenExp.After(now) {
			return r.clone(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ResetPassword(userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetTokenHash = ""
	u.ResetTokenExp = nil
	return nil
}

func (r *fakeUserRepo) CleanExpiredResetTokens() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cleaned int64
	now := time.Now()
	for _, u := range r.users {
		if u.ResetTokenHash != "" && u.ResetTokenExp != nil && u.ResetTokenExp.Before(now) {
			u.ResetTokenHash = ""
			u.ResetTokenExp = nil
			cleaned++
		}
	}
	return cleaned, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole() (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64)
	for _, u := range r.users {
		out[string(u.Role)]++
	}
	return out, nil
}

func (r *fakeUserRepo) CountByFavoriteSport(limit int) ([]repositories.SportCount, error) {
	return nil, nil
}

func (r *fakeUserRepo) FindRecent(limit int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *r.clone(u))
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// fakeSportRepo - in-memory справочник спорта
type fakeSportRepo struct {
	mu     sync.Mutex
	sports map[string]*models.Sport
}

func newFakeSportRepo(names ...string) *fakeSportRepo {
	r := &fakeSportRepo{sports: make(map[string]*models.Sport)}
	for _, name := range names {
		id := uuid.NewString()
		r.sports[id] = &models.Sport{
			BaseModel: models.BaseModel{ID: id},
			Name:      name,
		}
	}
	return r
}

func (r *fakeSportRepo) anyID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.sports {
		return id
	}
	return ""
}

func (r *fakeSportRepo) FindAll() ([]models.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Sport
	for _, s := range r.sports {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSportRepo) FindByID(id string) (*models.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sports[id]
	if !ok {
		return nil, repositories.ErrSportNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSportRepo) FindByName(name string) (*models.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sports {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repositories.ErrSportNotFound
}

func (r *fakeSportRepo) Create(sport *models.Sport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sports {
		if s.Name == sport.Name {
			return repositories.ErrSportAlreadyExists
		}
	}
	if sport.ID == "" {
		sport.ID = uuid.NewString()
	}
	cp := *sport
	r.sports[sport.ID] = &cp
	return nil
}

func (r *fakeSportRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sports[id]; !ok {
		return repositories.ErrSportNotFound
	}
	delete(r.sports, id)
	return nil
}

func (r *fakeSportRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sports)), nil
}

// fakeCommentaryRepo - in-memory лента комментариев
type fakeCommentaryRepo struct {
	mu           sync.Mutex
	commentaries map[string]*models.Commentary
}

func newFakeCommentaryRepo() *fakeCommentaryRepo {
	return &fakeCommentaryRepo{commentaries: make(map[string]*models.Commentary)}
}

func (r *fakeCommentaryRepo) FindLatest(limit int) ([]models.Commentary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Commentary
	for _, c := range r.commentaries {
		out = append(out, *c)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeCommentaryRepo) FindBySport(sport string, limit int) ([]models.Commentary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Commentary
	for _, c := range r.commentaries {
		if c.Sport == sport {
			out = append(out, *c)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCommentaryRepo) FindByID(id string) (*models.Commentary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commentaries[id]
	if !ok {
		return nil, repositories.ErrCommentaryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentaryRepo) Create(commentary *models.Commentary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if commentary.ID == "" {
		commentary.ID = uuid.NewString()
	}
	cp := *commentary
	r.commentaries[commentary.ID] = &cp
	return nil
}

func (r *fakeCommentaryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.commentaries[id]; !ok {
		return repositories.ErrCommentaryNotFound
	}
	delete(r.commentaries, id)
	return nil
}

// fakeEmailProvider записывает отправленные письма;
// failSend переключает провайдер в режим отказа доставки
type fakeEmailProvider struct {
	mu       sync.Mutex
	failSend bool
	sentTo   []string
	resetURL string
}

func (p *fakeEmailProvider) Send(e *email.Email) error {
	if p.failSend {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func (p *fakeEmailProvider) SendPasswordReset(to, resetURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSend {
		return errors.New("smtp: connection refused")
	}
	p.sentTo = append(p.sentTo, to)
	p.resetURL = resetURL
	return nil
}

func (p *fakeEmailProvider) lastResetURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resetURL
}
