package services

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"photofolio_backend/internal/email"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"

	"gorm.io/gorm"
)

// Counting fakes. Every store-touching call bumps calls so tests can assert
// that unauthorized requests never reach the store.

type fakeProfileRepo struct {
	calls    int
	profiles map[string]*models.Profile
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	m := make(map[string]*models.Profile)
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) Create(db *gorm.DB, profile *models.Profile) error {
	f.calls++
	if profile.ID == "" {
		profile.ID = "generated-id"
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	f.calls++
	p, ok := f.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	f.calls++
	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) List(db *gorm.DB, filters repositories.ProfileFilters) ([]models.Profile, int64, error) {
	f.calls++
	out := make([]models.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeProfileRepo) Update(db *gorm.DB, profile *models.Profile) error {
	f.calls++
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	f.calls++
	p, ok := f.profiles[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	if role, ok := updates["role"].(string); ok {
		p.Role = models.UserRole(role)
	}
	if status, ok := updates["status"].(string); ok {
		p.Status = models.UserStatus(status)
	}
	if hash, ok := updates["password_hash"].(string); ok {
		p.PasswordHash = hash
	}
	return nil
}

func (f *fakeProfileRepo) UpdateLastLogin(db *gorm.DB, id string, at time.Time) error {
	f.calls++
	if p, ok := f.profiles[id]; ok {
		p.LastLogin = &at
	}
	return nil
}

func (f *fakeProfileRepo) Delete(db *gorm.DB, id string) error {
	f.calls++
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileRepo) DeleteMany(db *gorm.DB, ids []string) (int64, error) {
	f.calls++
	var n int64
	for _, id := range ids {
		if _, ok := f.profiles[id]; ok {
			delete(f.profiles, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeProfileRepo) Count(db *gorm.DB) (int64, error) {
	f.calls++
	return int64(len(f.profiles)), nil
}

// fakeRecorder captures audit entries in memory.

type auditEntry struct {
	table   string
	action  string
	actorID *string
	rowID   *string
	payload map[string]interface{}
}

type fakeRecorder struct {
	entries []auditEntry
}

func (f *fakeRecorder) Record(ctx context.Context, db *gorm.DB, actorID *string, tableName, action string, rowID *string, payload map[string]interface{}) {
	f.entries = append(f.entries, auditEntry{
		table:   tableName,
		action:  action,
		actorID: actorID,
		rowID:   rowID,
		payload: payload,
	})
}

// fakeMediaRepo backs the media service tests.

type fakeMediaRepo struct {
	calls    int
	items    map[string]*models.MediaItem
	onDelete func()
}

func newFakeMediaRepo(items ...*models.MediaItem) *fakeMediaRepo {
	m := make(map[string]*models.MediaItem)
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakeMediaRepo{items: m}
}

func (f *fakeMediaRepo) Create(db *gorm.DB, item *models.MediaItem) error {
	f.calls++
	if item.ID == "" {
		item.ID = "media-generated"
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeMediaRepo) FindByID(db *gorm.DB, id string) (*models.MediaItem, error) {
	f.calls++
	it, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrMediaItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeMediaRepo) List(db *gorm.DB, filters repositories.MediaFilters) ([]models.MediaItem, error) {
	f.calls++
	out := make([]models.MediaItem, 0, len(f.items))
	for _, it := range f.items {
		if filters.Type != "" && string(it.MediaType) != filters.Type {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeMediaRepo) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	f.calls++
	it, ok := f.items[id]
	if !ok {
		return repositories.ErrMediaItemNotFound
	}
	if title, ok := updates["title"].(string); ok {
		it.Title = title
	}
	return nil
}

func (f *fakeMediaRepo) Delete(db *gorm.DB, id string) error {
	f.calls++
	if f.onDelete != nil {
		f.onDelete()
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMediaRepo) CountByType(db *gorm.DB, mediaType models.MediaType) (int64, error) {
	f.calls++
	var n int64
	for _, it := range f.items {
		if it.MediaType == mediaType {
			n++
		}
	}
	return n, nil
}

func (f *fakeMediaRepo) TotalFileSize(db *gorm.DB) (int64, error) {
	f.calls++
	var total int64
	for _, it := range f.items {
		if it.FileSize != nil {
			total += *it.FileSize
		}
	}
	return total, nil
}

func (f *fakeMediaRepo) CountCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	f.calls++
	var n int64
	for _, it := range f.items {
		if it.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

// fakePortfolioRepo backs the portfolio service tests.

type fakePortfolioRepo struct {
	calls int
	items map[string]*models.PortfolioItem
}

func newFakePortfolioRepo(items ...*models.PortfolioItem) *fakePortfolioRepo {
	m := make(map[string]*models.PortfolioItem)
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakePortfolioRepo{items: m}
}

func (f *fakePortfolioRepo) Create(db *gorm.DB, item *models.PortfolioItem) error {
	f.calls++
	if item.ID == "" {
		item.ID = "portfolio-generated"
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakePortfolioRepo) FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error) {
	f.calls++
	it, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrPortfolioItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakePortfolioRepo) List(db *gorm.DB, includeHidden bool) ([]models.PortfolioItem, error) {
	f.calls++
	out := make([]models.PortfolioItem, 0, len(f.items))
	for _, it := range f.items {
		if !includeHidden && !it.Visible {
			continue
		}
		out = append(out, *it)
	}
	// Mirrors the SQL ordering: order_index asc, created_at desc.
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakePortfolioRepo) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	f.calls++
	it, ok := f.items[id]
	if !ok {
		return repositories.ErrPortfolioItemNotFound
	}
	if title, ok := updates["title"].(string); ok {
		it.Title = title
	}
	if visible, ok := updates["visible"].(bool); ok {
		it.Visible = visible
	}
	return nil
}

func (f *fakePortfolioRepo) Delete(db *gorm.DB, id string) error {
	f.calls++
	delete(f.items, id)
	return nil
}

func (f *fakePortfolioRepo) CountVisible(db *gorm.DB) (int64, error) {
	f.calls++
	var n int64
	for _, it := range f.items {
		if it.Visible {
			n++
		}
	}
	return n, nil
}

func (f *fakePortfolioRepo) Count(db *gorm.DB) (int64, error) {
	f.calls++
	return int64(len(f.items)), nil
}

func (f *fakePortfolioRepo) CountCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	f.calls++
	var n int64
	for _, it := range f.items {
		if it.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

// fakeDashboardRepo returns configured counts.

type fakeDashboardRepo struct {
	profiles, locations, workshops, portfolio, videos, coupons, comments int64
}

func (f *fakeDashboardRepo) CountProfiles(db *gorm.DB) (int64, error)       { return f.profiles, nil }
func (f *fakeDashboardRepo) CountLocations(db *gorm.DB) (int64, error)      { return f.locations, nil }
func (f *fakeDashboardRepo) CountWorkshops(db *gorm.DB) (int64, error)      { return f.workshops, nil }
func (f *fakeDashboardRepo) CountPortfolioItems(db *gorm.DB) (int64, error) { return f.portfolio, nil }
func (f *fakeDashboardRepo) CountVideos(db *gorm.DB) (int64, error)         { return f.videos, nil }
func (f *fakeDashboardRepo) CountCoupons(db *gorm.DB) (int64, error)        { return f.coupons, nil }
func (f *fakeDashboardRepo) CountVisibleComments(db *gorm.DB) (int64, error) {
	return f.comments, nil
}

// fakeStorage records operations in order so tests can assert that blob
// removal precedes the row delete.

type storageOp struct {
	op     string
	bucket string
	path   string
}

type fakeStorage struct {
	ops       []storageOp
	deleteErr error
	blobs     map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: map[string][]byte{}}
}

func (f *fakeStorage) key(bucket, path string) string { return bucket + "/" + path }

func (f *fakeStorage) Save(ctx context.Context, bucket, path string, reader io.Reader, contentType string) error {
	data, _ := io.ReadAll(reader)
	f.blobs[f.key(bucket, path)] = data
	f.ops = append(f.ops, storageOp{"save", bucket, path})
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	f.ops = append(f.ops, storageOp{"get", bucket, path})
	data, ok := f.blobs[f.key(bucket, path)]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, bucket, path string) error {
	f.ops = append(f.ops, storageOp{"delete", bucket, path})
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, f.key(bucket, path))
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, bucket, path string) (bool, error) {
	f.ops = append(f.ops, storageOp{"exists", bucket, path})
	_, ok := f.blobs[f.key(bucket, path)]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, bucket, path string) (string, error) {
	return "https://cdn.test/" + bucket + "/" + path, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error) {
	return "https://cdn.test/" + bucket + "/" + path + "?signed", nil
}

func (f *fakeStorage) GetSize(ctx context.Context, bucket, path string) (int64, error) {
	data, ok := f.blobs[f.key(bucket, path)]
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return int64(len(data)), nil
}

// fakeTokenRepo stores refresh and reset tokens in memory.

type fakeTokenRepo struct {
	refresh map[string]*models.RefreshToken
	reset   map[string]*models.PasswordResetToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		refresh: map[string]*models.RefreshToken{},
		reset:   map[string]*models.PasswordResetToken{},
	}
}

func (f *fakeTokenRepo) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = "rt-" + token.Token
	}
	f.refresh[token.Token] = token
	return nil
}

func (f *fakeTokenRepo) FindRefreshToken(db *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	t, ok := f.refresh[tokenString]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	return t, nil
}

func (f *fakeTokenRepo) DeleteRefreshToken(db *gorm.DB, tokenString string) error {
	delete(f.refresh, tokenString)
	return nil
}

func (f *fakeTokenRepo) DeleteRefreshTokensByUser(db *gorm.DB, userID string) error {
	for k, t := range f.refresh {
		if t.UserID == userID {
			delete(f.refresh, k)
		}
	}
	return nil
}

func (f *fakeTokenRepo) CleanExpiredRefreshTokens(db *gorm.DB) error { return nil }

func (f *fakeTokenRepo) CreateResetToken(db *gorm.DB, token *models.PasswordResetToken) error {
	if token.ID == "" {
		token.ID = "prt-" + token.Token
	}
	f.reset[token.Token] = token
	return nil
}

func (f *fakeTokenRepo) FindResetToken(db *gorm.DB, tokenString string) (*models.PasswordResetToken, error) {
	t, ok := f.reset[tokenString]
	if !ok {
		return nil, repositories.ErrResetTokenNotFound
	}
	return t, nil
}

func (f *fakeTokenRepo) MarkResetTokenUsed(db *gorm.DB, id string) error {
	for _, t := range f.reset {
		if t.ID == id {
			t.Used = true
		}
	}
	return nil
}

// fakeMailer records outgoing messages.

type fakeMailer struct {
	sent []*email.Message
}

func (f *fakeMailer) Send(msg *email.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

// Shared test actors.

func adminActor() *models.Profile {
	p := &models.Profile{
		Email:  "admin@test.local",
		Role:   models.RoleAdmin,
		Status: models.StatusActive,
	}
	p.ID = "admin-1"
	return p
}

func viewerActor() *models.Profile {
	p := &models.Profile{
		Email:  "viewer@test.local",
		Role:   models.RoleViewer,
		Status: models.StatusActive,
	}
	p.ID = "viewer-1"
	return p
}
