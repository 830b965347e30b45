package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

var nopLog = zerolog.Nop()

// memUsers is an in-memory ports.UserRepository with the same conflict and
// single-use token semantics as the Mongo implementation.
type memUsers struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]*domain.User
	failOn map[string]error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*domain.User{}, failOn: map[string]error{}}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.Reset != nil {
		r := *u.Reset
		c.Reset = &r
	}
	if u.Invite != nil {
		i := *u.Invite
		c.Invite = &i
	}
	return &c
}

func (r *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn["Create"]; err != nil {
		return nil, err
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("u%d", r.seq)
	c.CreatedAt = time.Now().UTC()
	r.byID[c.ID] = c
	return cloneUser(c), nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := cloneUser(u)
	c.PasswordHash = ""
	return c, nil
}

func (r *memUsers) List(context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		c := cloneUser(u)
		c.PasswordHash = ""
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUsers) Exists(context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID) > 0, nil
}

func (r *memUsers) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *memUsers) Update(_ context.Context, id string, c domain.UserChanges) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if c.Email != nil {
		for _, other := range r.byID {
			if other.ID != id && other.Email == *c.Email {
				return nil, domain.ErrEmailTaken
			}
		}
	}
	apply(u, c)
	out := cloneUser(u)
	out.PasswordHash = ""
	return out, nil
}

func apply(u *domain.User, c domain.UserChanges) {
	if c.Name != nil {
		u.Name = *c.Name
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.PasswordHash != nil {
		u.PasswordHash = *c.PasswordHash
	}
	if c.Role != nil {
		u.Role = *c.Role
	}
	if c.IsInvited != nil {
		u.IsInvited = *c.IsInvited
	}
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func slot(u *domain.User, kind domain.RecoveryKind) **domain.RecoveryToken {
	if kind == domain.RecoveryInvite {
		return &u.Invite
	}
	return &u.Reset
}

func (r *memUsers) SetRecoveryToken(_ context.Context, id string, kind domain.RecoveryKind, token *domain.RecoveryToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if token != nil {
		t := *token
		token = &t
	}
	*slot(u, kind) = token
	return nil
}

func (r *memUsers) match(kind domain.RecoveryKind, hash string, now time.Time) *domain.User {
	for _, u := range r.byID {
		if t := *slot(u, kind); t != nil && t.Hash == hash && t.ExpiresAt.After(now) {
			return u
		}
	}
	return nil
}

func (r *memUsers) FindByRecoveryToken(_ context.Context, kind domain.RecoveryKind, hash string, now time.Time) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u := r.match(kind, hash, now); u != nil {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) ConsumeRecoveryToken(_ context.Context, kind domain.RecoveryKind, hash string, now time.Time, c domain.UserChanges) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.match(kind, hash, now)
	if u == nil {
		return nil, domain.ErrInvalidOrExpiredToken
	}
	apply(u, c)
	*slot(u, kind) = nil
	out := cloneUser(u)
	out.PasswordHash = ""
	return out, nil
}

func (r *memUsers) get(id string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		return cloneUser(u)
	}
	return nil
}

// memRepo is an in-memory ports.Repository. ListQuery.Match is ignored
// except through the optional match function.
type memRepo[T any] struct {
	mu    sync.Mutex
	seq   int
	docs  map[string]T
	order []string
	id    func(*T) *string
	match func(T, map[string]any) bool
}

func newMemRepo[T any](id func(*T) *string) *memRepo[T] {
	return &memRepo[T]{docs: map[string]T{}, id: id}
}

func (r *memRepo[T]) List(_ context.Context, q ports.ListQuery) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []T{}
	for _, id := range r.order {
		doc, ok := r.docs[id]
		if !ok {
			continue
		}
		if r.match != nil && len(q.Match) > 0 && !r.match(doc, q.Match) {
			continue
		}
		out = append(out, doc)
	}
	if q.NewestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *memRepo[T]) Get(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (r *memRepo[T]) Insert(_ context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id := r.id(doc); *id == "" {
		r.seq++
		*id = fmt.Sprintf("doc%d", r.seq)
	}
	id := *r.id(doc)
	if _, exists := r.docs[id]; exists {
		return domain.ErrConflict
	}
	r.docs[id] = *doc
	r.order = append(r.order, id)
	return nil
}

func (r *memRepo[T]) Replace(_ context.Context, id string, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	*r.id(doc) = id
	r.docs[id] = *doc
	return nil
}

func (r *memRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type memPages struct {
	*memRepo[domain.Page]
}

func newMemPages() *memPages {
	repo := newMemRepo(func(p *domain.Page) *string { return &p.ID })
	repo.match = func(p domain.Page, m map[string]any) bool {
		v, ok := m["is_active"]
		return !ok || v == p.IsActive
	}
	return &memPages{repo}
}

func (r *memPages) FindBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	pages, _ := r.List(ctx, ports.ListQuery{})
	for _, p := range pages {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memSettings struct {
	mu    sync.Mutex
	s     *domain.Settings
	saves int
}

func (r *memSettings) Get(context.Context) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s == nil {
		return nil, domain.ErrNotFound
	}
	c := *r.s
	return &c, nil
}

func (r *memSettings) Save(_ context.Context, s *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *s
	r.s = &c
	r.saves++
	return nil
}

type stubMailer struct {
	mu   sync.Mutex
	err  error
	sent []ports.EmailMessage
}

func (m *stubMailer) Send(_ context.Context, msg ports.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *stubMailer) last() ports.EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

type stubMedia struct {
	err     error
	folders []string
}

func (m *stubMedia) Upload(_ context.Context, folder string, file ports.Upload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if _, err := io.ReadAll(file.Body); err != nil {
		return "", err
	}
	m.folders = append(m.folders, folder)
	return fmt.Sprintf("https://cdn.example.com/%s/%d%s", folder, len(m.folders), file.Extension), nil
}

type stubNotifier struct {
	got []domain.Inquiry
}

func (n *stubNotifier) NotifyInquiry(inq domain.Inquiry) {
	n.got = append(n.got, inq)
}

var errBoom = errors.New("boom")
