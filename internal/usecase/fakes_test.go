package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"voltgate/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var errStoreDown = errors.New("store down")

type memSessions struct {
	mu   sync.Mutex
	data map[string]string
	fail bool
}

func newMemSessions() *memSessions {
	return &memSessions{data: make(map[string]string)}
}

func sessionKey(scope domain.SessionScope, token string) string {
	return string(scope) + ":" + token
}

func (m *memSessions) Put(_ context.Context, scope domain.SessionScope, token, subjectID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.data[sessionKey(scope, token)] = subjectID
	return nil
}

func (m *memSessions) Get(_ context.Context, scope domain.SessionScope, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", errStoreDown
	}
	subject, ok := m.data[sessionKey(scope, token)]
	if !ok {
		return "", domain.ErrNotFound
	}
	return subject, nil
}

func (m *memSessions) Delete(_ context.Context, scope domain.SessionScope, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	delete(m.data, sessionKey(scope, token))
	return nil
}

type memUsers struct {
	users map[string]domain.User
	fail  bool
}

func (m *memUsers) GetByID(_ context.Context, userID string) (*domain.User, error) {
	if m.fail {
		return nil, errStoreDown
	}
	user, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.fail {
		return nil, errStoreDown
	}
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memWorkspaces struct {
	bySlug map[string]domain.Workspace
	fail   bool
}

func (m *memWorkspaces) GetBySlug(_ context.Context, slug string) (*domain.Workspace, error) {
	if m.fail {
		return nil, errStoreDown
	}
	workspace, ok := m.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &workspace, nil
}

type memMemberships struct {
	// keyed by userID + ":" + workspaceID
	data map[string]domain.Membership
	fail bool
}

func (m *memMemberships) Get(_ context.Context, userID, workspaceID string) (*domain.Membership, error) {
	if m.fail {
		return nil, errStoreDown
	}
	membership, ok := m.data[userID+":"+workspaceID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &membership, nil
}

type memEndUsers struct {
	endUsers map[string]domain.EndUser
	fail     bool
}

func (m *memEndUsers) GetByID(_ context.Context, endUserID string) (*domain.EndUser, error) {
	if m.fail {
		return nil, errStoreDown
	}
	endUser, ok := m.endUsers[endUserID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &endUser, nil
}

func (m *memEndUsers) GetByEmail(_ context.Context, email string) (*domain.EndUser, error) {
	if m.fail {
		return nil, errStoreDown
	}
	for _, endUser := range m.endUsers {
		if endUser.Email == email {
			e := endUser
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func hashPassword(t interface{ Fatalf(string, ...any) }, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}
