package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Durable key files under the state directory. One file per key, mirroring
// the browser client's localStorage layout.
const (
	keyTenderID      = "tender_id"
	keyCompanyID     = "company_id"
	keyChatSessionID = "chat_session_id"
	keyToken         = "token"
	keyUser          = "user.json"
	keyCompanyForm   = "company_form.json"
)

var allKeys = []string{
	keyTenderID, keyCompanyID, keyChatSessionID, keyToken, keyUser, keyCompanyForm,
}

// Store is the client-side session: the active tender, company and chat
// session identifiers, the bearer token and the authenticated user. It is
// hydrated from the state directory at startup and written back whenever a
// server response supplies a new identifier.
type Store struct {
	dir string

	TenderID      string
	CompanyID     string
	ChatSessionID string
	Token         string
	User          *User
}

// NewStore creates a store bound to a state directory. Call Load to hydrate.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the state directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// Load populates the in-memory fields from the state directory. Missing key
// files and an unparsable user record degrade to absent fields, never an
// error.
func (s *Store) Load() {
	s.TenderID = s.readKey(keyTenderID)
	s.CompanyID = s.readKey(keyCompanyID)
	s.ChatSessionID = s.readKey(keyChatSessionID)
	s.Token = s.readKey(keyToken)

	s.User = nil
	if raw := s.readKey(keyUser); raw != "" {
		var u User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			LogDebug("ignoring unparsable user record: %v", err)
		} else {
			s.User = &u
		}
	}
}

// Save writes only the fields currently set. A field that is absent in
// memory never clears its durable key.
func (s *Store) Save() error {
	if s.TenderID != "" {
		if err := s.writeKey(keyTenderID, s.TenderID); err != nil {
			return err
		}
	}
	if s.CompanyID != "" {
		if err := s.writeKey(keyCompanyID, s.CompanyID); err != nil {
			return err
		}
	}
	if s.ChatSessionID != "" {
		if err := s.writeKey(keyChatSessionID, s.ChatSessionID); err != nil {
			return err
		}
	}
	if s.Token != "" {
		if err := s.writeKey(keyToken, s.Token); err != nil {
			return err
		}
	}
	if s.User != nil {
		data, err := json.Marshal(s.User)
		if err != nil {
			return &StoreError{Key: keyUser, Op: "write", Err: err}
		}
		if err := s.writeKey(keyUser, string(data)); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every durable key and resets the in-memory fields. Only the
// logout flow calls this.
func (s *Store) Clear() error {
	for _, key := range allKeys {
		if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
			return &StoreError{Key: key, Op: "remove", Err: err}
		}
	}
	s.TenderID = ""
	s.CompanyID = ""
	s.ChatSessionID = ""
	s.Token = ""
	s.User = nil
	return nil
}

// Authenticated reports whether a bearer token is present.
func (s *Store) Authenticated() bool {
	return s.Token != ""
}

// SetToken stores the bearer token and persists it immediately.
func (s *Store) SetToken(token string) error {
	s.Token = token
	return s.writeKey(keyToken, token)
}

// SetUser stores the authenticated user and persists it immediately.
func (s *Store) SetUser(u *User) error {
	s.User = u
	data, err := json.Marshal(u)
	if err != nil {
		return &StoreError{Key: keyUser, Op: "write", Err: err}
	}
	return s.writeKey(keyUser, string(data))
}

// SetTenderID makes a tender the active one and persists it immediately.
func (s *Store) SetTenderID(id string) error {
	s.TenderID = id
	return s.writeKey(keyTenderID, id)
}

// SetCompanyID makes a company the active one and persists it immediately.
func (s *Store) SetCompanyID(id string) error {
	s.CompanyID = id
	return s.writeKey(keyCompanyID, id)
}

// SetChatSessionID stores the assistant conversation id and persists it
// immediately.
func (s *Store) SetChatSessionID(id string) error {
	s.ChatSessionID = id
	return s.writeKey(keyChatSessionID, id)
}

// LoadForm reads the locally persisted company form shadow copy. A missing
// or unparsable copy yields a fresh empty form.
func (s *Store) LoadForm() *CompanyForm {
	form := NewCompanyForm()
	raw := s.readKey(keyCompanyForm)
	if raw == "" {
		return form
	}
	if err := json.Unmarshal([]byte(raw), form); err != nil {
		LogDebug("ignoring unparsable company form: %v", err)
		return NewCompanyForm()
	}
	form.Normalize()
	return form
}

// SaveForm persists the company form shadow copy so it can be restored
// across invocations before any network round-trip.
func (s *Store) SaveForm(form *CompanyForm) error {
	form.Normalize()
	data, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return &StoreError{Key: keyCompanyForm, Op: "write", Err: err}
	}
	return s.writeKey(keyCompanyForm, string(data))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *Store) readKey(key string) string {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) writeKey(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &StoreError{Key: key, Op: "write", Err: err}
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0600); err != nil {
		return &StoreError{Key: key, Op: "write", Err: err}
	}
	return nil
}
