package service

import (
	"crypto/tls"
	"strings"
	"time"

	"dispatch-portal-backend/internal/config"
	apperrors "dispatch-portal-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// directorySearchLimit caps how many entries one directory search returns
const directorySearchLimit = 50

// ldapClient is the slice of the LDAP connection the directory search
// uses, kept behind a dial seam so tests can substitute a fake
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// DirectoryEntry represents a subset of directory attributes returned by
// the search
type DirectoryEntry struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	Mobile      string `json:"mobile"`
	SN          string `json:"sn"`
	Name        string `json:"name"`
	Mail        string `json:"mail"`
	GivenName   string `json:"givenName"`
}

// DirectoryService looks workers up in the corporate directory. Results
// are memoized for a short TTL since dispatchers repeat the same lookups
// while assembling a crew.
type DirectoryService struct {
	cfg  *config.Config
	memo *Memo
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	ttl := time.Duration(cfg.DirectoryCacheTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DirectoryService{
		cfg:  cfg,
		memo: NewMemo(ttl),
	}
}

// SearchByName searches directory entries by common name prefix
func (s *DirectoryService) SearchByName(name string) ([]DirectoryEntry, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, apperrors.NewValidationError("query", "must be at least 2 characters")
	}
	if s.cfg.LDAPHost == "" || s.cfg.LDAPBaseDN == "" {
		return nil, apperrors.ErrLDAPConfigMissing
	}

	cacheKey := "cn:" + strings.ToLower(name)
	if cached, ok := s.memo.Get(cacheKey); ok {
		return cached.([]DirectoryEntry), nil
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	// Establish TLS connection to the directory server
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	// Set timeout
	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	// Bind with configured credentials
	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	// Build search request
	filter := "(cn=" + ldap.EscapeFilter(name) + "*)"
	attrs := []string{"displayName", "mobile", "sn", "name", "mail", "givenName"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		directorySearchLimit,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	// Execute search
	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	// Map results
	out := make([]DirectoryEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		get := func(a string) string { return e.GetAttributeValue(a) }
		out = append(out, DirectoryEntry{
			DN:          e.DN,
			DisplayName: get("displayName"),
			Mobile:      get("mobile"),
			SN:          get("sn"),
			Name:        get("name"),
			Mail:        get("mail"),
			GivenName:   get("givenName"),
		})
	}

	s.memo.Set(cacheKey, out)
	return out, nil
}
