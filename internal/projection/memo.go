package projection

import (
	"strings"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/patrickmn/go-cache"
)

// Memo caches filter results for one catalog. The catalog is immutable, so
// the active levels and roles fully determine the result.
type Memo struct {
	catalog *catalog.Catalog
	cache   *cache.Cache
}

// NewMemo returns a Memo whose entries expire after ttl of disuse.
func NewMemo(c *catalog.Catalog, ttl time.Duration) *Memo {
	return &Memo{
		catalog: c,
		cache:   cache.New(ttl, 2*ttl),
	}
}

// Catalog returns the catalog the memo was built for.
func (m *Memo) Catalog() *catalog.Catalog { return m.catalog }

// FilteredGuidelines is FilteredGuidelines with caching. The returned slice
// is a fresh copy on every call.
func (m *Memo) FilteredGuidelines(st domain.ProgressState) []domain.Guideline {
	key := filterKey(st)
	if v, ok := m.cache.Get(key); ok {
		cached := v.([]domain.Guideline)
		return append(make([]domain.Guideline, 0, len(cached)), cached...)
	}
	filtered := FilteredGuidelines(m.catalog, st)
	m.cache.SetDefault(key, filtered)
	return append(make([]domain.Guideline, 0, len(filtered)), filtered...)
}

// Build is Build with the cached filter.
func (m *Memo) Build(st domain.ProgressState) View {
	return newView(st, m.FilteredGuidelines(st))
}

// Len returns the number of cached filter results.
func (m *Memo) Len() int { return m.cache.ItemCount() }

func filterKey(st domain.ProgressState) string {
	var b strings.Builder
	for _, l := range st.LevelList() {
		b.WriteString(string(l))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, r := range st.RoleList() {
		b.WriteString(string(r))
		b.WriteByte(',')
	}
	return b.String()
}
