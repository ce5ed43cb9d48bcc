package memory

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// CategoryRepo keeps product and food categories in memory
type CategoryRepo struct {
	// guards the per-kind name uniqueness check
	mu   sync.Mutex
	rows *table[models.Category]
}

// NewCategoryRepo creates an empty in-memory category repository
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{rows: newTable[models.Category]()}
}

func (r *CategoryRepo) nameTaken(kind models.CategoryKind, name, except string) bool {
	matches := r.rows.filter(func(c models.Category) bool {
		return c.Kind == kind && c.ID != except && strings.EqualFold(c.Name, name)
	}, byCategoryName)
	return len(matches) > 0
}

func (r *CategoryRepo) List(_ context.Context, kind models.CategoryKind) ([]models.Category, error) {
	return r.rows.filter(func(c models.Category) bool { return c.Kind == kind }, byCategoryName), nil
}

func (r *CategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(category.Kind, category.Name, "") {
		return repositories.ErrDuplicate
	}
	category.ID = uuid.NewString()
	category.CreatedAt = time.Now()
	r.rows.put(category.ID, *category)
	return nil
}

func (r *CategoryRepo) Rename(_ context.Context, kind models.CategoryKind, id, name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.rows.get(id); !ok || c.Kind != kind {
		return nil, repositories.ErrNotFound
	}
	if r.nameTaken(kind, name, id) {
		return nil, repositories.ErrDuplicate
	}
	c, _ := r.rows.update(id, func(c *models.Category) { c.Name = name })
	return &c, nil
}

func (r *CategoryRepo) Delete(_ context.Context, kind models.CategoryKind, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.rows.get(id); !ok || c.Kind != kind {
		return false, nil
	}
	return r.rows.delete(id), nil
}

func byCategoryName(a, b models.Category) bool {
	return a.Name < b.Name
}

// SiteSettingRepo keeps storefront settings in memory
type SiteSettingRepo struct {
	rows *table[models.SiteSetting]
}

// NewSiteSettingRepo creates an empty in-memory settings repository
func NewSiteSettingRepo() *SiteSettingRepo {
	return &SiteSettingRepo{rows: newTable[models.SiteSetting]()}
}

func (r *SiteSettingRepo) List(_ context.Context) ([]models.SiteSetting, error) {
	settings := r.rows.filter(nil, func(a, b models.SiteSetting) bool { return a.Key < b.Key })
	for i := range settings {
		settings[i].Value = maps.Clone(settings[i].Value)
	}
	return settings, nil
}

func (r *SiteSettingRepo) Get(_ context.Context, key string) (*models.SiteSetting, error) {
	s, ok := r.rows.get(key)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	s.Value = maps.Clone(s.Value)
	return &s, nil
}

func (r *SiteSettingRepo) Upsert(_ context.Context, setting *models.SiteSetting) error {
	setting.UpdatedAt = time.Now()
	stored := *setting
	stored.Value = maps.Clone(setting.Value)
	r.rows.put(setting.Key, stored)
	return nil
}

// FooterRepo keeps section footers in memory
type FooterRepo struct {
	rows *table[models.Footer]
}

// NewFooterRepo creates an empty in-memory footer repository
func NewFooterRepo() *FooterRepo {
	return &FooterRepo{rows: newTable[models.Footer]()}
}

func (r *FooterRepo) List(_ context.Context) ([]models.Footer, error) {
	footers := r.rows.filter(nil, func(a, b models.Footer) bool { return a.Section < b.Section })
	for i := range footers {
		footers[i].SocialLinks = maps.Clone(footers[i].SocialLinks)
	}
	return footers, nil
}

func (r *FooterRepo) Get(_ context.Context, section models.FooterSection) (*models.Footer, error) {
	f, ok := r.rows.get(string(section))
	if !ok {
		return nil, repositories.ErrNotFound
	}
	f.SocialLinks = maps.Clone(f.SocialLinks)
	return &f, nil
}

func (r *FooterRepo) Upsert(_ context.Context, footer *models.Footer) error {
	footer.UpdatedAt = time.Now()
	stored := *footer
	stored.SocialLinks = maps.Clone(footer.SocialLinks)
	r.rows.put(string(footer.Section), stored)
	return nil
}
