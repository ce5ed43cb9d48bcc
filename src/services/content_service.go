package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/khabaroff/flabef-storefront/src/logging"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
	"github.com/khabaroff/flabef-storefront/src/templates"
)

// MaxCategoryName is the longest category name accepted, in characters
const MaxCategoryName = 100

var settingKeyPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// FooterInput is the editable part of a section footer
type FooterInput struct {
	Title       string
	Description string
	Address     string
	Phone       string
	Email       string
	SocialLinks map[string]string
}

// ContentService manages catalog categories, site settings and section footers
type ContentService struct {
	categories repositories.CategoryRepository
	settings   repositories.SiteSettingRepository
	footers    repositories.FooterRepository
}

// NewContentService creates a new storefront content service
func NewContentService(categories repositories.CategoryRepository, settings repositories.SiteSettingRepository, footers repositories.FooterRepository) *ContentService {
	return &ContentService{categories: categories, settings: settings, footers: footers}
}

func categoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryName {
		return "", ErrInvalidCategory
	}
	return name, nil
}

// ListCategories lists the categories of one catalog, ordered by name
func (cs *ContentService) ListCategories(ctx context.Context, kind models.CategoryKind) ([]models.Category, error) {
	categories, err := cs.categories.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (cs *ContentService) CreateCategory(ctx context.Context, kind models.CategoryKind, name string) (*models.Category, error) {
	if !kind.Valid() {
		return nil, ErrInvalidCategory
	}
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{Kind: kind, Name: name}
	if err := cs.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrCategoryTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (cs *ContentService) RenameCategory(ctx context.Context, kind models.CategoryKind, id, name string) (*models.Category, error) {
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrCategoryNotFound
	}

	category, err := cs.categories.Rename(ctx, kind, id, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrCategoryNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return nil, ErrCategoryTaken
	case err != nil:
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category; products filed under it keep their category text
func (cs *ContentService) DeleteCategory(ctx context.Context, kind models.CategoryKind, id string) error {
	if !validID(id) {
		return ErrCategoryNotFound
	}
	existed, err := cs.categories.Delete(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !existed {
		return ErrCategoryNotFound
	}
	return nil
}

// ListSettings returns every site setting ordered by key
func (cs *ContentService) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	settings, err := cs.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list site settings: %w", err)
	}
	return settings, nil
}

func (cs *ContentService) GetSetting(ctx context.Context, key string) (*models.SiteSetting, error) {
	if !settingKeyPattern.MatchString(key) {
		return nil, ErrSettingNotFound
	}
	setting, err := cs.settings.Get(ctx, key)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site setting: %w", err)
	}
	return setting, nil
}

// UpdateSetting replaces the whole value stored under key, creating the setting if needed
func (cs *ContentService) UpdateSetting(ctx context.Context, key string, value map[string]any) (*models.SiteSetting, error) {
	if !settingKeyPattern.MatchString(key) {
		return nil, ErrInvalidSettingKey
	}
	if value == nil {
		return nil, ErrInvalidSetting
	}

	setting := &models.SiteSetting{Key: key, Value: value}
	if err := cs.settings.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save site setting: %w", err)
	}
	return setting, nil
}

// ListFooters returns the footer of every section that has one
func (cs *ContentService) ListFooters(ctx context.Context) ([]models.Footer, error) {
	footers, err := cs.footers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list footers: %w", err)
	}
	return footers, nil
}

func (cs *ContentService) GetFooter(ctx context.Context, section models.FooterSection) (*models.Footer, error) {
	if !section.Valid() {
		return nil, ErrFooterNotFound
	}
	footer, err := cs.footers.Get(ctx, section)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrFooterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load footer: %w", err)
	}
	return footer, nil
}

// UpdateFooter replaces the footer of section, creating it if needed
func (cs *ContentService) UpdateFooter(ctx context.Context, section models.FooterSection, in FooterInput) (*models.Footer, error) {
	if !section.Valid() {
		return nil, ErrInvalidFooterSection
	}
	links := in.SocialLinks
	if links == nil {
		links = map[string]string{}
	}

	footer := &models.Footer{
		Section:     section,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       strings.TrimSpace(in.Email),
		SocialLinks: links,
	}
	if err := cs.footers.Upsert(ctx, footer); err != nil {
		return nil, fmt.Errorf("failed to save footer: %w", err)
	}
	return footer, nil
}

// SeedDefaults writes d into every content store that is still empty
func (cs *ContentService) SeedDefaults(ctx context.Context, d *templates.StorefrontDefaults) error {
	logger := logging.FromContext(ctx, "content")

	for kind, names := range map[models.CategoryKind][]string{
		models.CategoryKindProduct: d.ProductCategories,
		models.CategoryKindFood:    d.FoodCategories,
	} {
		existing, err := cs.ListCategories(ctx, kind)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		for _, name := range names {
			if _, err := cs.CreateCategory(ctx, kind, name); err != nil && !errors.Is(err, ErrCategoryTaken) {
				return err
			}
		}
		logger.Info().Str("kind", string(kind)).Int("count", len(names)).Msg("Default categories created")
	}

	settings, err := cs.ListSettings(ctx)
	if err != nil {
		return err
	}
	if len(settings) == 0 {
		for key, value := range d.Settings {
			if _, err := cs.UpdateSetting(ctx, key, value); err != nil {
				return err
			}
		}
		logger.Info().Int("count", len(d.Settings)).Msg("Default site settings created")
	}

	footers, err := cs.ListFooters(ctx)
	if err != nil {
		return err
	}
	if len(footers) == 0 {
		for _, f := range d.Footers {
			_, err := cs.UpdateFooter(ctx, models.FooterSection(f.Section), FooterInput{
				Title:       f.Title,
				Description: f.Description,
				Address:     f.Address,
				Phone:       f.Phone,
				Email:       f.Email,
				SocialLinks: f.SocialLinks,
			})
			if err != nil {
				return err
			}
		}
		logger.Info().Int("count", len(d.Footers)).Msg("Default footers created")
	}
	return nil
}
