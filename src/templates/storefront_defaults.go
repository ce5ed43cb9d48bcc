package templates

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed storefront/defaults.yaml
var storefrontDefaults embed.FS

// FooterDefaults is the seeded footer of one storefront section
type FooterDefaults struct {
	Section     string            `yaml:"section"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Address     string            `yaml:"address"`
	Phone       string            `yaml:"phone"`
	Email       string            `yaml:"email"`
	SocialLinks map[string]string `yaml:"social_links"`
}

// StorefrontDefaults holds the content written into an empty store
type StorefrontDefaults struct {
	ProductCategories []string                  `yaml:"product_categories"`
	FoodCategories    []string                  `yaml:"food_categories"`
	Settings          map[string]map[string]any `yaml:"settings"`
	Footers           []FooterDefaults          `yaml:"footers"`
}

// LoadStorefrontDefaults loads the embedded storefront/defaults.yaml
func LoadStorefrontDefaults() (*StorefrontDefaults, error) {
	data, err := storefrontDefaults.ReadFile("storefront/defaults.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read storefront defaults: %w", err)
	}

	var defaults StorefrontDefaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse storefront defaults: %w", err)
	}

	return &defaults, nil
}
