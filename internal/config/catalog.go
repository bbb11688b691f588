package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/listingai/listingai-backend/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultTitleMaxLength applies to platforms without a known title limit
const DefaultTitleMaxLength = 80

// PlatformOption is a marketplace the generator can write for
type PlatformOption struct {
	Name           string `json:"name" yaml:"name"`
	TitleMaxLength int    `json:"titleMaxLength" yaml:"title_max_length"`
}

// PlanOption describes a purchasable plan
type PlanOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitAmount  int64  `json:"unitAmount"`
	Currency    string `json:"currency"`
	Mode        string `json:"mode"`
	Interval    string `json:"interval,omitempty"`
	MinQuantity int64  `json:"minQuantity,omitempty"`
}

// Catalog contains the option lists the generator form is built from
type Catalog struct {
	Platforms  []PlatformOption `json:"platforms" yaml:"platforms"`
	Conditions []string         `json:"conditions" yaml:"conditions"`
	Plans      []PlanOption     `json:"plans" yaml:"-"`
}

// GetCatalog returns the built-in catalog priced in the given currency
func GetCatalog(currency string) *Catalog {
	return &Catalog{
		Platforms: []PlatformOption{
			{Name: "eBay", TitleMaxLength: 80},
			{Name: "Amazon", TitleMaxLength: 200},
			{Name: "Etsy", TitleMaxLength: 140},
			{Name: "Poshmark", TitleMaxLength: 80},
			{Name: "Mercari", TitleMaxLength: 80},
			{Name: "Facebook Marketplace", TitleMaxLength: 100},
			{Name: "Depop", TitleMaxLength: 80},
			{Name: "Other", TitleMaxLength: DefaultTitleMaxLength},
		},
		Conditions: []string{
			"New with tags",
			"New without tags",
			"New",
			"Like new",
			"Good",
			"Fair",
			"For parts/not working",
		},
		Plans: []PlanOption{
			{
				ID:          models.PlanCredits,
				Name:        "Listing Credits",
				Description: "AI-generated product listings. Never expire.",
				UnitAmount:  models.CreditUnitAmount,
				Currency:    currency,
				Mode:        "payment",
				MinQuantity: models.MinCreditQuantity,
			},
			{
				ID:          models.PlanUnlimited,
				Name:        "ListingAI Unlimited",
				Description: "Unlimited AI-generated listings per month",
				UnitAmount:  models.UnlimitedMonthlyAmount,
				Currency:    currency,
				Mode:        "subscription",
				Interval:    "month",
			},
		},
	}
}

// LoadCatalog returns the built-in catalog merged with the YAML file at path.
// Platforms in the file replace built-in entries of the same name (case-insensitive)
// or are appended. Conditions in the file replace the built-in list when non-empty.
func LoadCatalog(path, currency string) (*Catalog, error) {
	catalog := GetCatalog(currency)
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for _, p := range override.Platforms {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog file %s: platform without name", path)
		}
		if p.TitleMaxLength <= 0 {
			p.TitleMaxLength = DefaultTitleMaxLength
		}
		p.Name = name
		catalog.upsertPlatform(p)
	}

	if len(override.Conditions) > 0 {
		catalog.Conditions = override.Conditions
	}

	return catalog, nil
}

func (c *Catalog) upsertPlatform(p PlatformOption) {
	for i := range c.Platforms {
		if strings.EqualFold(c.Platforms[i].Name, p.Name) {
			c.Platforms[i] = p
			return
		}
	}
	c.Platforms = append(c.Platforms, p)
}

// TitleMaxLength returns the title limit for platform, falling back to DefaultTitleMaxLength
func (c *Catalog) TitleMaxLength(platform string) int {
	for _, p := range c.Platforms {
		if strings.EqualFold(p.Name, platform) {
			return p.TitleMaxLength
		}
	}
	return DefaultTitleMaxLength
}
