package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

type menuFile struct {
	Items []menuFileItem `yaml:"items"`
}

type menuFileItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	ImageURL    string `yaml:"image_url"`
	// Available defaults to true when omitted
	Available *bool `yaml:"available"`
}

// LoadMenu reads a YAML menu seed. Ids are assigned by position starting
// at 1, matching what the catalog would assign on sequential adds.
func LoadMenu(path string) ([]domain.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var file menuFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(file.Items))
	for i, entry := range file.Items {
		if entry.Name == "" {
			return nil, fmt.Errorf("menu item %d: name is required", i+1)
		}
		price, err := decimal.NewFromString(entry.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("menu item %q: invalid price %q", entry.Name, entry.Price)
		}
		available := true
		if entry.Available != nil {
			available = *entry.Available
		}
		items = append(items, domain.MenuItem{
			ID:          int64(i + 1),
			Name:        entry.Name,
			Description: entry.Description,
			Price:       price,
			Category:    entry.Category,
			ImageURL:    entry.ImageURL,
			Available:   available,
		})
	}
	return items, nil
}

// DefaultMenu is the built-in seed used when no menu file is configured.
func DefaultMenu() []domain.MenuItem {
	seed := []struct {
		name, description, category string
		price                       int64
	}{
		{"Margherita", "Classic pizza with tomatoes, mozzarella and basil", "Pizza", 850},
		{"Pepperoni", "Pizza with pepperoni and mozzarella", "Pizza", 950},
		{"Classic Burger", "Juicy beef burger with lettuce and tomato", "Burgers", 650},
		{"Cheeseburger", "Burger with double cheese and house sauce", "Burgers", 720},
		{"Borscht", "Traditional borscht with sour cream", "Soups", 450},
		{"Solyanka", "Meat solyanka with olives and lemon", "Soups", 520},
		{"Caesar", "Chicken salad with parmesan and caesar dressing", "Salads", 680},
		{"Greek Salad", "Fresh salad with feta, olives and vegetables", "Salads", 580},
		{"Espresso", "Classic italian coffee", "Drinks", 180},
		{"Fresh Orange Juice", "Freshly squeezed orange juice", "Drinks", 250},
	}

	items := make([]domain.MenuItem, 0, len(seed))
	for i, entry := range seed {
		items = append(items, domain.MenuItem{
			ID:          int64(i + 1),
			Name:        entry.name,
			Description: entry.description,
			Price:       decimal.NewFromInt(entry.price),
			Category:    entry.category,
			Available:   true,
		})
	}
	return items
}
