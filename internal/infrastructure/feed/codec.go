package feed

import (
	"fmt"

	"github.com/shopnet/backend/internal/domain/catalog"
	"gopkg.in/yaml.v3"
)

// File is the wire representation of a partner price list.
type File struct {
	Shop       string     `yaml:"shop"`
	Categories []Category `yaml:"categories"`
	Goods      []Item     `yaml:"goods"`
}

// Category is one category record of the feed.
type Category struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// Item is one offer record of the feed. Prices stay strings so no
// precision is lost before they reach decimal.
type Item struct {
	ID         int64             `yaml:"id"`
	Category   int64             `yaml:"category"`
	Model      string            `yaml:"model"`
	Name       string            `yaml:"name"`
	Price      string            `yaml:"price"`
	PriceRRC   string            `yaml:"price_rrc"`
	Quantity   int               `yaml:"quantity"`
	Parameters map[string]string `yaml:"parameters,omitempty"`
}

// Decode parses YAML feed bytes into a File
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("can't parse feed: %w", err)
	}
	if f.Shop == "" {
		return nil, fmt.Errorf("feed has no shop name")
	}
	return &f, nil
}

// Encode serializes a File back into YAML, round-tripping the feed format
func Encode(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("can't encode feed: %w", err)
	}
	return data, nil
}

// ToImport converts the wire records into the catalog import contract
func (f *File) ToImport() ([]catalog.ImportCategory, []catalog.ImportItem) {
	categories := make([]catalog.ImportCategory, len(f.Categories))
	for i, c := range f.Categories {
		categories[i] = catalog.ImportCategory{
			ExternalID: c.ID,
			Name:       c.Name,
		}
	}

	items := make([]catalog.ImportItem, len(f.Goods))
	for i, g := range f.Goods {
		items[i] = catalog.ImportItem{
			ExternalID:  g.ID,
			CategoryExt: g.Category,
			Model:       g.Model,
			Name:        g.Name,
			Price:       g.Price,
			PriceRRC:    g.PriceRRC,
			Quantity:    g.Quantity,
			Parameters:  g.Parameters,
		}
	}

	return categories, items
}
