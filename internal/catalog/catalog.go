package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

var (
	// ErrLoadCatalog ошибка чтения файла каталога
	ErrLoadCatalog = errors.New("catalog: failed to load services")

	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("catalog: service not found")
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// rawService запись services.json как она лежит в файле
type rawService struct {
	ID            json.RawMessage `json:"id"`
	Name          string          `json:"name"`
	NameDa        string          `json:"name_da"`
	Description   string          `json:"description"`
	DescriptionDa string          `json:"description_da"`
	Price         json.Number     `json:"price"`
	Category      string          `json:"category"`
	Duration      string          `json:"duration"`
	Tags          []string        `json:"tags"`
	TagsDa        []string        `json:"tags_da"`
	Featured      bool            `json:"featured"`
	IsActive      *bool           `json:"is_active"`
}

// Catalog неизменяемый каталог активных услуг
type Catalog struct {
	services []domain.Service
	byID     map[string]int
}

// Load читает каталог из JSON-файла
func Load(path string, log Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}
	return Parse(data, log)
}

// Parse разбирает JSON-массив услуг. Неактивные записи отбрасываются,
// у записей без обязательных полей подставляются значения по умолчанию.
func Parse(data []byte, log Logger) (*Catalog, error) {
	var raw []rawService
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}

	c := &Catalog{
		services: make([]domain.Service, 0, len(raw)),
		byID:     make(map[string]int, len(raw)),
	}

	for i, r := range raw {
		id := parseID(r.ID)
		if id == "" || r.Name == "" || r.Category == "" {
			log.Warn("catalog: service at index %d is missing required fields (id, name, category)", i)
		}
		if id == "" {
			id = "service-" + strconv.Itoa(i+1)
		}

		if r.IsActive != nil && !*r.IsActive {
			continue
		}
		if _, dup := c.byID[id]; dup {
			log.Warn("catalog: duplicate service id %q at index %d skipped", id, i)
			continue
		}

		name := r.Name
		if name == "" {
			name = "Service " + strconv.Itoa(i+1)
		}

		category := domain.ServiceCategory(r.Category)
		if category != domain.CategoryWomen {
			category = domain.CategoryMen
		}

		price, _ := r.Price.Float64()

		c.byID[id] = len(c.services)
		c.services = append(c.services, domain.Service{
			ID:            id,
			Name:          name,
			NameDa:        r.NameDa,
			Description:   r.Description,
			DescriptionDa: r.DescriptionDa,
			Price:         price,
			Category:      category,
			Duration:      r.Duration,
			Tags:          r.Tags,
			TagsDa:        r.TagsDa,
			Featured:      r.Featured,
			IsActive:      true,
		})
	}

	return c, nil
}

// id в файле бывает и строкой, и числом
func parseID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// List активные услуги, опционально только одной категории
func (c *Catalog) List(category *domain.ServiceCategory) []domain.Service {
	result := make([]domain.Service, 0, len(c.services))
	for _, s := range c.services {
		if category != nil && s.Category != *category {
			continue
		}
		result = append(result, s)
	}
	return result
}

// Get активная услуга по ID
func (c *Catalog) Get(id string) (*domain.Service, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	s := c.services[idx]
	return &s, nil
}
