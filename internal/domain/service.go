package domain

// ServiceCategory раздел каталога
type ServiceCategory string

const (
	CategoryMen   ServiceCategory = "men"
	CategoryWomen ServiceCategory = "women"
)

// Service услуга из каталога салона
type Service struct {
	ID            string
	Name          string
	NameDa        string
	Description   string
	DescriptionDa string
	Price         float64
	Category      ServiceCategory
	Duration      string // "45 min"
	Tags          []string
	TagsDa        []string
	Featured      bool
	IsActive      bool
}

// LocalizedName название на нужном языке (датский или английский)
func (s *Service) LocalizedName(lang string) string {
	if lang == "da" && s.NameDa != "" {
		return s.NameDa
	}
	return s.Name
}

// LocalizedDescription описание на нужном языке
func (s *Service) LocalizedDescription(lang string) string {
	if lang == "da" && s.DescriptionDa != "" {
		return s.DescriptionDa
	}
	return s.Description
}

// LocalizedTags теги на нужном языке
func (s *Service) LocalizedTags(lang string) []string {
	if lang == "da" && len(s.TagsDa) > 0 {
		return s.TagsDa
	}
	return s.Tags
}
