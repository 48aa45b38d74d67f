package models

// Category is seeded outside this service and only ever read here.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"column:type;not null"`
}

// Labels returns the category types in the order given.
func Labels(categories []Category) []string {
	labels := make([]string, 0, len(categories))
	for _, category := range categories {
		labels = append(labels, category.Type)
	}
	return labels
}
