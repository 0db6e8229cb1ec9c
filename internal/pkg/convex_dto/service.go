package convex_dto

type Service struct {
	ID           string  `json:"_id" validate:"required"`
	CreationTime float64 `json:"_creationTime,omitempty"`
	BusinessID   string  `json:"businessId,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description,omitempty"`
	Price        int64   `json:"price" validate:"gte=0"`
	Duration     int     `json:"duration" validate:"gte=0"`
	Category     string  `json:"category"`
	DogSize      string  `json:"dogSize,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type Services []Service

func (s Services) Validate() error {
	return validateRecords(s)
}

func (s Services) FindByID(id string) (Service, bool) {
	for _, service := range s {
		if service.ID == id {
			return service, true
		}
	}
	return Service{}, false
}
