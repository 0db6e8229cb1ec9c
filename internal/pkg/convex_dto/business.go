package convex_dto

type Business struct {
	ID           string  `json:"_id" validate:"required"`
	CreationTime float64 `json:"_creationTime,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	Email        string  `json:"email,omitempty"`
	OwnerID      string  `json:"ownerId,omitempty"`
}

func (b *Business) Validate() error {
	if b == nil {
		return nil
	}
	return validateRecord(b)
}

type BusinessSlugArgs struct {
	Slug string `json:"slug"`
}

type CreateBusinessArgs struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
	Slug    string `json:"slug"`
}
