package convex_dto

type User struct {
	ID              string  `json:"_id" validate:"required"`
	CreationTime    float64 `json:"_creationTime,omitempty"`
	Name            string  `json:"name,omitempty"`
	Email           string  `json:"email,omitempty"`
	TokenIdentifier string  `json:"tokenIdentifier,omitempty"`
}

func (u *User) Validate() error {
	if u == nil {
		return nil
	}
	return validateRecord(u)
}
