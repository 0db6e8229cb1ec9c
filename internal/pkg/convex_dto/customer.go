package convex_dto

type Customer struct {
	ID           string  `json:"_id" validate:"required"`
	CreationTime float64 `json:"_creationTime,omitempty"`
	BusinessID   string  `json:"businessId,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
}

type Customers []Customer

func (c Customers) Validate() error {
	return validateRecords(c)
}

type CustomerWithPets struct {
	Customer
	Pets []Pet `json:"pets"`
}

type CustomersWithPets []CustomerWithPets

func (c CustomersWithPets) Validate() error {
	return validateRecords(c)
}

type CreateCustomerArgs struct {
	BusinessID string `json:"businessId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

type UpdateCustomerArgs struct {
	ID    string  `json:"id"`
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (c *Customer) Validate() error {
	if c == nil {
		return nil
	}
	return validateRecord(c)
}
