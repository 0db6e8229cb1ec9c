package convex_dto

type Pet struct {
	ID              string   `json:"_id" validate:"required"`
	CreationTime    float64  `json:"_creationTime,omitempty"`
	CustomerID      string   `json:"customerId,omitempty"`
	Name            string   `json:"name"`
	Species         string   `json:"species"`
	Breed           string   `json:"breed,omitempty"`
	Age             *int     `json:"age,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Color           string   `json:"color,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	CreatedAt       int64    `json:"createdAt,omitempty"`
	LastVisit       *int64   `json:"lastVisit,omitempty"`
	NextAppointment *int64   `json:"nextAppointment,omitempty"`
	TotalVisits     *int     `json:"totalVisits,omitempty"`
}

type Pets []Pet

func (p Pets) Validate() error {
	return validateRecords(p)
}

type PetWithCustomer struct {
	Pet
	Customer *Customer `json:"customer,omitempty"`
}

type PetsWithCustomer []PetWithCustomer

func (p PetsWithCustomer) Validate() error {
	return validateRecords(p)
}

type CreatePetArgs struct {
	Age             *int     `json:"age,omitempty"`
	Breed           string   `json:"breed,omitempty"`
	Color           string   `json:"color,omitempty"`
	CreatedAt       int64    `json:"createdAt"`
	CustomerID      string   `json:"customerId"`
	Gender          string   `json:"gender"`
	LastVisit       *int64   `json:"lastVisit,omitempty"`
	Name            string   `json:"name"`
	NextAppointment *int64   `json:"nextAppointment,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	Species         string   `json:"species"`
	TotalVisits     *int     `json:"totalVisits,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
}

type UpdatePetArgs struct {
	ID              string   `json:"id"`
	Age             *int     `json:"age,omitempty"`
	Breed           *string  `json:"breed,omitempty"`
	Color           *string  `json:"color,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	LastVisit       *int64   `json:"lastVisit,omitempty"`
	Name            *string  `json:"name,omitempty"`
	NextAppointment *int64   `json:"nextAppointment,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	Species         *string  `json:"species,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
}
