package responses

type ConfirmationLine struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PriceLabel string `json:"priceLabel"`
}

type Confirmation struct {
	AppointmentID       string             `json:"appointmentId"`
	ConfirmationNumber  string             `json:"confirmationNumber"`
	Title               string             `json:"title"`
	Status              string             `json:"status"`
	DateLabel           string             `json:"dateLabel"`
	StartTime           string             `json:"startTime"`
	EndTime             string             `json:"endTime"`
	TimeLabel           string             `json:"timeLabel"`
	TotalAmount         int64              `json:"totalAmount"`
	TotalLabel          string             `json:"totalLabel"`
	CustomerName        string             `json:"customerName,omitempty"`
	CustomerEmail       string             `json:"customerEmail,omitempty"`
	CustomerPhone       string             `json:"customerPhone,omitempty"`
	PetName             string             `json:"petName,omitempty"`
	PetBreed            string             `json:"petBreed,omitempty"`
	PetWeight           string             `json:"petWeight,omitempty"`
	Services            []ConfirmationLine `json:"services"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`
	CalendarURL         string             `json:"calendarUrl"`
}

type CalendarFile struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}
