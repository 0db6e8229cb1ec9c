package constvars

const (
	ServiceCategoryAll      = "all"
	ServiceCategoryGrooming = "grooming"
	ServiceCategoryBath     = "bath"
	ServiceCategoryAddon    = "addon"
)

const (
	MembershipTypeGrooming = "grooming"
	MembershipTypeDaycare  = "daycare"

	MembershipIntervalMonth = "month"
	MembershipIntervalYear  = "year"

	PaymentFrequencyMonthly = "monthly"
	PaymentFrequencyYearly  = "yearly"

	// yearly billing keeps 80% of twelve monthly payments
	MembershipYearlyDiscountFactor = "0.8"
	MembershipMonthsPerYear        = 12
)

const (
	PetSpeciesDog   = "dog"
	PetSpeciesCat   = "cat"
	PetGenderMale   = "male"
	PetGenderFemale = "female"
)

const (
	AppointmentStatusPending     = "pending"
	AppointmentStatusConfirmed   = "confirmed"
	AppointmentStatusInProgress  = "in_progress"
	AppointmentStatusCompleted   = "completed"
	AppointmentStatusCancelled   = "cancelled"
	AppointmentStatusNoShow      = "no_show"
	AppointmentStatusRescheduled = "rescheduled"
)

const (
	SlotOpeningTime    = "09:00"
	SlotClosingTime    = "17:00"
	SlotIntervalMinute = 30
	MinutesPerDay      = 24 * 60
)

const (
	TimeLayoutClock    = "15:04"
	TimeLayoutDate     = "2006-01-02"
	TimeLayoutLongDate = "Monday, January 2, 2006"
	TimeLayout12Hour   = "3:04 PM"
	TimeLayoutICS      = "20060102T150405Z"
)

type ServiceCategoryTab struct {
	Value string
	Label string
}

var ServiceCategoryTabs = []ServiceCategoryTab{
	{Value: ServiceCategoryAll, Label: "All Services"},
	{Value: ServiceCategoryGrooming, Label: "Full Grooming"},
	{Value: ServiceCategoryBath, Label: "Bath & Tidy"},
	{Value: ServiceCategoryAddon, Label: "Add-Ons"},
}

const (
	EventBookingCheckoutStarted = "booking.checkout_started"
)

const (
	GroomingSessionLabelFormat  = "%d grooming session included"
	GroomingSessionsLabelFormat = "%d grooming sessions included"
	DaycareDaysLabelFormat      = "%d days per month"
)

// SelectedServiceLabel stands in for a service name when the catalog cannot be reached.
const SelectedServiceLabel = "Selected service"
