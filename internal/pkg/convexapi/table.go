package convexapi

import dto "petgromee-web/internal/pkg/convex_dto"

var Businesses = struct {
	GetForUser        QueryRef[dto.UserIDArgs, *dto.Business]
	Create            MutationRef[dto.CreateBusinessArgs, string]
	GetForCurrentUser QueryRef[dto.NoArgs, *dto.Business]
	GetBySlug         QueryRef[dto.BusinessSlugArgs, *dto.Business]
}{
	GetForUser:        newQuery[dto.UserIDArgs, *dto.Business]("businesses", "getForUser"),
	Create:            newMutation[dto.CreateBusinessArgs, string]("businesses", "create"),
	GetForCurrentUser: newQuery[dto.NoArgs, *dto.Business]("businesses", "getForCurrentUser"),
	GetBySlug:         newQuery[dto.BusinessSlugArgs, *dto.Business]("businesses", "getBySlug"),
}

var Memberships = struct {
	GetBusinessMemberships       QueryRef[dto.BusinessIDArgs, dto.MembershipPlans]
	GetActiveBusinessMemberships QueryRef[dto.BusinessIDArgs, dto.MembershipPlans]
	GetByBusiness                QueryRef[dto.BusinessIDArgs, dto.MembershipPlans]
	GetMembershipPlan            QueryRef[dto.IDArgs, *dto.MembershipPlan]
	CreateMembershipPlan         MutationRef[dto.CreateMembershipPlanArgs, string]
	UpdateMembershipPlan         MutationRef[dto.UpdateMembershipPlanArgs, *dto.MembershipPlan]
	DeleteMembershipPlan         MutationRef[dto.IDArgs, *dto.MembershipPlan]
	ReorderMembershipPlans       MutationRef[dto.ReorderMembershipPlansArgs, *dto.MembershipPlan]
	CreateMembershipCheckout     MutationRef[dto.MembershipCheckoutArgs, dto.CheckoutURL]
	GetMembershipByStripePriceID QueryRef[dto.StripePriceIDArgs, *dto.MembershipPlan]
}{
	GetBusinessMemberships:       newQuery[dto.BusinessIDArgs, dto.MembershipPlans]("memberships", "getBusinessMemberships"),
	GetActiveBusinessMemberships: newQuery[dto.BusinessIDArgs, dto.MembershipPlans]("memberships", "getActiveBusinessMemberships"),
	GetByBusiness:                newQuery[dto.BusinessIDArgs, dto.MembershipPlans]("memberships", "getByBusiness"),
	GetMembershipPlan:            newQuery[dto.IDArgs, *dto.MembershipPlan]("memberships", "getMembershipPlan"),
	CreateMembershipPlan:         newMutation[dto.CreateMembershipPlanArgs, string]("memberships", "createMembershipPlan"),
	UpdateMembershipPlan:         newMutation[dto.UpdateMembershipPlanArgs, *dto.MembershipPlan]("memberships", "updateMembershipPlan"),
	DeleteMembershipPlan:         newMutation[dto.IDArgs, *dto.MembershipPlan]("memberships", "deleteMembershipPlan"),
	ReorderMembershipPlans:       newMutation[dto.ReorderMembershipPlansArgs, *dto.MembershipPlan]("memberships", "reorderMembershipPlans"),
	CreateMembershipCheckout:     newMutation[dto.MembershipCheckoutArgs, dto.CheckoutURL]("memberships", "createMembershipCheckout"),
	GetMembershipByStripePriceID: newQuery[dto.StripePriceIDArgs, *dto.MembershipPlan]("memberships", "getMembershipByStripePriceId"),
}

var Appointments = struct {
	GetForBusinessInRange QueryRef[dto.AppointmentRangeArgs, dto.Appointments]
	CreateAppointment     MutationRef[dto.CreateAppointmentArgs, string]
	RescheduleAppointment MutationRef[dto.RescheduleAppointmentArgs, *dto.Appointment]
	UpdateAppointment     MutationRef[dto.UpdateAppointmentArgs, *dto.Appointment]
	SetAppointmentStatus  MutationRef[dto.AppointmentStatusArgs, *dto.Appointment]
	DeleteAppointment     MutationRef[dto.IDArgs, *dto.Appointment]
	GetAppointmentDetails QueryRef[dto.IDArgs, *dto.AppointmentDetails]
}{
	GetForBusinessInRange: newQuery[dto.AppointmentRangeArgs, dto.Appointments]("appointments", "getForBusinessInRange"),
	CreateAppointment:     newMutation[dto.CreateAppointmentArgs, string]("appointments", "createAppointment"),
	RescheduleAppointment: newMutation[dto.RescheduleAppointmentArgs, *dto.Appointment]("appointments", "rescheduleAppointment"),
	UpdateAppointment:     newMutation[dto.UpdateAppointmentArgs, *dto.Appointment]("appointments", "updateAppointment"),
	SetAppointmentStatus:  newMutation[dto.AppointmentStatusArgs, *dto.Appointment]("appointments", "setAppointmentStatus"),
	DeleteAppointment:     newMutation[dto.IDArgs, *dto.Appointment]("appointments", "deleteAppointment"),
	GetAppointmentDetails: newQuery[dto.IDArgs, *dto.AppointmentDetails]("appointments", "getAppointmentDetails"),
}

var Customers = struct {
	GetForBusiness         QueryRef[dto.BusinessIDArgs, dto.Customers]
	CreateCustomer         MutationRef[dto.CreateCustomerArgs, string]
	UpdateCustomer         MutationRef[dto.UpdateCustomerArgs, *dto.Customer]
	DeleteCustomer         MutationRef[dto.IDArgs, *dto.Customer]
	GetForBusinessWithPets QueryRef[dto.BusinessIDArgs, dto.CustomersWithPets]
}{
	GetForBusiness:         newQuery[dto.BusinessIDArgs, dto.Customers]("customer", "getForBusiness"),
	CreateCustomer:         newMutation[dto.CreateCustomerArgs, string]("customer", "createCustomer"),
	UpdateCustomer:         newMutation[dto.UpdateCustomerArgs, *dto.Customer]("customer", "updateCustomer"),
	DeleteCustomer:         newMutation[dto.IDArgs, *dto.Customer]("customer", "deleteCustomer"),
	GetForBusinessWithPets: newQuery[dto.BusinessIDArgs, dto.CustomersWithPets]("customer", "getForBusinessWithPets"),
}

var Pets = struct {
	GetForUser             QueryRef[dto.CustomerIDArgs, dto.Pets]
	CreatePet              MutationRef[dto.CreatePetArgs, string]
	UpdatePet              MutationRef[dto.UpdatePetArgs, *dto.Pet]
	DeletePet              MutationRef[dto.IDArgs, *dto.Pet]
	GetForUserWithCustomer QueryRef[dto.CustomerIDArgs, dto.PetsWithCustomer]
	GetAllPetsForBusiness  QueryRef[dto.BusinessIDArgs, dto.Pets]
}{
	GetForUser:             newQuery[dto.CustomerIDArgs, dto.Pets]("pets", "getForUser"),
	CreatePet:              newMutation[dto.CreatePetArgs, string]("pets", "createPet"),
	UpdatePet:              newMutation[dto.UpdatePetArgs, *dto.Pet]("pets", "updatePet"),
	DeletePet:              newMutation[dto.IDArgs, *dto.Pet]("pets", "deletePet"),
	GetForUserWithCustomer: newQuery[dto.CustomerIDArgs, dto.PetsWithCustomer]("pets", "getForUserWithCustomer"),
	GetAllPetsForBusiness:  newQuery[dto.BusinessIDArgs, dto.Pets]("pets", "getAllPetsForBusiness"),
}

var Services = struct {
	GetByBusiness QueryRef[dto.BusinessIDArgs, dto.Services]
}{
	GetByBusiness: newQuery[dto.BusinessIDArgs, dto.Services]("services", "getByBusiness"),
}

var Stripe = struct {
	CreateCheckoutSession     ActionRef[dto.CreateCheckoutSessionArgs, dto.CheckoutURL]
	CreatePortalSession       ActionRef[dto.CreatePortalSessionArgs, dto.CheckoutURL]
	CreateAppointmentCheckout ActionRef[dto.AppointmentCheckoutArgs, dto.CheckoutURL]
}{
	CreateCheckoutSession:     newAction[dto.CreateCheckoutSessionArgs, dto.CheckoutURL]("stripe", "createCheckoutSession"),
	CreatePortalSession:       newAction[dto.CreatePortalSessionArgs, dto.CheckoutURL]("stripe", "createPortalSession"),
	CreateAppointmentCheckout: newAction[dto.AppointmentCheckoutArgs, dto.CheckoutURL]("stripe", "createAppointmentCheckout"),
}

var Users = struct {
	GetCurrent QueryRef[dto.NoArgs, *dto.User]
}{
	GetCurrent: newQuery[dto.NoArgs, *dto.User]("users", "getCurrent"),
}
