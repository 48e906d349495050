package domain

// Checkout session metadata keys. The payment session embeds the appointment
// under these keys and the completion webhook reads them back; both sides
// must agree on the names.
const (
	MetadataCustomerName        = "customerName"
	MetadataCustomerEmail       = "customerEmail"
	MetadataCustomerPhone       = "customerPhone"
	MetadataServiceAddress      = "serviceAddress"
	MetadataServiceType         = "serviceType"
	MetadataServiceDescription  = "serviceDescription"
	MetadataAppointmentDate     = "appointmentDate"
	MetadataAppointmentTime     = "appointmentTime"
	MetadataIsEmergency         = "isEmergency"
	MetadataSpecialInstructions = "specialInstructions"
	MetadataSource              = "source"
)

// SourceSchedulingForm marks records originating from the website
// scheduling form.
const SourceSchedulingForm = "website_scheduling_form"

// Appointment holds the customer and service details collected by the
// scheduling form. All fields are plain strings as submitted; no
// normalization happens here.
type Appointment struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	ServiceAddress      string
	ServiceType         string
	ServiceDescription  string
	AppointmentDate     string
	AppointmentTime     string
	IsEmergency         string
	SpecialInstructions string
	Source              string
}

// AppointmentFromMetadata rebuilds an appointment from checkout session
// metadata. Missing keys become empty strings.
func AppointmentFromMetadata(metadata map[string]string) Appointment {
	return Appointment{
		CustomerName:        metadata[MetadataCustomerName],
		CustomerEmail:       metadata[MetadataCustomerEmail],
		CustomerPhone:       metadata[MetadataCustomerPhone],
		ServiceAddress:      metadata[MetadataServiceAddress],
		ServiceType:         metadata[MetadataServiceType],
		ServiceDescription:  metadata[MetadataServiceDescription],
		AppointmentDate:     metadata[MetadataAppointmentDate],
		AppointmentTime:     metadata[MetadataAppointmentTime],
		IsEmergency:         metadata[MetadataIsEmergency],
		SpecialInstructions: metadata[MetadataSpecialInstructions],
		Source:              metadata[MetadataSource],
	}
}

// Metadata flattens the appointment into the string map attached to the
// checkout session at creation time.
func (a Appointment) Metadata() map[string]string {
	return map[string]string{
		MetadataCustomerName:        a.CustomerName,
		MetadataCustomerEmail:       a.CustomerEmail,
		MetadataCustomerPhone:       a.CustomerPhone,
		MetadataServiceAddress:      a.ServiceAddress,
		MetadataServiceType:         a.ServiceType,
		MetadataServiceDescription:  a.ServiceDescription,
		MetadataAppointmentDate:     a.AppointmentDate,
		MetadataAppointmentTime:     a.AppointmentTime,
		MetadataIsEmergency:         a.IsEmergency,
		MetadataSpecialInstructions: a.SpecialInstructions,
		MetadataSource:              a.Source,
	}
}
