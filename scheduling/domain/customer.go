package domain

// CustomerRecord is the canonical internal shape of a customer, built once
// per webhook delivery from the appointment metadata plus the parsed service
// address. Every field must be derivable from the event alone; no external
// lookups feed record construction.
type CustomerRecord struct {
	Name         string
	Phone        string
	Email        string
	AddressLine1 string
	City         string
	State        string
	Zip          string
}

// NewCustomerRecord builds a customer record from an appointment, parsing
// its free-text service address into components.
func NewCustomerRecord(appointment Appointment) CustomerRecord {
	address := ParseServiceAddress(appointment.ServiceAddress)

	return CustomerRecord{
		Name:         appointment.CustomerName,
		Phone:        appointment.CustomerPhone,
		Email:        appointment.CustomerEmail,
		AddressLine1: address.Line1,
		City:         address.City,
		State:        address.State,
		Zip:          address.Zip,
	}
}
