package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    ParsedAddress
	}{
		{
			name:    "full address",
			address: "123 Main St, Paducah, KY, 42001",
			want: ParsedAddress{
				Line1: "123 Main St",
				City:  "Paducah",
				State: "KY",
				Zip:   "42001",
			},
		},
		{
			name:    "line only falls back to default city",
			address: "123 Main St",
			want: ParsedAddress{
				Line1: "123 Main St",
				City:  "Paducah",
				State: "",
				Zip:   "",
			},
		},
		{
			name:    "untrimmed segments",
			address: " 4570 Clarks River Rd ,  Paducah ,KY,  42003 ",
			want: ParsedAddress{
				Line1: "4570 Clarks River Rd",
				City:  "Paducah",
				State: "KY",
				Zip:   "42003",
			},
		},
		{
			name:    "missing trailing zip",
			address: "88 Broadway, Metropolis, IL",
			want: ParsedAddress{
				Line1: "88 Broadway",
				City:  "Metropolis",
				State: "IL",
				Zip:   "",
			},
		},
		{
			name:    "extra segments are dropped",
			address: "1 Ferry Rd, Ledbetter, KY, 42058, USA",
			want: ParsedAddress{
				Line1: "1 Ferry Rd",
				City:  "Ledbetter",
				State: "KY",
				Zip:   "42058",
			},
		},
		{
			name:    "empty input",
			address: "",
			want: ParsedAddress{
				Line1: "",
				City:  "Paducah",
				State: "",
				Zip:   "",
			},
		},
		{
			name:    "malformed state and zip pass through unchanged",
			address: "123 Main St, Paducah, Kentucky, ABCDE",
			want: ParsedAddress{
				Line1: "123 Main St",
				City:  "Paducah",
				State: "Kentucky",
				Zip:   "ABCDE",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseServiceAddress(tt.address))
		})
	}
}

func TestNewCustomerRecord(t *testing.T) {
	appointment := Appointment{
		CustomerName:   "Jordan Smith",
		CustomerEmail:  "jordan@example.com",
		CustomerPhone:  "270-555-0134",
		ServiceAddress: "123 Main St, Paducah, KY, 42001",
	}

	record := NewCustomerRecord(appointment)

	assert.Equal(t, CustomerRecord{
		Name:         "Jordan Smith",
		Phone:        "270-555-0134",
		Email:        "jordan@example.com",
		AddressLine1: "123 Main St",
		City:         "Paducah",
		State:        "KY",
		Zip:          "42001",
	}, record)
}

func TestAppointmentMetadataRoundTrip(t *testing.T) {
	appointment := Appointment{
		CustomerName:        "Jordan Smith",
		CustomerEmail:       "jordan@example.com",
		CustomerPhone:       "270-555-0134",
		ServiceAddress:      "123 Main St, Paducah, KY, 42001",
		ServiceType:         "water-heater",
		ServiceDescription:  "No hot water since Tuesday",
		AppointmentDate:     "2026-09-04",
		AppointmentTime:     "10:00",
		IsEmergency:         "false",
		SpecialInstructions: "Gate code 4411",
		Source:              SourceSchedulingForm,
	}

	assert.Equal(t, appointment, AppointmentFromMetadata(appointment.Metadata()))
}
