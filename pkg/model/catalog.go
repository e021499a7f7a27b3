package model

// TicketDate is one bookable day of a museum with its fixed daily capacity.
type TicketDate struct {
	Date      string `json:"date"`
	Available int    `json:"available"`
}

// Museum is a bookable resource and its capacity calendar.
type Museum struct {
	Name        string       `json:"name"`
	TicketDates []TicketDate `json:"ticket_dates"`
}

// CatalogFile is the on-disk shape of the capacity table.
type CatalogFile struct {
	Museums []Museum `json:"museums"`
}

// RosterFile is the on-disk shape of the eligible-visitor roster.
type RosterFile struct {
	Employees []string `json:"employees"`
}
