package domain

// monthNames is indexed by 0-based month.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English long name of a 0-based month index.
// Indices outside 0-11 wrap around the year, so 12 is January and -1 is December.
func MonthName(month int) string {
	return monthNames[((month%12)+12)%12]
}

// MonthNames returns the twelve month names in calendar order.
func MonthNames() []string {
	names := make([]string, len(monthNames))
	copy(names, monthNames[:])
	return names
}
