package gcalendar

const (
	DefaultCalendarID = "primary"
	DefaultTimezone   = "UTC"

	// tokenFileName is looked up next to OAuth desktop credentials.
	tokenFileName = "token.json"
)

// dateTimeLayouts are the timestamp shapes accepted from schedules, tried in order.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}
