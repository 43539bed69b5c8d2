package constants

const (
	// DefaultDateFormat is the display-token date format used when the
	// caller does not configure one (DD-MM-YYYY).
	DefaultDateFormat = "DD-MM-YYYY"

	// DefaultDivider separates the date and time portions of a composite
	// format.
	DefaultDivider = " "

	// DefaultTimeFormat selects the 24-hour time token table.
	DefaultTimeFormat = "24"

	// DefaultLocale is used when no localization is configured.
	DefaultLocale = "en"

	// DefaultMarkColor is the rendering hint attached to marked values
	// when the caller supplies none.
	DefaultMarkColor = "170"
)
