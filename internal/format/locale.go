package format

// Locale carries the display names a format's name tokens (MMMM, MMM) and
// the shell's weekday headers resolve against. Numeric field extraction is
// locale-independent.
type Locale struct {
	ID            string
	Months        [12]string
	MonthAbbrevs  [12]string
	Weekdays      [7]string // Sunday first, matching time.Weekday
	WeekdayAbbrev [7]string
}

var english = Locale{
	ID: "en",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthAbbrevs: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	WeekdayAbbrev: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var locales = map[string]Locale{
	"en": english,
	"de": {
		ID: "de",
		Months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthAbbrevs: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		Weekdays: [7]string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		WeekdayAbbrev: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	"fr": {
		ID: "fr",
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthAbbrevs: [12]string{
			"janv", "févr", "mars", "avr", "mai", "juin",
			"juil", "août", "sept", "oct", "nov", "déc",
		},
		Weekdays: [7]string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		WeekdayAbbrev: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	},
	"es": {
		ID: "es",
		Months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthAbbrevs: [12]string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		Weekdays: [7]string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		WeekdayAbbrev: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
}

// LocaleFor resolves a locale identifier, falling back to English for
// unknown identifiers so that lookups are total.
func LocaleFor(id string) Locale {
	if l, ok := locales[id]; ok {
		return l
	}
	return english
}

// SupportedLocales lists the identifiers LocaleFor resolves natively.
func SupportedLocales() []string {
	return []string{"en", "de", "es", "fr"}
}
