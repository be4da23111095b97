package calendar

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var catalogNames = map[language.Tag]struct {
	months   [12]string
	weekdays [7]string
}{
	language.English: {
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		weekdays: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	},
	language.German: {
		months:   [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	language.French: {
		months:   [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		weekdays: [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
	},
	language.Spanish: {
		months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		weekdays: [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
	},
}

var catalogTags = []language.Tag{language.English, language.German, language.French, language.Spanish}

var catalogMatcher = language.NewMatcher(catalogTags)

func init() {
	for tag, names := range catalogNames {
		for i, name := range names.months {
			_ = message.SetString(tag, monthKey(i+1), name)
		}
		for i, name := range names.weekdays {
			_ = message.SetString(tag, weekdayKey(time.Weekday(i)), name)
		}
	}
}

func monthKey(month int) string {
	return "calendar.month." + strconv.Itoa(month)
}

func weekdayKey(day time.Weekday) string {
	return "calendar.weekday." + strconv.Itoa(int(day))
}

// catalogTag picks the registered language closest to tag, falling back to
// English when nothing matches.
func catalogTag(tag language.Tag) language.Tag {
	_, idx, conf := catalogMatcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return catalogTags[idx]
}
