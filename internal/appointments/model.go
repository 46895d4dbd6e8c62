// Package appointments implements the per-user appointment store: `title;
// date;category;note` records with category normalization on every load and
// duplicate-suppressing merge-import.
package appointments

import (
	"fmt"
	"strings"
	"time"

	"github.com/lfanzott/schulmanager/internal/common"
	"github.com/lfanzott/schulmanager/internal/csvx"
)

// DateLayout is the on-disk date format.
const DateLayout = "2006-01-02"

// Category is one of the closed set of appointment types.
type Category string

const (
	CategoryExam     Category = "Exam"
	CategoryHomework Category = "Homework"
	CategoryEvent    Category = "Event"
	CategoryOther    Category = "Other"
)

// Categories lists the closed set in display order.
var Categories = []Category{CategoryExam, CategoryHomework, CategoryEvent, CategoryOther}

// synonyms maps lower-cased free-text category input to the canonical set.
// Legacy files carry German school terms; the canonical names map to
// themselves so re-saved files stay stable.
var synonyms = map[string]Category{
	"prüfung":     CategoryExam,
	"test":        CategoryExam,
	"sa":          CategoryExam,
	"schularbeit": CategoryExam,
	"exam":        CategoryExam,

	"hausaufgabe": CategoryHomework,
	"hausübung":   CategoryHomework,
	"übung":       CategoryHomework,
	"hw":          CategoryHomework,
	"hü":          CategoryHomework,
	"homework":    CategoryHomework,

	"event":         CategoryEvent,
	"veranstaltung": CategoryEvent,
	"termin":        CategoryEvent,

	"präsentation": CategoryOther,
	"sonstiges":    CategoryOther,
	"diverses":     CategoryOther,
	"other":        CategoryOther,
}

// Normalize maps free-text category input to the canonical set. Unknown
// values become CategoryOther.
func Normalize(raw string) Category {
	if c, ok := synonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CategoryOther
}

// Appointment is one record of an appointment file. Date carries no time
// component.
type Appointment struct {
	Title    string
	Date     time.Time
	Category Category
	Note     string
}

// key is the structural identity used for duplicate suppression on import:
// all four fields, with the date in its on-disk form.
type key struct {
	title    string
	date     string
	category Category
	note     string
}

func (a Appointment) key() key {
	return key{title: a.Title, date: a.Date.Format(DateLayout), category: a.Category, note: a.Note}
}

// parseLine parses one `title;date;category;note` record. The note is
// optional; the category is normalized. Records with fewer than three fields
// or an unparseable date are malformed.
func parseLine(line string) (Appointment, error) {
	parts := strings.SplitN(line, csvx.Delimiter, 4)
	if len(parts) < 3 || parts[0] == "" {
		return Appointment{}, fmt.Errorf("%w: %q", common.ErrMalformedRecord, line)
	}

	date, err := time.Parse(DateLayout, parts[1])
	if err != nil {
		return Appointment{}, fmt.Errorf("%w: bad date in %q: %v", common.ErrMalformedRecord, line, err)
	}

	note := ""
	if len(parts) == 4 {
		note = parts[3]
	}

	return Appointment{
		Title:    parts[0],
		Date:     date,
		Category: Normalize(parts[2]),
		Note:     note,
	}, nil
}

// formatLine renders the on-disk form. The category is always written in its
// canonical spelling, silently rewriting legacy synonyms on re-save.
func formatLine(a Appointment) string {
	return strings.Join([]string{
		a.Title,
		a.Date.Format(DateLayout),
		string(a.Category),
		a.Note,
	}, csvx.Delimiter)
}
