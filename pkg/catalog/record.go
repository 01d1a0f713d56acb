package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

type Record struct {
	id     int
	medium string
	title  string
	rating int // 0 when unrated
}

// TitleProbe returns a record usable only as a Find probe by title.
func TitleProbe(title string) *Record { return &Record{title: title} }

// IDProbe returns a record usable only as a Find probe by ID.
func IDProbe(id int) *Record { return &Record{id: id} }

func (r Record) ID() int        { return r.id }
func (r Record) Medium() string { return r.medium }
func (r Record) Title() string  { return r.title }
func (r Record) Rating() int    { return r.rating }

// Less orders records by title.
func (r Record) Less(o Record) bool { return r.title < o.title }

// String formats the record as "ID: medium rating title", with "u" standing
// in for the rating of an unrated record.
func (r Record) String() string {
	rating := "u"
	if r.rating != 0 {
		rating = strconv.Itoa(r.rating)
	}
	return fmt.Sprintf("%d: %s %s %s", r.id, r.medium, rating, r.title)
}

func (r Record) save(sb *strings.Builder) {
	fmt.Fprintf(sb, "%d %s %d %s\n", r.id, r.medium, r.rating, r.title)
}

// parseRecord reads a line written by save.
func parseRecord(line string) (*Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, ErrInvalidData
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return nil, ErrInvalidData
	}
	rating, err := strconv.Atoi(fields[2])
	if err != nil || rating < 0 {
		return nil, ErrInvalidData
	}
	return &Record{
		id:     id,
		medium: fields[1],
		rating: rating,
		title:  strings.Join(fields[3:], " "),
	}, nil
}

type recordsByID struct{}

func (recordsByID) Precedes(a, b *Record) bool { return a.id < b.id }

// oneWord reports whether s is non-empty and free of whitespace, so that it
// survives being saved as a single field.
func oneWord(s string) bool {
	f := strings.Fields(s)
	return len(f) == 1 && f[0] == s
}

// NormalizeTitle trims s and collapses every run of whitespace inside it to a
// single space.
func NormalizeTitle(s string) (string, error) {
	t := strings.Join(strings.Fields(s), " ")
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}
