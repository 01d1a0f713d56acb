package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLine bounds a single line of saved data, and so the length of a title.
const maxLine = 1 << 24

// Save writes the records in title order followed by the collections in name
// order. Collections list their members by title.
func (l *Library) Save(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", l.titles.Len())
	for r := range l.titles.All() {
		r.save(&sb)
	}
	fmt.Fprintf(&sb, "%d\n", l.catalog.Len())
	for c := range l.catalog.All() {
		c.save(&sb)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Restore replaces the contents of l with data written by Save. The new
// records and collections are built aside and moved in only once all of them
// have been read, so on error l is left as it was.
func (l *Library) Restore(rd io.Reader) (err error) {
	var (
		set    recordSet
		lastID int
	)
	defer func() {
		if err != nil {
			clearAll(&set.catalog)
			set.titles.Clear()
			set.ids.Clear()
		}
	}()
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)

	n, err := scanCount(sc)
	if err != nil {
		return err
	}
	for range n {
		if !sc.Scan() {
			return ErrInvalidData
		}
		r, err := parseRecord(sc.Text())
		if err != nil {
			return err
		}
		if set.titles.Contains(r) || set.ids.Contains(r) {
			return ErrInvalidData
		}
		set.titles.Adopt(r)
		set.ids.Adopt(r)
		lastID = max(lastID, r.id)
	}

	n, err = scanCount(sc)
	if err != nil {
		return err
	}
	for range n {
		c, err := parseCollection(sc, &set.titles)
		if err != nil {
			return err
		}
		if set.catalog.Contains(c) {
			c.clear()
			return ErrInvalidData
		}
		set.catalog.Adopt(c)
	}
	if err = sc.Err(); err != nil {
		return err
	}

	l.ClearAll()
	l.titles.MoveFrom(&set.titles)
	l.ids.MoveFrom(&set.ids)
	l.catalog.MoveFrom(&set.catalog)
	l.lastID = lastID
	l.logger.Infof("Restored %d records and %d collections.", l.titles.Len(), l.catalog.Len())
	return nil
}

func scanCount(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrInvalidData
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return 0, ErrInvalidData
	}
	return n, nil
}

func parseCollection(sc *bufio.Scanner, titles *byTitle) (*Collection, error) {
	if !sc.Scan() {
		return nil, ErrInvalidData
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return nil, ErrInvalidData
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return nil, ErrInvalidData
	}
	c := NewCollection(fields[0])
	for range n {
		if !sc.Scan() {
			c.clear()
			return nil, ErrInvalidData
		}
		it := titles.Find(TitleProbe(strings.Join(strings.Fields(sc.Text()), " ")))
		if it.Done() || c.AddMember(it.Value()) != nil {
			c.clear()
			return nil, ErrInvalidData
		}
	}
	return c, nil
}
