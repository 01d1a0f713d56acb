package catalog

import (
	"fmt"
	"iter"
	"strings"

	ol "github.com/justincpresley/record-catalog/util/orderedlist"
)

type byTitle = ol.List[*Record, ol.ByPointee[Record]]

// Collection is a named set of records, kept in title order. It refers to
// records owned by a Library and never releases them.
type Collection struct {
	name    string
	members byTitle
}

func NewCollection(name string) *Collection {
	return &Collection{name: name}
}

func (c *Collection) Name() string { return c.name }
func (c *Collection) Len() int     { return c.members.Len() }
func (c *Collection) Empty() bool  { return c.members.Empty() }

func (c *Collection) Members() iter.Seq[*Record] { return c.members.All() }

func (c *Collection) AddMember(r *Record) error {
	if c.IsMemberPresent(r) {
		return ErrAlreadyMember
	}
	c.members.Adopt(r)
	return nil
}

func (c *Collection) IsMemberPresent(r *Record) bool {
	return c.members.Contains(r)
}

func (c *Collection) RemoveMember(r *Record) error {
	it := c.members.Find(r)
	if it.Done() {
		return ErrNotMember
	}
	c.members.Erase(it)
	return nil
}

func (c *Collection) clear() { c.members.Clear() }

func (c *Collection) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Collection %s contains:", c.name)
	if c.members.Empty() {
		sb.WriteString(" None")
		return sb.String()
	}
	ol.ApplyArg(c.members.Begin(), c.members.End(), writeLine[*Record], &sb)
	return sb.String()
}

func writeLine[T fmt.Stringer](v T, sb *strings.Builder) {
	sb.WriteByte('\n')
	sb.WriteString(v.String())
}

func (c *Collection) save(sb *strings.Builder) {
	fmt.Fprintf(sb, "%s %d\n", c.name, c.members.Len())
	for r := range c.members.All() {
		sb.WriteString(r.title)
		sb.WriteByte('\n')
	}
}

type collectionsByName struct{}

func (collectionsByName) Precedes(a, b *Collection) bool { return a.name < b.name }
