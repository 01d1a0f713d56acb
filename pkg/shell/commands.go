package shell

import (
	"fmt"

	ctg "github.com/justincpresley/record-catalog/pkg/catalog"
)

func (s *Shell) findRecord() error {
	r, err := s.recordByTitle()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, r)
	return nil
}

func (s *Shell) printRecord() error {
	r, err := s.recordByID()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, r)
	return nil
}

func (s *Shell) printCollection() error {
	c, err := s.collection()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, c)
	return nil
}

func (s *Shell) printLibrary() error {
	s.lib.PrintRecords(s.out)
	return nil
}

func (s *Shell) printCatalog() error {
	s.lib.PrintCollections(s.out)
	return nil
}

func (s *Shell) printAllocations() error {
	a := s.lib.Allocations()
	fmt.Fprintf(s.out, "Memory allocations:\nRecords: %d\nCollections: %d\nList Nodes: %d",
		a.Records, a.Collections, a.ListNodes)
	return nil
}

func (s *Shell) modifyRating() error {
	r, err := s.recordByID()
	if err != nil {
		return err
	}
	rating, err := s.in.integer()
	if err != nil {
		return err
	}
	if _, err = s.lib.SetRating(r.ID(), rating); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Rating for record %d changed to %d", r.ID(), rating)
	return nil
}

func (s *Shell) addRecord() error {
	medium, err := s.in.word()
	if err != nil {
		return err
	}
	title, err := s.title()
	if err != nil {
		return err
	}
	r, err := s.lib.AddRecord(medium, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Record %d added", r.ID())
	return nil
}

func (s *Shell) addCollection() error {
	name, err := s.in.word()
	if err != nil {
		return err
	}
	if _, err = s.lib.AddCollection(name); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Collection %s added", name)
	return nil
}

// member reads a collection name and a record title.
func (s *Shell) member() (*ctg.Collection, *ctg.Record, error) {
	c, err := s.collection()
	if err != nil {
		return nil, nil, err
	}
	r, err := s.recordByTitle()
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

func (s *Shell) addMember() error {
	c, r, err := s.member()
	if err != nil {
		return err
	}
	if err = c.AddMember(r); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Member %d %s added", r.ID(), r.Title())
	return nil
}

func (s *Shell) deleteMember() error {
	c, r, err := s.member()
	if err != nil {
		return err
	}
	if err = c.RemoveMember(r); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Member %d %s deleted", r.ID(), r.Title())
	return nil
}

func (s *Shell) deleteRecord() error {
	title, err := s.title()
	if err != nil {
		return err
	}
	r, err := s.lib.DeleteRecord(title)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Record %d %s deleted", r.ID(), r.Title())
	return nil
}

func (s *Shell) deleteCollection() error {
	name, err := s.in.word()
	if err != nil {
		return err
	}
	if _, err = s.lib.DeleteCollection(name); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Collection %s deleted", name)
	return nil
}

func (s *Shell) clearLibrary() error {
	if err := s.lib.ClearRecords(); err != nil {
		return err
	}
	fmt.Fprint(s.out, "All records deleted")
	return nil
}

func (s *Shell) clearCatalog() error {
	s.lib.ClearCollections()
	fmt.Fprint(s.out, "All collections deleted")
	return nil
}

func (s *Shell) clearAll() error {
	s.lib.ClearAll()
	fmt.Fprint(s.out, "All data deleted")
	return nil
}

func (s *Shell) saveAll() error {
	name, err := s.in.word()
	if err != nil {
		return err
	}
	data, err := s.lib.Snapshot()
	if err != nil {
		return err
	}
	if err = s.db.Set([]byte(name), data); err != nil {
		s.logger.Errorf("Unable to store snapshot %s: %+v", name, err)
		return ctg.ErrNoSuchSnapshot
	}
	s.logger.Infof("Saved snapshot %s.", name)
	fmt.Fprint(s.out, "Data saved")
	return nil
}

func (s *Shell) restoreAll() error {
	name, err := s.in.word()
	if err != nil {
		return err
	}
	data := s.db.Get([]byte(name))
	if data == nil {
		return ctg.ErrNoSuchSnapshot
	}
	if err = s.lib.LoadSnapshot(data); err != nil {
		return err
	}
	fmt.Fprint(s.out, "Data loaded")
	return nil
}

func (s *Shell) quit() error {
	fmt.Fprint(s.out, "Done")
	return errQuit
}
