/*
 Copyright (C) 2022-2026, The record-catalog Go Library Authors

 This file is part of record-catalog: An Ordered Go Library for Record Catalogs.

 This library is free software; you can redistribute it and/or
 modify it under the terms of the GNU Lesser General Public
 License as published by the Free Software Foundation; either
 version 2.1 of the License, or any later version.

 This library is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
 See the GNU Lesser General Public License for more details.

 A copy of the GNU Lesser General Public License is provided by this
 library under LICENSE.md. To see more details about the authors and
 contributors, please see AUTHORS.md. If absent, Both of which can be
 found within the GitHub repository:
          https://github.com/justincpresley/record-catalog
*/

package catalog

import (
	"fmt"
	"io"
	"iter"

	log "github.com/apex/log"
	ol "github.com/justincpresley/record-catalog/util/orderedlist"
)

type (
	byID   = ol.List[*Record, recordsByID]
	byName = ol.List[*Collection, collectionsByName]
)

type recordSet struct {
	titles  byTitle
	ids     byID
	catalog byName
}

// Library owns every Record, indexed both by title and by ID, and the
// catalog of Collections referring to them.
type Library struct {
	recordSet
	lastID    int
	constants *Constants
	logger    *log.Entry
}

type Allocations struct {
	Records     int
	Collections int
	ListNodes   int64
}

func NewLibrary(cs *Constants) *Library {
	if cs == nil {
		cs = GetDefaultConstants()
	}
	return &Library{
		constants: cs,
		logger:    log.WithField("module", "catalog"),
	}
}

func (l *Library) NumRecords() int     { return l.titles.Len() }
func (l *Library) NumCollections() int { return l.catalog.Len() }

func (l *Library) Records() iter.Seq[*Record]         { return l.titles.All() }
func (l *Library) Collections() iter.Seq[*Collection] { return l.catalog.All() }

func (l *Library) Allocations() Allocations {
	return Allocations{
		Records:     l.titles.Len(),
		Collections: l.catalog.Len(),
		ListNodes:   ol.LiveNodes(),
	}
}

func (l *Library) findTitle(title string) (ol.Iterator[*Record], error) {
	title, err := NormalizeTitle(title)
	if err != nil {
		return ol.Iterator[*Record]{}, err
	}
	it := l.titles.Find(TitleProbe(title))
	if it.Done() {
		return it, ErrNoSuchTitle
	}
	return it, nil
}

func (l *Library) FindRecord(title string) (*Record, error) {
	it, err := l.findTitle(title)
	if err != nil {
		return nil, err
	}
	return it.Value(), nil
}

func (l *Library) FindRecordByID(id int) (*Record, error) {
	it := l.ids.Find(IDProbe(id))
	if it.Done() {
		return nil, ErrNoSuchID
	}
	return it.Value(), nil
}

func (l *Library) findName(name string) (ol.Iterator[*Collection], error) {
	it := l.catalog.Find(NewCollection(name))
	if it.Done() {
		return it, ErrNoSuchCollection
	}
	return it, nil
}

func (l *Library) FindCollection(name string) (*Collection, error) {
	it, err := l.findName(name)
	if err != nil {
		return nil, err
	}
	return it.Value(), nil
}

// AddRecord creates a record with the next ID and an unset rating.
func (l *Library) AddRecord(medium, title string) (*Record, error) {
	if !oneWord(medium) {
		return nil, ErrNotOneWord
	}
	title, err := NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if l.titles.Contains(TitleProbe(title)) {
		return nil, ErrDuplicateTitle
	}
	l.lastID++
	r := &Record{id: l.lastID, medium: medium, title: title}
	l.titles.Adopt(r)
	l.ids.Adopt(r)
	l.logger.Debugf("Added record %d %q.", r.id, r.title)
	return r, nil
}

func (l *Library) AddCollection(name string) (*Collection, error) {
	if !oneWord(name) {
		return nil, ErrNotOneWord
	}
	c := NewCollection(name)
	if l.catalog.Contains(c) {
		return nil, ErrDuplicateName
	}
	l.catalog.Adopt(c)
	l.logger.Debugf("Added collection %s.", name)
	return c, nil
}

func (l *Library) AddMember(name, title string) (*Record, error) {
	c, err := l.FindCollection(name)
	if err != nil {
		return nil, err
	}
	r, err := l.FindRecord(title)
	if err != nil {
		return nil, err
	}
	if err = c.AddMember(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (l *Library) RemoveMember(name, title string) (*Record, error) {
	c, err := l.FindCollection(name)
	if err != nil {
		return nil, err
	}
	r, err := l.FindRecord(title)
	if err != nil {
		return nil, err
	}
	if err = c.RemoveMember(r); err != nil {
		return nil, err
	}
	return r, nil
}

// SetRating changes the rating of the record with the given ID. Ratings
// outside the configured bounds are rejected.
func (l *Library) SetRating(id, rating int) (*Record, error) {
	r, err := l.FindRecordByID(id)
	if err != nil {
		return nil, err
	}
	if rating < l.constants.MinRating || rating > l.constants.MaxRating {
		return nil, fmt.Errorf("rating %d not in [%d, %d]: %w",
			rating, l.constants.MinRating, l.constants.MaxRating, ErrRatingRange)
	}
	r.rating = rating
	return r, nil
}

func isMember(c *Collection, r *Record) bool { return c.IsMemberPresent(r) }

func (l *Library) DeleteRecord(title string) (*Record, error) {
	it, err := l.findTitle(title)
	if err != nil {
		return nil, err
	}
	r := it.Value()
	if ol.ApplyIfArg(l.catalog.Begin(), l.catalog.End(), isMember, r) {
		return nil, ErrRecordInUse
	}
	l.titles.Erase(it)
	l.ids.Erase(l.ids.Find(r))
	l.logger.Debugf("Deleted record %d %q.", r.id, r.title)
	return r, nil
}

func (l *Library) DeleteCollection(name string) (*Collection, error) {
	it, err := l.findName(name)
	if err != nil {
		return nil, err
	}
	c := it.Value()
	l.catalog.Erase(it)
	c.clear()
	l.logger.Debugf("Deleted collection %s.", name)
	return c, nil
}

func notEmpty(c *Collection) bool { return !c.Empty() }

// ClearRecords deletes every record and restarts IDs from 1. It fails while
// any collection still has members.
func (l *Library) ClearRecords() error {
	if ol.ApplyIf(l.catalog.Begin(), l.catalog.End(), notEmpty) {
		return ErrCollectionsInUse
	}
	l.titles.Clear()
	l.ids.Clear()
	l.lastID = 0
	return nil
}

func (l *Library) ClearCollections() {
	clearAll(&l.catalog)
}

func (l *Library) ClearAll() {
	l.ClearCollections()
	if err := l.ClearRecords(); err != nil {
		l.logger.Errorf("Unable to clear records: %+v", err)
	}
}

func clearAll(catalog *byName) {
	for c := range catalog.All() {
		c.clear()
	}
	catalog.Clear()
}

func printRecord(r *Record, w io.Writer)         { fmt.Fprintf(w, "\n%s", r) }
func printCollection(c *Collection, w io.Writer) { fmt.Fprintf(w, "\n%s", c) }

// PrintRecords writes the library listing in title order.
func (l *Library) PrintRecords(w io.Writer) {
	if l.titles.Empty() {
		fmt.Fprint(w, "Library is empty")
		return
	}
	fmt.Fprintf(w, "Library contains %d records:", l.titles.Len())
	ol.ApplyArg(l.titles.Begin(), l.titles.End(), printRecord, w)
}

// PrintCollections writes the catalog listing in name order.
func (l *Library) PrintCollections(w io.Writer) {
	if l.catalog.Empty() {
		fmt.Fprint(w, "Catalog is empty")
		return
	}
	fmt.Fprintf(w, "Catalog contains %d collections:", l.catalog.Len())
	ol.ApplyArg(l.catalog.Begin(), l.catalog.End(), printCollection, w)
}
