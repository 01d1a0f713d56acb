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

// Package shell runs the two-letter command language over a Library.
package shell

import (
	"errors"
	"fmt"
	"io"

	log "github.com/apex/log"
	ctg "github.com/justincpresley/record-catalog/pkg/catalog"
)

var errQuit = errors.New("quit")

type Shell struct {
	lib      *ctg.Library
	db       ctg.Database
	in       *reader
	out      io.Writer
	logger   *log.Entry
	commands map[string]func() error
}

func New(lib *ctg.Library, db ctg.Database, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		lib:    lib,
		db:     db,
		in:     newReader(in),
		out:    out,
		logger: log.WithField("module", "shell"),
	}
	s.commands = map[string]func() error{
		"fr": s.findRecord,
		"pr": s.printRecord,
		"pc": s.printCollection,
		"pL": s.printLibrary,
		"pC": s.printCatalog,
		"pa": s.printAllocations,
		"mr": s.modifyRating,
		"ar": s.addRecord,
		"ac": s.addCollection,
		"am": s.addMember,
		"dr": s.deleteRecord,
		"dc": s.deleteCollection,
		"dm": s.deleteMember,
		"cL": s.clearLibrary,
		"cC": s.clearCatalog,
		"cA": s.clearAll,
		"sA": s.saveAll,
		"rA": s.restoreAll,
		"qq": s.quit,
	}
	return s
}

// Run reads and executes commands until "qq" or the end of input.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, "\nEnter command: ")
		err := s.step()
		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
		fmt.Fprint(s.out, "\n")
	}
}

// step executes one command. Command failures are reported to the user and
// the rest of their line discarded; only input errors are returned.
func (s *Shell) step() error {
	action, err := s.in.char()
	if err != nil {
		return err
	}
	object, err := s.in.char()
	if err != nil {
		return err
	}
	cmd := string([]rune{action, object})
	run, ok := s.commands[cmd]
	if ok {
		err = run()
	} else {
		err = ErrUnrecognized
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errQuit), errors.Is(err, io.EOF):
		return err
	}
	s.logger.Debugf("Command %s failed: %+v", cmd, err)
	fmt.Fprintf(s.out, "%s\n", message(err))
	s.in.skipLine()
	return nil
}

// message returns the text of the innermost wrapped error.
func message(err error) string {
	for {
		u := errors.Unwrap(err)
		if u == nil {
			return err.Error()
		}
		err = u
	}
}

func (s *Shell) title() (string, error) {
	line, err := s.in.line()
	if err != nil {
		return "", err
	}
	return ctg.NormalizeTitle(line)
}

func (s *Shell) recordByTitle() (*ctg.Record, error) {
	title, err := s.title()
	if err != nil {
		return nil, err
	}
	return s.lib.FindRecord(title)
}

func (s *Shell) recordByID() (*ctg.Record, error) {
	id, err := s.in.integer()
	if err != nil {
		return nil, err
	}
	return s.lib.FindRecordByID(id)
}

func (s *Shell) collection() (*ctg.Collection, error) {
	name, err := s.in.word()
	if err != nil {
		return nil, err
	}
	return s.lib.FindCollection(name)
}
