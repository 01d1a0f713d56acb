package catalog

import (
	"errors"
)

var (
	ErrNoSuchTitle      = errors.New("No record with that title!")
	ErrNoSuchID         = errors.New("No record with that ID!")
	ErrNoSuchCollection = errors.New("No collection with that name!")
	ErrDuplicateTitle   = errors.New("Library already has a record with this title!")
	ErrDuplicateName    = errors.New("Catalog already has a collection with this name!")
	ErrAlreadyMember    = errors.New("Record is already a member in the collection!")
	ErrNotMember        = errors.New("Record is not a member in the collection!")
	ErrRecordInUse      = errors.New("Cannot delete a record that is a member of a collection!")
	ErrCollectionsInUse = errors.New("Cannot clear all records unless all collections are empty!")
	ErrRatingRange      = errors.New("Rating is out of range!")
	ErrEmptyTitle       = errors.New("Could not read a title!")
	ErrInvalidData      = errors.New("Invalid data found in file!")
	ErrNoSuchSnapshot   = errors.New("Could not open file!")
	ErrChecksum         = errors.New("Saved data is corrupted!")
	ErrNotOneWord       = errors.New("Medium and collection names must be a single word!")
	ErrBadSnapshotName  = errors.New("Snapshot name must stay inside the storage directory!")
)
