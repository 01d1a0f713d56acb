/*
 Copyright (C) 2022-2026, The record-catalog Go Library Authors

 This file is part of record-catalog: An Ordered Go Library for Record Catalogs.

 record-catalog is free software; you can redistribute it and/or
 modify it under the terms of the GNU Lesser General Public
 License as published by the Free Software Foundation; either
 version 2.1 of the License, or any later version.

 record-catalog is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
 See the GNU Lesser General Public License for more details.

 A copy of the GNU Lesser General Public License is provided by this
 library under LICENSE.md. If absent, it can be found within the
 GitHub repository:
          https://github.com/justincpresley/record-catalog
*/

package catalog

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// Database stores snapshots by name. Get returns nil for an unknown name.
type Database interface {
	Get(key []byte) (val []byte)
	Set(key []byte, value []byte) error
	Remove(key []byte) error
	Close()
}

func NewDatabase(cs *Constants) (Database, error) {
	var (
		db  Database
		err error
	)
	switch cs.Storage {
	case BoltStorage:
		db, err = NewBoltDB(cs.StoragePath, []byte(cs.Bucket))
	case FileStorage:
		db, err = NewFileDB(cs.StoragePath)
	default:
		err = fmt.Errorf("catalog: unknown storage %q", cs.Storage)
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}

type BoltDB struct {
	handle *bolt.DB
	bucket []byte
}

func NewBoltDB(path string, bucket []byte) (BoltDB, error) {
	var (
		err error
		db  *bolt.DB
	)
	path = resolvePath(path)
	err = ensureDirectory(path)
	if err != nil {
		return BoltDB{nil, nil}, err
	}
	db, err = bolt.Open(path, 0600, nil)
	if err != nil {
		return BoltDB{nil, nil}, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return BoltDB{nil, nil}, err
	}
	return BoltDB{handle: db, bucket: bucket}, nil
}

func (fs BoltDB) Get(key []byte) (val []byte) {
	fs.handle.View(func(tx *bolt.Tx) error {
		buc := tx.Bucket(fs.bucket)
		// only valid for the life of the transaction
		if v := buc.Get(key); v != nil {
			val = append([]byte{}, v...)
		}
		return nil
	})
	return val
}

func (fs BoltDB) Set(key []byte, value []byte) error {
	return fs.handle.Update(func(tx *bolt.Tx) error {
		buc := tx.Bucket(fs.bucket)
		return buc.Put(key, value)
	})
}

func (fs BoltDB) Remove(key []byte) error {
	return fs.handle.Update(func(tx *bolt.Tx) error {
		buc := tx.Bucket(fs.bucket)
		return buc.Delete(key)
	})
}

func (fs BoltDB) Close() {
	fs.handle.Close()
}

// FileDB keeps each snapshot in its own file, named by the key, under root.
type FileDB struct {
	root string
}

func NewFileDB(root string) (FileDB, error) {
	root = resolvePath(root)
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return FileDB{}, err
	}
	return FileDB{root: root}, nil
}

// path maps key below root. Keys that are absolute or climb out of root
// are refused.
func (fs FileDB) path(key []byte) (string, error) {
	if !filepath.IsLocal(string(key)) {
		return "", fmt.Errorf("snapshot %q: %w", key, ErrBadSnapshotName)
	}
	return filepath.Join(fs.root, string(key)), nil
}

func (fs FileDB) Get(key []byte) []byte {
	path, err := fs.path(key)
	if err != nil {
		return nil
	}
	val, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return val
}

func (fs FileDB) Set(key []byte, value []byte) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	if err = ensureDirectory(path); err != nil {
		return err
	}
	return os.WriteFile(path, value, 0644)
}

func (fs FileDB) Remove(key []byte) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (fs FileDB) Close() {}

func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}
	return nil
}

func resolvePath(path string) string {
	usr, _ := user.Current()
	if path == "~" {
		path = usr.HomeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(usr.HomeDir, path[2:])
	} else if strings.HasPrefix(path, "./") {
		path, _ = filepath.Abs(path)
	}
	return path
}
