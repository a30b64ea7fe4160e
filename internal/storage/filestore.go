package storage

import (
	"os"
	"path/filepath"
)

// FileStore keeps one file per slot under a data directory. Writes go
// through a temp file and a rename so a reader never observes a partial
// value.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.Dir, slot+".json")
}

func (s *FileStore) Load(slot string) ([]byte, error) {
	data, err := os.ReadFile(s.path(slot))
	if os.IsNotExist(err) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Save(slot string, value []byte) error {
	tmp, err := os.CreateTemp(s.Dir, slot+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(slot))
}

func (s *FileStore) Delete(slot string) error {
	err := os.Remove(s.path(slot))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

var _ SlotStore = (*FileStore)(nil)
