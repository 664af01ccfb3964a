package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// TableFileName returns the file name a table with the given version tag is
// persisted under, in the working directory.
func TableFileName(version string) string {
	return fmt.Sprintf("dsl-parser_v%s.json", version)
}

// SaveTable persists a table under a version tag. The on-disk form is the
// exact sequence-of-maps representation of the in-memory table. The file is
// written atomically: to a temporary file first, then renamed into place.
func SaveTable(table Table, version string) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	filename := TableFileName(version)
	tmp, err := ioutil.TempFile(filepath.Dir(filename), filename+".*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	tracer().Infof("persisting action table to %s", filename)
	return os.Rename(tmp.Name(), filename)
}

// LoadTable rehydrates a table persisted under a version tag. A missing
// file is not an error; it is reported through the second return value, so
// construction can fall back to building the table.
func LoadTable(version string) (Table, bool, error) {
	filename := TableFileName(version)
	data, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var table Table
	if err = json.Unmarshal(data, &table); err != nil {
		return nil, false, fmt.Errorf("%s: corrupt table file: %v", filename, err)
	}
	tracer().Infof("loaded action table from %s", filename)
	return table, true, nil
}
