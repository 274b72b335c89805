package models

import (
	"yatube/db"

	"github.com/pkg/errors"
)

// Init creates or updates the tables, parents before children
func Init() error {
	for _, model := range []interface{}{
		&User{},
		&Group{},
		&Post{},
		&Comment{},
		&Follow{},
	} {
		if err := db.Instance.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migrate %T", model)
		}
	}
	return nil
}
