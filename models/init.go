package models

import (
	"fmt"
	"yatube/db"
)

func Init() error {
	for _, model := range []any{&User{}, &Group{}, &Post{}, &Comment{}, &Follow{}} {
		if err := db.Instance.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}
	return nil
}
