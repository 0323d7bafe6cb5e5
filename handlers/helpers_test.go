// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/testutil"
	"github.com/danielhkuo/habit-tracker/validation"
)

// setupTest returns a migrated in-memory database, a store on top of it and
// a validator.
func setupTest(t *testing.T) (*sqlx.DB, *store.Store, *validation.Validator) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	validate, err := validation.New()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}
	return db, store.New(db), validate
}

// storeNotFound mimics the wrapped not-found errors the store returns.
func storeNotFound() error {
	return fmt.Errorf("user u1: %w", store.ErrNotFound)
}
