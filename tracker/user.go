// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"sort"

	"github.com/danielhkuo/habit-tracker/idgen"
)

// User owns a set of habit names.
type User struct {
	ID     string
	Name   string
	habits map[string]struct{}
}

// NewUser creates a user. An empty id is replaced with a generated one.
func NewUser(name, id string) *User {
	if id == "" {
		id = idgen.New()
	}
	return &User{ID: id, Name: name, habits: make(map[string]struct{})}
}

func (u *User) AddHabit(name string) {
	if u.habits == nil {
		u.habits = make(map[string]struct{})
	}
	u.habits[name] = struct{}{}
}

// RemoveHabit is a no-op when the habit is absent.
func (u *User) RemoveHabit(name string) {
	delete(u.habits, name)
}

func (u *User) HasHabit(name string) bool {
	_, ok := u.habits[name]
	return ok
}

// Habits returns a sorted copy of the habit names.
func (u *User) Habits() []string {
	names := make([]string, 0, len(u.habits))
	for name := range u.habits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
