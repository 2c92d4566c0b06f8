// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is a single vault record. Every text field is optional and may be
// nil; an Entry belongs to exactly one [Folder] and has no children.
type Entry struct {
	// ID is the stable storage identifier of the entry (UUID).
	ID string `json:"id,omitempty"`

	// Name is the human-readable title of the entry.
	Name *string `json:"name,omitempty"`

	// Host is the machine or site the credentials belong to.
	Host *string `json:"host,omitempty"`

	// User is the login name.
	User *string `json:"user,omitempty"`

	// Passwd is the plaintext secret. It is encrypted only at rest.
	Passwd *string `json:"passwd,omitempty"`

	// Launch is the command used to open a session with this entry.
	Launch *string `json:"launch,omitempty"`
}

// Fields returns the searchable text fields of the entry in a fixed order:
// name, host, user, passwd, launch.
func (e *Entry) Fields() [5]*string {
	return [5]*string{e.Name, e.Host, e.User, e.Passwd, e.Launch}
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences v, treating nil as an empty string.
func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
