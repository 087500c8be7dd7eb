// Package model contains abstract data models.
package model

import "time"

type Commit struct {
	ID          string `json:"commit"`
	Author      string
	AuthorEmail string
	AuthorDate  time.Time
	Subject     string
	Body        string
}

// ShortID returns an abbreviated commit id suitable for changelogs and
// console output.
func (c *Commit) ShortID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
