package model

import "fmt"

// Commit is a single entry of git log output. Date stays in git's
// textual format so a rewrite can substitute it back verbatim.
type Commit struct {
	Hash        string `json:"hash"`
	Author      string `json:"author,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
	Date        string `json:"date,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

func (c *Commit) ShortHash() string {
	if len(c.Hash) < 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// Label renders the commit as a single selection menu line.
func (c *Commit) Label() string {
	return fmt.Sprintf("%s -  %s  - %s", c.Date, c.Subject, c.Author)
}
