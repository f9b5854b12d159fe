// Package gitlog parses the default pretty-printed output of git log.
package gitlog

import (
	"regexp"
	"strings"

	"github.com/redate/redate/model"
)

// unanchored at the end: trailing text after the email is tolerated
var authorRE = regexp.MustCompile(`^Author: (.+) <(.+)>`)

// Parse scans lines of git log output and collects one commit per
// "commit <hash>" header line. Fields that never match are left empty
// rather than failing the parse, and a record started by a commit line
// is always emitted, even when the input ends mid-entry. Empty input
// yields no commits.
func Parse(lines []string) []*model.Commit {
	var commits []*model.Commit
	var cur *model.Commit
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "commit"):
			if cur != nil {
				commits = append(commits, cur)
			}
			cur = &model.Commit{}
			if fields := strings.Fields(line); len(fields) > 1 {
				cur.Hash = fields[1]
			}
		case cur == nil:
			// noise before the first commit header
		case strings.HasPrefix(line, "Author:"):
			if m := authorRE.FindStringSubmatch(line); m != nil {
				cur.Author = strings.TrimSpace(m[1])
				cur.AuthorEmail = strings.TrimSpace(m[2])
			}
		case strings.HasPrefix(line, "Date:"):
			cur.Date = strings.TrimSpace(line[strings.Index(line, ":")+1:])
		case strings.TrimSpace(line) != "":
			// the first non-blank line after the headers is the subject.
			// anything after it (the body) is not needed here.
			if cur.Subject == "" {
				cur.Subject = strings.TrimSpace(line)
			}
		}
	}
	if cur != nil {
		commits = append(commits, cur)
	}
	return commits
}
